package queue

import (
	"context"
	"log"
	"sync"
	"time"

	"ultihub/internal/models"
)

const (
	// MaxRetries is the maximum number of automatic retries for failed broadcasts.
	MaxRetries = 3
	// RetryDelay is the base delay between retries (exponential backoff).
	RetryDelay = 2 * time.Second
)

// Broadcaster defines the interface for publishing match events to subscribers.
type Broadcaster interface {
	Publish(ctx context.Context, event models.MatchEvent) error
}

// Processor drains event jobs from the queue and broadcasts them.
type Processor struct {
	queue        *MemoryQueue
	broadcaster  Broadcaster
	workerCount  int
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a new event job processor.
func NewProcessor(queue *MemoryQueue, broadcaster Broadcaster, workerCount int) *Processor {
	return &Processor{
		queue:       queue,
		broadcaster: broadcaster,
		workerCount: workerCount,
		shutdownCh:  make(chan struct{}),
	}
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	log.Printf("Event processor started with %d workers", p.workerCount)
}

// Stop gracefully stops the processor, waiting for workers to finish.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	log.Println("Event processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	log.Printf("Worker %d started", id)

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if err == ErrQueueClosed || err == context.Canceled {
				log.Printf("Worker %d shutting down", id)
				return
			}
			continue
		}
		p.processJob(ctx, job)
	}
}

func (p *Processor) processJob(ctx context.Context, job EventJob) {
	err := p.broadcaster.Publish(ctx, job.Event)
	if err != nil {
		log.Printf("Broadcast failed for event %s: %v", job.Event.ID, err)
		p.handleFailure(job)
		return
	}

	log.Printf("Broadcast event %s (%s) for match %s", job.Event.ID, job.Event.Type, job.Event.MatchID.Hex())
}

func (p *Processor) handleFailure(job EventJob) {
	job.RetryCount++

	if job.RetryCount >= MaxRetries {
		// Events are advisory; after max retries the job is dropped.
		log.Printf("Max retries reached for event %s, dropping", job.Event.ID)
		return
	}

	// Calculate exponential backoff delay
	delay := RetryDelay * time.Duration(1<<uint(job.RetryCount-1))
	log.Printf("Retrying event %s in %v (attempt %d/%d)", job.Event.ID, delay, job.RetryCount+1, MaxRetries)

	// Schedule retry with delay. Uses shutdownCh instead of ctx so shutdown
	// does not leak retry goroutines.
	go func() {
		select {
		case <-p.shutdownCh:
			log.Printf("Shutdown during retry delay for event %s, dropping", job.Event.ID)
			return
		case <-time.After(delay):
			if err := p.queue.Enqueue(job); err != nil {
				log.Printf("Failed to re-enqueue event %s: %v", job.Event.ID, err)
			}
		}
	}()
}
