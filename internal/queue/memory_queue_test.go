package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"ultihub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newEventJob(eventType models.MatchEventType) EventJob {
	return EventJob{
		Event: models.NewMatchEvent(eventType, primitive.NewObjectID(), primitive.NewObjectID(), nil),
	}
}

func TestNewMemoryQueue(t *testing.T) {
	t.Run("creates queue with specified capacity", func(t *testing.T) {
		q := NewMemoryQueue(10)

		assert.NotNil(t, q)
		assert.Equal(t, 10, q.Capacity())
		assert.Equal(t, 0, q.Len())
	})

	t.Run("creates queue with zero capacity", func(t *testing.T) {
		q := NewMemoryQueue(0)

		assert.NotNil(t, q)
		assert.Equal(t, 0, q.Capacity())
	})
}

func TestMemoryQueue_Enqueue(t *testing.T) {
	t.Run("successfully enqueues job", func(t *testing.T) {
		q := NewMemoryQueue(10)

		err := q.Enqueue(newEventJob(models.EventMatchScore))

		assert.NoError(t, err)
		assert.Equal(t, 1, q.Len())
	})

	t.Run("enqueues multiple jobs up to capacity", func(t *testing.T) {
		q := NewMemoryQueue(3)

		for i := 0; i < 3; i++ {
			err := q.Enqueue(newEventJob(models.EventMatchStatus))
			assert.NoError(t, err)
		}

		assert.Equal(t, 3, q.Len())
	})

	t.Run("returns error when queue is full", func(t *testing.T) {
		q := NewMemoryQueue(2)

		_ = q.Enqueue(newEventJob(models.EventMatchScore))
		_ = q.Enqueue(newEventJob(models.EventMatchScore))

		err := q.Enqueue(newEventJob(models.EventMatchScore))

		assert.Equal(t, ErrQueueFull, err)
		assert.Equal(t, 2, q.Len())
	})

	t.Run("returns error when queue is closed", func(t *testing.T) {
		q := NewMemoryQueue(10)
		q.Close()

		err := q.Enqueue(newEventJob(models.EventMatchScore))

		assert.Equal(t, ErrQueueClosed, err)
	})
}

func TestMemoryQueue_Dequeue(t *testing.T) {
	t.Run("successfully dequeues job", func(t *testing.T) {
		q := NewMemoryQueue(10)
		expected := newEventJob(models.EventSpiritSubmitted)
		expected.RetryCount = 1
		_ = q.Enqueue(expected)

		ctx := context.Background()
		job, err := q.Dequeue(ctx)

		require.NoError(t, err)
		assert.Equal(t, expected.Event.ID, job.Event.ID)
		assert.Equal(t, expected.Event.Type, job.Event.Type)
		assert.Equal(t, expected.RetryCount, job.RetryCount)
		assert.Equal(t, 0, q.Len())
	})

	t.Run("dequeues in FIFO order", func(t *testing.T) {
		q := NewMemoryQueue(10)
		job1 := newEventJob(models.EventMatchScheduled)
		job2 := newEventJob(models.EventMatchScore)
		_ = q.Enqueue(job1)
		_ = q.Enqueue(job2)

		ctx := context.Background()
		result1, _ := q.Dequeue(ctx)
		result2, _ := q.Dequeue(ctx)

		assert.Equal(t, job1.Event.ID, result1.Event.ID)
		assert.Equal(t, job2.Event.ID, result2.Event.ID)
	})

	t.Run("returns error when context is cancelled", func(t *testing.T) {
		q := NewMemoryQueue(10)
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() {
			_, err := q.Dequeue(ctx)
			done <- err
		}()

		cancel()

		select {
		case err := <-done:
			assert.Equal(t, context.Canceled, err)
		case <-time.After(time.Second):
			t.Fatal("Dequeue did not return after context cancellation")
		}
	})

	t.Run("returns error when queue is closed", func(t *testing.T) {
		q := NewMemoryQueue(10)

		done := make(chan error, 1)
		go func() {
			_, err := q.Dequeue(context.Background())
			done <- err
		}()

		q.Close()

		select {
		case err := <-done:
			assert.Equal(t, ErrQueueClosed, err)
		case <-time.After(time.Second):
			t.Fatal("Dequeue did not return after queue close")
		}
	})
}

func TestMemoryQueue_Close(t *testing.T) {
	t.Run("close is idempotent", func(t *testing.T) {
		q := NewMemoryQueue(10)

		q.Close()
		assert.NotPanics(t, func() { q.Close() })
	})

	t.Run("pending jobs remain dequeuable after close", func(t *testing.T) {
		q := NewMemoryQueue(10)
		job := newEventJob(models.EventMatchScore)
		_ = q.Enqueue(job)

		q.Close()

		dequeued, err := q.Dequeue(context.Background())
		require.NoError(t, err)
		assert.Equal(t, job.Event.ID, dequeued.Event.ID)
	})
}

func TestMemoryQueue_Reset(t *testing.T) {
	t.Run("reopens a closed queue", func(t *testing.T) {
		q := NewMemoryQueue(10)
		q.Close()

		q.Reset()

		err := q.Enqueue(newEventJob(models.EventMatchScore))
		assert.NoError(t, err)
	})
}

func TestMemoryQueue_Concurrency(t *testing.T) {
	t.Run("concurrent enqueue and dequeue", func(t *testing.T) {
		q := NewMemoryQueue(100)
		const jobCount = 50

		var wg sync.WaitGroup
		wg.Add(jobCount)
		for i := 0; i < jobCount; i++ {
			go func() {
				defer wg.Done()
				_ = q.Enqueue(newEventJob(models.EventMatchScore))
			}()
		}
		wg.Wait()

		assert.Equal(t, jobCount, q.Len())

		ctx := context.Background()
		for i := 0; i < jobCount; i++ {
			_, err := q.Dequeue(ctx)
			require.NoError(t, err)
		}
		assert.Equal(t, 0, q.Len())
	})
}
