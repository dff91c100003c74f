// Package realtime delivers match events to tournament subscribers over
// Redis pub/sub.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"ultihub/internal/models"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=mocks/mock_broadcaster.go -package=mocks ultihub/internal/realtime Broadcaster

// Broadcaster defines the interface for match event fan-out.
type Broadcaster interface {
	// Publish sends an event to every subscriber of its tournament channel.
	Publish(ctx context.Context, event models.MatchEvent) error
	// Subscribe returns a channel of events for a tournament. The returned
	// cancel func must be called to release the subscription.
	Subscribe(ctx context.Context, tournamentID primitive.ObjectID) (<-chan models.MatchEvent, func(), error)
}

// Ensure RedisBroadcaster implements Broadcaster interface
var _ Broadcaster = (*RedisBroadcaster)(nil)

// RedisBroadcaster fans events out through Redis pub/sub, one channel per
// tournament.
type RedisBroadcaster struct {
	client *redis.Client
}

// NewRedisBroadcaster creates a broadcaster on an existing Redis client.
func NewRedisBroadcaster(client *redis.Client) *RedisBroadcaster {
	return &RedisBroadcaster{client: client}
}

// ChannelName returns the pub/sub channel for a tournament.
func ChannelName(tournamentID primitive.ObjectID) string {
	return fmt.Sprintf("events:%s", tournamentID.Hex())
}

// Publish sends an event to the tournament channel.
func (b *RedisBroadcaster) Publish(ctx context.Context, event models.MatchEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return b.client.Publish(ctx, ChannelName(event.TournamentID), data).Err()
}

// Subscribe opens a subscription on the tournament channel and decodes
// incoming messages. The channel closes when ctx is cancelled or the cancel
// func is called.
func (b *RedisBroadcaster) Subscribe(ctx context.Context, tournamentID primitive.ObjectID) (<-chan models.MatchEvent, func(), error) {
	sub := b.client.Subscribe(ctx, ChannelName(tournamentID))

	// Wait for the subscription to be confirmed before handing it out.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	events := make(chan models.MatchEvent)
	go func() {
		defer close(events)
		for msg := range sub.Channel() {
			var event models.MatchEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("Dropping malformed event on %s: %v", msg.Channel, err)
				continue
			}
			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	cancel := func() {
		if err := sub.Close(); err != nil {
			log.Printf("Error closing subscription: %v", err)
		}
	}
	return events, cancel, nil
}
