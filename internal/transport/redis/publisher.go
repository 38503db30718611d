package redis

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// ChangedMessage carries no state; subscribers pull the game through their own surface.
const ChangedMessage = "changed"

const publishTimeout = 2 * time.Second

// Publisher forwards game change notifications to a Redis channel. OnChange only
// marks the publisher dirty; Run does the network work outside the game's lock.
type Publisher struct {
	logger  *slog.Logger
	client  *redis.Client
	channel string
	dirty   chan struct{}
}

func NewPublisher(logger *slog.Logger, client *redis.Client, channel string) *Publisher {
	return &Publisher{
		logger:  logger.With("component", "redis_publisher", "channel", channel),
		client:  client,
		channel: channel,
		dirty:   make(chan struct{}, 1),
	}
}

// OnChange never blocks. Changes arriving before Run publishes are coalesced.
func (that *Publisher) OnChange() {
	select {
	case that.dirty <- struct{}{}:
	default:
	}
}

// Run publishes one ChangedMessage per pending change until ctx is done.
func (that *Publisher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-that.dirty:
			that.publish(ctx)
		}
	}
}

func (that *Publisher) publish(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := that.client.Publish(ctx, that.channel, ChangedMessage).Err(); err != nil {
		that.logger.Error("failed to publish change", "error", err)
	}
}
