package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/redis/go-redis/v9"
)

// publisher is the part of redis.UniversalClient the notifier needs.
type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisNotifier publishes every event as a JSON Envelope on a pub/sub channel.
type RedisNotifier struct {
	client  publisher
	channel string
}

// NewRedisNotifier creates a notifier on an existing client. The caller keeps
// ownership of the client.
func NewRedisNotifier(client publisher, channel string) *RedisNotifier {
	return &RedisNotifier{client: client, channel: channel}
}

func (n *RedisNotifier) Notify(ctx context.Context, event domain.Event) {
	logger := middleware.GetLoggerFromCtx(ctx)

	data, err := json.Marshal(NewEnvelope(event))
	if err != nil {
		logger.Error("Failed to marshal ledger event",
			slog.String("event", string(event.EventType())),
			slog.String("error", err.Error()))
		return
	}

	if err := n.client.Publish(ctx, n.channel, data).Err(); err != nil {
		logger.Error("Failed to publish ledger event",
			slog.String("channel", n.channel),
			slog.String("error", err.Error()))
		return
	}

	logger.Debug("Published ledger event",
		slog.String("event", string(event.EventType())),
		slog.String("channel", n.channel))
}
