package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/posthog/posthog-go"
)

// posthogClient is the part of posthog.Client the notifier needs.
type posthogClient interface {
	Enqueue(posthog.Message) error
	Close() error
}

// PosthogNotifier captures every event in PostHog.
type PosthogNotifier struct {
	client posthogClient
}

// NewPosthogNotifier creates a PostHog client for apiKey. An empty apiKey
// yields a nil notifier; a nil *PosthogNotifier drops events and closes cleanly.
func NewPosthogNotifier(apiKey, endpoint string, logger *slog.Logger) (*PosthogNotifier, error) {
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, not initializing posthog client.")
		return nil, nil
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		return nil, fmt.Errorf("failed to create posthog client: %w", err)
	}
	logger.Info("Posthog client initialized", slog.String("endpoint", endpoint))
	return NewPosthogNotifierWithClient(client), nil
}

// NewPosthogNotifierWithClient wraps an existing client.
func NewPosthogNotifierWithClient(client posthogClient) *PosthogNotifier {
	return &PosthogNotifier{client: client}
}

// distinctID attributes business events to the business and admin events to the admin.
func distinctID(event domain.Event) string {
	switch e := event.(type) {
	case domain.LedgerPaused:
		return "admin:" + e.Admin
	case domain.LedgerUnpaused:
		return "admin:" + e.Admin
	}
	return "business:" + strconv.FormatUint(event.Business(), 10)
}

func (n *PosthogNotifier) Notify(ctx context.Context, event domain.Event) {
	if n == nil {
		return
	}
	logger := middleware.GetLoggerFromCtx(ctx)
	props, err := Properties(event)
	if err != nil {
		logger.Error("Failed to encode event for posthog", slog.String("error", err.Error()))
		return
	}
	err = n.client.Enqueue(posthog.Capture{
		DistinctId: distinctID(event),
		Event:      string(event.EventType()),
		Timestamp:  event.OccurredAt(),
		Properties: posthog.Properties(props),
	})
	if err != nil {
		logger.Error("Failed to enqueue posthog event",
			slog.String("event", string(event.EventType())),
			slog.String("error", err.Error()))
	}
}

// Close flushes pending events.
func (n *PosthogNotifier) Close() error {
	if n == nil {
		return nil
	}
	return n.client.Close()
}
