package notify

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/middleware"
)

// LogNotifier writes every event to the structured log.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, event domain.Event) {
	level := slog.LevelInfo
	switch event.EventType() {
	case domain.EventLowBalanceAlert, domain.EventOverspendingAlert, domain.EventProjectOverdue:
		level = slog.LevelWarn
	}
	middleware.GetLoggerFromCtx(ctx).Log(ctx, level, "Ledger event",
		slog.String("event", string(event.EventType())),
		slog.Uint64("business_id", event.Business()),
		slog.Any("payload", event))
}
