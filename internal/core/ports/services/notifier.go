package services

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
)

// Notifier receives ledger events. Implementations must not block the caller
// for long and must not fail the operation that produced the event.
type Notifier interface {
	Notify(ctx context.Context, event domain.Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, event domain.Event)

func (f NotifierFunc) Notify(ctx context.Context, event domain.Event) {
	f(ctx, event)
}
