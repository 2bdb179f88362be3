package notify

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
)

// Multi fans an event out to every sink in order. Nil sinks are skipped.
type Multi []portssvc.Notifier

func (m Multi) Notify(ctx context.Context, event domain.Event) {
	for _, n := range m {
		if n != nil {
			n.Notify(ctx, event)
		}
	}
}
