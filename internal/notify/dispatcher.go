package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SscSPs/bizledger/internal/core/domain"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/middleware"
)

type queued struct {
	ctx   context.Context
	event domain.Event
}

// Dispatcher hands events to a sink on a background goroutine. Notify never
// blocks: when the buffer is full the event is dropped with a warning.
type Dispatcher struct {
	sink portssvc.Notifier

	mu     sync.RWMutex
	closed bool
	queue  chan queued
	done   chan struct{}
}

// NewDispatcher starts a dispatcher with room for buffer pending events.
func NewDispatcher(sink portssvc.Notifier, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 1
	}
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan queued, buffer),
		done:  make(chan struct{}),
	}
	go d.run()
	return d
}

var _ portssvc.Notifier = (*Dispatcher)(nil)

func (d *Dispatcher) run() {
	defer close(d.done)
	for q := range d.queue {
		d.sink.Notify(q.ctx, q.event)
	}
}

// Notify queues the event. The request context is detached from its
// cancellation but keeps its values, including the request logger.
func (d *Dispatcher) Notify(ctx context.Context, event domain.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	logger := middleware.GetLoggerFromCtx(ctx)
	if d.closed {
		logger.Warn("Dispatcher closed, dropping event", slog.String("event", string(event.EventType())))
		return
	}
	select {
	case d.queue <- queued{ctx: context.WithoutCancel(ctx), event: event}:
	default:
		logger.Warn("Notification buffer full, dropping event",
			slog.String("event", string(event.EventType())),
			slog.Uint64("business_id", event.Business()))
	}
}

// Close stops accepting events and waits until the queue is drained or ctx ends.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
