// Package notify delivers ledger events to external sinks. Sinks never
// report failures back to the ledger; they log and move on.
package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
)

// Envelope is the wire form of an event.
type Envelope struct {
	Type       domain.EventType `json:"type"`
	BusinessID uint64           `json:"businessID,omitempty"`
	OccurredAt time.Time        `json:"occurredAt"`
	Payload    domain.Event     `json:"payload"`
}

// NewEnvelope wraps an event.
func NewEnvelope(e domain.Event) Envelope {
	return Envelope{
		Type:       e.EventType(),
		BusinessID: e.Business(),
		OccurredAt: e.OccurredAt(),
		Payload:    e,
	}
}

// Properties flattens the event payload into a map, as analytics sinks expect.
func Properties(e domain.Event) (map[string]any, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", e.EventType(), err)
	}
	props := make(map[string]any)
	if err := json.Unmarshal(raw, &props); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", e.EventType(), err)
	}
	return props, nil
}
