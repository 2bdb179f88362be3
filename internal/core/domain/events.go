package domain

import "time"

// EventType names a ledger notification.
type EventType string

const (
	EventAccountCreated       EventType = "AccountCreated"
	EventBusinessUpdated      EventType = "BusinessUpdated"
	EventTransactionRecorded  EventType = "TransactionRecorded"
	EventLowBalanceAlert      EventType = "LowBalanceAlert"
	EventOverspendingAlert    EventType = "OverspendingAlert"
	EventProjectAdded         EventType = "ProjectAdded"
	EventProjectStatusUpdated EventType = "ProjectStatusUpdated"
	EventProjectOverdue       EventType = "ProjectOverdue"
	EventLedgerPaused         EventType = "LedgerPaused"
	EventLedgerUnpaused       EventType = "LedgerUnpaused"
)

// Event is a fire-and-forget observation emitted after a successful operation.
type Event interface {
	EventType() EventType
	// Business returns the id of the business concerned, 0 for ledger-wide events.
	Business() uint64
	OccurredAt() time.Time
}

type AccountCreated struct {
	BusinessID uint64    `json:"businessID"`
	Owner      string    `json:"owner"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
}

type BusinessUpdated struct {
	BusinessID uint64    `json:"businessID"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
}

type TransactionRecorded struct {
	BusinessID    uint64          `json:"businessID"`
	TransactionID uint64          `json:"transactionID"`
	Amount        uint64          `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Kind          TransactionKind `json:"kind"`
	Timestamp     time.Time       `json:"timestamp"`
}

type LowBalanceAlert struct {
	BusinessID uint64    `json:"businessID"`
	Balance    uint64    `json:"balance"`
	Timestamp  time.Time `json:"timestamp"`
}

type OverspendingAlert struct {
	BusinessID uint64    `json:"businessID"`
	Amount     uint64    `json:"amount"`
	Timestamp  time.Time `json:"timestamp"`
}

type ProjectAdded struct {
	BusinessID  uint64        `json:"businessID"`
	ProjectID   uint64        `json:"projectID"`
	ClientName  string        `json:"clientName"`
	ProjectName string        `json:"projectName"`
	Amount      uint64        `json:"amount"`
	Deadline    time.Time     `json:"deadline"`
	Status      ProjectStatus `json:"status"`
	Timestamp   time.Time     `json:"timestamp"`
}

type ProjectStatusUpdated struct {
	BusinessID uint64        `json:"businessID"`
	ProjectID  uint64        `json:"projectID"`
	NewStatus  ProjectStatus `json:"newStatus"`
	Timestamp  time.Time     `json:"timestamp"`
}

type ProjectOverdueAlert struct {
	BusinessID uint64    `json:"businessID"`
	ProjectID  uint64    `json:"projectID"`
	Timestamp  time.Time `json:"timestamp"`
}

// LedgerPaused and LedgerUnpaused record admin actions. They carry no business.
type LedgerPaused struct {
	Admin     string    `json:"admin"`
	Timestamp time.Time `json:"timestamp"`
}

type LedgerUnpaused struct {
	Admin     string    `json:"admin"`
	Timestamp time.Time `json:"timestamp"`
}

func (e AccountCreated) EventType() EventType { return EventAccountCreated }
func (e BusinessUpdated) EventType() EventType { return EventBusinessUpdated }
func (e TransactionRecorded) EventType() EventType { return EventTransactionRecorded }
func (e LowBalanceAlert) EventType() EventType { return EventLowBalanceAlert }
func (e OverspendingAlert) EventType() EventType { return EventOverspendingAlert }
func (e ProjectAdded) EventType() EventType { return EventProjectAdded }
func (e ProjectStatusUpdated) EventType() EventType { return EventProjectStatusUpdated }
func (e ProjectOverdueAlert) EventType() EventType { return EventProjectOverdue }
func (e LedgerPaused) EventType() EventType { return EventLedgerPaused }
func (e LedgerUnpaused) EventType() EventType { return EventLedgerUnpaused }

func (e AccountCreated) Business() uint64 { return e.BusinessID }
func (e BusinessUpdated) Business() uint64 { return e.BusinessID }
func (e TransactionRecorded) Business() uint64 { return e.BusinessID }
func (e LowBalanceAlert) Business() uint64 { return e.BusinessID }
func (e OverspendingAlert) Business() uint64 { return e.BusinessID }
func (e ProjectAdded) Business() uint64 { return e.BusinessID }
func (e ProjectStatusUpdated) Business() uint64 { return e.BusinessID }
func (e ProjectOverdueAlert) Business() uint64 { return e.BusinessID }
func (e LedgerPaused) Business() uint64 { return 0 }
func (e LedgerUnpaused) Business() uint64 { return 0 }

func (e AccountCreated) OccurredAt() time.Time { return e.Timestamp }
func (e BusinessUpdated) OccurredAt() time.Time { return e.Timestamp }
func (e TransactionRecorded) OccurredAt() time.Time { return e.Timestamp }
func (e LowBalanceAlert) OccurredAt() time.Time { return e.Timestamp }
func (e OverspendingAlert) OccurredAt() time.Time { return e.Timestamp }
func (e ProjectAdded) OccurredAt() time.Time { return e.Timestamp }
func (e ProjectStatusUpdated) OccurredAt() time.Time { return e.Timestamp }
func (e ProjectOverdueAlert) OccurredAt() time.Time { return e.Timestamp }
func (e LedgerPaused) OccurredAt() time.Time { return e.Timestamp }
func (e LedgerUnpaused) OccurredAt() time.Time { return e.Timestamp }
