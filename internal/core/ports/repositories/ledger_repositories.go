package repositories

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
)

// BusinessWriter persists business records.
type BusinessWriter interface {
	// SaveBusiness inserts a newly registered business.
	SaveBusiness(ctx context.Context, business domain.Business) error

	// UpdateBusiness stores the mutable fields (name, type, updated timestamp).
	UpdateBusiness(ctx context.Context, business domain.Business) error
}

// TransactionWriter persists ledger entries.
type TransactionWriter interface {
	// AppendTransaction stores the entry and the financial state it produces.
	// Both writes must succeed or fail together.
	AppendTransaction(ctx context.Context, txn domain.Transaction, state domain.FinancialState) error
}

// ProjectWriter persists projects.
type ProjectWriter interface {
	// SaveProject inserts a new project.
	SaveProject(ctx context.Context, project domain.Project) error

	// UpdateProjectStatus stores the status and updated timestamp of a project.
	UpdateProjectStatus(ctx context.Context, project domain.Project) error
}

// SnapshotReader loads everything needed to rebuild the in-memory ledger.
type SnapshotReader interface {
	LoadSnapshot(ctx context.Context) (*Snapshot, error)
}

// Snapshot is the full persisted ledger. Slices are ordered by id.
type Snapshot struct {
	Businesses   []domain.Business
	Transactions map[uint64][]domain.Transaction
	States       map[uint64]domain.FinancialState
	Projects     map[uint64][]domain.Project
}

// LedgerRepositoryFacade combines all ledger persistence interfaces.
type LedgerRepositoryFacade interface {
	BusinessWriter
	TransactionWriter
	ProjectWriter
	SnapshotReader
}
