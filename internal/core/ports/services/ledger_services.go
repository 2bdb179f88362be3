package services

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/dto"
)

// BusinessSvc covers registration and business lookups.
type BusinessSvc interface {
	// CreateAccount registers the single business of the caller.
	CreateAccount(ctx context.Context, callerID string, req dto.CreateBusinessRequest) (*domain.Business, error)

	// UpdateBusinessInfo renames or retypes the caller's business.
	UpdateBusinessInfo(ctx context.Context, callerID string, req dto.UpdateBusinessRequest) (*domain.Business, error)

	// GetBusinessInfo returns any business by id. Not access restricted.
	GetBusinessInfo(ctx context.Context, businessID uint64) (*domain.Business, error)

	// GetMyBusiness returns the business owned by the caller.
	GetMyBusiness(ctx context.Context, callerID string) (*domain.Business, error)
}

// TransactionSvc covers the ledger of a business.
type TransactionSvc interface {
	// RecordTransaction appends a sale, purchase or expense to the caller's ledger.
	RecordTransaction(ctx context.Context, callerID string, req dto.RecordTransactionRequest) (*domain.Transaction, error)

	// GetFinancialSummary returns the totals of any business.
	GetFinancialSummary(ctx context.Context, businessID uint64) (*domain.FinancialSummary, error)

	// GetTransactionHistory returns up to limit entries, most recent first.
	GetTransactionHistory(ctx context.Context, businessID uint64, limit int) ([]domain.Transaction, error)
}

// ProjectSvc covers client projects.
type ProjectSvc interface {
	// AddProject creates an ACTIVE project for the caller's business.
	AddProject(ctx context.Context, callerID string, req dto.AddProjectRequest) (*domain.Project, error)

	// UpdateProjectStatus changes the status of one of the caller's projects.
	// The returned flag is true when ACTIVE was requested past the deadline
	// and OVERDUE was stored instead.
	UpdateProjectStatus(ctx context.Context, callerID string, projectID uint64, req dto.UpdateProjectStatusRequest) (*domain.Project, bool, error)

	GetProjects(ctx context.Context, businessID uint64) ([]domain.Project, error)
	GetOverdueProjects(ctx context.Context, businessID uint64) ([]domain.Project, error)
	GetProject(ctx context.Context, businessID uint64, projectID uint64) (*domain.Project, error)
}

// AdminSvc covers administrative controls.
type AdminSvc interface {
	// AdminPause blocks mutating operations. Only the admin identity may call it.
	AdminPause(ctx context.Context, callerID string) error

	// AdminUnpause lifts a pause.
	AdminUnpause(ctx context.Context, callerID string) error

	IsPaused() bool
}

// LedgerLoaderSvc rebuilds in-memory state from persistence.
type LedgerLoaderSvc interface {
	Restore(ctx context.Context) error
}

// LedgerSvcFacade combines all ledger service interfaces
// This is a facade for clients that need access to all operations
type LedgerSvcFacade interface {
	BusinessSvc
	TransactionSvc
	ProjectSvc
	AdminSvc
	LedgerLoaderSvc
}
