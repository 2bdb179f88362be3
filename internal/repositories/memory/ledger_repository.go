// Package memory provides an in-process LedgerRepository. It keeps what it is
// given so a service restored from it sees the same ledger, which makes it
// useful for tests and for runs without a database.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
)

// LedgerRepository implements portsrepo.LedgerRepositoryFacade in memory.
type LedgerRepository struct {
	mu           sync.RWMutex
	businesses   []domain.Business
	owners       map[string]uint64
	transactions map[uint64][]domain.Transaction
	states       map[uint64]domain.FinancialState
	projects     map[uint64][]domain.Project
}

// NewLedgerRepository creates an empty repository.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{
		owners:       make(map[string]uint64),
		transactions: make(map[uint64][]domain.Transaction),
		states:       make(map[uint64]domain.FinancialState),
		projects:     make(map[uint64][]domain.Project),
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*LedgerRepository)(nil)

func (r *LedgerRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.owners[business.Owner]; ok {
		return fmt.Errorf("%w: owner %q", apperrors.ErrDuplicate, business.Owner)
	}
	r.owners[business.Owner] = business.BusinessID
	r.businesses = append(r.businesses, business)
	return nil
}

func (r *LedgerRepository) UpdateBusiness(ctx context.Context, business domain.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.businesses {
		if b.BusinessID == business.BusinessID {
			r.businesses[i].Name = business.Name
			r.businesses[i].Type = business.Type
			r.businesses[i].LastUpdatedAt = business.LastUpdatedAt
			return nil
		}
	}
	return fmt.Errorf("%w: business %d", apperrors.ErrNotFound, business.BusinessID)
}

func (r *LedgerRepository) AppendTransaction(ctx context.Context, txn domain.Transaction, state domain.FinancialState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions[txn.BusinessID] = append(r.transactions[txn.BusinessID], txn)
	r.states[txn.BusinessID] = state
	return nil
}

func (r *LedgerRepository) SaveProject(ctx context.Context, project domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[project.BusinessID] = append(r.projects[project.BusinessID], project)
	return nil
}

func (r *LedgerRepository) UpdateProjectStatus(ctx context.Context, project domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.projects[project.BusinessID]
	if project.ProjectID >= uint64(len(list)) {
		return fmt.Errorf("%w: project %d of business %d", apperrors.ErrNotFound, project.ProjectID, project.BusinessID)
	}
	list[project.ProjectID].Status = project.Status
	list[project.ProjectID].LastUpdatedAt = project.LastUpdatedAt
	return nil
}

// LoadSnapshot returns a deep copy of everything stored so far.
func (r *LedgerRepository) LoadSnapshot(ctx context.Context) (*portsrepo.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := &portsrepo.Snapshot{
		Businesses:   append([]domain.Business(nil), r.businesses...),
		Transactions: make(map[uint64][]domain.Transaction, len(r.transactions)),
		States:       make(map[uint64]domain.FinancialState, len(r.states)),
		Projects:     make(map[uint64][]domain.Project, len(r.projects)),
	}
	for id, txns := range r.transactions {
		snap.Transactions[id] = append([]domain.Transaction(nil), txns...)
	}
	for id, state := range r.states {
		snap.States[id] = state
	}
	for id, projects := range r.projects {
		snap.Projects[id] = append([]domain.Project(nil), projects...)
	}
	return snap, nil
}

// SetState overwrites the stored financial state of a business.
func (r *LedgerRepository) SetState(businessID uint64, state domain.FinancialState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[businessID] = state
}
