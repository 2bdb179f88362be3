package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
)

// BusinessPersister is called with the record about to be committed.
// Returning an error aborts the operation.
type BusinessPersister func(domain.Business) error

// Registry maps owner identities to businesses and allocates business ids.
type Registry struct {
	mu      sync.RWMutex
	lastID  uint64
	byOwner map[string]uint64
	byID    map[uint64]domain.Business
}

// NewRegistry returns an empty registry. The first issued id is 1.
func NewRegistry() *Registry {
	return &Registry{
		byOwner: make(map[string]uint64),
		byID:    make(map[uint64]domain.Business),
	}
}

// Register creates the single business of owner. The id is only consumed
// once persist succeeds.
func (r *Registry) Register(owner, name, typ string, now time.Time, persist BusinessPersister) (domain.Business, error) {
	if owner == "" {
		return domain.Business{}, fmt.Errorf("%w: owner identity must not be empty", apperrors.ErrInvalidInput)
	}
	name, err := RequireText("name", name)
	if err != nil {
		return domain.Business{}, err
	}
	typ, err = RequireText("type", typ)
	if err != nil {
		return domain.Business{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byOwner[owner]; ok {
		return domain.Business{}, fmt.Errorf("%w: business %d", apperrors.ErrDuplicateAccount, id)
	}

	b := domain.Business{
		BusinessID:  r.lastID + 1,
		Owner:       owner,
		Name:        name,
		Type:        typ,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if persist != nil {
		if err := persist(b); err != nil {
			return domain.Business{}, err
		}
	}

	r.lastID = b.BusinessID
	r.byOwner[owner] = b.BusinessID
	r.byID[b.BusinessID] = b
	return b, nil
}

// Update changes the name and type of owner's business.
func (r *Registry) Update(owner, name, typ string, now time.Time, persist BusinessPersister) (domain.Business, error) {
	name, err := RequireText("name", name)
	if err != nil {
		return domain.Business{}, err
	}
	typ, err = RequireText("type", typ)
	if err != nil {
		return domain.Business{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byOwner[owner]
	if !ok {
		return domain.Business{}, apperrors.ErrNoAccount
	}
	b := r.byID[id]
	b.Name = name
	b.Type = typ
	b.LastUpdatedAt = now
	if persist != nil {
		if err := persist(b); err != nil {
			return domain.Business{}, err
		}
	}
	r.byID[id] = b
	return b, nil
}

// Resolve returns the business id owned by owner.
func (r *Registry) Resolve(owner string) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byOwner[owner]
	if !ok {
		return 0, apperrors.ErrNoAccount
	}
	return id, nil
}

// ResolveOwner returns the owner identity of a business.
func (r *Registry) ResolveOwner(businessID uint64) (string, error) {
	b, err := r.Business(businessID)
	if err != nil {
		return "", err
	}
	return b.Owner, nil
}

// Business returns a copy of the business record.
func (r *Registry) Business(businessID uint64) (domain.Business, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.byID[businessID]
	if !ok {
		return domain.Business{}, fmt.Errorf("%w: %d", apperrors.ErrInvalidBusinessID, businessID)
	}
	return b, nil
}

// Count returns the number of registered businesses.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Restore loads persisted businesses into an empty registry.
func (r *Registry) Restore(businesses []domain.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.byID) > 0 {
		return fmt.Errorf("registry already holds %d businesses", len(r.byID))
	}
	for _, b := range businesses {
		if b.BusinessID == 0 || b.Owner == "" {
			return fmt.Errorf("invalid persisted business %+v", b)
		}
		if _, dup := r.byID[b.BusinessID]; dup {
			return fmt.Errorf("duplicate persisted business id %d", b.BusinessID)
		}
		if _, dup := r.byOwner[b.Owner]; dup {
			return fmt.Errorf("owner %q persisted with more than one business", b.Owner)
		}
		r.byID[b.BusinessID] = b
		r.byOwner[b.Owner] = b.BusinessID
		if b.BusinessID > r.lastID {
			r.lastID = b.BusinessID
		}
	}
	return nil
}
