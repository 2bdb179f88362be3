package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
)

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	repo          portsrepo.LedgerRepositoryFacade
	notifier      portssvc.Notifier
	limits        ledger.Limits
	adminIdentity string
	now           func() time.Time

	// gate is held for reading by every call and for writing by pause
	// toggles and Restore, so a pause never overlaps a running mutation.
	gate     sync.RWMutex
	paused   bool
	registry *ledger.Registry
	entries  *ledger.EntryStore
	projects *ledger.ProjectStore
}

// ServiceOption is a functional option for configuring the ledger service
type ServiceOption func(*ledgerService)

// WithNotifier sets the sink for ledger events
func WithNotifier(n portssvc.Notifier) ServiceOption {
	return func(s *ledgerService) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithLimits sets amount bounds and alert thresholds
func WithLimits(limits ledger.Limits) ServiceOption {
	return func(s *ledgerService) {
		s.limits = limits
	}
}

// WithAdminIdentity sets the only caller allowed to pause the ledger
func WithAdminIdentity(identity string) ServiceOption {
	return func(s *ledgerService) {
		s.adminIdentity = identity
	}
}

// WithClock replaces time.Now, mostly for tests
func WithClock(now func() time.Time) ServiceOption {
	return func(s *ledgerService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(repo portsrepo.LedgerRepositoryFacade, options ...ServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		repo:     repo,
		notifier: portssvc.NotifierFunc(func(context.Context, domain.Event) {}),
		limits: ledger.Limits{
			MaxAmount:             ledger.DefaultMaxAmount,
			LowBalanceThreshold:   100,
			OverspendingThreshold: 1000,
		},
		now: time.Now,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	svc.registry = ledger.NewRegistry()
	svc.entries = ledger.NewEntryStore(svc.limits)
	svc.projects = ledger.NewProjectStore()
	return svc
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// beginMutation takes the gate for a state-changing call. The returned
// function releases it.
func (s *ledgerService) beginMutation() (func(), error) {
	s.gate.RLock()
	if s.paused {
		s.gate.RUnlock()
		return nil, apperrors.ErrPaused
	}
	return s.gate.RUnlock, nil
}

func (s *ledgerService) emit(ctx context.Context, events ...domain.Event) {
	for _, e := range events {
		s.notifier.Notify(ctx, e)
	}
}

// logFailure logs rejected requests at debug level and everything else as an error.
func (s *ledgerService) logFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		s.LogError(ctx, err, msg, keyvals...)
		return
	}
	s.LogDebug(ctx, msg, append([]any{slog.String("reason", err.Error())}, keyvals...)...)
}

// --- BusinessSvc ---

func (s *ledgerService) CreateAccount(ctx context.Context, callerID string, req dto.CreateBusinessRequest) (*domain.Business, error) {
	done, err := s.beginMutation()
	if err != nil {
		return nil, err
	}
	defer done()

	b, err := s.registry.Register(callerID, req.Name, req.Type, s.now(), func(b domain.Business) error {
		return s.repo.SaveBusiness(ctx, b)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to create business account", slog.String("owner", callerID))
		return nil, err
	}

	s.LogInfo(ctx, "Business account created", slog.Uint64("business_id", b.BusinessID))
	s.emit(ctx, domain.AccountCreated{
		BusinessID: b.BusinessID,
		Owner:      b.Owner,
		Name:       b.Name,
		Type:       b.Type,
		Timestamp:  b.CreatedAt,
	})
	return &b, nil
}

func (s *ledgerService) UpdateBusinessInfo(ctx context.Context, callerID string, req dto.UpdateBusinessRequest) (*domain.Business, error) {
	done, err := s.beginMutation()
	if err != nil {
		return nil, err
	}
	defer done()

	b, err := s.registry.Update(callerID, req.Name, req.Type, s.now(), func(b domain.Business) error {
		return s.repo.UpdateBusiness(ctx, b)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to update business", slog.String("owner", callerID))
		return nil, err
	}

	s.LogInfo(ctx, "Business updated", slog.Uint64("business_id", b.BusinessID))
	s.emit(ctx, domain.BusinessUpdated{
		BusinessID: b.BusinessID,
		Name:       b.Name,
		Type:       b.Type,
		Timestamp:  b.LastUpdatedAt,
	})
	return &b, nil
}

func (s *ledgerService) GetBusinessInfo(ctx context.Context, businessID uint64) (*domain.Business, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()

	b, err := s.registry.Business(businessID)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *ledgerService) GetMyBusiness(ctx context.Context, callerID string) (*domain.Business, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()

	id, err := s.registry.Resolve(callerID)
	if err != nil {
		return nil, err
	}
	b, err := s.registry.Business(id)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// --- TransactionSvc ---

func (s *ledgerService) RecordTransaction(ctx context.Context, callerID string, req dto.RecordTransactionRequest) (*domain.Transaction, error) {
	done, err := s.beginMutation()
	if err != nil {
		return nil, err
	}
	defer done()

	businessID, err := s.registry.Resolve(callerID)
	if err != nil {
		return nil, err
	}
	if err := ledger.ValidateAmount(req.Amount, s.limits.MaxAmount); err != nil {
		return nil, err
	}
	if _, err := ledger.RequireText("category", req.Category); err != nil {
		return nil, err
	}

	res, err := s.entries.Record(businessID, req.Amount, req.Category, req.Description, req.Kind, s.now(),
		func(txn domain.Transaction, state domain.FinancialState) error {
			return s.repo.AppendTransaction(ctx, txn, state)
		})
	if err != nil {
		s.logFailure(ctx, err, "Failed to record transaction",
			slog.Uint64("business_id", businessID), slog.String("kind", string(req.Kind)))
		return nil, err
	}

	txn := res.Transaction
	s.LogInfo(ctx, "Transaction recorded",
		slog.Uint64("business_id", businessID),
		slog.Uint64("transaction_id", txn.TransactionID),
		slog.Uint64("balance", res.State.Balance))

	events := []domain.Event{domain.TransactionRecorded{
		BusinessID:    businessID,
		TransactionID: txn.TransactionID,
		Amount:        txn.Amount,
		Category:      txn.Category,
		Description:   txn.Description,
		Kind:          txn.Kind,
		Timestamp:     txn.Timestamp,
	}}
	if res.LowBalance {
		events = append(events, domain.LowBalanceAlert{BusinessID: businessID, Balance: res.State.Balance, Timestamp: txn.Timestamp})
	}
	if res.Overspending {
		events = append(events, domain.OverspendingAlert{BusinessID: businessID, Amount: txn.Amount, Timestamp: txn.Timestamp})
	}
	s.emit(ctx, events...)
	return &txn, nil
}

func (s *ledgerService) GetFinancialSummary(ctx context.Context, businessID uint64) (*domain.FinancialSummary, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()

	if _, err := s.registry.Business(businessID); err != nil {
		return nil, err
	}
	summary := s.entries.Summary(businessID)
	return &summary, nil
}

func (s *ledgerService) GetTransactionHistory(ctx context.Context, businessID uint64, limit int) ([]domain.Transaction, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()

	if _, err := s.registry.Business(businessID); err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", apperrors.ErrInvalidInput)
	}
	return s.entries.History(businessID, limit), nil
}

// --- ProjectSvc ---

func (s *ledgerService) AddProject(ctx context.Context, callerID string, req dto.AddProjectRequest) (*domain.Project, error) {
	done, err := s.beginMutation()
	if err != nil {
		return nil, err
	}
	defer done()

	businessID, err := s.registry.Resolve(callerID)
	if err != nil {
		return nil, err
	}
	if _, err := ledger.RequireText("client name", req.ClientName); err != nil {
		return nil, err
	}
	if _, err := ledger.RequireText("project name", req.ProjectName); err != nil {
		return nil, err
	}
	if err := ledger.ValidateAmount(req.Amount, s.limits.MaxAmount); err != nil {
		return nil, err
	}
	now := s.now()
	if err := ledger.ValidateDeadline(req.Deadline, now); err != nil {
		return nil, err
	}

	p, err := s.projects.Add(businessID, req.ClientName, req.ProjectName, req.Amount, req.Deadline, now, func(p domain.Project) error {
		return s.repo.SaveProject(ctx, p)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to add project", slog.Uint64("business_id", businessID))
		return nil, err
	}

	s.LogInfo(ctx, "Project added", slog.Uint64("business_id", businessID), slog.Uint64("project_id", p.ProjectID))
	s.emit(ctx, domain.ProjectAdded{
		BusinessID:  businessID,
		ProjectID:   p.ProjectID,
		ClientName:  p.ClientName,
		ProjectName: p.ProjectName,
		Amount:      p.Amount,
		Deadline:    p.Deadline,
		Status:      p.Status,
		Timestamp:   p.CreatedAt,
	})
	return &p, nil
}

func (s *ledgerService) UpdateProjectStatus(ctx context.Context, callerID string, projectID uint64, req dto.UpdateProjectStatusRequest) (*domain.Project, bool, error) {
	done, err := s.beginMutation()
	if err != nil {
		return nil, false, err
	}
	defer done()

	businessID, err := s.registry.Resolve(callerID)
	if err != nil {
		return nil, false, err
	}

	change, err := s.projects.UpdateStatus(businessID, projectID, req.Status, s.now(), func(p domain.Project) error {
		return s.repo.UpdateProjectStatus(ctx, p)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to update project status",
			slog.Uint64("business_id", businessID), slog.Uint64("project_id", projectID))
		return nil, false, err
	}

	p := change.Project
	s.LogInfo(ctx, "Project status updated",
		slog.Uint64("business_id", businessID),
		slog.Uint64("project_id", p.ProjectID),
		slog.String("status", string(p.Status)))

	events := []domain.Event{domain.ProjectStatusUpdated{
		BusinessID: businessID,
		ProjectID:  p.ProjectID,
		NewStatus:  p.Status,
		Timestamp:  p.LastUpdatedAt,
	}}
	if change.MarkedOverdue {
		events = append(events, domain.ProjectOverdueAlert{BusinessID: businessID, ProjectID: p.ProjectID, Timestamp: p.LastUpdatedAt})
	}
	s.emit(ctx, events...)
	return &p, change.MarkedOverdue, nil
}

func (s *ledgerService) GetProjects(ctx context.Context, businessID uint64) ([]domain.Project, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()

	if _, err := s.registry.Business(businessID); err != nil {
		return nil, err
	}
	return s.projects.Projects(businessID), nil
}

func (s *ledgerService) GetOverdueProjects(ctx context.Context, businessID uint64) ([]domain.Project, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()

	if _, err := s.registry.Business(businessID); err != nil {
		return nil, err
	}
	return s.projects.Overdue(businessID, s.now()), nil
}

func (s *ledgerService) GetProject(ctx context.Context, businessID uint64, projectID uint64) (*domain.Project, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()

	if _, err := s.registry.Business(businessID); err != nil {
		return nil, err
	}
	p, err := s.projects.Project(businessID, projectID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// --- AdminSvc ---

func (s *ledgerService) authorizeAdmin(ctx context.Context, callerID string) error {
	if s.adminIdentity == "" || callerID != s.adminIdentity {
		s.LogWarn(ctx, "Rejected admin call", slog.String("caller", callerID))
		return apperrors.ErrUnauthorized
	}
	return nil
}

func (s *ledgerService) AdminPause(ctx context.Context, callerID string) error {
	return s.setPaused(ctx, callerID, true)
}

func (s *ledgerService) AdminUnpause(ctx context.Context, callerID string) error {
	return s.setPaused(ctx, callerID, false)
}

func (s *ledgerService) setPaused(ctx context.Context, callerID string, paused bool) error {
	if err := s.authorizeAdmin(ctx, callerID); err != nil {
		return err
	}

	s.gate.Lock()
	s.paused = paused
	s.gate.Unlock()

	now := s.now()
	if paused {
		s.LogInfo(ctx, "Ledger paused", slog.String("admin", callerID))
		s.emit(ctx, domain.LedgerPaused{Admin: callerID, Timestamp: now})
	} else {
		s.LogInfo(ctx, "Ledger unpaused", slog.String("admin", callerID))
		s.emit(ctx, domain.LedgerUnpaused{Admin: callerID, Timestamp: now})
	}
	return nil
}

func (s *ledgerService) IsPaused() bool {
	s.gate.RLock()
	defer s.gate.RUnlock()
	return s.paused
}

// --- LedgerLoaderSvc ---

// Restore rebuilds the stores from the persisted snapshot. The current state
// is only replaced once the whole snapshot has been loaded and cross-checked.
func (s *ledgerService) Restore(ctx context.Context) error {
	snap, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger snapshot")
		return err
	}

	registry := ledger.NewRegistry()
	entries := ledger.NewEntryStore(s.limits)
	projects := ledger.NewProjectStore()

	if err := registry.Restore(snap.Businesses); err != nil {
		return fmt.Errorf("restoring businesses: %w", err)
	}
	for id := range snap.Transactions {
		if _, err := registry.Business(id); err != nil {
			return fmt.Errorf("snapshot holds transactions of unknown business %d", id)
		}
	}
	for id := range snap.Projects {
		if _, err := registry.Business(id); err != nil {
			return fmt.Errorf("snapshot holds projects of unknown business %d", id)
		}
	}

	var txnCount, projectCount int
	for _, b := range snap.Businesses {
		txns := snap.Transactions[b.BusinessID]
		state, err := entries.Restore(b.BusinessID, txns)
		if err != nil {
			return fmt.Errorf("restoring ledger: %w", err)
		}
		if stored, ok := snap.States[b.BusinessID]; ok && stored != state {
			return fmt.Errorf("business %d: stored financial state %+v disagrees with replayed %+v", b.BusinessID, stored, state)
		} else if !ok && len(txns) > 0 {
			return fmt.Errorf("business %d: %d transactions but no stored financial state", b.BusinessID, len(txns))
		}
		if err := projects.Restore(b.BusinessID, snap.Projects[b.BusinessID]); err != nil {
			return fmt.Errorf("restoring projects: %w", err)
		}
		txnCount += len(txns)
		projectCount += len(snap.Projects[b.BusinessID])
	}

	s.gate.Lock()
	s.registry = registry
	s.entries = entries
	s.projects = projects
	s.gate.Unlock()

	s.LogInfo(ctx, "Ledger restored",
		slog.Int("businesses", len(snap.Businesses)),
		slog.Int("transactions", txnCount),
		slog.Int("projects", projectCount))
	return nil
}
