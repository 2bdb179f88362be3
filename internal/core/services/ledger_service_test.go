package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/core/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/repositories/memory"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	day   = 24 * time.Hour
	admin = "ledger-admin"
)

// fakeClock is a settable time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// recordingNotifier keeps every event it receives.
type recordingNotifier struct {
	mu     sync.Mutex
	events []domain.Event
}

func (n *recordingNotifier) Notify(_ context.Context, e domain.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
}

func (n *recordingNotifier) Types() []domain.EventType {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]domain.EventType, len(n.events))
	for i, e := range n.events {
		out[i] = e.EventType()
	}
	return out
}

func (n *recordingNotifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = nil
}

// MockLedgerRepository is a mock type for the LedgerRepositoryFacade interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	return m.Called(ctx, business).Error(0)
}

func (m *MockLedgerRepository) UpdateBusiness(ctx context.Context, business domain.Business) error {
	return m.Called(ctx, business).Error(0)
}

func (m *MockLedgerRepository) AppendTransaction(ctx context.Context, txn domain.Transaction, state domain.FinancialState) error {
	return m.Called(ctx, txn, state).Error(0)
}

func (m *MockLedgerRepository) SaveProject(ctx context.Context, project domain.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *MockLedgerRepository) UpdateProjectStatus(ctx context.Context, project domain.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *MockLedgerRepository) LoadSnapshot(ctx context.Context) (*portsrepo.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.Snapshot), args.Error(1)
}

type LedgerServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	clock    *fakeClock
	notifier *recordingNotifier
	repo     *memory.LedgerRepository
	svc      portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.clock = &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	suite.notifier = &recordingNotifier{}
	suite.repo = memory.NewLedgerRepository()
	suite.svc = suite.newService(suite.repo)
}

func (suite *LedgerServiceTestSuite) newService(repo portsrepo.LedgerRepositoryFacade) portssvc.LedgerSvcFacade {
	return services.NewLedgerService(repo,
		services.WithClock(suite.clock.Now),
		services.WithNotifier(suite.notifier),
		services.WithAdminIdentity(admin),
		services.WithLimits(ledger.Limits{LowBalanceThreshold: 100, OverspendingThreshold: 1000}),
	)
}

func (suite *LedgerServiceTestSuite) createAccount(owner string) *domain.Business {
	b, err := suite.svc.CreateAccount(suite.ctx, owner, dto.CreateBusinessRequest{Name: owner + " Co", Type: "retail"})
	suite.Require().NoError(err)
	return b
}

func (suite *LedgerServiceTestSuite) record(owner string, amount uint64, kind domain.TransactionKind) (*domain.Transaction, error) {
	return suite.svc.RecordTransaction(suite.ctx, owner, dto.RecordTransactionRequest{
		Amount: amount, Category: "general", Kind: kind,
	})
}

func (suite *LedgerServiceTestSuite) addProject(owner string, deadline time.Time) (*domain.Project, error) {
	return suite.svc.AddProject(suite.ctx, owner, dto.AddProjectRequest{
		ClientName: "Acme", ProjectName: "Website", Amount: 2500, Deadline: deadline,
	})
}

func (suite *LedgerServiceTestSuite) summary(businessID uint64) *domain.FinancialSummary {
	s, err := suite.svc.GetFinancialSummary(suite.ctx, businessID)
	suite.Require().NoError(err)
	return s
}

func (suite *LedgerServiceTestSuite) TestCreateAccount() {
	first := suite.createAccount("alice")
	second := suite.createAccount("bob")
	suite.Equal(uint64(1), first.BusinessID)
	suite.Equal(uint64(2), second.BusinessID)
	suite.Equal("alice", first.Owner)

	_, err := suite.svc.CreateAccount(suite.ctx, "alice", dto.CreateBusinessRequest{Name: "Again", Type: "x"})
	suite.ErrorIs(err, apperrors.ErrDuplicateAccount)

	_, err = suite.svc.CreateAccount(suite.ctx, "carol", dto.CreateBusinessRequest{Name: "  ", Type: "x"})
	suite.ErrorIs(err, apperrors.ErrInvalidInput)

	mine, err := suite.svc.GetMyBusiness(suite.ctx, "bob")
	suite.Require().NoError(err)
	suite.Equal(second, mine)

	_, err = suite.svc.GetMyBusiness(suite.ctx, "carol")
	suite.ErrorIs(err, apperrors.ErrNoAccount)

	suite.Equal([]domain.EventType{domain.EventAccountCreated, domain.EventAccountCreated}, suite.notifier.Types())
}

func (suite *LedgerServiceTestSuite) TestConcurrentCreateAccountSameOwner() {
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.svc.CreateAccount(suite.ctx, "alice", dto.CreateBusinessRequest{Name: "A", Type: "retail"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, dup int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, apperrors.ErrDuplicateAccount):
			dup++
		}
	}
	suite.Equal(1, ok)
	suite.Equal(15, dup)
}

func (suite *LedgerServiceTestSuite) TestUpdateBusinessInfo() {
	b := suite.createAccount("alice")
	suite.clock.Advance(time.Hour)

	updated, err := suite.svc.UpdateBusinessInfo(suite.ctx, "alice", dto.UpdateBusinessRequest{Name: " Alice Bakery ", Type: "bakery"})
	suite.Require().NoError(err)
	suite.Equal("Alice Bakery", updated.Name)
	suite.Equal(b.CreatedAt, updated.CreatedAt)
	suite.Equal(suite.clock.Now(), updated.LastUpdatedAt)

	info, err := suite.svc.GetBusinessInfo(suite.ctx, b.BusinessID)
	suite.Require().NoError(err)
	suite.Equal(updated, info)

	_, err = suite.svc.UpdateBusinessInfo(suite.ctx, "bob", dto.UpdateBusinessRequest{Name: "B", Type: "b"})
	suite.ErrorIs(err, apperrors.ErrNoAccount)
}

func (suite *LedgerServiceTestSuite) TestScenarioSaleExpensePurchase() {
	b := suite.createAccount("alice")

	for _, step := range []struct {
		amount uint64
		kind   domain.TransactionKind
	}{{10, domain.Sale}, {3, domain.Expense}, {2, domain.Purchase}} {
		_, err := suite.record("alice", step.amount, step.kind)
		suite.Require().NoError(err)
	}

	s := suite.summary(b.BusinessID)
	suite.Equal(uint64(10), s.TotalSales)
	suite.Equal(uint64(5), s.TotalExpenses)
	suite.Equal("5", s.NetProfit.String())
	suite.Equal(uint64(5), s.Balance)
	suite.Equal(uint64(3), s.TransactionCount)
}

func (suite *LedgerServiceTestSuite) TestScenarioInsufficientBalance() {
	b := suite.createAccount("alice")
	_, err := suite.record("alice", 1, domain.Sale)
	suite.Require().NoError(err)

	_, err = suite.record("alice", 5, domain.Expense)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)

	s := suite.summary(b.BusinessID)
	suite.Equal(uint64(1), s.TotalSales)
	suite.Equal(uint64(0), s.TotalExpenses)
	suite.Equal("1", s.NetProfit.String())
	suite.Equal(uint64(1), s.Balance)
}

func (suite *LedgerServiceTestSuite) TestRecordTransactionValidation() {
	_, err := suite.record("nobody", 10, domain.Sale)
	suite.ErrorIs(err, apperrors.ErrNoAccount)

	b := suite.createAccount("alice")
	_, err = suite.record("alice", 0, domain.Sale)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)

	_, err = suite.svc.RecordTransaction(suite.ctx, "alice", dto.RecordTransactionRequest{Amount: 1, Category: "", Kind: domain.Sale})
	suite.ErrorIs(err, apperrors.ErrInvalidInput)

	_, err = suite.record("alice", ledger.DefaultMaxAmount+1, domain.Sale)
	suite.ErrorIs(err, apperrors.ErrAmountTooLarge)

	suite.Equal(uint64(0), suite.summary(b.BusinessID).TransactionCount)
}

func (suite *LedgerServiceTestSuite) TestRecordTransactionEvents() {
	suite.createAccount("alice")
	suite.notifier.Reset()

	_, err := suite.record("alice", 50, domain.Sale)
	suite.Require().NoError(err)
	suite.Equal([]domain.EventType{domain.EventTransactionRecorded, domain.EventLowBalanceAlert}, suite.notifier.Types())

	suite.notifier.Reset()
	_, err = suite.record("alice", 5000, domain.Sale)
	suite.Require().NoError(err)
	_, err = suite.record("alice", 4990, domain.Expense)
	suite.Require().NoError(err)
	suite.Equal([]domain.EventType{
		domain.EventTransactionRecorded,
		domain.EventTransactionRecorded, domain.EventLowBalanceAlert, domain.EventOverspendingAlert,
	}, suite.notifier.Types())

	alert := suite.notifier.events[2].(domain.LowBalanceAlert)
	suite.Equal(uint64(60), alert.Balance)
}

func (suite *LedgerServiceTestSuite) TestTransactionHistory() {
	b := suite.createAccount("alice")
	for _, amt := range []uint64{10, 20, 30} {
		_, err := suite.record("alice", amt, domain.Sale)
		suite.Require().NoError(err)
	}

	h, err := suite.svc.GetTransactionHistory(suite.ctx, b.BusinessID, 2)
	suite.Require().NoError(err)
	suite.Require().Len(h, 2)
	suite.Equal(uint64(2), h[0].TransactionID)
	suite.Equal(uint64(1), h[1].TransactionID)

	h, err = suite.svc.GetTransactionHistory(suite.ctx, b.BusinessID, 0)
	suite.Require().NoError(err)
	suite.Empty(h)

	_, err = suite.svc.GetTransactionHistory(suite.ctx, 42, 5)
	suite.ErrorIs(err, apperrors.ErrInvalidBusinessID)
}

func (suite *LedgerServiceTestSuite) TestAddProject() {
	_, err := suite.addProject("alice", suite.clock.Now().Add(day))
	suite.ErrorIs(err, apperrors.ErrNoAccount)

	b := suite.createAccount("alice")
	p0, err := suite.addProject("alice", suite.clock.Now().Add(30*day))
	suite.Require().NoError(err)
	p1, err := suite.addProject("alice", suite.clock.Now().Add(60*day))
	suite.Require().NoError(err)
	suite.Equal(uint64(0), p0.ProjectID)
	suite.Equal(uint64(1), p1.ProjectID)
	suite.Equal(domain.ProjectActive, p0.Status)

	_, err = suite.addProject("alice", suite.clock.Now())
	suite.ErrorIs(err, apperrors.ErrInvalidDeadline)
	_, err = suite.svc.AddProject(suite.ctx, "alice", dto.AddProjectRequest{ClientName: "Acme", ProjectName: "X", Amount: 0, Deadline: suite.clock.Now().Add(day)})
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)

	list, err := suite.svc.GetProjects(suite.ctx, b.BusinessID)
	suite.Require().NoError(err)
	suite.Len(list, 2)

	got, err := suite.svc.GetProject(suite.ctx, b.BusinessID, 1)
	suite.Require().NoError(err)
	suite.Equal(p1, got)

	_, err = suite.svc.GetProject(suite.ctx, b.BusinessID, 2)
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (suite *LedgerServiceTestSuite) TestScenarioOverdueInference() {
	b := suite.createAccount("alice")
	p, err := suite.addProject("alice", suite.clock.Now().Add(30*day))
	suite.Require().NoError(err)

	suite.clock.Advance(31 * day)

	overdue, err := suite.svc.GetOverdueProjects(suite.ctx, b.BusinessID)
	suite.Require().NoError(err)
	suite.Require().Len(overdue, 1)
	suite.Equal(p.ProjectID, overdue[0].ProjectID)

	list, err := suite.svc.GetProjects(suite.ctx, b.BusinessID)
	suite.Require().NoError(err)
	suite.Equal(domain.ProjectActive, list[0].Status)

	suite.notifier.Reset()
	updated, markedOverdue, err := suite.svc.UpdateProjectStatus(suite.ctx, "alice", p.ProjectID, dto.UpdateProjectStatusRequest{Status: domain.ProjectActive})
	suite.Require().NoError(err)
	suite.True(markedOverdue)
	suite.Equal(domain.ProjectOverdue, updated.Status)
	suite.Equal([]domain.EventType{domain.EventProjectStatusUpdated, domain.EventProjectOverdue}, suite.notifier.Types())

	list, err = suite.svc.GetProjects(suite.ctx, b.BusinessID)
	suite.Require().NoError(err)
	suite.Equal(domain.ProjectOverdue, list[0].Status)
}

func (suite *LedgerServiceTestSuite) TestUpdateProjectStatus() {
	suite.createAccount("alice")
	suite.createAccount("bob")
	_, err := suite.addProject("alice", suite.clock.Now().Add(day))
	suite.Require().NoError(err)

	p, markedOverdue, err := suite.svc.UpdateProjectStatus(suite.ctx, "alice", 0, dto.UpdateProjectStatusRequest{Status: domain.ProjectCompleted})
	suite.Require().NoError(err)
	suite.False(markedOverdue)
	suite.Equal(domain.ProjectCompleted, p.Status)

	_, _, err = suite.svc.UpdateProjectStatus(suite.ctx, "bob", 0, dto.UpdateProjectStatusRequest{Status: domain.ProjectCancelled})
	suite.ErrorIs(err, apperrors.ErrProjectNotFound, "bob's business has no projects")

	_, _, err = suite.svc.UpdateProjectStatus(suite.ctx, "carol", 0, dto.UpdateProjectStatusRequest{Status: domain.ProjectCancelled})
	suite.ErrorIs(err, apperrors.ErrNoAccount)
}

func (suite *LedgerServiceTestSuite) TestBusinessIsolation() {
	a := suite.createAccount("alice")
	b := suite.createAccount("bob")

	_, err := suite.record("alice", 500, domain.Sale)
	suite.Require().NoError(err)
	_, err = suite.addProject("alice", suite.clock.Now().Add(day))
	suite.Require().NoError(err)

	beforeSummary := suite.summary(a.BusinessID)
	beforeProjects, err := suite.svc.GetProjects(suite.ctx, a.BusinessID)
	suite.Require().NoError(err)

	_, err = suite.record("bob", 70, domain.Sale)
	suite.Require().NoError(err)
	_, err = suite.record("bob", 20, domain.Expense)
	suite.Require().NoError(err)
	_, err = suite.addProject("bob", suite.clock.Now().Add(2*day))
	suite.Require().NoError(err)
	_, _, err = suite.svc.UpdateProjectStatus(suite.ctx, "bob", 0, dto.UpdateProjectStatusRequest{Status: domain.ProjectCancelled})
	suite.Require().NoError(err)

	suite.Equal(beforeSummary, suite.summary(a.BusinessID))
	afterProjects, err := suite.svc.GetProjects(suite.ctx, a.BusinessID)
	suite.Require().NoError(err)
	suite.Equal(beforeProjects, afterProjects)
	suite.Equal(uint64(50), suite.summary(b.BusinessID).Balance)
}

func (suite *LedgerServiceTestSuite) TestReadsOfUnknownBusiness() {
	_, err := suite.svc.GetBusinessInfo(suite.ctx, 7)
	suite.ErrorIs(err, apperrors.ErrInvalidBusinessID)
	_, err = suite.svc.GetFinancialSummary(suite.ctx, 7)
	suite.ErrorIs(err, apperrors.ErrInvalidBusinessID)
	_, err = suite.svc.GetProjects(suite.ctx, 7)
	suite.ErrorIs(err, apperrors.ErrInvalidBusinessID)
	_, err = suite.svc.GetOverdueProjects(suite.ctx, 7)
	suite.ErrorIs(err, apperrors.ErrInvalidBusinessID)
	_, err = suite.svc.GetProject(suite.ctx, 7, 0)
	suite.ErrorIs(err, apperrors.ErrInvalidBusinessID)
}

func (suite *LedgerServiceTestSuite) TestAdminPause() {
	b := suite.createAccount("alice")
	_, err := suite.record("alice", 100, domain.Sale)
	suite.Require().NoError(err)

	suite.ErrorIs(suite.svc.AdminPause(suite.ctx, "alice"), apperrors.ErrUnauthorized)
	suite.False(suite.svc.IsPaused())

	suite.notifier.Reset()
	suite.Require().NoError(suite.svc.AdminPause(suite.ctx, admin))
	suite.True(suite.svc.IsPaused())
	suite.Equal([]domain.EventType{domain.EventLedgerPaused}, suite.notifier.Types())

	_, err = suite.record("alice", 5, domain.Sale)
	suite.ErrorIs(err, apperrors.ErrPaused)
	_, err = suite.svc.CreateAccount(suite.ctx, "bob", dto.CreateBusinessRequest{Name: "B", Type: "b"})
	suite.ErrorIs(err, apperrors.ErrPaused)
	_, err = suite.addProject("alice", suite.clock.Now().Add(day))
	suite.ErrorIs(err, apperrors.ErrPaused)
	_, err = suite.svc.UpdateBusinessInfo(suite.ctx, "alice", dto.UpdateBusinessRequest{Name: "N", Type: "T"})
	suite.ErrorIs(err, apperrors.ErrPaused)
	_, _, err = suite.svc.UpdateProjectStatus(suite.ctx, "alice", 0, dto.UpdateProjectStatusRequest{Status: domain.ProjectCompleted})
	suite.ErrorIs(err, apperrors.ErrPaused)

	suite.Equal(uint64(100), suite.summary(b.BusinessID).Balance, "reads still work")

	suite.ErrorIs(suite.svc.AdminUnpause(suite.ctx, "alice"), apperrors.ErrUnauthorized)
	suite.Require().NoError(suite.svc.AdminUnpause(suite.ctx, admin))
	suite.False(suite.svc.IsPaused())

	_, err = suite.record("alice", 5, domain.Sale)
	suite.NoError(err)
}

func (suite *LedgerServiceTestSuite) TestAdminWithoutConfiguredIdentity() {
	svc := services.NewLedgerService(memory.NewLedgerRepository())
	suite.ErrorIs(svc.AdminPause(suite.ctx, ""), apperrors.ErrUnauthorized)
	suite.ErrorIs(svc.AdminPause(suite.ctx, "anyone"), apperrors.ErrUnauthorized)
}

func (suite *LedgerServiceTestSuite) TestRepositoryFailureLeavesStateUnchanged() {
	repo := new(MockLedgerRepository)
	svc := suite.newService(repo)
	boom := errors.New("connection reset")

	repo.On("SaveBusiness", mock.Anything, mock.AnythingOfType("domain.Business")).Return(boom).Once()
	_, err := svc.CreateAccount(suite.ctx, "alice", dto.CreateBusinessRequest{Name: "A", Type: "retail"})
	suite.ErrorIs(err, boom)
	_, err = svc.GetMyBusiness(suite.ctx, "alice")
	suite.ErrorIs(err, apperrors.ErrNoAccount)

	repo.On("SaveBusiness", mock.Anything, mock.AnythingOfType("domain.Business")).Return(nil).Once()
	b, err := svc.CreateAccount(suite.ctx, "alice", dto.CreateBusinessRequest{Name: "A", Type: "retail"})
	suite.Require().NoError(err)
	suite.Equal(uint64(1), b.BusinessID, "failed registration does not consume an id")

	repo.On("AppendTransaction", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	_, err = svc.RecordTransaction(suite.ctx, "alice", dto.RecordTransactionRequest{Amount: 10, Category: "c", Kind: domain.Sale})
	suite.Require().NoError(err)

	repo.On("AppendTransaction", mock.Anything, mock.Anything, domain.FinancialState{TotalSales: 10, TotalExpenses: 4, Balance: 6}).Return(boom).Once()
	_, err = svc.RecordTransaction(suite.ctx, "alice", dto.RecordTransactionRequest{Amount: 4, Category: "c", Kind: domain.Expense})
	suite.ErrorIs(err, boom)

	s, err := svc.GetFinancialSummary(suite.ctx, b.BusinessID)
	suite.Require().NoError(err)
	suite.Equal(uint64(10), s.Balance)
	suite.Equal(uint64(1), s.TransactionCount)

	repo.On("SaveProject", mock.Anything, mock.Anything).Return(boom).Once()
	_, err = svc.AddProject(suite.ctx, "alice", dto.AddProjectRequest{ClientName: "C", ProjectName: "P", Amount: 1, Deadline: suite.clock.Now().Add(day)})
	suite.ErrorIs(err, boom)
	list, err := svc.GetProjects(suite.ctx, b.BusinessID)
	suite.Require().NoError(err)
	suite.Empty(list)

	repo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRestore() {
	a := suite.createAccount("alice")
	suite.createAccount("bob")
	_, err := suite.record("alice", 300, domain.Sale)
	suite.Require().NoError(err)
	_, err = suite.record("alice", 120, domain.Expense)
	suite.Require().NoError(err)
	_, err = suite.addProject("alice", suite.clock.Now().Add(day))
	suite.Require().NoError(err)
	_, _, err = suite.svc.UpdateProjectStatus(suite.ctx, "alice", 0, dto.UpdateProjectStatusRequest{Status: domain.ProjectCompleted})
	suite.Require().NoError(err)

	restored := suite.newService(suite.repo)
	suite.Require().NoError(restored.Restore(suite.ctx))

	suite.Equal(suite.summary(a.BusinessID), mustSummary(suite, restored, a.BusinessID))
	wantHistory, _ := suite.svc.GetTransactionHistory(suite.ctx, a.BusinessID, 10)
	gotHistory, err := restored.GetTransactionHistory(suite.ctx, a.BusinessID, 10)
	suite.Require().NoError(err)
	suite.Equal(wantHistory, gotHistory)
	wantProjects, _ := suite.svc.GetProjects(suite.ctx, a.BusinessID)
	gotProjects, err := restored.GetProjects(suite.ctx, a.BusinessID)
	suite.Require().NoError(err)
	suite.Equal(wantProjects, gotProjects)

	c, err := restored.CreateAccount(suite.ctx, "carol", dto.CreateBusinessRequest{Name: "C", Type: "c"})
	suite.Require().NoError(err)
	suite.Equal(uint64(3), c.BusinessID)

	_, err = restored.CreateAccount(suite.ctx, "alice", dto.CreateBusinessRequest{Name: "A", Type: "a"})
	suite.ErrorIs(err, apperrors.ErrDuplicateAccount)
}

func (suite *LedgerServiceTestSuite) TestRestoreRejectsInconsistentState() {
	a := suite.createAccount("alice")
	_, err := suite.record("alice", 300, domain.Sale)
	suite.Require().NoError(err)

	suite.repo.SetState(a.BusinessID, domain.FinancialState{TotalSales: 999, Balance: 999})

	restored := suite.newService(suite.repo)
	suite.Error(restored.Restore(suite.ctx))
	_, err = restored.GetBusinessInfo(suite.ctx, a.BusinessID)
	suite.ErrorIs(err, apperrors.ErrInvalidBusinessID, "a failed restore leaves the service empty")
}

func (suite *LedgerServiceTestSuite) TestRestoreLoadFailure() {
	repo := new(MockLedgerRepository)
	boom := errors.New("db down")
	repo.On("LoadSnapshot", mock.Anything).Return(nil, boom)

	suite.ErrorIs(suite.newService(repo).Restore(suite.ctx), boom)
}

func mustSummary(suite *LedgerServiceTestSuite, svc portssvc.LedgerSvcFacade, businessID uint64) *domain.FinancialSummary {
	s, err := svc.GetFinancialSummary(suite.ctx, businessID)
	suite.Require().NoError(err)
	return s
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
