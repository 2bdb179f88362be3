package ledger

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
)

// Limits configures amount bounds and alert thresholds.
type Limits struct {
	MaxAmount             uint64 // 0 means DefaultMaxAmount
	LowBalanceThreshold   uint64 // alert when balance drops below this
	OverspendingThreshold uint64 // alert when a single outflow exceeds this
}

// TransactionPersister is called with the new entry and the state it produces.
type TransactionPersister func(domain.Transaction, domain.FinancialState) error

// RecordResult describes a committed transaction and the alerts it raised.
type RecordResult struct {
	Transaction  domain.Transaction
	State        domain.FinancialState
	LowBalance   bool
	Overspending bool
}

type book struct {
	state        domain.FinancialState
	transactions []domain.Transaction
}

// EntryStore holds one append-only ledger per business.
type EntryStore struct {
	mu     sync.RWMutex
	limits Limits
	books  map[uint64]*book
}

// NewEntryStore creates an empty store with the given limits.
func NewEntryStore(limits Limits) *EntryStore {
	if limits.MaxAmount == 0 {
		limits.MaxAmount = DefaultMaxAmount
	}
	return &EntryStore{limits: limits, books: make(map[uint64]*book)}
}

// Limits returns the configured limits.
func (s *EntryStore) Limits() Limits {
	return s.limits
}

// Apply returns the state after applying one entry. It never mutates state.
func Apply(state domain.FinancialState, kind domain.TransactionKind, amount uint64) (domain.FinancialState, error) {
	switch kind {
	case domain.Sale:
		if state.TotalSales > math.MaxUint64-amount || state.Balance > math.MaxUint64-amount {
			return state, fmt.Errorf("%w: sales total would exceed %d", apperrors.ErrOverflow, uint64(math.MaxUint64))
		}
		state.TotalSales += amount
		state.Balance += amount
	case domain.Purchase, domain.Expense:
		if state.Balance < amount {
			return state, fmt.Errorf("%w: balance %d is less than %d", apperrors.ErrInsufficientBalance, state.Balance, amount)
		}
		if state.TotalExpenses > math.MaxUint64-amount {
			return state, fmt.Errorf("%w: expenses total would exceed %d", apperrors.ErrOverflow, uint64(math.MaxUint64))
		}
		state.TotalExpenses += amount
		state.Balance -= amount
	default:
		return state, fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrInvalidInput, kind)
	}
	return state, nil
}

// Record appends a transaction to the ledger of businessID.
func (s *EntryStore) Record(businessID, amount uint64, category, description string, kind domain.TransactionKind, now time.Time, persist TransactionPersister) (RecordResult, error) {
	if err := ValidateAmount(amount, s.limits.MaxAmount); err != nil {
		return RecordResult{}, err
	}
	category, err := RequireText("category", category)
	if err != nil {
		return RecordResult{}, err
	}
	if !kind.IsValid() {
		return RecordResult{}, fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrInvalidInput, kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.books[businessID]
	if b == nil {
		b = &book{}
	}

	next, err := Apply(b.state, kind, amount)
	if err != nil {
		return RecordResult{}, err
	}

	txn := domain.Transaction{
		TransactionID: uint64(len(b.transactions)),
		BusinessID:    businessID,
		Amount:        amount,
		Category:      category,
		Description:   description,
		Kind:          kind,
		Timestamp:     now,
	}
	if persist != nil {
		if err := persist(txn, next); err != nil {
			return RecordResult{}, err
		}
	}

	b.state = next
	b.transactions = append(b.transactions, txn)
	s.books[businessID] = b

	return RecordResult{
		Transaction:  txn,
		State:        next,
		LowBalance:   next.Balance < s.limits.LowBalanceThreshold,
		Overspending: kind.IsOutflow() && amount > s.limits.OverspendingThreshold,
	}, nil
}

// Summary returns the financial summary of businessID. Unknown ids get a zero summary.
func (s *EntryStore) Summary(businessID uint64) domain.FinancialSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b := s.books[businessID]
	if b == nil {
		return domain.NewFinancialSummary(businessID, domain.FinancialState{}, 0)
	}
	return domain.NewFinancialSummary(businessID, b.state, uint64(len(b.transactions)))
}

// History returns up to limit transactions, most recent first.
func (s *EntryStore) History(businessID uint64, limit int) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b := s.books[businessID]
	if b == nil || limit <= 0 {
		return []domain.Transaction{}
	}
	n := min(limit, len(b.transactions))
	out := make([]domain.Transaction, 0, n)
	for i := len(b.transactions) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, b.transactions[i])
	}
	return out
}

// Restore replays persisted transactions of one business and returns the derived state.
func (s *EntryStore) Restore(businessID uint64, transactions []domain.Transaction) (domain.FinancialState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.books[businessID]; exists {
		return domain.FinancialState{}, fmt.Errorf("ledger of business %d already loaded", businessID)
	}

	b := &book{transactions: make([]domain.Transaction, 0, len(transactions))}
	for i, txn := range transactions {
		if txn.TransactionID != uint64(i) {
			return domain.FinancialState{}, fmt.Errorf("business %d: transaction %d found at position %d", businessID, txn.TransactionID, i)
		}
		next, err := Apply(b.state, txn.Kind, txn.Amount)
		if err != nil {
			return domain.FinancialState{}, fmt.Errorf("business %d: replaying transaction %d: %w", businessID, txn.TransactionID, err)
		}
		b.state = next
		b.transactions = append(b.transactions, txn)
	}
	s.books[businessID] = b
	return b.state, nil
}
