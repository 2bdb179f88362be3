package domain

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a ledger entry.
type TransactionKind string

const (
	Sale     TransactionKind = "SALE"
	Purchase TransactionKind = "PURCHASE"
	Expense  TransactionKind = "EXPENSE"
)

// IsValid reports whether k is one of the known kinds.
func (k TransactionKind) IsValid() bool {
	switch k {
	case Sale, Purchase, Expense:
		return true
	}
	return false
}

// IsOutflow reports whether the kind draws down the balance.
func (k TransactionKind) IsOutflow() bool {
	return k == Purchase || k == Expense
}

// Transaction is an immutable entry in a business ledger.
type Transaction struct {
	TransactionID uint64          `json:"transactionID"` // Sequential per business, starting at 0
	BusinessID    uint64          `json:"businessID"`
	Amount        uint64          `json:"amount"` // Always > 0
	Category      string          `json:"category"`
	Description   string          `json:"description"` // May be empty
	Kind          TransactionKind `json:"kind"`
	Timestamp     time.Time       `json:"timestamp"`
}

// FinancialState holds the running totals of one ledger.
// Balance always equals TotalSales - TotalExpenses.
type FinancialState struct {
	TotalSales    uint64 `json:"totalSales"`
	TotalExpenses uint64 `json:"totalExpenses"`
	Balance       uint64 `json:"balance"`
}

// FinancialSummary is the read model returned by summary queries.
type FinancialSummary struct {
	BusinessID       uint64          `json:"businessID"`
	TotalSales       uint64          `json:"totalSales"`
	TotalExpenses    uint64          `json:"totalExpenses"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	Balance          uint64          `json:"balance"`
	TransactionCount uint64          `json:"transactionCount"`
}

// NewFinancialSummary derives the summary for a state. NetProfit is computed
// with arbitrary precision so it stays exact for any pair of accumulators.
func NewFinancialSummary(businessID uint64, state FinancialState, count uint64) FinancialSummary {
	sales := decimalFromUint64(state.TotalSales)
	expenses := decimalFromUint64(state.TotalExpenses)
	return FinancialSummary{
		BusinessID:       businessID,
		TotalSales:       state.TotalSales,
		TotalExpenses:    state.TotalExpenses,
		NetProfit:        sales.Sub(expenses),
		Balance:          state.Balance,
		TransactionCount: count,
	}
}

func decimalFromUint64(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}
