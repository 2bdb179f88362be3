package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind mirrors domain.TransactionKind in the kind column.
type TransactionKind string

// Transaction is a row of the ledger_transactions table.
// Amounts are NUMERIC(20,0) so the full uint64 range fits.
type Transaction struct {
	BusinessID    int64           `db:"business_id"`
	TransactionID int64           `db:"transaction_id"`
	Amount        decimal.Decimal `db:"amount"`
	Category      string          `db:"category"`
	Description   string          `db:"description"`
	Kind          TransactionKind `db:"kind"`
	CreatedAt     time.Time       `db:"created_at"`
}

// FinancialState is a row of the financial_states table.
type FinancialState struct {
	BusinessID    int64           `db:"business_id"`
	TotalSales    decimal.Decimal `db:"total_sales"`
	TotalExpenses decimal.Decimal `db:"total_expenses"`
	Balance       decimal.Decimal `db:"balance"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
}
