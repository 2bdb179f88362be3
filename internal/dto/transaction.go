package dto

import (
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordTransactionRequest defines the data needed to record a ledger entry.
// Amount is validated by the service so that a zero amount reports the
// ledger's own invalid-amount error.
type RecordTransactionRequest struct {
	Amount      uint64                 `json:"amount"`
	Category    string                 `json:"category" binding:"required,notblank"`
	Description string                 `json:"description"` // Optional
	Kind        domain.TransactionKind `json:"kind" binding:"required,oneof=SALE PURCHASE EXPENSE"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID uint64                 `json:"transactionID"`
	BusinessID    uint64                 `json:"businessID"`
	Amount        uint64                 `json:"amount"`
	Category      string                 `json:"category"`
	Description   string                 `json:"description"`
	Kind          domain.TransactionKind `json:"kind"`
	Timestamp     time.Time              `json:"timestamp"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		BusinessID:    txn.BusinessID,
		Amount:        txn.Amount,
		Category:      txn.Category,
		Description:   txn.Description,
		Kind:          txn.Kind,
		Timestamp:     txn.Timestamp,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// ListTransactionsParams defines query parameters for the transaction history.
// A nil Limit means the configured default.
type ListTransactionsParams struct {
	Limit *int `form:"limit" binding:"omitempty,min=0,max=1000"`
}

// ListTransactionsResponse wraps a page of history.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// FinancialSummaryResponse defines the totals returned for a business.
type FinancialSummaryResponse struct {
	BusinessID       uint64          `json:"businessID"`
	TotalSales       uint64          `json:"totalSales"`
	TotalExpenses    uint64          `json:"totalExpenses"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	Balance          uint64          `json:"balance"`
	TransactionCount uint64          `json:"transactionCount"`
}

// ToFinancialSummaryResponse converts a domain.FinancialSummary to its DTO.
func ToFinancialSummaryResponse(s *domain.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		BusinessID:       s.BusinessID,
		TotalSales:       s.TotalSales,
		TotalExpenses:    s.TotalExpenses,
		NetProfit:        s.NetProfit,
		Balance:          s.Balance,
		TransactionCount: s.TransactionCount,
	}
}
