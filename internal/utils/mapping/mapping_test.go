package mapping_test

import (
	"math"
	"testing"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountConversion(t *testing.T) {
	for _, v := range []uint64{0, 1, 12345, math.MaxInt64, math.MaxUint64} {
		got, err := mapping.ToUint64(mapping.ToDecimal(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	assert.Equal(t, "18446744073709551615", mapping.ToDecimal(math.MaxUint64).String())

	_, err := mapping.ToUint64(decimal.NewFromFloat(1.5))
	assert.Error(t, err)
	_, err = mapping.ToUint64(decimal.NewFromInt(-1))
	assert.Error(t, err)
	_, err = mapping.ToUint64(mapping.ToDecimal(math.MaxUint64).Add(decimal.NewFromInt(1)))
	assert.Error(t, err)
}

func TestToInt64ID(t *testing.T) {
	id, err := mapping.ToInt64ID(42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = mapping.ToInt64ID(math.MaxInt64 + 1)
	assert.Error(t, err)
}

func TestTransactionMapping(t *testing.T) {
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	d := domain.Transaction{
		TransactionID: 4, BusinessID: 2, Amount: math.MaxUint64 / 2,
		Category: "rent", Description: "March", Kind: domain.Expense, Timestamp: ts,
	}
	m, err := mapping.ToModelTransaction(d)
	require.NoError(t, err)
	back, err := mapping.ToDomainTransaction(m)
	require.NoError(t, err)
	assert.Equal(t, d, back)
}

func TestFinancialStateMapping(t *testing.T) {
	d := domain.FinancialState{TotalSales: 10, TotalExpenses: 4, Balance: 6}
	m, err := mapping.ToModelFinancialState(9, d)
	require.NoError(t, err)
	assert.Equal(t, int64(9), m.BusinessID)
	back, err := mapping.ToDomainFinancialState(m)
	require.NoError(t, err)
	assert.Equal(t, d, back)
}

func TestProjectMapping(t *testing.T) {
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	d := domain.Project{
		ProjectID: 1, BusinessID: 2, ClientName: "Acme", ProjectName: "Site",
		Amount: 900, Deadline: ts.Add(time.Hour), Status: domain.ProjectOverdue,
		AuditFields: domain.AuditFields{CreatedAt: ts, LastUpdatedAt: ts},
	}
	m, err := mapping.ToModelProject(d)
	require.NoError(t, err)
	back, err := mapping.ToDomainProject(m)
	require.NoError(t, err)
	assert.Equal(t, d, back)
}
