package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/models"
	"github.com/SscSPs/bizledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// AppendTransaction inserts the entry and upserts the financial state of its
// business in one database transaction.
func (r *PgxLedgerRepository) AppendTransaction(ctx context.Context, txn domain.Transaction, state domain.FinancialState) error {
	mt, err := mapping.ToModelTransaction(txn)
	if err != nil {
		return apperrors.NewAppError(500, "failed to map transaction", err)
	}
	ms, err := mapping.ToModelFinancialState(txn.BusinessID, state)
	if err != nil {
		return apperrors.NewAppError(500, "failed to map financial state", err)
	}

	return r.withTx(ctx, func(tx pgx.Tx) error {
		insertTxn := `
			INSERT INTO ledger_transactions (business_id, transaction_id, amount, category, description, kind, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
		`
		_, err := tx.Exec(ctx, insertTxn,
			mt.BusinessID, mt.TransactionID, mt.Amount, mt.Category, mt.Description, mt.Kind, mt.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return fmt.Errorf("%w: transaction %d of business %d", apperrors.ErrDuplicate, mt.TransactionID, mt.BusinessID)
			}
			return apperrors.NewAppError(500, "failed to save transaction", err)
		}

		upsertState := `
			INSERT INTO financial_states (business_id, total_sales, total_expenses, balance, last_updated_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (business_id) DO UPDATE
			SET total_sales = EXCLUDED.total_sales,
				total_expenses = EXCLUDED.total_expenses,
				balance = EXCLUDED.balance,
				last_updated_at = EXCLUDED.last_updated_at;
		`
		_, err = tx.Exec(ctx, upsertState, ms.BusinessID, ms.TotalSales, ms.TotalExpenses, ms.Balance, mt.CreatedAt)
		if err != nil {
			return apperrors.NewAppError(500, "failed to save financial state", err)
		}
		return nil
	})
}

func (r *PgxLedgerRepository) loadTransactions(ctx context.Context, tx pgx.Tx) (map[uint64][]domain.Transaction, error) {
	query := `
		SELECT business_id, transaction_id, amount, category, description, kind, created_at
		FROM ledger_transactions
		ORDER BY business_id, transaction_id;
	`
	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load transactions", err)
	}
	defer rows.Close()

	out := make(map[uint64][]domain.Transaction)
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(&m.BusinessID, &m.TransactionID, &m.Amount, &m.Category, &m.Description, &m.Kind, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction", err)
		}
		d, err := mapping.ToDomainTransaction(m)
		if err != nil {
			return nil, apperrors.NewAppError(500, "invalid stored transaction", err)
		}
		out[d.BusinessID] = append(out[d.BusinessID], d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate transactions", err)
	}
	return out, nil
}

func (r *PgxLedgerRepository) loadStates(ctx context.Context, tx pgx.Tx) (map[uint64]domain.FinancialState, error) {
	query := `
		SELECT business_id, total_sales, total_expenses, balance, last_updated_at
		FROM financial_states;
	`
	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load financial states", err)
	}
	defer rows.Close()

	out := make(map[uint64]domain.FinancialState)
	for rows.Next() {
		var m models.FinancialState
		if err := rows.Scan(&m.BusinessID, &m.TotalSales, &m.TotalExpenses, &m.Balance, &m.LastUpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan financial state", err)
		}
		d, err := mapping.ToDomainFinancialState(m)
		if err != nil {
			return nil, apperrors.NewAppError(500, "invalid stored financial state", err)
		}
		out[uint64(m.BusinessID)] = d
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate financial states", err)
	}
	return out, nil
}
