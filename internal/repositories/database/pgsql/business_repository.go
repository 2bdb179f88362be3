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

const uniqueViolation = "23505"

// SaveBusiness inserts a new business.
func (r *PgxLedgerRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	m, err := mapping.ToModelBusiness(business)
	if err != nil {
		return apperrors.NewAppError(500, "failed to map business", err)
	}

	query := `
		INSERT INTO businesses (business_id, owner, name, type, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = r.Pool.Exec(ctx, query, m.BusinessID, m.Owner, m.Name, m.Type, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: business %d or owner %q already stored", apperrors.ErrDuplicate, m.BusinessID, m.Owner)
		}
		return apperrors.NewAppError(500, "failed to save business", err)
	}
	return nil
}

// UpdateBusiness stores the name, type and update time of a business.
func (r *PgxLedgerRepository) UpdateBusiness(ctx context.Context, business domain.Business) error {
	m, err := mapping.ToModelBusiness(business)
	if err != nil {
		return apperrors.NewAppError(500, "failed to map business", err)
	}

	query := `
		UPDATE businesses
		SET name = $1, type = $2, last_updated_at = $3
		WHERE business_id = $4;
	`
	tag, err := r.Pool.Exec(ctx, query, m.Name, m.Type, m.LastUpdatedAt, m.BusinessID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update business", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: business %d", apperrors.ErrNotFound, m.BusinessID)
	}
	return nil
}

func (r *PgxLedgerRepository) loadBusinesses(ctx context.Context, tx pgx.Tx) ([]domain.Business, error) {
	query := `
		SELECT business_id, owner, name, type, created_at, last_updated_at
		FROM businesses
		ORDER BY business_id;
	`
	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load businesses", err)
	}
	defer rows.Close()

	var businesses []domain.Business
	for rows.Next() {
		var m models.Business
		if err := rows.Scan(&m.BusinessID, &m.Owner, &m.Name, &m.Type, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan business", err)
		}
		businesses = append(businesses, mapping.ToDomainBusiness(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate businesses", err)
	}
	return businesses, nil
}
