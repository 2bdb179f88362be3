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

// SaveProject inserts a new project.
func (r *PgxLedgerRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m, err := mapping.ToModelProject(project)
	if err != nil {
		return apperrors.NewAppError(500, "failed to map project", err)
	}

	query := `
		INSERT INTO projects (business_id, project_id, client_name, project_name, amount, deadline, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.BusinessID, m.ProjectID, m.ClientName, m.ProjectName, m.Amount, m.Deadline, m.Status, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: project %d of business %d", apperrors.ErrDuplicate, m.ProjectID, m.BusinessID)
		}
		return apperrors.NewAppError(500, "failed to save project", err)
	}
	return nil
}

// UpdateProjectStatus stores the status and update time of a project.
func (r *PgxLedgerRepository) UpdateProjectStatus(ctx context.Context, project domain.Project) error {
	m, err := mapping.ToModelProject(project)
	if err != nil {
		return apperrors.NewAppError(500, "failed to map project", err)
	}

	query := `
		UPDATE projects
		SET status = $1, last_updated_at = $2
		WHERE business_id = $3 AND project_id = $4;
	`
	tag, err := r.Pool.Exec(ctx, query, m.Status, m.LastUpdatedAt, m.BusinessID, m.ProjectID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update project status", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: project %d of business %d", apperrors.ErrNotFound, m.ProjectID, m.BusinessID)
	}
	return nil
}

func (r *PgxLedgerRepository) loadProjects(ctx context.Context, tx pgx.Tx) (map[uint64][]domain.Project, error) {
	query := `
		SELECT business_id, project_id, client_name, project_name, amount, deadline, status, created_at, last_updated_at
		FROM projects
		ORDER BY business_id, project_id;
	`
	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load projects", err)
	}
	defer rows.Close()

	out := make(map[uint64][]domain.Project)
	for rows.Next() {
		var m models.Project
		err := rows.Scan(&m.BusinessID, &m.ProjectID, &m.ClientName, &m.ProjectName, &m.Amount,
			&m.Deadline, &m.Status, &m.CreatedAt, &m.LastUpdatedAt)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan project", err)
		}
		d, err := mapping.ToDomainProject(m)
		if err != nil {
			return nil, apperrors.NewAppError(500, "invalid stored project", err)
		}
		out[d.BusinessID] = append(out[d.BusinessID], d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate projects", err)
	}
	return out, nil
}
