package pgsql

import (
	"context"

	"github.com/SscSPs/bizledger/internal/apperrors"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLedgerRepository stores the ledger in PostgreSQL.
type PgxLedgerRepository struct {
	BaseRepository
}

// NewLedgerRepository creates a repository on an open pool.
func NewLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo: NewLedgerRepository(dbPool),
	}
}

// LoadSnapshot reads every table inside one repeatable-read transaction so
// the pieces agree with each other.
func (r *PgxLedgerRepository) LoadSnapshot(ctx context.Context) (*portsrepo.Snapshot, error) {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin snapshot transaction", err)
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	snap := &portsrepo.Snapshot{}
	if snap.Businesses, err = r.loadBusinesses(ctx, tx); err != nil {
		return nil, err
	}
	if snap.Transactions, err = r.loadTransactions(ctx, tx); err != nil {
		return nil, err
	}
	if snap.States, err = r.loadStates(ctx, tx); err != nil {
		return nil, err
	}
	if snap.Projects, err = r.loadProjects(ctx, tx); err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return snap, nil
}
