package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRepository_Snapshot(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLedgerRepository()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveBusiness(ctx, domain.Business{BusinessID: 1, Owner: "alice", Name: "A", Type: "retail"}))
	assert.ErrorIs(t, repo.SaveBusiness(ctx, domain.Business{BusinessID: 2, Owner: "alice"}), apperrors.ErrDuplicate)

	require.NoError(t, repo.UpdateBusiness(ctx, domain.Business{BusinessID: 1, Name: "B", Type: "cafe", AuditFields: domain.AuditFields{LastUpdatedAt: now}}))
	assert.ErrorIs(t, repo.UpdateBusiness(ctx, domain.Business{BusinessID: 9}), apperrors.ErrNotFound)

	require.NoError(t, repo.AppendTransaction(ctx, domain.Transaction{BusinessID: 1, Amount: 10, Kind: domain.Sale},
		domain.FinancialState{TotalSales: 10, Balance: 10}))
	require.NoError(t, repo.SaveProject(ctx, domain.Project{BusinessID: 1, ProjectID: 0, Status: domain.ProjectActive}))
	require.NoError(t, repo.UpdateProjectStatus(ctx, domain.Project{BusinessID: 1, ProjectID: 0, Status: domain.ProjectCompleted}))
	assert.ErrorIs(t, repo.UpdateProjectStatus(ctx, domain.Project{BusinessID: 1, ProjectID: 4}), apperrors.ErrNotFound)

	snap, err := repo.LoadSnapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Businesses, 1)
	assert.Equal(t, "B", snap.Businesses[0].Name)
	assert.Equal(t, "alice", snap.Businesses[0].Owner)
	assert.Len(t, snap.Transactions[1], 1)
	assert.Equal(t, uint64(10), snap.States[1].Balance)
	assert.Equal(t, domain.ProjectCompleted, snap.Projects[1][0].Status)

	snap.Projects[1][0].Status = domain.ProjectCancelled
	again, err := repo.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectCompleted, again.Projects[1][0].Status, "snapshots are copies")
}
