package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardRepository_TicketStats(t *testing.T) {
	database := setupTestDB(t)
	ticketRepo := NewTicketRepository(database)
	repo := NewDashboardRepository(database)
	ctx := context.Background()

	mustTicket(t, ticketRepo, "a", 1)
	mustTicket(t, ticketRepo, "b", 1)
	mustTicket(t, ticketRepo, "c", 2)

	stats, err := repo.TicketStats(ctx, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(3), stats.ByStatus["new"])
	assert.Equal(t, int64(3), stats.ByPriority["low"])
	assert.Equal(t, int64(3), stats.Recent, "all rows were created inside the window")

	stats, err = repo.TicketStats(ctx, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	assert.Zero(t, stats.Recent, "a future cutoff admits nothing")
	assert.Equal(t, int64(3), stats.Total)
}

func TestDashboardRepository_FeatureRequestStats(t *testing.T) {
	database := setupTestDB(t)
	frRepo := NewFeatureRequestRepository(database)
	repo := NewDashboardRepository(database)
	ctx := context.Background()

	first := mustFeatureRequest(t, frRepo, "export", 1)
	mustFeatureRequest(t, frRepo, "dark mode", 2)

	require.NoError(t, frRepo.AddUpvote(ctx, first.ID(), 1))
	require.NoError(t, frRepo.AddUpvote(ctx, first.ID(), 2))

	stats, err := repo.FeatureRequestStats(ctx, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(2), stats.ByStatus["Proposed"])
	assert.Equal(t, int64(2), stats.ByPriority["Medium"])
	assert.Equal(t, int64(2), stats.TotalUpvotes, "upvotes come straight from the ledger")
}

func TestDashboardRepository_UserStats(t *testing.T) {
	database := setupTestDB(t)
	userRepo := NewUserRepository(database)
	repo := NewDashboardRepository(database)
	ctx := context.Background()

	active := newTestUser(t, "alice", "alice@example.com")
	require.NoError(t, userRepo.Create(ctx, active))

	inactive := newTestUser(t, "bob", "bob@example.com")
	inactive.Deactivate()
	require.NoError(t, userRepo.Create(ctx, inactive))

	stats, err := repo.UserStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Active)
}
