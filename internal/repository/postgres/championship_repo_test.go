package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/loga/gacha-backend/internal/repository/postgres"
	"github.com/loga/gacha-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChampionshipRepository_FindByLineup(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewChampionshipRepository(testDB.DB)
	ctx := context.Background()

	lineup := testutil.SeedLineup(t, testDB.DB, "T1")
	championship := testutil.NewChampionshipBuilder().
		WithTournament("WORLDS").
		WithYear(2023).
		WithTeam("T1").
		WithLineup(lineup).
		Build(t, testDB.DB)

	t.Run("exact five-id match", func(t *testing.T) {
		found, err := repo.FindByLineup(ctx,
			lineup[0].ID, lineup[1].ID, lineup[2].ID, lineup[3].ID, lineup[4].ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, championship.ID, found.ID)
	})

	t.Run("one different id misses", func(t *testing.T) {
		found, err := repo.FindByLineup(ctx,
			lineup[0].ID, lineup[1].ID, uuid.New(), lineup[3].ID, lineup[4].ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("ids in the wrong slots miss", func(t *testing.T) {
		found, err := repo.FindByLineup(ctx,
			lineup[1].ID, lineup[0].ID, lineup[2].ID, lineup[3].ID, lineup[4].ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("duplicate lineups resolve to the oldest entry", func(t *testing.T) {
		duplicate := testutil.NewChampionshipBuilder().
			WithTournament("WORLDS").
			WithYear(2025).
			WithTeam("T1").
			WithLineup(lineup).
			Build(t, testDB.DB)

		found, err := repo.FindByLineup(ctx,
			lineup[0].ID, lineup[1].ID, lineup[2].ID, lineup[3].ID, lineup[4].ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, championship.ID, found.ID)
		assert.NotEqual(t, duplicate.ID, found.ID)
	})
}
