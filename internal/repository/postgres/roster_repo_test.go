package postgres_test

import (
	"context"
	"testing"

	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/repository"
	"github.com/loga/gacha-backend/internal/repository/postgres"
	"github.com/loga/gacha-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterRepository_Search(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewRosterRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	lineup := testutil.SeedLineup(t, testDB.DB, "FIX")

	testutil.NewRosterBuilder().WithOwner(owner).WithLineup(lineup).Public().Build(t, testDB.DB)
	testutil.NewRosterBuilder().WithOwner(owner).WithLineup(lineup).Build(t, testDB.DB)
	testutil.NewRosterBuilder().WithOwner(owner).WithLineup(lineup).Public().Ranked().Build(t, testDB.DB)

	public := true
	ranked := domain.GameModeRanked

	t.Run("empty condition returns everything", func(t *testing.T) {
		page, err := repo.Search(ctx, repository.RosterSearchCondition{}, repository.PageRequest{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.TotalItems)
	})

	t.Run("filters compose with AND", func(t *testing.T) {
		page, err := repo.Search(ctx, repository.RosterSearchCondition{
			IsPublic: &public,
			GameMode: &ranked,
		}, repository.PageRequest{Page: 1, Limit: 10})
		require.NoError(t, err)
		require.Equal(t, int64(1), page.TotalItems)
		assert.Equal(t, domain.GameModeRanked, page.Items[0].GameMode)
	})

	t.Run("tier filter", func(t *testing.T) {
		page, err := repo.Search(ctx, repository.RosterSearchCondition{
			Tier: "BRONZE",
		}, repository.PageRequest{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.TotalItems)
	})
}

func TestRosterRepository_FindByPopularity(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewRosterRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	fanA, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	fanB, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	lineup := testutil.SeedLineup(t, testDB.DB, "FIX")

	quiet := testutil.NewRosterBuilder().WithOwner(owner).WithLineup(lineup).Public().Build(t, testDB.DB)
	popular := testutil.NewRosterBuilder().WithOwner(owner).WithLineup(lineup).Public().Build(t, testDB.DB)
	testutil.NewRosterBuilder().WithOwner(owner).WithLineup(lineup).Build(t, testDB.DB) // private, excluded

	popular.ToggleLike(fanA.ID)
	popular.ToggleLike(fanB.ID)
	require.NoError(t, repo.Update(ctx, popular))

	page, err := repo.FindByPopularity(ctx, repository.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)

	require.Equal(t, int64(2), page.TotalItems)
	assert.Equal(t, popular.ID, page.Items[0].ID)
	assert.Equal(t, quiet.ID, page.Items[1].ID)
}
