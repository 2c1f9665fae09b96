package postgres_test

import (
	"context"
	"testing"

	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/repository/postgres"
	"github.com/loga/gacha-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_ConsumeReroll(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	t.Run("spends down to zero then refuses", func(t *testing.T) {
		testDB.Truncate(t)

		user, _ := testutil.NewUserBuilder().WithRerollCount(2).Build(t, testDB.DB)

		for i := 0; i < 2; i++ {
			consumed, err := repo.ConsumeReroll(ctx, user.ID)
			require.NoError(t, err)
			assert.True(t, consumed)
		}

		consumed, err := repo.ConsumeReroll(ctx, user.ID)
		require.NoError(t, err)
		assert.False(t, consumed)

		stored, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, stored.RerollCount)
	})

	t.Run("concurrent consumes never oversell the quota", func(t *testing.T) {
		testDB.Truncate(t)

		user, _ := testutil.NewUserBuilder().WithRerollCount(domain.DefaultRerollCount).Build(t, testDB.DB)

		results := make(chan bool, 10)
		for i := 0; i < 10; i++ {
			go func() {
				consumed, err := repo.ConsumeReroll(ctx, user.ID)
				if err != nil {
					consumed = false
				}
				results <- consumed
			}()
		}

		succeeded := 0
		for i := 0; i < 10; i++ {
			if <-results {
				succeeded++
			}
		}

		assert.Equal(t, domain.DefaultRerollCount, succeeded)

		stored, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, stored.RerollCount)
	})
}

func TestUserRepository_IncrementRosterStats(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	require.NoError(t, repo.IncrementRosterStats(ctx, user.ID, 1, 1))
	require.NoError(t, repo.IncrementRosterStats(ctx, user.ID, 1, 0))

	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.TotalRosterCount)
	assert.Equal(t, 1, stored.ChampionshipCount)

	// Deletes floor at zero
	require.NoError(t, repo.IncrementRosterStats(ctx, user.ID, -5, 0))

	stored, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.TotalRosterCount)
}

func TestUserRepository_IncrementGachaCount(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	require.NoError(t, repo.IncrementGachaCount(ctx, user.ID, 1))
	require.NoError(t, repo.IncrementGachaCount(ctx, user.ID, 5))

	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, stored.TotalGachaCount)
}
