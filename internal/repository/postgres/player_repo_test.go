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

func TestPlayerRepository_FindRandomByPosition(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewPlayerRepository(testDB.DB)
	ctx := context.Background()

	t.Run("empty pool returns not found", func(t *testing.T) {
		testDB.Truncate(t)

		_, err := repo.FindRandomByPosition(ctx, domain.PositionTop)
		assert.Error(t, err)
	})

	t.Run("only the requested position is sampled", func(t *testing.T) {
		testDB.Truncate(t)

		testutil.NewPlayerBuilder().WithPosition(domain.PositionTop).Build(t, testDB.DB)
		testutil.NewPlayerBuilder().WithPosition(domain.PositionTop).Build(t, testDB.DB)
		testutil.NewPlayerBuilder().WithPosition(domain.PositionJungle).Build(t, testDB.DB)

		for i := 0; i < 20; i++ {
			player, err := repo.FindRandomByPosition(ctx, domain.PositionTop)
			require.NoError(t, err)
			assert.Equal(t, domain.PositionTop, player.Position)
		}
	})
}

func TestPlayerRepository_IncrementPickedCount(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewPlayerRepository(testDB.DB)
	ctx := context.Background()

	player := testutil.NewPlayerBuilder().WithPickedCount(7).Build(t, testDB.DB)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.IncrementPickedCount(ctx, player.ID))
	}

	stored, err := repo.GetByID(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.PickedCount)
}

func TestPlayerRepository_Search(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewPlayerRepository(testDB.DB)
	ctx := context.Background()

	seed := func(t *testing.T) {
		t.Helper()
		testDB.Truncate(t)

		testutil.NewPlayerBuilder().
			WithName("Faker").WithPosition(domain.PositionMid).WithRegion("LCK").WithTeam("T1").
			WithTitle("WORLDS", 2023, "T1").
			Build(t, testDB.DB)
		testutil.NewPlayerBuilder().
			WithName("Chovy").WithPosition(domain.PositionMid).WithRegion("LCK").WithTeam("GEN").
			Build(t, testDB.DB)
		testutil.NewPlayerBuilder().
			WithName("Caps").WithPosition(domain.PositionMid).WithRegion("LEC").WithTeam("G2").
			Build(t, testDB.DB)
		testutil.NewPlayerBuilder().
			WithName("Keria").WithPosition(domain.PositionSupport).WithRegion("LCK").WithTeam("T1").
			WithTitle("WORLDS", 2023, "T1").
			Build(t, testDB.DB)
		testutil.NewPlayerBuilder().
			WithName("Zeus").WithPosition(domain.PositionTop).WithRegion("LCK").WithTeam("T1").
			Inactive().
			Build(t, testDB.DB)
	}

	mid := domain.PositionMid
	active := true
	hasTitle := true
	noTitle := false

	tests := []struct {
		name      string
		cond      repository.PlayerSearchCondition
		wantNames []string
	}{
		{
			name:      "no filters returns everyone",
			cond:      repository.PlayerSearchCondition{},
			wantNames: []string{"Caps", "Chovy", "Faker", "Keria", "Zeus"},
		},
		{
			name:      "filters are ANDed together",
			cond:      repository.PlayerSearchCondition{Position: &mid, Region: "LCK"},
			wantNames: []string{"Chovy", "Faker"},
		},
		{
			name:      "name match is a case-insensitive substring",
			cond:      repository.PlayerSearchCondition{Name: "fak"},
			wantNames: []string{"Faker"},
		},
		{
			name:      "team filter",
			cond:      repository.PlayerSearchCondition{Team: "T1"},
			wantNames: []string{"Faker", "Keria", "Zeus"},
		},
		{
			name:      "active filter",
			cond:      repository.PlayerSearchCondition{Region: "LCK", IsActive: &active},
			wantNames: []string{"Chovy", "Faker", "Keria"},
		},
		{
			name:      "championship winners only",
			cond:      repository.PlayerSearchCondition{HasChampionship: &hasTitle},
			wantNames: []string{"Faker", "Keria"},
		},
		{
			name:      "players without a title",
			cond:      repository.PlayerSearchCondition{HasChampionship: &noTitle},
			wantNames: []string{"Caps", "Chovy", "Zeus"},
		},
		{
			name:      "all filters combined",
			cond:      repository.PlayerSearchCondition{Position: &mid, Region: "LCK", Team: "T1", HasChampionship: &hasTitle},
			wantNames: []string{"Faker"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed(t)

			page, err := repo.Search(ctx, tt.cond, repository.PageRequest{Page: 1, Limit: 50})
			require.NoError(t, err)

			names := make([]string, len(page.Items))
			for i, p := range page.Items {
				names[i] = p.Name
			}
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, int64(len(tt.wantNames)), page.TotalItems)
		})
	}

	t.Run("pagination clamps and counts", func(t *testing.T) {
		seed(t)

		page, err := repo.Search(ctx, repository.PlayerSearchCondition{}, repository.PageRequest{Page: 2, Limit: 2})
		require.NoError(t, err)

		assert.Equal(t, int64(5), page.TotalItems)
		assert.Equal(t, 3, page.TotalPages())
		assert.Len(t, page.Items, 2)
		assert.Equal(t, []string{"Faker", "Keria"}, []string{page.Items[0].Name, page.Items[1].Name})
	})
}

func TestPlayerRepository_TopPicked(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewPlayerRepository(testDB.DB)
	ctx := context.Background()

	testutil.NewPlayerBuilder().WithName("low").WithPosition(domain.PositionMid).WithPickedCount(1).Build(t, testDB.DB)
	testutil.NewPlayerBuilder().WithName("high").WithPosition(domain.PositionMid).WithPickedCount(9).Build(t, testDB.DB)
	testutil.NewPlayerBuilder().WithName("topLaner").WithPosition(domain.PositionTop).WithPickedCount(5).Build(t, testDB.DB)

	top, err := repo.GetTopPicked(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "high", top[0].Name)
	assert.Equal(t, "topLaner", top[1].Name)

	mids, err := repo.GetTopPickedByPosition(ctx, domain.PositionMid, 1)
	require.NoError(t, err)
	require.Len(t, mids, 1)
	assert.Equal(t, "high", mids[0].Name)
}
