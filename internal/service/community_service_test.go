package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/repository"
	"github.com/loga/gacha-backend/internal/repository/postgres"
	"github.com/loga/gacha-backend/internal/service"
	"github.com/loga/gacha-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunityService_Comments(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	communityService := service.NewCommunityService(repos.Roster, repos.Comment)
	ctx := context.Background()

	author, _ := testutil.NewUserBuilder().WithDisplayName("author").Build(t, testDB.DB)
	roster := testutil.NewRosterBuilder().Public().Build(t, testDB.DB)

	t.Run("create snapshots author and bumps count", func(t *testing.T) {
		comment, err := communityService.CreateComment(ctx, roster.ID, author, "clean comp")
		require.NoError(t, err)
		assert.Equal(t, "author", comment.UserName)

		stored, err := repos.Roster.GetByID(ctx, roster.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.CommentCount)
	})

	t.Run("empty content is rejected", func(t *testing.T) {
		_, err := communityService.CreateComment(ctx, roster.ID, author, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown roster", func(t *testing.T) {
		_, err := communityService.CreateComment(ctx, uuid.New(), author, "hello")
		assert.ErrorIs(t, err, domain.ErrRosterNotFound)
	})

	t.Run("only author or admin deletes", func(t *testing.T) {
		comment, err := communityService.CreateComment(ctx, roster.ID, author, "second take")
		require.NoError(t, err)

		stranger, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		err = communityService.DeleteComment(ctx, roster.ID, comment.ID, stranger)
		assert.ErrorIs(t, err, domain.ErrForbidden)

		admin, _ := testutil.NewUserBuilder().AsAdmin().Build(t, testDB.DB)
		require.NoError(t, communityService.DeleteComment(ctx, roster.ID, comment.ID, admin))

		stored, err := repos.Roster.GetByID(ctx, roster.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.CommentCount)
	})

	t.Run("deleting a missing comment", func(t *testing.T) {
		err := communityService.DeleteComment(ctx, roster.ID, uuid.New(), author)
		assert.ErrorIs(t, err, domain.ErrCommentNotFound)
	})
}

func TestCommunityService_RosterFeeds(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	communityService := service.NewCommunityService(repos.Roster, repos.Comment)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	lineup := testutil.SeedLineup(t, testDB.DB, "FIX")

	testutil.NewRosterBuilder().WithOwner(owner).WithLineup(lineup).Public().Build(t, testDB.DB)
	testutil.NewRosterBuilder().WithOwner(owner).WithLineup(lineup).Build(t, testDB.DB) // private

	page, err := communityService.GetPublicRosters(ctx, repository.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalItems)

	// No championship rosters seeded
	champs, err := communityService.GetChampionshipRosters(ctx, repository.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(0), champs.TotalItems)
}
