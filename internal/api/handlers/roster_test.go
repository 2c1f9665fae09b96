package handlers_test

import (
	"net/http"
	"testing"

	"github.com/loga/gacha-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rosterResponse struct {
	ID                   string  `json:"id"`
	UserName             string  `json:"userName"`
	TopPlayerName        string  `json:"topPlayerName"`
	IsChampionshipRoster bool    `json:"isChampionshipRoster"`
	MatchedChampionship  *string `json:"matchedChampionship"`
	IsPublic             bool    `json:"isPublic"`
	LikeCount            int     `json:"likeCount"`
	GameMode             string  `json:"gameMode"`
	RankTier             *string `json:"rankTier"`
}

func TestRosterHandler_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)

	lineup := testutil.SeedLineup(t, ts.DB.DB, "T1")
	testutil.NewChampionshipBuilder().
		WithTournament("WORLDS").
		WithYear(2023).
		WithTeam("T1").
		WithLineup(lineup).
		Build(t, ts.DB.DB)

	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	body := map[string]any{
		"topPlayerId":     lineup[0].ID.String(),
		"junglePlayerId":  lineup[1].ID.String(),
		"midPlayerId":     lineup[2].ID.String(),
		"adcPlayerId":     lineup[3].ID.String(),
		"supportPlayerId": lineup[4].ID.String(),
		"isPublic":        true,
	}

	t.Run("requires authentication", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/rosters"), body, "")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("championship lineup is matched at creation", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/rosters"), body, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var result rosterResponse
		testutil.AssertJSONResponse(t, resp, &result)
		assert.True(t, result.IsChampionshipRoster)
		require.NotNil(t, result.MatchedChampionship)
		assert.Equal(t, "2023 WORLDS - T1", *result.MatchedChampionship)
		assert.True(t, result.IsPublic)
		assert.Equal(t, "NORMAL", result.GameMode)
	})

	t.Run("wrong slot yields invalid roster", func(t *testing.T) {
		bad := map[string]any{}
		for k, v := range body {
			bad[k] = v
		}
		bad["topPlayerId"] = lineup[2].ID.String() // mid card in top slot

		req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/rosters"), bad, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertErrorCode(t, resp, http.StatusBadRequest, "R002")
	})

	t.Run("malformed player id", func(t *testing.T) {
		bad := map[string]any{}
		for k, v := range body {
			bad[k] = v
		}
		bad["midPlayerId"] = "not-a-uuid"

		req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/rosters"), bad, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertErrorCode(t, resp, http.StatusBadRequest, "C001")
	})
}

func TestRosterHandler_LikeAndComments(t *testing.T) {
	ts := testutil.NewTestServer(t)

	roster := testutil.NewRosterBuilder().Public().Build(t, ts.DB.DB)
	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	t.Run("like toggles on and off", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/rosters/"+roster.ID.String()+"/like"), nil, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var liked rosterResponse
		testutil.AssertJSONResponse(t, resp, &liked)
		assert.Equal(t, 1, liked.LikeCount)

		req = testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/rosters/"+roster.ID.String()+"/like"), nil, token)
		resp2, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp2.Body.Close()

		var unliked rosterResponse
		testutil.AssertJSONResponse(t, resp2, &unliked)
		assert.Equal(t, 0, unliked.LikeCount)
	})

	t.Run("comment then list", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodPost,
			ts.APIURL("/rosters/"+roster.ID.String()+"/comments"),
			map[string]string{"content": "dream team"}, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusCreated, resp.StatusCode)

		listResp, err := http.Get(ts.APIURL("/rosters/" + roster.ID.String() + "/comments"))
		require.NoError(t, err)
		defer listResp.Body.Close()

		require.Equal(t, http.StatusOK, listResp.StatusCode)

		var page struct {
			Items []struct {
				Content string `json:"content"`
			} `json:"items"`
			Pagination struct {
				TotalItems int64 `json:"totalItems"`
			} `json:"pagination"`
		}
		testutil.AssertJSONResponse(t, listResp, &page)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "dream team", page.Items[0].Content)
		assert.Equal(t, int64(1), page.Pagination.TotalItems)
	})

	t.Run("empty comment is rejected", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodPost,
			ts.APIURL("/rosters/"+roster.ID.String()+"/comments"),
			map[string]string{"content": ""}, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertErrorCode(t, resp, http.StatusBadRequest, "C001")
	})
}

func TestRosterHandler_Delete(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("stranger cannot delete", func(t *testing.T) {
		roster := testutil.NewRosterBuilder().Build(t, ts.DB.DB)
		_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

		req := testutil.CreateAuthenticatedRequest(t, http.MethodDelete, ts.APIURL("/rosters/"+roster.ID.String()), nil, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertErrorCode(t, resp, http.StatusForbidden, "A002")
	})

	t.Run("missing roster", func(t *testing.T) {
		_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

		req := testutil.CreateAuthenticatedRequest(t, http.MethodDelete, ts.APIURL("/rosters/00000000-0000-0000-0000-000000000001"), nil, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertErrorCode(t, resp, http.StatusNotFound, "R001")
	})
}
