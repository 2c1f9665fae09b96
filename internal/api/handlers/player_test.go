package handlers_test

import (
	"net/http"
	"testing"

	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerHandler_Search(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewPlayerBuilder().
		WithName("Faker").WithPosition(domain.PositionMid).WithRegion("LCK").WithTeam("T1").
		WithTitle("WORLDS", 2023, "T1").
		Build(t, ts.DB.DB)
	testutil.NewPlayerBuilder().
		WithName("Caps").WithPosition(domain.PositionMid).WithRegion("LEC").WithTeam("G2").
		Build(t, ts.DB.DB)

	type playerPage struct {
		Items []struct {
			Name            string `json:"name"`
			HasChampionship bool   `json:"hasChampionship"`
		} `json:"items"`
		Pagination struct {
			TotalItems int64 `json:"totalItems"`
		} `json:"pagination"`
	}

	t.Run("region filter", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/players?region=LCK"))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var page playerPage
		testutil.AssertJSONResponse(t, resp, &page)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Faker", page.Items[0].Name)
		assert.True(t, page.Items[0].HasChampionship)
	})

	t.Run("position plus championship filter", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/players?position=MID&hasChampionship=false"))
		require.NoError(t, err)
		defer resp.Body.Close()

		var page playerPage
		testutil.AssertJSONResponse(t, resp, &page)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Caps", page.Items[0].Name)
	})

	t.Run("invalid position is rejected", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/players?position=GOALIE"))
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertErrorCode(t, resp, http.StatusBadRequest, "C001")
	})

	t.Run("invalid boolean is rejected", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/players?isActive=maybe"))
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertErrorCode(t, resp, http.StatusBadRequest, "C001")
	})
}

func TestPlayerHandler_Get(t *testing.T) {
	ts := testutil.NewTestServer(t)

	player := testutil.NewPlayerBuilder().WithName("Keria").WithPosition(domain.PositionSupport).Build(t, ts.DB.DB)

	t.Run("found", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/players/" + player.ID.String()))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got struct {
			Name     string `json:"name"`
			Position string `json:"position"`
		}
		testutil.AssertJSONResponse(t, resp, &got)
		assert.Equal(t, "Keria", got.Name)
		assert.Equal(t, "SUPPORT", got.Position)
	})

	t.Run("missing", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/players/00000000-0000-0000-0000-000000000009"))
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertErrorCode(t, resp, http.StatusNotFound, "P001")
	})
}
