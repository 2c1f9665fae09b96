package handlers_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/loga/gacha-backend/internal/testutil"
	"github.com/loga/gacha-backend/internal/ws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedHandler_ChampionshipPull(t *testing.T) {
	ts := testutil.NewTestServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(ts.FeedURL(), nil)
	require.NoError(t, err)
	defer conn.Close()

	// Give the hub a beat to register the client before broadcasting
	time.Sleep(100 * time.Millisecond)

	ts.Hub.AnnounceChampionshipPull("2023 WORLDS - T1", 2023, "lucky_one")

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)

	var event ws.Event
	require.NoError(t, json.Unmarshal(message, &event))

	assert.Equal(t, ws.EventChampionshipPull, event.Type)
	assert.Equal(t, "2023 WORLDS - T1", event.Championship)
	assert.Equal(t, 2023, event.Year)
	assert.Equal(t, "lucky_one", event.UserName)
	assert.False(t, event.At.IsZero())
}
