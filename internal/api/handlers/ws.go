package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/loga/gacha-backend/internal/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type FeedHandler struct {
	hub *ws.Hub
}

func NewFeedHandler(hub *ws.Hub) *FeedHandler {
	return &FeedHandler{hub: hub}
}

// Subscribe upgrades the connection and attaches it to the gacha feed.
func (h *FeedHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ERROR [ws.Subscribe] upgrade failed: %v", err)
		return
	}

	ws.NewClient(h.hub, conn).Register()
}
