package ws

import (
	"encoding/json"
	"log"
	"time"
)

// Event is a feed message pushed to every connected client.
type Event struct {
	Type         string    `json:"type"`
	Championship string    `json:"championship,omitempty"`
	Year         int       `json:"year,omitempty"`
	UserName     string    `json:"userName,omitempty"`
	At           time.Time `json:"at"`
}

const EventChampionshipPull = "championship_pull"

// Hub fans gacha feed events out to subscribed clients. All bookkeeping
// happens on the Run goroutine.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer, drop it
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// AnnounceChampionshipPull broadcasts a full-roster draw that hit a catalog
// lineup. userName is empty for anonymous pulls.
func (h *Hub) AnnounceChampionshipPull(championship string, year int, userName string) {
	data, err := json.Marshal(Event{
		Type:         EventChampionshipPull,
		Championship: championship,
		Year:         year,
		UserName:     userName,
		At:           time.Now(),
	})
	if err != nil {
		log.Printf("ERROR [ws.Hub] failed to marshal event: %v", err)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		log.Printf("ERROR [ws.Hub] broadcast buffer full, dropping event")
	}
}
