package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/repository"
	"github.com/loga/gacha-backend/internal/service"
)

type PlayerHandler struct {
	playerService *service.PlayerService
}

func NewPlayerHandler(playerService *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

type PlayerResponse struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	RealName        string               `json:"realName"`
	RealNameKo      string               `json:"realNameKo,omitempty"`
	Position        string               `json:"position"`
	Nationality     string               `json:"nationality,omitempty"`
	ProfileImage    string               `json:"profileImage,omitempty"`
	Teams           []string             `json:"teams"`
	CurrentTeam     string               `json:"currentTeam"`
	Region          string               `json:"region"`
	Championships   []domain.PlayerTitle `json:"championships"`
	HasChampionship bool                 `json:"hasChampionship"`
	PickedCount     int                  `json:"pickedCount"`
	IsActive        bool                 `json:"isActive"`
}

func toPlayerResponse(p *domain.Player) PlayerResponse {
	teams := []string{}
	if len(p.Teams) > 0 {
		json.Unmarshal(p.Teams, &teams)
	}
	titles := []domain.PlayerTitle{}
	if len(p.Championships) > 0 {
		json.Unmarshal(p.Championships, &titles)
	}

	return PlayerResponse{
		ID:              p.ID.String(),
		Name:            p.Name,
		RealName:        p.RealName,
		RealNameKo:      p.RealNameKo,
		Position:        string(p.Position),
		Nationality:     p.Nationality,
		ProfileImage:    p.ProfileImage,
		Teams:           teams,
		CurrentTeam:     p.CurrentTeam,
		Region:          p.Region,
		Championships:   titles,
		HasChampionship: len(titles) > 0,
		PickedCount:     p.PickedCount,
		IsActive:        p.IsActive,
	}
}

func toPlayerResponses(players []*domain.Player) []PlayerResponse {
	out := make([]PlayerResponse, len(players))
	for i, p := range players {
		out[i] = toPlayerResponse(p)
	}
	return out
}

// Search handles GET /players with the optional filter set.
func (h *PlayerHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	cond := repository.PlayerSearchCondition{
		Name:   q.Get("name"),
		Region: q.Get("region"),
		Team:   q.Get("team"),
	}

	if v := q.Get("position"); v != "" {
		pos, err := domain.ParsePosition(v)
		if err != nil {
			writeError(w, "player.Search", err)
			return
		}
		cond.Position = &pos
	}
	if v := q.Get("isActive"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, "player.Search", domain.ErrInvalidInput)
			return
		}
		cond.IsActive = &active
	}
	if v := q.Get("hasChampionship"); v != "" {
		has, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, "player.Search", domain.ErrInvalidInput)
			return
		}
		cond.HasChampionship = &has
	}

	page, err := h.playerService.SearchPlayers(r.Context(), cond, parsePageRequest(r))
	if err != nil {
		writeError(w, "player.Search", err)
		return
	}

	writeJSON(w, http.StatusOK, pageEnvelope(page, toPlayerResponse))
}

func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "player.Get", domain.ErrInvalidInput)
		return
	}

	player, err := h.playerService.GetPlayerByID(r.Context(), id)
	if err != nil {
		writeError(w, "player.Get", err)
		return
	}

	writeJSON(w, http.StatusOK, toPlayerResponse(player))
}

// TopPicked handles GET /players/top-picked.
func (h *PlayerHandler) TopPicked(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.GetTopPickedPlayers(r.Context())
	if err != nil {
		writeError(w, "player.TopPicked", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"players": toPlayerResponses(players)})
}

// TopByPosition handles GET /players/position/{position}/top.
func (h *PlayerHandler) TopByPosition(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	players, err := h.playerService.GetTopPlayersByPosition(r.Context(), chi.URLParam(r, "position"), limit)
	if err != nil {
		writeError(w, "player.TopByPosition", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"players": toPlayerResponses(players)})
}
