package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/service"
)

type ChampionshipHandler struct {
	championshipService *service.ChampionshipService
	authService         *service.AuthService
}

func NewChampionshipHandler(championshipService *service.ChampionshipService, authService *service.AuthService) *ChampionshipHandler {
	return &ChampionshipHandler{
		championshipService: championshipService,
		authService:         authService,
	}
}

type ChampionshipResponse struct {
	ID          string `json:"id"`
	Tournament  string `json:"tournament"`
	Year        int    `json:"year"`
	Team        string `json:"team"`
	Region      string `json:"region,omitempty"`
	DisplayName string `json:"displayName"`

	TopPlayerID     string `json:"topPlayerId"`
	JunglePlayerID  string `json:"junglePlayerId"`
	MidPlayerID     string `json:"midPlayerId"`
	ADCPlayerID     string `json:"adcPlayerId"`
	SupportPlayerID string `json:"supportPlayerId"`

	TopPlayerName     string `json:"topPlayerName"`
	JunglePlayerName  string `json:"junglePlayerName"`
	MidPlayerName     string `json:"midPlayerName"`
	ADCPlayerName     string `json:"adcPlayerName"`
	SupportPlayerName string `json:"supportPlayerName"`

	CreatedAt time.Time `json:"createdAt"`
}

func toChampionshipResponse(c *domain.Championship) ChampionshipResponse {
	return ChampionshipResponse{
		ID:          c.ID.String(),
		Tournament:  c.Tournament,
		Year:        c.Year,
		Team:        c.Team,
		Region:      c.Region,
		DisplayName: c.DisplayName(),

		TopPlayerID:     c.TopPlayerID.String(),
		JunglePlayerID:  c.JunglePlayerID.String(),
		MidPlayerID:     c.MidPlayerID.String(),
		ADCPlayerID:     c.ADCPlayerID.String(),
		SupportPlayerID: c.SupportPlayerID.String(),

		TopPlayerName:     c.TopPlayerName,
		JunglePlayerName:  c.JunglePlayerName,
		MidPlayerName:     c.MidPlayerName,
		ADCPlayerName:     c.ADCPlayerName,
		SupportPlayerName: c.SupportPlayerName,

		CreatedAt: c.CreatedAt,
	}
}

func (h *ChampionshipHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	championships, err := h.championshipService.GetAll(r.Context())
	if err != nil {
		writeError(w, "championship.GetAll", err)
		return
	}

	out := make([]ChampionshipResponse, len(championships))
	for i, c := range championships {
		out[i] = toChampionshipResponse(c)
	}

	writeJSON(w, http.StatusOK, map[string]any{"championships": out})
}

func (h *ChampionshipHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "championship.Get", domain.ErrInvalidInput)
		return
	}

	championship, err := h.championshipService.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, "championship.Get", err)
		return
	}

	writeJSON(w, http.StatusOK, toChampionshipResponse(championship))
}

type CreateChampionshipRequest struct {
	Tournament      string `json:"tournament"`
	Year            int    `json:"year"`
	Team            string `json:"team"`
	Region          string `json:"region"`
	TopPlayerID     string `json:"topPlayerId"`
	JunglePlayerID  string `json:"junglePlayerId"`
	MidPlayerID     string `json:"midPlayerId"`
	ADCPlayerID     string `json:"adcPlayerId"`
	SupportPlayerID string `json:"supportPlayerId"`
}

// Create seeds a catalog lineup. Admin-only.
func (h *ChampionshipHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r, "championship.Create", h.authService)
	if user == nil {
		return
	}
	if !user.IsAdmin() {
		writeError(w, "championship.Create", domain.ErrForbidden)
		return
	}

	var req CreateChampionshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "championship.Create", domain.ErrInvalidInput)
		return
	}

	ids := make([]uuid.UUID, 5)
	for i, raw := range []string{req.TopPlayerID, req.JunglePlayerID, req.MidPlayerID, req.ADCPlayerID, req.SupportPlayerID} {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, "championship.Create", domain.ErrInvalidInput)
			return
		}
		ids[i] = id
	}

	championship, err := h.championshipService.Create(r.Context(), service.CreateChampionshipInput{
		Tournament:      req.Tournament,
		Year:            req.Year,
		Team:            req.Team,
		Region:          req.Region,
		TopPlayerID:     ids[0],
		JunglePlayerID:  ids[1],
		MidPlayerID:     ids[2],
		ADCPlayerID:     ids[3],
		SupportPlayerID: ids[4],
	})
	if err != nil {
		writeError(w, "championship.Create", err)
		return
	}

	writeJSON(w, http.StatusCreated, toChampionshipResponse(championship))
}
