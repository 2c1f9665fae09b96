package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/loga/gacha-backend/internal/api/middleware"
	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/service"
)

type GachaHandler struct {
	gachaService *service.GachaService
}

func NewGachaHandler(gachaService *service.GachaService) *GachaHandler {
	return &GachaHandler{gachaService: gachaService}
}

// GachaResultResponse carries either a single drawn player or the full
// five-position roster plus its championship-match outcome.
type GachaResultResponse struct {
	Player *PlayerResponse `json:"player,omitempty"`

	Top     *PlayerResponse `json:"top,omitempty"`
	Jungle  *PlayerResponse `json:"jungle,omitempty"`
	Mid     *PlayerResponse `json:"mid,omitempty"`
	ADC     *PlayerResponse `json:"adc,omitempty"`
	Support *PlayerResponse `json:"support,omitempty"`

	IsChampionshipRoster bool    `json:"isChampionshipRoster"`
	MatchedChampionship  *string `json:"matchedChampionship"`
	MatchedYear          *int    `json:"matchedYear"`
}

func toGachaResultResponse(result *service.GachaResult) GachaResultResponse {
	resp := GachaResultResponse{
		IsChampionshipRoster: result.IsChampionshipRoster,
		MatchedChampionship:  result.MatchedChampionship,
		MatchedYear:          result.MatchedYear,
	}

	single := func(p *domain.Player) *PlayerResponse {
		if p == nil {
			return nil
		}
		r := toPlayerResponse(p)
		return &r
	}

	resp.Player = single(result.Player)
	resp.Top = single(result.Top)
	resp.Jungle = single(result.Jungle)
	resp.Mid = single(result.Mid)
	resp.ADC = single(result.ADC)
	resp.Support = single(result.Support)

	return resp
}

func optionalUserID(r *http.Request) *uuid.UUID {
	if userID, ok := middleware.GetUserID(r.Context()); ok {
		return &userID
	}
	return nil
}

// Draw handles POST /gacha/draw/{position}; anonymous callers allowed.
func (h *GachaHandler) Draw(w http.ResponseWriter, r *http.Request) {
	result, err := h.gachaService.DrawByPosition(r.Context(), chi.URLParam(r, "position"), optionalUserID(r))
	if err != nil {
		writeError(w, "gacha.Draw", err)
		return
	}

	writeJSON(w, http.StatusOK, toGachaResultResponse(result))
}

// DrawFull handles POST /gacha/draw/full.
func (h *GachaHandler) DrawFull(w http.ResponseWriter, r *http.Request) {
	result, err := h.gachaService.DrawFullRoster(r.Context(), optionalUserID(r))
	if err != nil {
		writeError(w, "gacha.DrawFull", err)
		return
	}

	writeJSON(w, http.StatusOK, toGachaResultResponse(result))
}

// Reroll handles POST /gacha/reroll/{position}; requires authentication and
// consumes quota for non-premium users.
func (h *GachaHandler) Reroll(w http.ResponseWriter, r *http.Request) {
	result, err := h.gachaService.Reroll(r.Context(), chi.URLParam(r, "position"), optionalUserID(r))
	if err != nil {
		writeError(w, "gacha.Reroll", err)
		return
	}

	writeJSON(w, http.StatusOK, toGachaResultResponse(result))
}
