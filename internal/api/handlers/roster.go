package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/repository"
	"github.com/loga/gacha-backend/internal/service"
)

type RosterHandler struct {
	rosterService *service.RosterService
	authService   *service.AuthService
}

func NewRosterHandler(rosterService *service.RosterService, authService *service.AuthService) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
		authService:   authService,
	}
}

type CreateRosterRequest struct {
	TopPlayerID     string `json:"topPlayerId"`
	JunglePlayerID  string `json:"junglePlayerId"`
	MidPlayerID     string `json:"midPlayerId"`
	ADCPlayerID     string `json:"adcPlayerId"`
	SupportPlayerID string `json:"supportPlayerId"`
	IsPublic        bool   `json:"isPublic"`
	GameMode        string `json:"gameMode"`
}

type RosterResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`

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

	IsChampionshipRoster bool    `json:"isChampionshipRoster"`
	MatchedChampionship  *string `json:"matchedChampionship"`
	MatchedYear          *int    `json:"matchedYear"`

	IsPublic     bool `json:"isPublic"`
	LikeCount    int  `json:"likeCount"`
	CommentCount int  `json:"commentCount"`

	GameMode  string    `json:"gameMode"`
	RankScore *int      `json:"rankScore,omitempty"`
	RankTier  *string   `json:"rankTier,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toRosterResponse(roster *domain.Roster) RosterResponse {
	return RosterResponse{
		ID:       roster.ID.String(),
		UserID:   roster.UserID.String(),
		UserName: roster.UserName,

		TopPlayerID:     roster.TopPlayerID.String(),
		JunglePlayerID:  roster.JunglePlayerID.String(),
		MidPlayerID:     roster.MidPlayerID.String(),
		ADCPlayerID:     roster.ADCPlayerID.String(),
		SupportPlayerID: roster.SupportPlayerID.String(),

		TopPlayerName:     roster.TopPlayerName,
		JunglePlayerName:  roster.JunglePlayerName,
		MidPlayerName:     roster.MidPlayerName,
		ADCPlayerName:     roster.ADCPlayerName,
		SupportPlayerName: roster.SupportPlayerName,

		IsChampionshipRoster: roster.IsChampionshipRoster,
		MatchedChampionship:  roster.MatchedChampionship,
		MatchedYear:          roster.MatchedYear,

		IsPublic:     roster.IsPublic,
		LikeCount:    roster.LikeCount,
		CommentCount: roster.CommentCount,

		GameMode:  string(roster.GameMode),
		RankScore: roster.RankScore,
		RankTier:  roster.RankTier,
		CreatedAt: roster.CreatedAt,
	}
}

func (h *RosterHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r, "roster.Create", h.authService)
	if user == nil {
		return
	}

	var req CreateRosterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "roster.Create", domain.ErrInvalidInput)
		return
	}

	ids := make([]uuid.UUID, 5)
	for i, raw := range []string{req.TopPlayerID, req.JunglePlayerID, req.MidPlayerID, req.ADCPlayerID, req.SupportPlayerID} {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, "roster.Create", domain.ErrInvalidInput)
			return
		}
		ids[i] = id
	}

	gameMode, err := domain.ParseGameMode(req.GameMode)
	if err != nil {
		writeError(w, "roster.Create", err)
		return
	}

	roster, err := h.rosterService.CreateRoster(r.Context(), user.ID, service.CreateRosterInput{
		TopPlayerID:     ids[0],
		JunglePlayerID:  ids[1],
		MidPlayerID:     ids[2],
		ADCPlayerID:     ids[3],
		SupportPlayerID: ids[4],
		IsPublic:        req.IsPublic,
		GameMode:        gameMode,
	})
	if err != nil {
		writeError(w, "roster.Create", err)
		return
	}

	writeJSON(w, http.StatusCreated, toRosterResponse(roster))
}

func (h *RosterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "roster.Get", domain.ErrInvalidInput)
		return
	}

	roster, err := h.rosterService.GetRosterByID(r.Context(), id)
	if err != nil {
		writeError(w, "roster.Get", err)
		return
	}

	writeJSON(w, http.StatusOK, toRosterResponse(roster))
}

// Search handles GET /rosters with the optional roster filter set.
func (h *RosterHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cond := repository.RosterSearchCondition{
		Tier: q.Get("tier"),
	}

	if v := q.Get("isPublic"); v != "" {
		public := v == "true"
		cond.IsPublic = &public
	}
	if v := q.Get("isChampionship"); v != "" {
		championship := v == "true"
		cond.IsChampionship = &championship
	}
	if v := q.Get("gameMode"); v != "" {
		gameMode, err := domain.ParseGameMode(v)
		if err != nil {
			writeError(w, "roster.Search", err)
			return
		}
		cond.GameMode = &gameMode
	}

	page, err := h.rosterService.SearchRosters(r.Context(), cond, parsePageRequest(r))
	if err != nil {
		writeError(w, "roster.Search", err)
		return
	}

	writeJSON(w, http.StatusOK, pageEnvelope(page, toRosterResponse))
}

// GetMine handles GET /users/me/rosters.
func (h *RosterHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r, "roster.GetMine", h.authService)
	if user == nil {
		return
	}

	page, err := h.rosterService.GetUserRosters(r.Context(), user.ID, parsePageRequest(r))
	if err != nil {
		writeError(w, "roster.GetMine", err)
		return
	}

	writeJSON(w, http.StatusOK, pageEnvelope(page, toRosterResponse))
}

func (h *RosterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r, "roster.Delete", h.authService)
	if user == nil {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "roster.Delete", domain.ErrInvalidInput)
		return
	}

	if err := h.rosterService.DeleteRoster(r.Context(), id, user); err != nil {
		writeError(w, "roster.Delete", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *RosterHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r, "roster.ToggleLike", h.authService)
	if user == nil {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "roster.ToggleLike", domain.ErrInvalidInput)
		return
	}

	roster, err := h.rosterService.ToggleLike(r.Context(), id, user.ID)
	if err != nil {
		writeError(w, "roster.ToggleLike", err)
		return
	}

	writeJSON(w, http.StatusOK, toRosterResponse(roster))
}

func (h *RosterHandler) SetPublic(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, true)
}

func (h *RosterHandler) SetPrivate(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, false)
}

func (h *RosterHandler) setVisibility(w http.ResponseWriter, r *http.Request, public bool) {
	user := requireUser(w, r, "roster.setVisibility", h.authService)
	if user == nil {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "roster.setVisibility", domain.ErrInvalidInput)
		return
	}

	roster, err := h.rosterService.SetVisibility(r.Context(), id, user, public)
	if err != nil {
		writeError(w, "roster.setVisibility", err)
		return
	}

	writeJSON(w, http.StatusOK, toRosterResponse(roster))
}
