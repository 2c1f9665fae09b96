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

type CommunityHandler struct {
	communityService *service.CommunityService
	authService      *service.AuthService
}

func NewCommunityHandler(communityService *service.CommunityService, authService *service.AuthService) *CommunityHandler {
	return &CommunityHandler{
		communityService: communityService,
		authService:      authService,
	}
}

type CommentResponse struct {
	ID               string    `json:"id"`
	RosterID         string    `json:"rosterId"`
	UserID           string    `json:"userId"`
	UserName         string    `json:"userName"`
	UserProfileImage string    `json:"userProfileImage,omitempty"`
	Content          string    `json:"content"`
	CreatedAt        time.Time `json:"createdAt"`
}

func toCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:               c.ID.String(),
		RosterID:         c.RosterID.String(),
		UserID:           c.UserID.String(),
		UserName:         c.UserName,
		UserProfileImage: c.UserProfileImage,
		Content:          c.Content,
		CreatedAt:        c.CreatedAt,
	}
}

// PublicRosters handles GET /community/rosters, newest first.
func (h *CommunityHandler) PublicRosters(w http.ResponseWriter, r *http.Request) {
	page, err := h.communityService.GetPublicRosters(r.Context(), parsePageRequest(r))
	if err != nil {
		writeError(w, "community.PublicRosters", err)
		return
	}

	writeJSON(w, http.StatusOK, pageEnvelope(page, toRosterResponse))
}

// PopularRosters handles GET /community/rosters/popular, most liked first.
func (h *CommunityHandler) PopularRosters(w http.ResponseWriter, r *http.Request) {
	page, err := h.communityService.GetPopularRosters(r.Context(), parsePageRequest(r))
	if err != nil {
		writeError(w, "community.PopularRosters", err)
		return
	}

	writeJSON(w, http.StatusOK, pageEnvelope(page, toRosterResponse))
}

// ChampionshipRosters handles GET /community/rosters/championship.
func (h *CommunityHandler) ChampionshipRosters(w http.ResponseWriter, r *http.Request) {
	page, err := h.communityService.GetChampionshipRosters(r.Context(), parsePageRequest(r))
	if err != nil {
		writeError(w, "community.ChampionshipRosters", err)
		return
	}

	writeJSON(w, http.StatusOK, pageEnvelope(page, toRosterResponse))
}

func (h *CommunityHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	rosterID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "community.GetComments", domain.ErrInvalidInput)
		return
	}

	page, err := h.communityService.GetComments(r.Context(), rosterID, parsePageRequest(r))
	if err != nil {
		writeError(w, "community.GetComments", err)
		return
	}

	writeJSON(w, http.StatusOK, pageEnvelope(page, toCommentResponse))
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

func (h *CommunityHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r, "community.CreateComment", h.authService)
	if user == nil {
		return
	}

	rosterID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "community.CreateComment", domain.ErrInvalidInput)
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "community.CreateComment", domain.ErrInvalidInput)
		return
	}

	comment, err := h.communityService.CreateComment(r.Context(), rosterID, user, req.Content)
	if err != nil {
		writeError(w, "community.CreateComment", err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentResponse(comment))
}

func (h *CommunityHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r, "community.DeleteComment", h.authService)
	if user == nil {
		return
	}

	rosterID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "community.DeleteComment", domain.ErrInvalidInput)
		return
	}
	commentID, err := uuid.Parse(chi.URLParam(r, "commentId"))
	if err != nil {
		writeError(w, "community.DeleteComment", domain.ErrInvalidInput)
		return
	}

	if err := h.communityService.DeleteComment(r.Context(), rosterID, commentID, user); err != nil {
		writeError(w, "community.DeleteComment", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
