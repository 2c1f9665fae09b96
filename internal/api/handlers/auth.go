package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/loga/gacha-backend/internal/api/middleware"
	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
	Email       string `json:"email"`
}

type LoginRequest struct {
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

type UserResponse struct {
	ID                string `json:"id"`
	DisplayName       string `json:"displayName"`
	Email             string `json:"email,omitempty"`
	Role              string `json:"role"`
	RerollCount       int    `json:"rerollCount"`
	IsPremium         bool   `json:"isPremium"`
	TotalGachaCount   int    `json:"totalGachaCount"`
	TotalRosterCount  int    `json:"totalRosterCount"`
	ChampionshipCount int    `json:"championshipCount"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:                u.ID.String(),
		DisplayName:       u.DisplayName,
		Email:             u.Email,
		Role:              string(u.Role),
		RerollCount:       u.RerollCount,
		IsPremium:         u.HasPremium(),
		TotalGachaCount:   u.TotalGachaCount,
		TotalRosterCount:  u.TotalRosterCount,
		ChampionshipCount: u.ChampionshipCount,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "auth.Register", domain.ErrInvalidInput)
		return
	}

	if req.Password == "" || req.DisplayName == "" {
		writeError(w, "auth.Register", domain.ErrInvalidInput)
		return
	}

	result, err := h.authService.Register(r.Context(), service.RegisterInput{
		DisplayName: req.DisplayName,
		Password:    req.Password,
		Email:       req.Email,
	})
	if err != nil {
		writeError(w, "auth.Register", err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		User:         toUserResponse(result.User),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "auth.Login", domain.ErrInvalidInput)
		return
	}

	if req.DisplayName == "" || req.Password == "" {
		writeError(w, "auth.Login", domain.ErrInvalidInput)
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		DisplayName: req.DisplayName,
		Password:    req.Password,
	})
	if err != nil {
		writeError(w, "auth.Login", err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		User:         toUserResponse(result.User),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, "auth.Me", domain.ErrUnauthorized)
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeError(w, "auth.Me", err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, "auth.Logout", domain.ErrUnauthorized)
		return
	}

	if err := h.authService.Logout(r.Context(), userID); err != nil {
		writeError(w, "auth.Logout", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
