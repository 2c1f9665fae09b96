package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/loga/gacha-backend/internal/api/middleware"
	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/repository"
	"github.com/loga/gacha-backend/internal/service"
)

// ErrorResponse is the failure envelope: a stable machine code plus a human
// message.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

// PageResponse wraps a page of items with its pagination block.
type PageResponse[T any] struct {
	Items      []T                `json:"items"`
	Pagination PaginationResponse `json:"pagination"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps business errors onto their envelope; anything unexpected
// becomes a generic 500 that leaks nothing.
func writeError(w http.ResponseWriter, component string, err error) {
	var appErr *domain.Error
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.Status, ErrorResponse{Code: appErr.Code, Message: appErr.Message})
		return
	}

	if errors.Is(err, service.ErrInvalidCredentials) {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Code: domain.ErrUnauthorized.Code, Message: "invalid credentials"})
		return
	}

	log.Printf("ERROR [%s]: %v", component, err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Code:    domain.ErrInternal.Code,
		Message: domain.ErrInternal.Message,
	})
}

// parsePageRequest reads page/limit query params; out-of-range values are
// clamped downstream.
func parsePageRequest(r *http.Request) repository.PageRequest {
	page := repository.PageRequest{Page: 1, Limit: repository.DefaultPageLimit}
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		page.Page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		page.Limit = v
	}
	return page.Normalize()
}

// requireUser resolves the authenticated user or writes the failure and
// returns nil.
func requireUser(w http.ResponseWriter, r *http.Request, component string, authService *service.AuthService) *domain.User {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, component, domain.ErrUnauthorized)
		return nil
	}

	user, err := authService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeError(w, component, err)
		return nil
	}
	return user
}

func pageEnvelope[T, U any](page *repository.Page[T], mapFn func(T) U) PageResponse[U] {
	items := make([]U, len(page.Items))
	for i, item := range page.Items {
		items[i] = mapFn(item)
	}
	return PageResponse[U]{
		Items: items,
		Pagination: PaginationResponse{
			Page:       page.Page,
			Limit:      page.Limit,
			TotalItems: page.TotalItems,
			TotalPages: page.TotalPages(),
		},
	}
}
