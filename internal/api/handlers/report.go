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

type ReportHandler struct {
	reportService *service.BugReportService
	authService   *service.AuthService
}

func NewReportHandler(reportService *service.BugReportService, authService *service.AuthService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		authService:   authService,
	}
}

type ReportResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	UserEmail     string     `json:"userEmail,omitempty"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Type          string     `json:"type"`
	ScreenshotURL string     `json:"screenshotUrl,omitempty"`
	Status        string     `json:"status"`
	AdminNote     string     `json:"adminNote,omitempty"`
	ResolvedAt    *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func toReportResponse(report *domain.BugReport) ReportResponse {
	return ReportResponse{
		ID:            report.ID.String(),
		UserID:        report.UserID.String(),
		UserEmail:     report.UserEmail,
		Title:         report.Title,
		Description:   report.Description,
		Type:          string(report.Type),
		ScreenshotURL: report.ScreenshotURL,
		Status:        string(report.Status),
		AdminNote:     report.AdminNote,
		ResolvedAt:    report.ResolvedAt,
		CreatedAt:     report.CreatedAt,
		UpdatedAt:     report.UpdatedAt,
	}
}

type CreateReportRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	ScreenshotURL string `json:"screenshotUrl"`
}

func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r, "report.Create", h.authService)
	if user == nil {
		return
	}

	var req CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "report.Create", domain.ErrInvalidInput)
		return
	}

	reportType, err := domain.ParseReportType(req.Type)
	if err != nil {
		writeError(w, "report.Create", err)
		return
	}

	report, err := h.reportService.CreateReport(r.Context(), user, service.CreateReportInput{
		Title:         req.Title,
		Description:   req.Description,
		Type:          reportType,
		ScreenshotURL: req.ScreenshotURL,
	})
	if err != nil {
		writeError(w, "report.Create", err)
		return
	}

	writeJSON(w, http.StatusCreated, toReportResponse(report))
}

// GetMine handles GET /reports/me.
func (h *ReportHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r, "report.GetMine", h.authService)
	if user == nil {
		return
	}

	page, err := h.reportService.GetUserReports(r.Context(), user.ID, parsePageRequest(r))
	if err != nil {
		writeError(w, "report.GetMine", err)
		return
	}

	writeJSON(w, http.StatusOK, pageEnvelope(page, toReportResponse))
}

// GetAll handles GET /reports; admin-only, optional status filter.
func (h *ReportHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r, "report.GetAll", h.authService)
	if user == nil {
		return
	}

	var status *domain.ReportStatus
	if v := r.URL.Query().Get("status"); v != "" {
		parsed, err := domain.ParseReportStatus(v)
		if err != nil {
			writeError(w, "report.GetAll", err)
			return
		}
		status = &parsed
	}

	page, err := h.reportService.GetAllReports(r.Context(), user, status, parsePageRequest(r))
	if err != nil {
		writeError(w, "report.GetAll", err)
		return
	}

	writeJSON(w, http.StatusOK, pageEnvelope(page, toReportResponse))
}

type UpdateReportStatusRequest struct {
	Status    string `json:"status"`
	AdminNote string `json:"adminNote"`
}

// UpdateStatus handles PATCH /reports/{id}/status; admin-only.
func (h *ReportHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r, "report.UpdateStatus", h.authService)
	if user == nil {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "report.UpdateStatus", domain.ErrInvalidInput)
		return
	}

	var req UpdateReportStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "report.UpdateStatus", domain.ErrInvalidInput)
		return
	}

	status, err := domain.ParseReportStatus(req.Status)
	if err != nil {
		writeError(w, "report.UpdateStatus", err)
		return
	}

	report, err := h.reportService.UpdateStatus(r.Context(), id, user, status, req.AdminNote)
	if err != nil {
		writeError(w, "report.UpdateStatus", err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(report))
}
