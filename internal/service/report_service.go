package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/repository"
	"gorm.io/gorm"
)

type BugReportService struct {
	reportRepo repository.BugReportRepository
}

func NewBugReportService(reportRepo repository.BugReportRepository) *BugReportService {
	return &BugReportService{reportRepo: reportRepo}
}

type CreateReportInput struct {
	Title         string
	Description   string
	Type          domain.ReportType
	ScreenshotURL string
}

func (s *BugReportService) CreateReport(ctx context.Context, user *domain.User, input CreateReportInput) (*domain.BugReport, error) {
	if input.Title == "" {
		return nil, domain.ErrInvalidInput
	}

	report := &domain.BugReport{
		ID:            uuid.New(),
		UserID:        user.ID,
		UserEmail:     user.Email,
		Title:         input.Title,
		Description:   input.Description,
		Type:          input.Type,
		ScreenshotURL: input.ScreenshotURL,
		Status:        domain.ReportStatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

func (s *BugReportService) GetUserReports(ctx context.Context, userID uuid.UUID, page repository.PageRequest) (*repository.Page[*domain.BugReport], error) {
	return s.reportRepo.GetByUserID(ctx, userID, page)
}

// GetAllReports is admin-only, optionally filtered by status.
func (s *BugReportService) GetAllReports(ctx context.Context, user *domain.User, status *domain.ReportStatus, page repository.PageRequest) (*repository.Page[*domain.BugReport], error) {
	if !user.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.reportRepo.GetAll(ctx, status, page)
}

// UpdateStatus moves a report through its lifecycle; admin-only.
func (s *BugReportService) UpdateStatus(ctx context.Context, reportID uuid.UUID, user *domain.User, status domain.ReportStatus, adminNote string) (*domain.BugReport, error) {
	if !user.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	report, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReportNotFound
		}
		return nil, err
	}

	report.SetStatus(status, adminNote)
	report.UpdatedAt = time.Now()

	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}
