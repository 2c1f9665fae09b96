package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportType string

const (
	ReportTypeBug        ReportType = "BUG"
	ReportTypeDataError  ReportType = "DATA_ERROR"
	ReportTypeSuggestion ReportType = "SUGGESTION"
	ReportTypeOther      ReportType = "OTHER"
)

func ParseReportType(s string) (ReportType, error) {
	switch ReportType(s) {
	case ReportTypeBug, ReportTypeDataError, ReportTypeSuggestion, ReportTypeOther:
		return ReportType(s), nil
	}
	return "", ErrInvalidInput
}

type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "PENDING"
	ReportStatusInProgress ReportStatus = "IN_PROGRESS"
	ReportStatusResolved   ReportStatus = "RESOLVED"
	ReportStatusRejected   ReportStatus = "REJECTED"
)

func ParseReportStatus(s string) (ReportStatus, error) {
	switch ReportStatus(s) {
	case ReportStatusPending, ReportStatusInProgress, ReportStatusResolved, ReportStatusRejected:
		return ReportStatus(s), nil
	}
	return "", ErrInvalidInput
}

type BugReport struct {
	ID            uuid.UUID    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        uuid.UUID    `json:"userId" gorm:"type:uuid;index;not null"`
	UserEmail     string       `json:"userEmail"`
	Title         string       `json:"title" gorm:"not null"`
	Description   string       `json:"description"`
	Type          ReportType   `json:"type" gorm:"type:varchar(20);not null"`
	ScreenshotURL string       `json:"screenshotUrl"`
	Status        ReportStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	AdminNote     string       `json:"adminNote"`
	ResolvedAt    *time.Time   `json:"resolvedAt"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

func (BugReport) TableName() string {
	return "bug_reports"
}

// SetStatus moves the report to the given status and stamps ResolvedAt for
// terminal states.
func (b *BugReport) SetStatus(status ReportStatus, adminNote string) {
	b.Status = status
	b.AdminNote = adminNote
	if status == ReportStatusResolved || status == ReportStatusRejected {
		now := time.Now()
		b.ResolvedAt = &now
	}
}
