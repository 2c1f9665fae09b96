package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/repository"
	"gorm.io/gorm"
)

type bugReportRepository struct {
	db *gorm.DB
}

func NewBugReportRepository(db *gorm.DB) *bugReportRepository {
	return &bugReportRepository{db: db}
}

func (r *bugReportRepository) Create(ctx context.Context, report *domain.BugReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *bugReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BugReport, error) {
	var report domain.BugReport
	err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *bugReportRepository) Update(ctx context.Context, report *domain.BugReport) error {
	return r.db.WithContext(ctx).Save(report).Error
}

func (r *bugReportRepository) GetByUserID(ctx context.Context, userID uuid.UUID, page repository.PageRequest) (*repository.Page[*domain.BugReport], error) {
	criteria := repository.NewCriteria().Eq("user_id", userID)
	return r.paged(ctx, criteria, page)
}

func (r *bugReportRepository) GetAll(ctx context.Context, status *domain.ReportStatus, page repository.PageRequest) (*repository.Page[*domain.BugReport], error) {
	criteria := repository.NewCriteria().Eq("status", status)
	return r.paged(ctx, criteria, page)
}

func (r *bugReportRepository) paged(ctx context.Context, criteria *repository.Criteria, page repository.PageRequest) (*repository.Page[*domain.BugReport], error) {
	page = page.Normalize()

	var total int64
	if err := criteria.Filter(r.db.WithContext(ctx).Model(&domain.BugReport{})).Count(&total).Error; err != nil {
		return nil, err
	}

	var reports []*domain.BugReport
	err := criteria.
		SortBy("created_at", true).
		Paginate(page).
		Apply(r.db.WithContext(ctx).Model(&domain.BugReport{})).
		Find(&reports).Error
	if err != nil {
		return nil, err
	}

	return &repository.Page[*domain.BugReport]{
		Items:      reports,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalItems: total,
	}, nil
}
