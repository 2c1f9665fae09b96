package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/repository"
	"gorm.io/gorm"
)

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Comment{}, "id = ?", id).Error
}

func (r *commentRepository) GetByRosterID(ctx context.Context, rosterID uuid.UUID, page repository.PageRequest) (*repository.Page[*domain.Comment], error) {
	page = page.Normalize()

	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Comment{}).Where("roster_id = ?", rosterID).Count(&total).Error; err != nil {
		return nil, err
	}

	var comments []*domain.Comment
	err := r.db.WithContext(ctx).
		Where("roster_id = ?", rosterID).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	return &repository.Page[*domain.Comment]{
		Items:      comments,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalItems: total,
	}, nil
}
