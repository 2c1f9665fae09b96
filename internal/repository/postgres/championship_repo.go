package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/loga/gacha-backend/internal/domain"
	"gorm.io/gorm"
)

type championshipRepository struct {
	db *gorm.DB
}

func NewChampionshipRepository(db *gorm.DB) *championshipRepository {
	return &championshipRepository{db: db}
}

func (r *championshipRepository) Create(ctx context.Context, championship *domain.Championship) error {
	return r.db.WithContext(ctx).Create(championship).Error
}

func (r *championshipRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Championship, error) {
	var championship domain.Championship
	err := r.db.WithContext(ctx).First(&championship, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &championship, nil
}

func (r *championshipRepository) GetAll(ctx context.Context) ([]*domain.Championship, error) {
	var championships []*domain.Championship
	err := r.db.WithContext(ctx).Order("year DESC, tournament ASC").Find(&championships).Error
	if err != nil {
		return nil, err
	}
	return championships, nil
}

// FindByLineup matches all five position-keyed ids. The catalog should hold
// no duplicate lineups; if it ever does, ordering by created_at keeps the
// pick consistent within a run.
func (r *championshipRepository) FindByLineup(ctx context.Context, top, jungle, mid, adc, support uuid.UUID) (*domain.Championship, error) {
	var championship domain.Championship
	err := r.db.WithContext(ctx).
		Where("top_player_id = ?", top).
		Where("jungle_player_id = ?", jungle).
		Where("mid_player_id = ?", mid).
		Where("adc_player_id = ?", adc).
		Where("support_player_id = ?", support).
		Order("created_at ASC").
		First(&championship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &championship, nil
}
