package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/repository"
	"gorm.io/gorm"
)

type rosterRepository struct {
	db *gorm.DB
}

func NewRosterRepository(db *gorm.DB) *rosterRepository {
	return &rosterRepository{db: db}
}

func (r *rosterRepository) Create(ctx context.Context, roster *domain.Roster) error {
	return r.db.WithContext(ctx).Create(roster).Error
}

func (r *rosterRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Roster, error) {
	var roster domain.Roster
	err := r.db.WithContext(ctx).First(&roster, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &roster, nil
}

func (r *rosterRepository) Update(ctx context.Context, roster *domain.Roster) error {
	return r.db.WithContext(ctx).Save(roster).Error
}

func (r *rosterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Roster{}, "id = ?", id).Error
}

func (r *rosterRepository) GetByUserID(ctx context.Context, userID uuid.UUID, page repository.PageRequest) (*repository.Page[*domain.Roster], error) {
	criteria := repository.NewCriteria().Eq("user_id", userID)
	return r.paged(ctx, criteria, "created_at", page)
}

func (r *rosterRepository) Search(ctx context.Context, cond repository.RosterSearchCondition, page repository.PageRequest) (*repository.Page[*domain.Roster], error) {
	criteria := repository.NewCriteria().
		Eq("user_id", cond.UserID).
		Eq("is_public", cond.IsPublic).
		Eq("is_championship_roster", cond.IsChampionship).
		Eq("game_mode", cond.GameMode).
		Eq("rank_tier", cond.Tier)
	return r.paged(ctx, criteria, "created_at", page)
}

func (r *rosterRepository) FindPublic(ctx context.Context, page repository.PageRequest) (*repository.Page[*domain.Roster], error) {
	criteria := repository.NewCriteria().Eq("is_public", true)
	return r.paged(ctx, criteria, "created_at", page)
}

// FindByPopularity lists public rosters by like count.
func (r *rosterRepository) FindByPopularity(ctx context.Context, page repository.PageRequest) (*repository.Page[*domain.Roster], error) {
	criteria := repository.NewCriteria().Eq("is_public", true)
	return r.paged(ctx, criteria, "like_count", page)
}

func (r *rosterRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Roster{}).Count(&count).Error
	return count, err
}

func (r *rosterRepository) paged(ctx context.Context, criteria *repository.Criteria, sortCol string, page repository.PageRequest) (*repository.Page[*domain.Roster], error) {
	page = page.Normalize()

	var total int64
	if err := criteria.Filter(r.db.WithContext(ctx).Model(&domain.Roster{})).Count(&total).Error; err != nil {
		return nil, err
	}

	var rosters []*domain.Roster
	err := criteria.
		SortBy(sortCol, true).
		Paginate(page).
		Apply(r.db.WithContext(ctx).Model(&domain.Roster{})).
		Find(&rosters).Error
	if err != nil {
		return nil, err
	}

	return &repository.Page[*domain.Roster]{
		Items:      rosters,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalItems: total,
	}, nil
}
