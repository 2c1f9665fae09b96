package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/repository"
	"gorm.io/gorm"
)

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *playerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(ctx context.Context, player *domain.Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

func (r *playerRepository) CreateMany(ctx context.Context, players []*domain.Player) error {
	return r.db.WithContext(ctx).Create(players).Error
}

func (r *playerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	var player domain.Player
	err := r.db.WithContext(ctx).First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) GetAll(ctx context.Context) ([]*domain.Player, error) {
	var players []*domain.Player
	err := r.db.WithContext(ctx).Order("name ASC").Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// FindRandomByPosition samples one player uniformly from the position pool.
// Inactive players stay in the pool: retired cards remain collectible.
func (r *playerRepository) FindRandomByPosition(ctx context.Context, position domain.Position) (*domain.Player, error) {
	var player domain.Player
	err := r.db.WithContext(ctx).
		Where("position = ?", position).
		Order("random()").
		First(&player).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) IncrementPickedCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&domain.Player{}).
		Where("id = ?", id).
		UpdateColumn("picked_count", gorm.Expr("picked_count + 1")).Error
}

func (r *playerRepository) Search(ctx context.Context, cond repository.PlayerSearchCondition, page repository.PageRequest) (*repository.Page[*domain.Player], error) {
	page = page.Normalize()

	criteria := repository.NewCriteria().
		Contains("name", cond.Name).
		Eq("position", cond.Position).
		Eq("region", cond.Region).
		Eq("current_team", cond.Team).
		Eq("is_active", cond.IsActive).
		AddIf(cond.HasChampionship != nil, func(c *repository.Criteria) {
			if *cond.HasChampionship {
				c.Where("jsonb_array_length(championships) > 0")
			} else {
				c.Where("jsonb_array_length(championships) = 0")
			}
		})

	var total int64
	if err := criteria.Filter(r.db.WithContext(ctx).Model(&domain.Player{})).Count(&total).Error; err != nil {
		return nil, err
	}

	var players []*domain.Player
	err := criteria.
		SortBy("name", false).
		Paginate(page).
		Apply(r.db.WithContext(ctx).Model(&domain.Player{})).
		Find(&players).Error
	if err != nil {
		return nil, err
	}

	return &repository.Page[*domain.Player]{
		Items:      players,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalItems: total,
	}, nil
}

func (r *playerRepository) GetTopPicked(ctx context.Context, limit int) ([]*domain.Player, error) {
	var players []*domain.Player
	err := r.db.WithContext(ctx).
		Order("picked_count DESC").
		Limit(limit).
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) GetTopPickedByPosition(ctx context.Context, position domain.Position, limit int) ([]*domain.Player, error) {
	var players []*domain.Player
	err := r.db.WithContext(ctx).
		Where("position = ?", position).
		Order("picked_count DESC").
		Limit(limit).
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Player{}).Count(&count).Error
	return count, err
}
