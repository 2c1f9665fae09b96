package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/repository"
	"gorm.io/gorm"
)

type PlayerService struct {
	playerRepo repository.PlayerRepository
}

func NewPlayerService(playerRepo repository.PlayerRepository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

func (s *PlayerService) GetAllPlayers(ctx context.Context) ([]*domain.Player, error) {
	return s.playerRepo.GetAll(ctx)
}

func (s *PlayerService) GetPlayerByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

// SearchPlayers runs the dynamic filter set; absent filters add no
// constraint.
func (s *PlayerService) SearchPlayers(ctx context.Context, cond repository.PlayerSearchCondition, page repository.PageRequest) (*repository.Page[*domain.Player], error) {
	return s.playerRepo.Search(ctx, cond, page)
}

// GetTopPickedPlayers returns the most-drawn cards overall.
func (s *PlayerService) GetTopPickedPlayers(ctx context.Context) ([]*domain.Player, error) {
	return s.playerRepo.GetTopPicked(ctx, 10)
}

func (s *PlayerService) GetTopPlayersByPosition(ctx context.Context, position string, limit int) ([]*domain.Player, error) {
	pos, err := domain.ParsePosition(position)
	if err != nil {
		return nil, err
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return s.playerRepo.GetTopPickedByPosition(ctx, pos, limit)
}
