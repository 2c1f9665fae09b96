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

type ChampionshipService struct {
	championshipRepo repository.ChampionshipRepository
	playerRepo       repository.PlayerRepository
}

func NewChampionshipService(championshipRepo repository.ChampionshipRepository, playerRepo repository.PlayerRepository) *ChampionshipService {
	return &ChampionshipService{
		championshipRepo: championshipRepo,
		playerRepo:       playerRepo,
	}
}

func (s *ChampionshipService) GetAll(ctx context.Context) ([]*domain.Championship, error) {
	return s.championshipRepo.GetAll(ctx)
}

func (s *ChampionshipService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Championship, error) {
	championship, err := s.championshipRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrChampionshipNotFound
		}
		return nil, err
	}
	return championship, nil
}

type CreateChampionshipInput struct {
	Tournament      string
	Year            int
	Team            string
	Region          string
	TopPlayerID     uuid.UUID
	JunglePlayerID  uuid.UUID
	MidPlayerID     uuid.UUID
	ADCPlayerID     uuid.UUID
	SupportPlayerID uuid.UUID
}

// Create seeds one catalog lineup. Each referenced player must exist and
// sit in the slot matching its position; names are snapshotted for display.
func (s *ChampionshipService) Create(ctx context.Context, input CreateChampionshipInput) (*domain.Championship, error) {
	if input.Tournament == "" || input.Year == 0 || input.Team == "" {
		return nil, domain.ErrInvalidInput
	}

	lineup, err := s.resolveLineup(ctx, map[domain.Position]uuid.UUID{
		domain.PositionTop:     input.TopPlayerID,
		domain.PositionJungle:  input.JunglePlayerID,
		domain.PositionMid:     input.MidPlayerID,
		domain.PositionADC:     input.ADCPlayerID,
		domain.PositionSupport: input.SupportPlayerID,
	})
	if err != nil {
		return nil, err
	}

	championship := &domain.Championship{
		ID:         uuid.New(),
		Tournament: input.Tournament,
		Year:       input.Year,
		Team:       input.Team,
		Region:     input.Region,

		TopPlayerID:     input.TopPlayerID,
		JunglePlayerID:  input.JunglePlayerID,
		MidPlayerID:     input.MidPlayerID,
		ADCPlayerID:     input.ADCPlayerID,
		SupportPlayerID: input.SupportPlayerID,

		TopPlayerName:     lineup[domain.PositionTop],
		JunglePlayerName:  lineup[domain.PositionJungle],
		MidPlayerName:     lineup[domain.PositionMid],
		ADCPlayerName:     lineup[domain.PositionADC],
		SupportPlayerName: lineup[domain.PositionSupport],

		CreatedAt: time.Now(),
	}

	if err := s.championshipRepo.Create(ctx, championship); err != nil {
		return nil, err
	}

	return championship, nil
}

func (s *ChampionshipService) resolveLineup(ctx context.Context, ids map[domain.Position]uuid.UUID) (map[domain.Position]string, error) {
	names := make(map[domain.Position]string, len(ids))
	for pos, id := range ids {
		player, err := s.playerRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrPlayerNotFound
			}
			return nil, err
		}
		if player.Position != pos {
			return nil, domain.ErrInvalidRoster
		}
		names[pos] = player.Name
	}
	return names, nil
}
