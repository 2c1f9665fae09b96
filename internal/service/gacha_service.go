package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/repository"
	"gorm.io/gorm"
)

// Announcer publishes noteworthy gacha events to connected feed clients.
type Announcer interface {
	AnnounceChampionshipPull(championship string, year int, userName string)
}

// GachaService is the draw engine plus the reroll gate.
type GachaService struct {
	playerRepo       repository.PlayerRepository
	championshipRepo repository.ChampionshipRepository
	userRepo         repository.UserRepository
	feed             Announcer
}

func NewGachaService(
	playerRepo repository.PlayerRepository,
	championshipRepo repository.ChampionshipRepository,
	userRepo repository.UserRepository,
	feed Announcer,
) *GachaService {
	return &GachaService{
		playerRepo:       playerRepo,
		championshipRepo: championshipRepo,
		userRepo:         userRepo,
		feed:             feed,
	}
}

// GachaResult is the outcome of a single or full-roster draw.
type GachaResult struct {
	Player *domain.Player // single draw

	Top     *domain.Player // full-roster draw
	Jungle  *domain.Player
	Mid     *domain.Player
	ADC     *domain.Player
	Support *domain.Player

	IsChampionshipRoster bool
	MatchedChampionship  *string
	MatchedYear          *int
}

// DrawByPosition draws one uniformly-random player for the position and
// bumps its popularity counter. Anonymous callers are allowed.
func (s *GachaService) DrawByPosition(ctx context.Context, position string, userID *uuid.UUID) (*GachaResult, error) {
	pos, err := domain.ParsePosition(position)
	if err != nil {
		return nil, err
	}

	player, err := s.drawOne(ctx, pos)
	if err != nil {
		return nil, err
	}

	s.bumpGachaStats(ctx, userID, 1)

	return &GachaResult{Player: player}, nil
}

// DrawFullRoster performs five independent draws, one per position, then
// checks the five ids against the championship catalog.
func (s *GachaService) DrawFullRoster(ctx context.Context, userID *uuid.UUID) (*GachaResult, error) {
	result := &GachaResult{}

	slots := map[domain.Position]**domain.Player{
		domain.PositionTop:     &result.Top,
		domain.PositionJungle:  &result.Jungle,
		domain.PositionMid:     &result.Mid,
		domain.PositionADC:     &result.ADC,
		domain.PositionSupport: &result.Support,
	}

	for _, pos := range domain.Positions {
		player, err := s.drawOne(ctx, pos)
		if err != nil {
			return nil, err
		}
		*slots[pos] = player
	}

	matched, err := s.championshipRepo.FindByLineup(ctx,
		result.Top.ID, result.Jungle.ID, result.Mid.ID, result.ADC.ID, result.Support.ID)
	if err != nil {
		return nil, err
	}

	if matched != nil {
		name := matched.DisplayName()
		year := matched.Year
		result.IsChampionshipRoster = true
		result.MatchedChampionship = &name
		result.MatchedYear = &year
		s.announcePull(ctx, matched, userID)
	}

	s.bumpGachaStats(ctx, userID, 5)

	return result, nil
}

// Reroll spends one quota unit (premium accounts are unlimited) and then
// draws. Never permitted anonymously, unlike a first draw.
func (s *GachaService) Reroll(ctx context.Context, position string, userID *uuid.UUID) (*GachaResult, error) {
	if userID == nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, *userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if !user.HasPremium() {
		consumed, err := s.userRepo.ConsumeReroll(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if !consumed {
			return nil, domain.ErrNoRerollLeft
		}
	}

	return s.DrawByPosition(ctx, position, userID)
}

func (s *GachaService) drawOne(ctx context.Context, position domain.Position) (*domain.Player, error) {
	player, err := s.playerRepo.FindRandomByPosition(ctx, position)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoPlayersAvailable
		}
		return nil, err
	}

	if err := s.playerRepo.IncrementPickedCount(ctx, player.ID); err != nil {
		return nil, err
	}
	player.PickedCount++

	return player, nil
}

// bumpGachaStats is advisory: a failed update never fails the draw.
func (s *GachaService) bumpGachaStats(ctx context.Context, userID *uuid.UUID, count int) {
	if userID == nil {
		return
	}
	if err := s.userRepo.IncrementGachaCount(ctx, *userID, count); err != nil {
		log.Printf("ERROR [gacha.bumpGachaStats] failed to update stats for %s: %v", userID, err)
	}
}

func (s *GachaService) announcePull(ctx context.Context, matched *domain.Championship, userID *uuid.UUID) {
	if s.feed == nil {
		return
	}
	userName := ""
	if userID != nil {
		if user, err := s.userRepo.GetByID(ctx, *userID); err == nil {
			userName = user.DisplayName
		}
	}
	s.feed.AnnounceChampionshipPull(matched.DisplayName(), matched.Year, userName)
}
