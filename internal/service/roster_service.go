package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/repository"
	"gorm.io/gorm"
)

type RosterService struct {
	rosterRepo       repository.RosterRepository
	playerRepo       repository.PlayerRepository
	championshipRepo repository.ChampionshipRepository
	userRepo         repository.UserRepository
}

func NewRosterService(
	rosterRepo repository.RosterRepository,
	playerRepo repository.PlayerRepository,
	championshipRepo repository.ChampionshipRepository,
	userRepo repository.UserRepository,
) *RosterService {
	return &RosterService{
		rosterRepo:       rosterRepo,
		playerRepo:       playerRepo,
		championshipRepo: championshipRepo,
		userRepo:         userRepo,
	}
}

type CreateRosterInput struct {
	TopPlayerID     uuid.UUID
	JunglePlayerID  uuid.UUID
	MidPlayerID     uuid.UUID
	ADCPlayerID     uuid.UUID
	SupportPlayerID uuid.UUID
	IsPublic        bool
	GameMode        domain.GameMode
}

// CreateRoster builds a roster from five player ids, computes the
// championship match exactly once, and snapshots display names.
func (s *RosterService) CreateRoster(ctx context.Context, userID uuid.UUID, input CreateRosterInput) (*domain.Roster, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	top, err := s.playerInSlot(ctx, input.TopPlayerID, domain.PositionTop)
	if err != nil {
		return nil, err
	}
	jungle, err := s.playerInSlot(ctx, input.JunglePlayerID, domain.PositionJungle)
	if err != nil {
		return nil, err
	}
	mid, err := s.playerInSlot(ctx, input.MidPlayerID, domain.PositionMid)
	if err != nil {
		return nil, err
	}
	adc, err := s.playerInSlot(ctx, input.ADCPlayerID, domain.PositionADC)
	if err != nil {
		return nil, err
	}
	support, err := s.playerInSlot(ctx, input.SupportPlayerID, domain.PositionSupport)
	if err != nil {
		return nil, err
	}

	matched, err := s.championshipRepo.FindByLineup(ctx, top.ID, jungle.ID, mid.ID, adc.ID, support.ID)
	if err != nil {
		return nil, err
	}

	roster := &domain.Roster{
		ID:       uuid.New(),
		UserID:   user.ID,
		UserName: user.DisplayName,

		TopPlayerID:     top.ID,
		JunglePlayerID:  jungle.ID,
		MidPlayerID:     mid.ID,
		ADCPlayerID:     adc.ID,
		SupportPlayerID: support.ID,

		TopPlayerName:     top.Name,
		JunglePlayerName:  jungle.Name,
		MidPlayerName:     mid.Name,
		ADCPlayerName:     adc.Name,
		SupportPlayerName: support.Name,

		IsPublic:  input.IsPublic,
		GameMode:  input.GameMode,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if matched != nil {
		name := matched.DisplayName()
		year := matched.Year
		roster.IsChampionshipRoster = true
		roster.MatchedChampionship = &name
		roster.MatchedYear = &year
	}

	if input.GameMode == domain.GameModeRanked {
		score := 1000
		tier := "BRONZE"
		roster.RankScore = &score
		roster.RankTier = &tier
	}

	if err := s.rosterRepo.Create(ctx, roster); err != nil {
		return nil, err
	}

	championshipDelta := 0
	if matched != nil {
		championshipDelta = 1
	}
	if err := s.userRepo.IncrementRosterStats(ctx, user.ID, 1, championshipDelta); err != nil {
		log.Printf("ERROR [roster.CreateRoster] failed to update stats for %s: %v", user.ID, err)
	}

	return roster, nil
}

func (s *RosterService) GetRosterByID(ctx context.Context, id uuid.UUID) (*domain.Roster, error) {
	roster, err := s.rosterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRosterNotFound
		}
		return nil, err
	}
	return roster, nil
}

func (s *RosterService) GetUserRosters(ctx context.Context, userID uuid.UUID, page repository.PageRequest) (*repository.Page[*domain.Roster], error) {
	return s.rosterRepo.GetByUserID(ctx, userID, page)
}

func (s *RosterService) SearchRosters(ctx context.Context, cond repository.RosterSearchCondition, page repository.PageRequest) (*repository.Page[*domain.Roster], error) {
	return s.rosterRepo.Search(ctx, cond, page)
}

// DeleteRoster removes a roster; only the owner or an admin may delete.
func (s *RosterService) DeleteRoster(ctx context.Context, rosterID uuid.UUID, user *domain.User) error {
	roster, err := s.GetRosterByID(ctx, rosterID)
	if err != nil {
		return err
	}

	if !roster.IsOwnedBy(user.ID) && !user.IsAdmin() {
		return domain.ErrForbidden
	}

	if err := s.rosterRepo.Delete(ctx, rosterID); err != nil {
		return err
	}

	if err := s.userRepo.IncrementRosterStats(ctx, roster.UserID, -1, 0); err != nil {
		log.Printf("ERROR [roster.DeleteRoster] failed to update stats for %s: %v", roster.UserID, err)
	}

	return nil
}

// ToggleLike flips the caller's like on a roster.
func (s *RosterService) ToggleLike(ctx context.Context, rosterID, userID uuid.UUID) (*domain.Roster, error) {
	roster, err := s.GetRosterByID(ctx, rosterID)
	if err != nil {
		return nil, err
	}

	roster.ToggleLike(userID)
	roster.UpdatedAt = time.Now()

	if err := s.rosterRepo.Update(ctx, roster); err != nil {
		return nil, err
	}

	return roster, nil
}

// SetVisibility publishes or hides a roster; owner only.
func (s *RosterService) SetVisibility(ctx context.Context, rosterID uuid.UUID, user *domain.User, public bool) (*domain.Roster, error) {
	roster, err := s.GetRosterByID(ctx, rosterID)
	if err != nil {
		return nil, err
	}

	if !roster.IsOwnedBy(user.ID) {
		return nil, domain.ErrForbidden
	}

	roster.IsPublic = public
	roster.UpdatedAt = time.Now()

	if err := s.rosterRepo.Update(ctx, roster); err != nil {
		return nil, err
	}

	return roster, nil
}

func (s *RosterService) playerInSlot(ctx context.Context, id uuid.UUID, pos domain.Position) (*domain.Player, error) {
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
	return player, nil
}
