package service

import (
	"context"

	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/repository"
)

type StatisticsService struct {
	playerRepo repository.PlayerRepository
	rosterRepo repository.RosterRepository
	userRepo   repository.UserRepository
}

func NewStatisticsService(
	playerRepo repository.PlayerRepository,
	rosterRepo repository.RosterRepository,
	userRepo repository.UserRepository,
) *StatisticsService {
	return &StatisticsService{
		playerRepo: playerRepo,
		rosterRepo: rosterRepo,
		userRepo:   userRepo,
	}
}

type OverallStatistics struct {
	TotalUsers       int64
	TotalRosters     int64
	TotalPlayers     int64
	TopPickedPlayers []*domain.Player
	TopByPosition    map[domain.Position]*domain.Player
}

func (s *StatisticsService) GetOverallStatistics(ctx context.Context) (*OverallStatistics, error) {
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalRosters, err := s.rosterRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalPlayers, err := s.playerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	topPicked, err := s.playerRepo.GetTopPicked(ctx, 10)
	if err != nil {
		return nil, err
	}

	topByPosition := make(map[domain.Position]*domain.Player, len(domain.Positions))
	for _, pos := range domain.Positions {
		players, err := s.playerRepo.GetTopPickedByPosition(ctx, pos, 1)
		if err != nil {
			return nil, err
		}
		if len(players) > 0 {
			topByPosition[pos] = players[0]
		}
	}

	return &OverallStatistics{
		TotalUsers:       totalUsers,
		TotalRosters:     totalRosters,
		TotalPlayers:     totalPlayers,
		TopPickedPlayers: topPicked,
		TopByPosition:    topByPosition,
	}, nil
}
