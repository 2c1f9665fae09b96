package service

import (
	"github.com/loga/gacha-backend/internal/config"
	"github.com/loga/gacha-backend/internal/repository"
)

type Services struct {
	Auth         *AuthService
	Gacha        *GachaService
	Player       *PlayerService
	Championship *ChampionshipService
	Roster       *RosterService
	Community    *CommunityService
	Report       *BugReportService
	Statistics   *StatisticsService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, feed Announcer) *Services {
	return &Services{
		Auth:         NewAuthService(repos.User, repos.Session, cfg),
		Gacha:        NewGachaService(repos.Player, repos.Championship, repos.User, feed),
		Player:       NewPlayerService(repos.Player),
		Championship: NewChampionshipService(repos.Championship, repos.Player),
		Roster:       NewRosterService(repos.Roster, repos.Player, repos.Championship, repos.User),
		Community:    NewCommunityService(repos.Roster, repos.Comment),
		Report:       NewBugReportService(repos.BugReport),
		Statistics:   NewStatisticsService(repos.Player, repos.Roster, repos.User),
	}
}
