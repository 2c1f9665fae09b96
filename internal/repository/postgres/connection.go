package postgres

import (
	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.User{},
		&domain.UserSession{},
		&domain.Player{},
		&domain.Championship{},
		&domain.Roster{},
		&domain.Comment{},
		&domain.BugReport{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Player:       NewPlayerRepository(db),
		Championship: NewChampionshipRepository(db),
		Roster:       NewRosterRepository(db),
		User:         NewUserRepository(db),
		Session:      NewSessionRepository(db),
		Comment:      NewCommentRepository(db),
		BugReport:    NewBugReportRepository(db),
	}
}
