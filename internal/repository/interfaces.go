package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/loga/gacha-backend/internal/domain"
)

// PlayerSearchCondition holds the optional player filters; zero values mean
// "no constraint".
type PlayerSearchCondition struct {
	Name            string
	Position        *domain.Position
	Region          string
	Team            string
	IsActive        *bool
	HasChampionship *bool
}

// RosterSearchCondition holds the optional roster filters.
type RosterSearchCondition struct {
	UserID         *uuid.UUID
	IsPublic       *bool
	IsChampionship *bool
	GameMode       *domain.GameMode
	Tier           string
}

type PlayerRepository interface {
	Create(ctx context.Context, player *domain.Player) error
	CreateMany(ctx context.Context, players []*domain.Player) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error)
	GetAll(ctx context.Context) ([]*domain.Player, error)
	// FindRandomByPosition picks one uniformly-random player for the
	// position; gorm.ErrRecordNotFound when the pool is empty.
	FindRandomByPosition(ctx context.Context, position domain.Position) (*domain.Player, error)
	// IncrementPickedCount bumps picked_count atomically at the storage
	// boundary.
	IncrementPickedCount(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, cond PlayerSearchCondition, page PageRequest) (*Page[*domain.Player], error)
	GetTopPicked(ctx context.Context, limit int) ([]*domain.Player, error)
	GetTopPickedByPosition(ctx context.Context, position domain.Position, limit int) ([]*domain.Player, error)
	Count(ctx context.Context) (int64, error)
}

type ChampionshipRepository interface {
	Create(ctx context.Context, championship *domain.Championship) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Championship, error)
	GetAll(ctx context.Context) ([]*domain.Championship, error)
	// FindByLineup returns the championship whose five position-keyed ids
	// all equal the arguments, or (nil, nil) when none matches.
	FindByLineup(ctx context.Context, top, jungle, mid, adc, support uuid.UUID) (*domain.Championship, error)
}

type RosterRepository interface {
	Create(ctx context.Context, roster *domain.Roster) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Roster, error)
	Update(ctx context.Context, roster *domain.Roster) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByUserID(ctx context.Context, userID uuid.UUID, page PageRequest) (*Page[*domain.Roster], error)
	Search(ctx context.Context, cond RosterSearchCondition, page PageRequest) (*Page[*domain.Roster], error)
	FindPublic(ctx context.Context, page PageRequest) (*Page[*domain.Roster], error)
	FindByPopularity(ctx context.Context, page PageRequest) (*Page[*domain.Roster], error)
	Count(ctx context.Context) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByDisplayName(ctx context.Context, displayName string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// ConsumeReroll decrements reroll_count with a single conditional
	// UPDATE; false when no quota was left to consume.
	ConsumeReroll(ctx context.Context, id uuid.UUID) (bool, error)
	IncrementGachaCount(ctx context.Context, id uuid.UUID, count int) error
	IncrementRosterStats(ctx context.Context, id uuid.UUID, rosterDelta, championshipDelta int) error
	Count(ctx context.Context) (int64, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.UserSession) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSession, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByRosterID(ctx context.Context, rosterID uuid.UUID, page PageRequest) (*Page[*domain.Comment], error)
}

type BugReportRepository interface {
	Create(ctx context.Context, report *domain.BugReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BugReport, error)
	Update(ctx context.Context, report *domain.BugReport) error
	GetByUserID(ctx context.Context, userID uuid.UUID, page PageRequest) (*Page[*domain.BugReport], error)
	GetAll(ctx context.Context, status *domain.ReportStatus, page PageRequest) (*Page[*domain.BugReport], error)
}

type Repositories struct {
	Player       PlayerRepository
	Championship ChampionshipRepository
	Roster       RosterRepository
	User         UserRepository
	Session      SessionRepository
	Comment      CommentRepository
	BugReport    BugReportRepository
}
