package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Player is a season card: one record per real person per season/team, so
// the same pro can appear multiple times in the catalog. Position never
// changes after creation and PickedCount only ever grows (the draw engine
// bumps it with an atomic storage-level increment).
type Player struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string         `json:"name" gorm:"index;not null"`       // in-game name, e.g. "Faker"
	RealName     string         `json:"realName"`
	RealNameKo   string         `json:"realNameKo"`
	Position     Position       `json:"position" gorm:"type:varchar(10);index;not null"`
	Nationality  string         `json:"nationality"`
	ProfileImage string         `json:"profileImage"`
	Teams        datatypes.JSON `json:"teams" gorm:"type:jsonb;default:'[]'"` // team history
	CurrentTeam  string         `json:"currentTeam"`
	Region       string         `json:"region" gorm:"index"`
	Championships datatypes.JSON `json:"championships" gorm:"type:jsonb;default:'[]'"` // []PlayerTitle
	PickedCount  int            `json:"pickedCount" gorm:"not null;default:0"`
	IsActive     bool           `json:"isActive" gorm:"not null;default:true"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// PlayerTitle is one career championship entry on a player card.
type PlayerTitle struct {
	Tournament string `json:"tournament"`
	Year       int    `json:"year"`
	Team       string `json:"team"`
}

func (Player) TableName() string {
	return "players"
}
