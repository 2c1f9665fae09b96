package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Championship is a fixed historical winning lineup, one player id per
// position. Catalog data only: seeded by admins, never by gameplay.
type Championship struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Tournament string    `json:"tournament" gorm:"not null"` // e.g. "WORLDS", "MSI"
	Year       int       `json:"year" gorm:"not null"`
	Team       string    `json:"team" gorm:"not null"`
	Region     string    `json:"region"`

	TopPlayerID     uuid.UUID `json:"topPlayerId" gorm:"type:uuid;not null"`
	JunglePlayerID  uuid.UUID `json:"junglePlayerId" gorm:"type:uuid;not null"`
	MidPlayerID     uuid.UUID `json:"midPlayerId" gorm:"type:uuid;not null"`
	ADCPlayerID     uuid.UUID `json:"adcPlayerId" gorm:"type:uuid;not null"`
	SupportPlayerID uuid.UUID `json:"supportPlayerId" gorm:"type:uuid;not null"`

	// Denormalized names for quick display
	TopPlayerName     string `json:"topPlayerName"`
	JunglePlayerName  string `json:"junglePlayerName"`
	MidPlayerName     string `json:"midPlayerName"`
	ADCPlayerName     string `json:"adcPlayerName"`
	SupportPlayerName string `json:"supportPlayerName"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Championship) TableName() string {
	return "championships"
}

// DisplayName renders the lineup label shown on matched rosters.
func (c *Championship) DisplayName() string {
	return fmt.Sprintf("%d %s - %s", c.Year, c.Tournament, c.Team)
}

// MatchesLineup reports whether the five ids equal this lineup, slot by slot.
func (c *Championship) MatchesLineup(top, jungle, mid, adc, support uuid.UUID) bool {
	return c.TopPlayerID == top &&
		c.JunglePlayerID == jungle &&
		c.MidPlayerID == mid &&
		c.ADCPlayerID == adc &&
		c.SupportPlayerID == support
}
