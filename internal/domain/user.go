package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// DefaultRerollCount is the quota granted to every new non-premium account.
const DefaultRerollCount = 3

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PasswordHash string    `json:"-" gorm:"not null"`
	DisplayName  string    `json:"displayName" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email"`
	ProfileImage string    `json:"profileImage"`
	Role         Role      `json:"role" gorm:"type:varchar(10);not null;default:'USER'"`

	// Membership
	RerollCount      int        `json:"rerollCount" gorm:"not null;default:3"`
	IsPremium        bool       `json:"isPremium" gorm:"not null;default:false"`
	PremiumExpiresAt *time.Time `json:"premiumExpiresAt"`

	// Aggregate statistics, bumped as draw/roster side effects.
	TotalGachaCount   int `json:"totalGachaCount" gorm:"not null;default:0"`
	TotalRosterCount  int `json:"totalRosterCount" gorm:"not null;default:0"`
	ChampionshipCount int `json:"championshipCount" gorm:"not null;default:0"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasPremium reports whether premium is active; an expiry in the past
// behaves like a non-premium account.
func (u *User) HasPremium() bool {
	if !u.IsPremium {
		return false
	}
	if u.PremiumExpiresAt == nil {
		return true
	}
	return time.Now().Before(*u.PremiumExpiresAt)
}

// CanReroll reports whether a reroll is currently allowed.
func (u *User) CanReroll() bool {
	return u.HasPremium() || u.RerollCount > 0
}

type UserSession struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID           uuid.UUID `json:"userId" gorm:"type:uuid;not null"`
	RefreshTokenHash string    `json:"-" gorm:"not null"`
	ExpiresAt        time.Time `json:"expiresAt" gorm:"not null"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (UserSession) TableName() string {
	return "user_sessions"
}
