package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment on a shared roster. Author name/image are snapshots.
type Comment struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RosterID         uuid.UUID `json:"rosterId" gorm:"type:uuid;index;not null"`
	UserID           uuid.UUID `json:"userId" gorm:"type:uuid;not null"`
	UserName         string    `json:"userName"`
	UserProfileImage string    `json:"userProfileImage"`
	Content          string    `json:"content" gorm:"not null"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) IsOwnedBy(userID uuid.UUID) bool {
	return c.UserID == userID
}
