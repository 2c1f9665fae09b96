package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GameMode string

const (
	GameModeNormal GameMode = "NORMAL"
	GameModeRanked GameMode = "RANKED"
)

// ParseGameMode parses a game mode string; empty defaults to NORMAL.
func ParseGameMode(s string) (GameMode, error) {
	switch GameMode(s) {
	case "":
		return GameModeNormal, nil
	case GameModeNormal:
		return GameModeNormal, nil
	case GameModeRanked:
		return GameModeRanked, nil
	}
	return "", ErrInvalidInput
}

// Ranked tier thresholds, highest first.
var rankTiers = []struct {
	score int
	tier  string
}{
	{2400, "CHALLENGER"},
	{2000, "MASTER"},
	{1600, "DIAMOND"},
	{1400, "PLATINUM"},
	{1200, "GOLD"},
	{1000, "SILVER"},
}

// TierForScore maps a ranked score onto its tier.
func TierForScore(score int) string {
	for _, t := range rankTiers {
		if score >= t.score {
			return t.tier
		}
	}
	return "BRONZE"
}

// Roster is a user-authored five-player composition. The five ids and the
// championship-match outcome are fixed at creation; the community and rank
// fields mutate afterwards.
type Roster struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID   uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	UserName string    `json:"userName"`

	TopPlayerID     uuid.UUID `json:"topPlayerId" gorm:"type:uuid;not null"`
	JunglePlayerID  uuid.UUID `json:"junglePlayerId" gorm:"type:uuid;not null"`
	MidPlayerID     uuid.UUID `json:"midPlayerId" gorm:"type:uuid;not null"`
	ADCPlayerID     uuid.UUID `json:"adcPlayerId" gorm:"type:uuid;not null"`
	SupportPlayerID uuid.UUID `json:"supportPlayerId" gorm:"type:uuid;not null"`

	// Name snapshots taken at creation; deliberately never refreshed.
	TopPlayerName     string `json:"topPlayerName"`
	JunglePlayerName  string `json:"junglePlayerName"`
	MidPlayerName     string `json:"midPlayerName"`
	ADCPlayerName     string `json:"adcPlayerName"`
	SupportPlayerName string `json:"supportPlayerName"`

	IsChampionshipRoster bool    `json:"isChampionshipRoster" gorm:"not null;default:false"`
	MatchedChampionship  *string `json:"matchedChampionship"`
	MatchedYear          *int    `json:"matchedYear"`

	IsPublic     bool           `json:"isPublic" gorm:"not null;default:false"`
	LikeCount    int            `json:"likeCount" gorm:"not null;default:0"`
	LikedUserIDs datatypes.JSON `json:"-" gorm:"type:jsonb;default:'[]'"`
	CommentCount int            `json:"commentCount" gorm:"not null;default:0"`

	GameMode  GameMode `json:"gameMode" gorm:"type:varchar(10);not null;default:'NORMAL'"`
	RankScore *int     `json:"rankScore"`
	RankTier  *string  `json:"rankTier"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Roster) TableName() string {
	return "rosters"
}

// PlayerIDForPosition returns the id occupying the given slot.
func (r *Roster) PlayerIDForPosition(pos Position) uuid.UUID {
	switch pos {
	case PositionTop:
		return r.TopPlayerID
	case PositionJungle:
		return r.JunglePlayerID
	case PositionMid:
		return r.MidPlayerID
	case PositionADC:
		return r.ADCPlayerID
	default:
		return r.SupportPlayerID
	}
}

func (r *Roster) IsOwnedBy(userID uuid.UUID) bool {
	return r.UserID == userID
}

// LikedBy reports whether the user is in the like set.
func (r *Roster) LikedBy(userID uuid.UUID) bool {
	for _, id := range r.likedIDs() {
		if id == userID.String() {
			return true
		}
	}
	return false
}

// ToggleLike adds or removes the user from the like set and keeps LikeCount
// in step. Returns true when the user ends up liking the roster.
func (r *Roster) ToggleLike(userID uuid.UUID) bool {
	ids := r.likedIDs()
	for i, id := range ids {
		if id == userID.String() {
			ids = append(ids[:i], ids[i+1:]...)
			r.setLikedIDs(ids)
			if r.LikeCount > 0 {
				r.LikeCount--
			}
			return false
		}
	}
	ids = append(ids, userID.String())
	r.setLikedIDs(ids)
	r.LikeCount++
	return true
}

func (r *Roster) likedIDs() []string {
	var ids []string
	if len(r.LikedUserIDs) > 0 {
		json.Unmarshal(r.LikedUserIDs, &ids)
	}
	return ids
}

func (r *Roster) setLikedIDs(ids []string) {
	if ids == nil {
		ids = []string{}
	}
	data, _ := json.Marshal(ids)
	r.LikedUserIDs = data
}
