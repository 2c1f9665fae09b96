package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/loga/gacha-backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	displayName string
	password    string
	role        domain.Role
	rerollCount int
	premium     bool
	premiumTill *time.Time
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		displayName: fmt.Sprintf("testuser_%s", uuid.New().String()[:8]),
		password:    "testpassword123",
		role:        domain.RoleUser,
		rerollCount: domain.DefaultRerollCount,
	}
}

// WithDisplayName sets the display name
func (b *UserBuilder) WithDisplayName(name string) *UserBuilder {
	b.displayName = name
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// AsAdmin grants the admin role
func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.role = domain.RoleAdmin
	return b
}

// WithRerollCount sets the remaining reroll quota
func (b *UserBuilder) WithRerollCount(count int) *UserBuilder {
	b.rerollCount = count
	return b
}

// AsPremium marks the account premium with no expiry
func (b *UserBuilder) AsPremium() *UserBuilder {
	b.premium = true
	return b
}

// WithPremiumUntil marks the account premium with the given expiry
func (b *UserBuilder) WithPremiumUntil(until time.Time) *UserBuilder {
	b.premium = true
	b.premiumTill = &until
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:               uuid.New(),
		DisplayName:      b.displayName,
		PasswordHash:     string(hashedPassword),
		Role:             b.role,
		RerollCount:      b.rerollCount,
		IsPremium:        b.premium,
		PremiumExpiresAt: b.premiumTill,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	User struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
	} `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// BuildAndAuthenticate creates a user via API and returns the user and access token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"displayName": b.displayName,
		"password":    b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	userID, _ := uuid.Parse(authResp.User.ID)
	user := &domain.User{
		ID:          userID,
		DisplayName: authResp.User.DisplayName,
	}

	return user, authResp.AccessToken
}

// PlayerBuilder creates test player cards
type PlayerBuilder struct {
	name          string
	position      domain.Position
	region        string
	currentTeam   string
	teams         []string
	championships []domain.PlayerTitle
	pickedCount   int
	active        bool
}

// NewPlayerBuilder creates a new PlayerBuilder with default values
func NewPlayerBuilder() *PlayerBuilder {
	return &PlayerBuilder{
		name:     fmt.Sprintf("player_%s", uuid.New().String()[:8]),
		position: domain.PositionMid,
		region:   "LCK",
		active:   true,
	}
}

// WithName sets the in-game name
func (b *PlayerBuilder) WithName(name string) *PlayerBuilder {
	b.name = name
	return b
}

// WithPosition sets the card position
func (b *PlayerBuilder) WithPosition(pos domain.Position) *PlayerBuilder {
	b.position = pos
	return b
}

// WithRegion sets the region
func (b *PlayerBuilder) WithRegion(region string) *PlayerBuilder {
	b.region = region
	return b
}

// WithTeam sets the current team and adds it to the team history
func (b *PlayerBuilder) WithTeam(team string) *PlayerBuilder {
	b.currentTeam = team
	b.teams = append(b.teams, team)
	return b
}

// WithTitle appends a career championship entry
func (b *PlayerBuilder) WithTitle(tournament string, year int, team string) *PlayerBuilder {
	b.championships = append(b.championships, domain.PlayerTitle{
		Tournament: tournament,
		Year:       year,
		Team:       team,
	})
	return b
}

// WithPickedCount sets the pick counter
func (b *PlayerBuilder) WithPickedCount(count int) *PlayerBuilder {
	b.pickedCount = count
	return b
}

// Inactive marks the card retired; retired cards stay drawable
func (b *PlayerBuilder) Inactive() *PlayerBuilder {
	b.active = false
	return b
}

// Build creates the player in the database
func (b *PlayerBuilder) Build(t *testing.T, db *gorm.DB) *domain.Player {
	t.Helper()

	teams := b.teams
	if teams == nil {
		teams = []string{}
	}
	teamsJSON, _ := json.Marshal(teams)

	titles := b.championships
	if titles == nil {
		titles = []domain.PlayerTitle{}
	}
	titlesJSON, _ := json.Marshal(titles)

	player := &domain.Player{
		ID:            uuid.New(),
		Name:          b.name,
		Position:      b.position,
		Region:        b.region,
		CurrentTeam:   b.currentTeam,
		Teams:         datatypes.JSON(teamsJSON),
		Championships: datatypes.JSON(titlesJSON),
		PickedCount:   b.pickedCount,
		IsActive:      b.active,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := db.Create(player).Error; err != nil {
		t.Fatalf("failed to create player: %v", err)
	}

	return player
}

// SeedLineup creates one player per position and returns them in draw order
// (top, jungle, mid, adc, support).
func SeedLineup(t *testing.T, db *gorm.DB, team string) []*domain.Player {
	t.Helper()

	players := make([]*domain.Player, len(domain.Positions))
	for i, pos := range domain.Positions {
		players[i] = NewPlayerBuilder().
			WithName(fmt.Sprintf("%s_%s", team, pos)).
			WithPosition(pos).
			WithTeam(team).
			Build(t, db)
	}
	return players
}

// ChampionshipBuilder creates test catalog lineups
type ChampionshipBuilder struct {
	tournament string
	year       int
	team       string
	region     string
	lineup     []*domain.Player
}

// NewChampionshipBuilder creates a new ChampionshipBuilder with default values
func NewChampionshipBuilder() *ChampionshipBuilder {
	return &ChampionshipBuilder{
		tournament: "WORLDS",
		year:       2023,
		team:       "T1",
		region:     "LCK",
	}
}

// WithTournament sets the tournament name
func (b *ChampionshipBuilder) WithTournament(tournament string) *ChampionshipBuilder {
	b.tournament = tournament
	return b
}

// WithYear sets the tournament year
func (b *ChampionshipBuilder) WithYear(year int) *ChampionshipBuilder {
	b.year = year
	return b
}

// WithTeam sets the winning team
func (b *ChampionshipBuilder) WithTeam(team string) *ChampionshipBuilder {
	b.team = team
	return b
}

// WithLineup sets the five players in draw order (top, jungle, mid, adc,
// support)
func (b *ChampionshipBuilder) WithLineup(players []*domain.Player) *ChampionshipBuilder {
	b.lineup = players
	return b
}

// Build creates the championship in the database, seeding a lineup when none
// was given
func (b *ChampionshipBuilder) Build(t *testing.T, db *gorm.DB) *domain.Championship {
	t.Helper()

	if len(b.lineup) != 5 {
		b.lineup = SeedLineup(t, db, b.team)
	}

	championship := &domain.Championship{
		ID:         uuid.New(),
		Tournament: b.tournament,
		Year:       b.year,
		Team:       b.team,
		Region:     b.region,

		TopPlayerID:     b.lineup[0].ID,
		JunglePlayerID:  b.lineup[1].ID,
		MidPlayerID:     b.lineup[2].ID,
		ADCPlayerID:     b.lineup[3].ID,
		SupportPlayerID: b.lineup[4].ID,

		TopPlayerName:     b.lineup[0].Name,
		JunglePlayerName:  b.lineup[1].Name,
		MidPlayerName:     b.lineup[2].Name,
		ADCPlayerName:     b.lineup[3].Name,
		SupportPlayerName: b.lineup[4].Name,

		CreatedAt: time.Now(),
	}

	if err := db.Create(championship).Error; err != nil {
		t.Fatalf("failed to create championship: %v", err)
	}

	return championship
}

// RosterBuilder creates test rosters
type RosterBuilder struct {
	owner    *domain.User
	lineup   []*domain.Player
	public   bool
	gameMode domain.GameMode
}

// NewRosterBuilder creates a new RosterBuilder with default values
func NewRosterBuilder() *RosterBuilder {
	return &RosterBuilder{
		gameMode: domain.GameModeNormal,
	}
}

// WithOwner sets the roster owner
func (b *RosterBuilder) WithOwner(user *domain.User) *RosterBuilder {
	b.owner = user
	return b
}

// WithLineup sets the five players in draw order
func (b *RosterBuilder) WithLineup(players []*domain.Player) *RosterBuilder {
	b.lineup = players
	return b
}

// Public marks the roster shared with the community
func (b *RosterBuilder) Public() *RosterBuilder {
	b.public = true
	return b
}

// Ranked switches the roster to ranked mode
func (b *RosterBuilder) Ranked() *RosterBuilder {
	b.gameMode = domain.GameModeRanked
	return b
}

// Build creates the roster in the database
func (b *RosterBuilder) Build(t *testing.T, db *gorm.DB) *domain.Roster {
	t.Helper()

	if b.owner == nil {
		owner, _ := NewUserBuilder().Build(t, db)
		b.owner = owner
	}
	if len(b.lineup) != 5 {
		b.lineup = SeedLineup(t, db, "FIX")
	}

	roster := &domain.Roster{
		ID:       uuid.New(),
		UserID:   b.owner.ID,
		UserName: b.owner.DisplayName,

		TopPlayerID:     b.lineup[0].ID,
		JunglePlayerID:  b.lineup[1].ID,
		MidPlayerID:     b.lineup[2].ID,
		ADCPlayerID:     b.lineup[3].ID,
		SupportPlayerID: b.lineup[4].ID,

		TopPlayerName:     b.lineup[0].Name,
		JunglePlayerName:  b.lineup[1].Name,
		MidPlayerName:     b.lineup[2].Name,
		ADCPlayerName:     b.lineup[3].Name,
		SupportPlayerName: b.lineup[4].Name,

		IsPublic: b.public,
		GameMode: b.gameMode,

		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if b.gameMode == domain.GameModeRanked {
		score := 1000
		tier := "BRONZE"
		roster.RankScore = &score
		roster.RankTier = &tier
	}

	if err := db.Create(roster).Error; err != nil {
		t.Fatalf("failed to create roster: %v", err)
	}

	return roster
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}
