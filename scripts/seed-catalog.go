package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/loga/gacha-backend/internal/config"
	"github.com/loga/gacha-backend/internal/domain"
	"github.com/loga/gacha-backend/internal/repository/postgres"
	"gorm.io/datatypes"
)

type seedPlayer struct {
	name     string
	realName string
	position domain.Position
	team     string
	region   string
	titles   []domain.PlayerTitle
}

var t1Worlds2023 = []seedPlayer{
	{"Zeus", "Choi Woo-je", domain.PositionTop, "T1", "LCK", []domain.PlayerTitle{{Tournament: "WORLDS", Year: 2023, Team: "T1"}}},
	{"Oner", "Mun Hyeon-jun", domain.PositionJungle, "T1", "LCK", []domain.PlayerTitle{{Tournament: "WORLDS", Year: 2023, Team: "T1"}}},
	{"Faker", "Lee Sang-hyeok", domain.PositionMid, "T1", "LCK", []domain.PlayerTitle{{Tournament: "WORLDS", Year: 2023, Team: "T1"}}},
	{"Gumayusi", "Lee Min-hyeong", domain.PositionADC, "T1", "LCK", []domain.PlayerTitle{{Tournament: "WORLDS", Year: 2023, Team: "T1"}}},
	{"Keria", "Ryu Min-seok", domain.PositionSupport, "T1", "LCK", []domain.PlayerTitle{{Tournament: "WORLDS", Year: 2023, Team: "T1"}}},
}

var extras = []seedPlayer{
	{"Kiin", "Kim Gi-in", domain.PositionTop, "GEN", "LCK", nil},
	{"Canyon", "Kim Geon-bu", domain.PositionJungle, "GEN", "LCK", nil},
	{"Chovy", "Jeong Ji-hoon", domain.PositionMid, "GEN", "LCK", nil},
	{"Ruler", "Park Jae-hyuk", domain.PositionADC, "JDG", "LPL", nil},
	{"Lehends", "Son Si-woo", domain.PositionSupport, "GEN", "LCK", nil},
	{"Caps", "Rasmus Winther", domain.PositionMid, "G2", "LEC", nil},
	{"BrokenBlade", "Sergen Celik", domain.PositionTop, "G2", "LEC", nil},
}

func buildPlayer(sp seedPlayer) *domain.Player {
	teamsJSON, _ := json.Marshal([]string{sp.team})
	titles := sp.titles
	if titles == nil {
		titles = []domain.PlayerTitle{}
	}
	titlesJSON, _ := json.Marshal(titles)

	return &domain.Player{
		ID:            uuid.New(),
		Name:          sp.name,
		RealName:      sp.realName,
		Position:      sp.position,
		CurrentTeam:   sp.team,
		Teams:         datatypes.JSON(teamsJSON),
		Region:        sp.region,
		Championships: datatypes.JSON(titlesJSON),
		IsActive:      true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Seeding player catalog...")

	lineup := make([]*domain.Player, 0, len(t1Worlds2023))
	for _, sp := range t1Worlds2023 {
		player := buildPlayer(sp)
		if err := db.Create(player).Error; err != nil {
			fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", sp.name, err)
			os.Exit(1)
		}
		lineup = append(lineup, player)
		fmt.Printf("  ✓ %s (%s, %s)\n", player.Name, player.Position, player.CurrentTeam)
	}

	for _, sp := range extras {
		player := buildPlayer(sp)
		if err := db.Create(player).Error; err != nil {
			fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", sp.name, err)
			os.Exit(1)
		}
		fmt.Printf("  ✓ %s (%s, %s)\n", player.Name, player.Position, player.CurrentTeam)
	}

	fmt.Println("\nSeeding championship catalog...")

	championship := &domain.Championship{
		ID:         uuid.New(),
		Tournament: "WORLDS",
		Year:       2023,
		Team:       "T1",
		Region:     "LCK",

		TopPlayerID:     lineup[0].ID,
		JunglePlayerID:  lineup[1].ID,
		MidPlayerID:     lineup[2].ID,
		ADCPlayerID:     lineup[3].ID,
		SupportPlayerID: lineup[4].ID,

		TopPlayerName:     lineup[0].Name,
		JunglePlayerName:  lineup[1].Name,
		MidPlayerName:     lineup[2].Name,
		ADCPlayerName:     lineup[3].Name,
		SupportPlayerName: lineup[4].Name,

		CreatedAt: time.Now(),
	}

	if err := db.Create(championship).Error; err != nil {
		fmt.Fprintf(os.Stderr, "failed to create championship: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  ✓ %s\n", championship.DisplayName())

	fmt.Println("\n============================================================")
	fmt.Println("CATALOG SEED COMPLETE")
	fmt.Println("============================================================")
	fmt.Printf("\nPlayers: %d\nChampionships: 1\n", len(t1Worlds2023)+len(extras))
	fmt.Println("\nTry it:")
	fmt.Printf("  curl -X POST http://localhost:%s/api/v1/gacha/draw/MID\n", cfg.Port)
	fmt.Printf("  curl -X POST http://localhost:%s/api/v1/gacha/draw/full\n", cfg.Port)
}
