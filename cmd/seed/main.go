package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/danielstewart77/LeaderboardBot/internal/config"
	"github.com/danielstewart77/LeaderboardBot/internal/db"
	"github.com/danielstewart77/LeaderboardBot/internal/model"
	"github.com/danielstewart77/LeaderboardBot/internal/repository"
	"github.com/joho/godotenv"
)

type seedAward struct {
	UserID string
	Facet  string
	Amount int
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	conn, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := conn.AutoMigrate(&model.ScoreEntry{}, &model.Team{}, &model.User{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	scores := repository.NewScoreRepository(conn)
	teams := repository.NewTeamRepository(conn)

	existing, err := scores.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("check ledger: %w", err)
	}
	if len(existing) > 0 && os.Getenv("FORCE_SEED") != "true" {
		log.Printf("ledger already has entries; skipping seed (set FORCE_SEED=true to override)")
		return nil
	}

	memberships := map[string][]string{
		"Morning Larks": {"alice", "bob"},
		"Night Owls":    {"carol", "dave"},
	}
	for name, members := range memberships {
		team, err := teams.CreateTeam(ctx, name)
		if err != nil {
			return fmt.Errorf("create team %s: %w", name, err)
		}
		for _, member := range members {
			if _, err := teams.AssignUser(ctx, member, team.ID); err != nil {
				return fmt.Errorf("assign %s: %w", member, err)
			}
		}
	}

	awards := []seedAward{
		{"alice", "daily_quiet_time", 5},
		{"alice", "daily_journaling", 2},
		{"bob", "team_call_attendance", 15},
		{"carol", "weekly_curriculum", 15},
		{"carol", "bonus", 10},
		{"dave", "check_in", 1},
		{"eve", "daily_quiet_time", 5}, // no team on purpose
	}
	for _, a := range awards {
		if _, err := scores.Accumulate(ctx, a.UserID, a.Facet, a.Amount); err != nil {
			return fmt.Errorf("award %s/%s: %w", a.UserID, a.Facet, err)
		}
	}

	log.Printf("seeded %d teams and %d awards", len(memberships), len(awards))
	return nil
}
