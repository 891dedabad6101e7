package main

import (
	"log"

	"github.com/danielstewart77/LeaderboardBot/internal/config"
	"github.com/danielstewart77/LeaderboardBot/internal/db"
	"github.com/danielstewart77/LeaderboardBot/internal/facet"
	"github.com/danielstewart77/LeaderboardBot/internal/model"
	"github.com/danielstewart77/LeaderboardBot/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	catalog, err := facet.Load(cfg.FacetsConfig)
	if err != nil {
		log.Fatalf("facet config error: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := conn.AutoMigrate(&model.ScoreEntry{}, &model.Team{}, &model.User{}); err != nil {
		log.Fatalf("auto migrate error: %v", err)
	}

	srv := server.New(conn, catalog)

	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
