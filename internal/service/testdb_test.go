package service

import (
	"testing"

	"github.com/danielstewart77/LeaderboardBot/internal/model"
	"github.com/danielstewart77/LeaderboardBot/internal/repository"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepos(t *testing.T) (repository.ScoreRepository, repository.TeamRepository) {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := conn.AutoMigrate(&model.ScoreEntry{}, &model.Team{}, &model.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.NewScoreRepository(conn), repository.NewTeamRepository(conn)
}
