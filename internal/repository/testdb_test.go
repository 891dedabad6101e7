package repository

import (
	"testing"

	"github.com/danielstewart77/LeaderboardBot/internal/model"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	// single connection: keeps the in-memory db alive and serializes writers
	sqlDB.SetMaxOpenConns(1)
	if err := conn.AutoMigrate(&model.ScoreEntry{}, &model.Team{}, &model.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}
