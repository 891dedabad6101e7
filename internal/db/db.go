package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/danielstewart77/LeaderboardBot/internal/config"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func BuildDSN(cfg *config.Config) string {
	addr := cfg.DBHost

	switch {
	case strings.HasPrefix(cfg.DBHost, "tcp("), strings.HasPrefix(cfg.DBHost, "unix("):
		// already wrapped in a network directive
	case strings.HasPrefix(cfg.DBHost, "/"):
		addr = fmt.Sprintf("unix(%s)", cfg.DBHost)
	default:
		addr = fmt.Sprintf("tcp(%s:%s)", cfg.DBHost, cfg.DBPort)
	}

	return fmt.Sprintf("%s:%s@%s/%s?charset=utf8mb4&parseTime=True&loc=Local", cfg.DBUser, cfg.DBPassword, addr, cfg.DBName)
}

// Connect opens MySQL when DB_HOST is configured, or a local sqlite file
// otherwise. TranslateError is on so duplicate-key failures surface as
// gorm.ErrDuplicatedKey on both dialects.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}

	var (
		conn *gorm.DB
		err  error
	)
	if cfg.DBHost != "" {
		conn, err = gorm.Open(mysql.Open(BuildDSN(cfg)), gcfg)
	} else {
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
				return nil, mkErr
			}
		}
		conn, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gcfg)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(10)
	if cfg.DBHost == "" {
		// sqlite serializes writers; a single connection avoids busy errors.
		sqlDB.SetMaxOpenConns(1)
	}

	return conn, nil
}
