package database

import (
	"fmt"
	"strings"

	"github.com/yukikurage/client-portal-api/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the GORM driver from the connection URL scheme:
// postgres:// or postgresql:// (pgx), mysql://<go-sql-driver DSN>, sqlite://<path>.
func Dialector(databaseURL string) (gorm.Dialector, error) {
	scheme, rest, ok := strings.Cut(databaseURL, "://")
	if !ok {
		return nil, fmt.Errorf("database url has no scheme")
	}

	switch strings.ToLower(scheme) {
	case "postgres", "postgresql":
		return postgres.Open(databaseURL), nil
	case "mysql":
		return mysql.Open(withParseTime(rest)), nil
	case "sqlite", "sqlite3":
		return sqlite.Open(rest), nil
	default:
		return nil, fmt.Errorf("unsupported database scheme %q", scheme)
	}
}

// Connect opens the database described by cfg.DatabaseURL.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Info
	if cfg.IsProduction() {
		logLevel = logger.Warn
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func withParseTime(dsn string) string {
	if strings.Contains(dsn, "parseTime=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&parseTime=True"
	}
	return dsn + "?charset=utf8mb4&parseTime=True&loc=Local"
}
