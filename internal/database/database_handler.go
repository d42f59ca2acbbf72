package database

import (
	"fmt"
	"os"
	"path/filepath"

	"finch/internal/config"
	"finch/internal/domain"
	"finch/internal/support"

	"github.com/charmbracelet/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	DB *gorm.DB
)

type Config struct {
	ExistingDB  *gorm.DB
	Dialector   gorm.Dialector
	Logger      logger.Interface
	AutoMigrate bool
	Migrations  []any
}

type Option func(*Config)

// SetupDB opens the store and ensures the schema exists. The default is the
// embedded sqlite file; DB_DRIVER=postgres switches to a server-backed store
// configured through the usual DB_* environment variables. Migration is
// create-if-absent only, safe to run on every start.
func SetupDB(opts ...Option) (*gorm.DB, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch {
	case cfg.ExistingDB != nil:
		DB = cfg.ExistingDB
	case cfg.Dialector != nil:
		gormCfg := &gorm.Config{}
		if cfg.Logger != nil {
			gormCfg.Logger = cfg.Logger
		}
		db, err := gorm.Open(cfg.Dialector, gormCfg)
		if err != nil {
			return nil, fmt.Errorf("database: open connection: %w", err)
		}
		DB = db
	default:
		return nil, fmt.Errorf("database: no dialector or existing connection provided")
	}

	if DB.Dialector.Name() == "sqlite" {
		// Concurrent writers wait for the single-writer lock instead of
		// failing immediately.
		if err := DB.Exec("PRAGMA busy_timeout = 5000").Error; err != nil {
			return nil, fmt.Errorf("database: set busy timeout: %w", err)
		}
	}

	if cfg.AutoMigrate && len(cfg.Migrations) > 0 {
		if err := DB.AutoMigrate(cfg.Migrations...); err != nil {
			return nil, fmt.Errorf("database: auto migrate: %w", err)
		}
		log.Info("Database migration completed.")
	}

	return DB, nil
}

func defaultConfig() Config {
	return Config{
		Dialector:   defaultDialector(),
		Logger:      silentLogger(),
		AutoMigrate: true,
		Migrations:  defaultMigrations(),
	}
}

func defaultDialector() gorm.Dialector {
	if support.GetEnv("DB_DRIVER", "sqlite") == "postgres" {
		return postgres.Open(buildPostgresDSN())
	}
	return sqliteDialector(config.DBPath())
}

func sqliteDialector(path string) gorm.Dialector {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			log.Error("Error creating directory for database file", "error", err)
		}
	}
	return sqlite.Open(path)
}

func buildPostgresDSN() string {
	dbHost := support.GetEnv("DB_HOST", "localhost")
	dbPort := support.GetEnv("DB_PORT", "5432")
	dbName := support.GetEnv("DB_NAME", "finch")
	dbUser := support.GetEnv("DB_USERNAME", "admin")
	dbPassword := support.GetEnv("DB_PASSWORD", "admin")

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost,
		dbPort,
		dbUser,
		dbPassword,
		dbName,
	)
}

func silentLogger() logger.Interface {
	return logger.New(
		log.Default(),
		logger.Config{LogLevel: logger.Silent},
	)
}

func defaultMigrations() []any {
	return []any{
		domain.Application{},
		domain.DailyStat{},
	}
}

func WithExistingDB(db *gorm.DB) Option {
	return func(cfg *Config) {
		cfg.ExistingDB = db
	}
}

func WithDialector(d gorm.Dialector) Option {
	return func(cfg *Config) {
		cfg.Dialector = d
	}
}

func WithLogger(l logger.Interface) Option {
	return func(cfg *Config) {
		cfg.Logger = l
	}
}
