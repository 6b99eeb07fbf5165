// Package database manages the Postgres connection pool and schema migrations.
// The pool is opened once at startup, injected into repositories, and closed
// on shutdown.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"albumvault/internal/config"
	"albumvault/internal/lifecycle"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// System provides access to the shared connection pool and its lifecycle.
type System interface {
	DB() *sql.DB
	Start(lc *lifecycle.Coordinator) error
}

type database struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open establishes a connection pool with the configured limits and verifies
// connectivity with a ping.
func Open(cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnTimeoutDuration())
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// New creates a database system backed by a verified connection pool.
func New(cfg *config.DatabaseConfig, logger *slog.Logger) (System, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	return &database{
		db:     db,
		logger: logger.With("system", "database"),
	}, nil
}

func (d *database) DB() *sql.DB {
	return d.db
}

func (d *database) Start(lc *lifecycle.Coordinator) error {
	lc.OnStartup(func() {
		if err := Migrate(d.db); err != nil {
			d.logger.Error("migration failed", "error", err)
			return
		}
		d.logger.Info("database ready")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := d.db.Close(); err != nil {
			d.logger.Error("database close error", "error", err)
		} else {
			d.logger.Info("database closed")
		}
	})

	return nil
}
