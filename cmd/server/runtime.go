package main

import (
	"fmt"
	"log/slog"

	"albumvault/internal/config"
	"albumvault/internal/database"
	"albumvault/internal/lifecycle"
	"albumvault/internal/logger"
	"albumvault/internal/storage"
)

// Runtime holds the shared subsystems injected into handlers.
type Runtime struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
}

// NewRuntime initializes the lifecycle coordinator, logger, database pool,
// and asset store.
func NewRuntime(cfg *config.Config) (*Runtime, error) {
	lc := lifecycle.New()
	log := logger.New(&cfg.Logging)

	dbSys, err := database.New(&cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	return &Runtime{
		Lifecycle: lc,
		Logger:    log,
		Database:  dbSys,
		Storage:   store,
	}, nil
}

// Start registers subsystem lifecycle hooks.
func (r *Runtime) Start() error {
	if err := r.Database.Start(r.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := r.Storage.Start(r.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	return nil
}
