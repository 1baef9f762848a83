package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/solwyn/aura/internal/agents"
	"github.com/solwyn/aura/internal/analytics"
	"github.com/solwyn/aura/internal/completion"
	"github.com/solwyn/aura/internal/config"
	"github.com/solwyn/aura/internal/database"
	"github.com/solwyn/aura/pkg/logging"
)

// Runtime holds the initialized collaborators the handlers depend on.
type Runtime struct {
	Logger      *slog.Logger
	Agents      agents.System
	Completions completion.Client
	Analytics   analytics.Recorder

	db *sql.DB
}

// NewRuntime initializes logging, the document store, and the completion
// client. In production a database failure is fatal; otherwise the service
// starts degraded and repositories report unavailability per call.
func NewRuntime(cfg *config.Config) (*Runtime, error) {
	logger := logging.New(&cfg.Logging)

	db, err := openDatabase(cfg)
	if err != nil {
		if cfg.Production() {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
		logger.Warn("database init failed, starting degraded", "error", err)
		db = nil
	}

	return &Runtime{
		Logger:      logger,
		Agents:      agents.New(db, logger),
		Completions: completion.New(&cfg.Provider, logger),
		Analytics:   analytics.New(db, logger),
		db:          db,
	}, nil
}

// Close releases the database pool.
func (r *Runtime) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

func openDatabase(cfg *config.Config) (*sql.DB, error) {
	db, err := database.Open(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
