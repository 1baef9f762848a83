package agents

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
)

type repository struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates an agents repository implementing the System interface.
// A nil db is permitted for degraded startup; every call then reports
// ErrUnavailable.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repository{
		db:     db,
		logger: logger.With("system", "agents"),
	}
}

func (r *repository) Find(ctx context.Context, name string) (*Agent, error) {
	if r.db == nil {
		return nil, ErrUnavailable
	}

	q := `
		SELECT name, description, personality, metadata, created_at, updated_at
		FROM agents
		WHERE name = $1`

	var (
		a    Agent
		meta []byte
	)
	err := r.db.QueryRowContext(ctx, q, name).Scan(
		&a.Name, &a.Description, &a.Personality, &meta, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		r.logger.Error("agent lookup failed", "name", name, "error", err)
		return nil, fmt.Errorf("%w: query agent: %v", ErrUnavailable, err)
	}

	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &a.Metadata); err != nil {
			r.logger.Error("agent metadata corrupt", "name", name, "error", err)
			return nil, fmt.Errorf("%w: decode metadata: %v", ErrUnavailable, err)
		}
	}

	return &a, nil
}

func (r *repository) List(ctx context.Context) ([]Summary, error) {
	if r.db == nil {
		return nil, ErrUnavailable
	}

	q := `
		SELECT name, description
		FROM agents
		ORDER BY name`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		r.logger.Error("agent list failed", "error", err)
		return nil, fmt.Errorf("%w: query agents: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	summaries := []Summary{}
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.Name, &s.Description); err != nil {
			return nil, fmt.Errorf("%w: scan agent: %v", ErrUnavailable, err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate agents: %v", ErrUnavailable, err)
	}

	return summaries, nil
}
