// Package analytics provides best-effort usage recording. Records are
// append-only and never read back by this service; a failed write is an
// observability loss, not a request failure.
package analytics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// TypeInteraction is the record type written for each successful interaction.
const TypeInteraction = "interaction"

// ErrUnavailable indicates the analytics store could not accept the write.
var ErrUnavailable = errors.New("analytics store unavailable")

// Record is a single append-only usage record.
type Record struct {
	ID             uuid.UUID `json:"id"`
	Agent          string    `json:"agent"`
	Type           string    `json:"type"`
	MessageLength  int       `json:"message_length"`
	ResponseLength int       `json:"response_length"`
	RecordedAt     time.Time `json:"recorded_at"`
}

// Recorder appends usage records. Callers inspect the result only to decide
// whether to log a warning; it must never influence a client-visible response.
type Recorder interface {
	RecordInteraction(ctx context.Context, agent string, messageLength, responseLength int) error
}

type recorder struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates an analytics recorder. A nil db is permitted for degraded
// startup; every write then reports ErrUnavailable.
func New(db *sql.DB, logger *slog.Logger) Recorder {
	return &recorder{
		db:     db,
		logger: logger.With("system", "analytics"),
	}
}

func (r *recorder) RecordInteraction(ctx context.Context, agent string, messageLength, responseLength int) error {
	if r.db == nil {
		return ErrUnavailable
	}

	rec := Record{
		ID:             uuid.New(),
		Agent:          agent,
		Type:           TypeInteraction,
		MessageLength:  messageLength,
		ResponseLength: responseLength,
		RecordedAt:     time.Now().UTC(),
	}

	q := `
		INSERT INTO analytics (id, agent, type, message_length, response_length, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(
		ctx, q,
		rec.ID, rec.Agent, rec.Type, rec.MessageLength, rec.ResponseLength, rec.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: insert record: %v", ErrUnavailable, err)
	}

	return nil
}
