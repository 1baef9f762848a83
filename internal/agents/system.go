package agents

import "context"

// System defines the interface for agent profile retrieval.
type System interface {
	// Find resolves a profile by exact name. Returns ErrNotFound when no
	// profile exists under that name and ErrUnavailable on storage faults.
	Find(ctx context.Context, name string) (*Agent, error)

	// List returns summaries of all stored profiles ordered by name.
	List(ctx context.Context) ([]Summary, error)
}
