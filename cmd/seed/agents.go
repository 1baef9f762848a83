package main

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed agents.json
var embeddedAgents []byte

// AgentSeedData represents the JSON structure for agent seed files.
type AgentSeedData struct {
	Agents []AgentSeed `json:"agents"`
}

// AgentSeed is a single agent profile to insert.
type AgentSeed struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Personality string         `json:"personality"`
	Metadata    map[string]any `json:"metadata"`
}

func init() {
	registerSeeder(&AgentSeeder{})
}

// AgentSeeder implements Seeder for agent profiles. It loads seed data from
// the embedded file or an external file path.
type AgentSeeder struct {
	file string
}

// Name returns "agents" as the seeder identifier.
func (s *AgentSeeder) Name() string {
	return "agents"
}

// Description returns a human-readable description of this seeder.
func (s *AgentSeeder) Description() string {
	return "Seeds agent profiles with persona fields and metadata"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *AgentSeeder) SetFile(path string) {
	s.file = path
}

// Seed inserts or updates the seed profiles.
func (s *AgentSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data := embeddedAgents
	if s.file != "" {
		external, err := os.ReadFile(s.file)
		if err != nil {
			return fmt.Errorf("read seed file: %w", err)
		}
		data = external
	}

	var seed AgentSeedData
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("parse seed data: %w", err)
	}

	q := `
		INSERT INTO agents (name, description, personality, metadata)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE
		SET description = EXCLUDED.description,
		    personality = EXCLUDED.personality,
		    metadata = EXCLUDED.metadata,
		    updated_at = NOW()`

	for _, agent := range seed.Agents {
		if agent.Name == "" {
			return fmt.Errorf("seed agent missing name")
		}

		metadata := agent.Metadata
		if metadata == nil {
			metadata = map[string]any{}
		}
		meta, err := json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("encode metadata for %s: %w", agent.Name, err)
		}

		if _, err := tx.ExecContext(ctx, q, agent.Name, agent.Description, agent.Personality, meta); err != nil {
			return fmt.Errorf("insert agent %s: %w", agent.Name, err)
		}
	}

	return nil
}
