// Package agents provides the domain system for agent profiles: resolving
// them from the document store, synthesizing system prompts from persona
// fields, and serving the metadata and interaction HTTP endpoints.
package agents

import (
	"encoding/json"
	"time"
)

// Agent represents an agent profile stored in the database. Profiles are
// created and updated by external tooling; this service only reads them.
type Agent struct {
	Name        string
	Description string
	Personality string

	// Metadata holds fields this service does not interpret. They are
	// returned verbatim on the metadata endpoint.
	Metadata map[string]any

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MarshalJSON inlines metadata fields at the top level of the profile
// object so opaque fields round-trip unchanged. Known profile fields win
// on key collision.
func (a Agent) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(a.Metadata)+5)
	for k, v := range a.Metadata {
		fields[k] = v
	}
	fields["name"] = a.Name
	fields["description"] = a.Description
	fields["personality"] = a.Personality
	fields["created_at"] = a.CreatedAt
	fields["updated_at"] = a.UpdatedAt
	return json.Marshal(fields)
}

// Summary is the listing projection of a profile.
type Summary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// InteractionReply is the success envelope for the interaction endpoint.
// Reply is always non-empty: the completion client substitutes a fallback
// sentence when the provider returns no usable text.
type InteractionReply struct {
	Agent     string    `json:"agent"`
	Reply     string    `json:"reply"`
	Timestamp time.Time `json:"timestamp"`
}
