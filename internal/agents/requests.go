package agents

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// MaxMessageLength is the inclusive upper bound on interaction messages.
const MaxMessageLength = 1000

// InteractRequest contains the data for an interaction request.
type InteractRequest struct {
	Message string `json:"message"`
}

// ParseInteractRequest decodes and validates an interaction request body.
// The returned error text is client-facing and names the first violated
// constraint; no side effect may occur before this succeeds.
func ParseInteractRequest(body io.Reader) (*InteractRequest, error) {
	var req InteractRequest
	dec := json.NewDecoder(body)
	if err := dec.Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("message must be a string")
		}
		return nil, fmt.Errorf("request body must be valid JSON")
	}

	if req.Message == "" {
		return nil, fmt.Errorf("message is required")
	}
	if utf8.RuneCountInString(req.Message) > MaxMessageLength {
		return nil, fmt.Errorf("message must not exceed %d characters", MaxMessageLength)
	}

	return &req, nil
}
