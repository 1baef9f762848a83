package agents

import (
	"errors"
	"net/http"
)

// Domain errors for agent profile resolution. A missing profile is an
// expected, client-facing outcome; an unavailable store is an operational
// fault. The two must never be conflated.
var (
	ErrNotFound    = errors.New("agent not found")
	ErrUnavailable = errors.New("agent store unavailable")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
