package middleware

import (
	"log/slog"
	"net/http"

	"github.com/solwyn/aura/pkg/handlers"
)

// Recovery returns middleware that converts handler panics into the generic
// 500 envelope. The panic value and stack context stay in the log sink only.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error(
						"handler panic",
						"panic", rec,
						"method", r.Method,
						"path", r.URL.Path,
					)
					handlers.RespondError(
						w, logger,
						http.StatusInternalServerError,
						"Internal server error",
						"An unexpected error occurred",
					)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
