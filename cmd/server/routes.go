package main

import (
	"net/http"
	"time"

	"github.com/solwyn/aura/internal/agents"
	"github.com/solwyn/aura/internal/config"
	"github.com/solwyn/aura/internal/routes"
	"github.com/solwyn/aura/pkg/handlers"
)

func buildRoutes(runtime *Runtime, cfg *config.Config) http.Handler {
	sys := routes.New()

	sys.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/health",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			handlers.RespondJSON(w, http.StatusOK, map[string]any{
				"status":    "healthy",
				"version":   cfg.Version,
				"timestamp": time.Now().UTC(),
			})
		},
	})

	agentHandler := agents.NewHandler(runtime.Agents, runtime.Completions, runtime.Analytics, runtime.Logger)
	for _, group := range agentHandler.Routes() {
		sys.RegisterGroup(group)
	}

	return sys.Build(func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondError(
			w, runtime.Logger,
			http.StatusNotFound,
			"Not found",
			"The requested resource does not exist",
		)
	})
}
