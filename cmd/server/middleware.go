package main

import (
	"github.com/solwyn/aura/internal/config"
	"github.com/solwyn/aura/internal/middleware"
)

// buildMiddleware configures the middleware stack: recovery outermost, then
// request logging, CORS, and the request body limit.
func buildMiddleware(runtime *Runtime, cfg *config.Config) middleware.System {
	sys := middleware.New()
	sys.Use(middleware.Recovery(runtime.Logger))
	sys.Use(middleware.Logger(runtime.Logger))
	sys.Use(middleware.CORS(&cfg.CORS))
	sys.Use(middleware.BodyLimit(cfg.Server.MaxBodySizeBytes()))
	return sys
}
