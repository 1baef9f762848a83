package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/solwyn/aura/internal/config"
	"github.com/solwyn/aura/internal/server"
	"github.com/solwyn/aura/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal("failed to load configuration", err)
	}
	if err := cfg.Finalize(); err != nil {
		fatal("invalid configuration", err)
	}

	runtime, err := NewRuntime(cfg)
	if err != nil {
		fatal("failed to initialize runtime", err)
	}
	defer runtime.Close()

	handler := buildMiddleware(runtime, cfg).Apply(buildRoutes(runtime, cfg))

	srv := server.New(&cfg.Server, handler, runtime.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runtime.Logger.Info(
		"service initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"environment", cfg.Environment,
	)

	if err := srv.Run(ctx); err != nil {
		runtime.Logger.Error("server error", "error", err)
		os.Exit(1)
	}

	runtime.Logger.Info("service stopped")
}

func fatal(msg string, err error) {
	logger := logging.New(&logging.Config{})
	logger.Error(msg, "error", err)
	os.Exit(1)
}
