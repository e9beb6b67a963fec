package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/ferdiebergado/fundlist/internal/config"
	"github.com/ferdiebergado/fundlist/internal/middleware"
	"github.com/ferdiebergado/fundlist/internal/pkg/logging"
	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
)

const (
	envFile = ".env"
	cfgFile = "config.json"
)

// Middlewares returns the global middleware chain, outermost first.
func Middlewares(cfg *config.Config) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		middleware.RequestID,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.CORS(cfg.Server.AllowedOrigins...),
		middleware.ContextGuard,
	}
}

func Run(ctx context.Context) error {
	slog.Info("Initializing...")

	if os.Getenv("ENV") != config.EnvProduction {
		if err := loadEnv(envFile); err != nil {
			return err
		}
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	logging.SetupLogger(cfg.App.Env, cfg.App.LogLevel, os.Stdout)

	provider, err := newProvider(ctx, cfg)
	if err != nil {
		return err
	}
	defer provider.Close()

	api := New(cfg, provider, Middlewares(cfg))
	if err := api.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}

func loadEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		slog.Warn("No env file found, using the process environment.", "file", path)
		return nil
	}

	if err := env.Load(path); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}
