package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/ferdiebergado/fundlist/internal/config"
	"github.com/ferdiebergado/fundlist/internal/fund"
	"github.com/ferdiebergado/fundlist/internal/platform/router"
	"github.com/ferdiebergado/fundlist/internal/platform/validation"
	"github.com/go-playground/form/v4"
)

type App struct {
	server          *http.Server
	config          *config.Config
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
	funds           fund.Repository
	validator       validation.Validator
	decoder         *form.Decoder
	router          router.Router
	mountOnce       sync.Once
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.router.Use(mw)
	}
}

func (a *App) setupRoutes() {
	fundService := fund.NewService(a.funds, a.config.Query.Timeout.Duration)
	fundHandler := fund.NewHandler(fundService)
	mountFundRoutes(a.router, fundHandler, a.validator, a.decoder)
	mountHealthRoutes(a.router, fundHandler)
}

// Handler returns the fully wired router.
func (a *App) Handler() http.Handler {
	a.mountOnce.Do(func() {
		a.registerMiddlewares()
		a.setupRoutes()
	})
	return a.router
}

func (a *App) Start(ctx context.Context) error {
	a.server.Handler = a.Handler()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func New(cfg *config.Config, provider *Provider, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr: fmt.Sprintf(":%d", serverCfg.Port),
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	return &App{
		config:          cfg,
		funds:           provider.Funds,
		validator:       provider.Validator,
		decoder:         provider.QueryDecoder,
		router:          provider.Router,
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}
}
