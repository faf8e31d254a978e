// Package server initializes and runs the userhub web dashboard: it builds
// the session registry and the HTTP router, handles graceful shutdown and
// runs the idle session sweeper.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/userhub/internal/buildinfo"
	"github.com/dmitrijs2005/userhub/internal/client/client"
	"github.com/dmitrijs2005/userhub/internal/client/session"
	"github.com/dmitrijs2005/userhub/internal/common"
	"github.com/dmitrijs2005/userhub/internal/logging"
	"github.com/dmitrijs2005/userhub/internal/server/config"
	"github.com/dmitrijs2005/userhub/internal/server/web"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	config   *config.Config
	logger   logging.Logger
	registry *web.Registry
	handler  http.Handler
}

func NewApp(c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := logging.New(os.Stdout, "json", c.LogLevel)

	secret := c.SessionSecret
	if secret == "" {
		s, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("session secret error: %w", err)
		}
		secret = s
		logger.Warn(context.Background(), "no session secret configured, sessions will not survive a restart")
	}

	opts := client.Options{
		BaseURL:   c.APIBaseURL,
		APIKey:    c.APIKey,
		Version:   buildinfo.Version(),
		Timeout:   c.RequestTimeout,
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
	}

	// The readiness probe runs without a token.
	probe, err := client.NewHTTPClient(opts, session.NewMemoryStore())
	if err != nil {
		return nil, fmt.Errorf("api client error: %w", err)
	}

	registry := web.NewRegistry(c.SessionIdleTTL, web.NewWorkspaceFactory(opts, logger), logger)

	srv, err := web.NewServer(registry, []byte(secret), probe, logger)
	if err != nil {
		return nil, fmt.Errorf("web server init error: %w", err)
	}

	return &App{config: c, logger: logger, registry: registry, handler: srv.Router()}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := &http.Server{
		Addr:              app.config.ListenAddr,
		Handler:           app.handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(shutdownCtx, "http server shutdown failed", "error", err)
		}
	}()

	app.logger.Info(ctx, "starting http server", "addr", app.config.ListenAddr)
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// sweepInterval checks for idle sessions a few times per ttl.
func sweepInterval(ttl time.Duration) time.Duration {
	interval := ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	return interval
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "version", buildinfo.Version())

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.registry.RunSweeper(ctx, sweepInterval(app.config.SessionIdleTTL))
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(context.Background(), "app stopped")
}
