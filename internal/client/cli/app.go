package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/userhub/internal/buildinfo"
	"github.com/dmitrijs2005/userhub/internal/client/client"
	"github.com/dmitrijs2005/userhub/internal/client/config"
	"github.com/dmitrijs2005/userhub/internal/client/notify"
	"github.com/dmitrijs2005/userhub/internal/client/services"
	"github.com/dmitrijs2005/userhub/internal/client/session"
	"github.com/dmitrijs2005/userhub/internal/filex"
	"github.com/dmitrijs2005/userhub/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	client    client.Client
	auth      services.AuthService
	dashboard *services.Dashboard
	gate      *session.Gate
	closer    io.Closer
	reader    *bufio.Reader
	out       io.Writer
	term      string
	Mode      Mode
}

// NewApp opens the session database and builds the API client and services.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	dbPath, err := filex.EnsureParentDir(c.SessionDB)
	if err != nil {
		return nil, fmt.Errorf("session db path error: %w", err)
	}

	store, err := session.OpenSQLite(dbPath)
	if err != nil {
		return nil, fmt.Errorf("session db error: %w", err)
	}

	api, err := client.NewHTTPClient(client.Options{
		BaseURL: c.APIBaseURL,
		APIKey:  c.APIKey,
		Version: buildinfo.Version(),
		Timeout: c.RequestTimeout,
	}, store)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	app := newApp(c, logger, api, store, bufio.NewReader(os.Stdin), os.Stdout)
	app.closer = store
	return app, nil
}

// newApp wires the services around an already built client and store.
func newApp(c *config.Config, logger logging.Logger, api client.Client, store session.Store, r *bufio.Reader, w io.Writer) *App {
	a := &App{
		config: c,
		logger: logger,
		client: api,
		gate:   session.NewGate(store),
		reader: r,
		out:    w,
	}
	n := notify.Func(a.showNotification)
	a.auth = services.NewAuthService(api, store, n, logger)
	a.dashboard = services.NewDashboard(api, n, logger)
	return a
}

func (a *App) showNotification(_ context.Context, n notify.Notification) {
	switch n.Level {
	case notify.LevelError:
		printlnFn("Error:", n.Message)
	default:
		printlnFn(n.Message)
	}
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		printlnFn(fmt.Sprintf("Switched to %s mode", mode))
	}
}

// checkReadiness probes the API once and records the result as the mode.
func (a *App) checkReadiness(ctx context.Context) {
	if err := a.auth.Ping(ctx); err != nil {
		a.logger.Warn(ctx, "api not reachable", "error", err)
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// isLoggedIn applies the route policy for the users view.
func (a *App) isLoggedIn(ctx context.Context) bool {
	_, ok := a.gate.Resolve(ctx, session.UsersPath)
	return ok
}

// Run prepares the session store, asks for credentials when no token is
// stored and then serves the REPL until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.auth.Init(ctx); err != nil {
		a.logger.Error(ctx, "session store init failed", "error", err)
		return err
	}

	printlnFn("Welcome to userhub CLI (type 'help' for commands)")
	a.checkReadiness(ctx)

	if a.isLoggedIn(ctx) {
		printlnFn("Signed in as", a.auth.Current(ctx).Email)
	} else if a.Mode == ModeOnline {
		_ = a.Login(ctx)
	}

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
	return nil
}

func (a *App) Close() {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		a.logger.Warn(context.Background(), "closing session db failed", "error", err)
	}
	a.closer = nil
}

func (a *App) getStatus(ctx context.Context) string {
	s := ""
	if email := a.auth.Current(ctx).Email; email != "" {
		s = email + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
