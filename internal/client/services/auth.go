// Package services contains the application services shared by the web
// dashboard and the CLI. Services are where errors become notifications:
// every failure is logged, turned into exactly one user-facing message and
// returned to the caller, who only decides what to show next.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userhub/internal/client/client"
	"github.com/dmitrijs2005/userhub/internal/client/models"
	"github.com/dmitrijs2005/userhub/internal/client/notify"
	"github.com/dmitrijs2005/userhub/internal/client/session"
	"github.com/dmitrijs2005/userhub/internal/logging"
)

// AuthService handles the session lifecycle.
//
// Contract:
//   - Init: prepare the token store at startup.
//   - Login: exchange credentials for a token and store it.
//   - Logout / Reset: drop the stored token (Reset is silent).
//   - IsAuthenticated / Current: read the stored session.
//   - Ping: readiness of the remote API.
type AuthService interface {
	Init(ctx context.Context) error
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	Reset(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	Current(ctx context.Context) session.Session
	Ping(ctx context.Context) error
}

type authService struct {
	client   client.Client
	store    session.Store
	notifier notify.Notifier
	logger   logging.Logger
}

func NewAuthService(c client.Client, store session.Store, n notify.Notifier, l logging.Logger) AuthService {
	return &authService{client: c, store: store, notifier: n, logger: l.With("module", "auth")}
}

func (a *authService) Init(ctx context.Context) error {
	return a.store.Init(ctx)
}

// Login stores the token on success. On any failure nothing is stored.
func (a *authService) Login(ctx context.Context, email, password string) error {
	token, err := a.client.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		a.logger.Warn(ctx, "login failed", "email", email, "error", err)
		notify.Error(ctx, a.notifier, MsgLoginFailed)
		return fmt.Errorf("login error: %w", err)
	}

	if token == "" {
		a.logger.Warn(ctx, "login returned no token", "email", email)
		notify.Error(ctx, a.notifier, MsgLoginNoToken)
		return fmt.Errorf("login error: %w", client.ErrUnauthorized)
	}

	if err := a.store.Save(ctx, session.Session{Token: token, Email: email}); err != nil {
		a.logger.Error(ctx, "saving session failed", "error", err)
		notify.Error(ctx, a.notifier, MsgLoginFailed)
		return fmt.Errorf("session saving error: %w", err)
	}

	a.logger.Info(ctx, "logged in", "email", email)
	notify.Success(ctx, a.notifier, MsgLoginSuccess)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.Reset(ctx); err != nil {
		return err
	}
	a.logger.Info(ctx, "logged out")
	notify.Success(ctx, a.notifier, MsgLoggedOut)
	return nil
}

func (a *authService) Reset(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		a.logger.Error(ctx, "clearing session failed", "error", err)
		return fmt.Errorf("session clearing error: %w", err)
	}
	return nil
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	return session.IsAuthenticated(ctx, a.store)
}

func (a *authService) Current(ctx context.Context) session.Session {
	s, err := a.store.Load(ctx)
	if err != nil {
		a.logger.Warn(ctx, "loading session failed", "error", err)
		return session.Session{}
	}
	return s
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
