package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/userhub/internal/client/client"
	"github.com/dmitrijs2005/userhub/internal/common"
)

// getSimpleText, getTextWithDefault and getPassword are indirections used to
// facilitate testing.
var (
	getSimpleText      = GetSimpleText
	getTextWithDefault = GetTextWithDefault
	getPassword        = GetPassword
)

// Login prompts for credentials and exchanges them for a token. Failures are
// reported by the auth service; the error is returned for the caller's
// information only.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn(ctx) {
		printlnFn("Already signed in as", a.auth.Current(ctx).Email, "(type 'logout' first)")
		return nil
	}

	printlnFn("Demo account:", common.DemoEmail, "/", common.DemoPassword)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, string(password)); err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			a.setMode(ModeOffline)
		}
		return err
	}

	a.setMode(ModeOnline)
	a.dashboard.Reset()
	a.term = ""
	return nil
}

// Logout drops the stored token and the cached page.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.dashboard.Reset()
	a.term = ""
	return nil
}
