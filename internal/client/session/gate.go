package session

import (
	"context"
	"path"
	"strings"
)

const (
	LoginPath = "/login"
	UsersPath = "/users"
)

// IsAuthenticated reports whether store holds a non-empty token. Presence
// alone counts; there is no expiry check. A store error counts as absent.
func IsAuthenticated(ctx context.Context, store Store) bool {
	s, err := store.Load(ctx)
	if err != nil {
		return false
	}
	return s.Authenticated()
}

// Gate applies the route policy of the dashboard on top of a Store. It is
// consulted on every navigation.
type Gate struct {
	store Store
}

func NewGate(store Store) *Gate {
	return &Gate{store: store}
}

func (g *Gate) IsAuthenticated(ctx context.Context) bool {
	return IsAuthenticated(ctx, g.store)
}

// Resolve decides what happens on navigation to route. It returns ok=true
// when the route may be shown, otherwise the path to redirect to.
//
//	/login          -> /users when authenticated
//	/users, /users/ -> /login when not authenticated
//	anything else   -> /login
func (g *Gate) Resolve(ctx context.Context, route string) (redirect string, ok bool) {
	p := path.Clean("/" + route)
	authed := g.IsAuthenticated(ctx)

	switch {
	case p == LoginPath:
		if authed {
			return UsersPath, false
		}
		return "", true
	case p == UsersPath || strings.HasPrefix(p, UsersPath+"/"):
		if !authed {
			return LoginPath, false
		}
		return "", true
	default:
		return LoginPath, false
	}
}
