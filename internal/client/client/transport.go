package client

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/userhub/internal/client/session"
	"github.com/dmitrijs2005/userhub/internal/common"
)

// Responder sends one request.
type Responder func(*http.Request) (*http.Response, error)

// Middleware decorates a Responder.
type Middleware func(next Responder) Responder

// Chain is an http.RoundTripper running every request through middleware,
// first added runs first, before handing it to the base transport.
type Chain struct {
	base       http.RoundTripper
	middleware []Middleware
}

func NewChain(base http.RoundTripper, middleware ...Middleware) *Chain {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Chain{base: base, middleware: middleware}
}

func (c *Chain) RoundTrip(req *http.Request) (*http.Response, error) {
	h := Responder(c.base.RoundTrip)
	for i := len(c.middleware) - 1; i >= 0; i-- {
		h = c.middleware[i](h)
	}
	// RoundTrippers must not modify the caller's request.
	return h(req.Clone(req.Context()))
}

// UserAgent sets "app/version" as the User-Agent.
func UserAgent(app, version string) Middleware {
	ua := fmt.Sprintf("%s/%s", app, version)
	return func(next Responder) Responder {
		return func(r *http.Request) (*http.Response, error) {
			r.Header.Set("User-Agent", ua)
			return next(r)
		}
	}
}

// APIKey sends key in the x-api-key header. An empty key adds nothing.
func APIKey(key string) Middleware {
	return func(next Responder) Responder {
		return func(r *http.Request) (*http.Response, error) {
			if key != "" {
				r.Header.Set(common.APIKeyHeaderName, key)
			}
			return next(r)
		}
	}
}

// BearerToken attaches the token currently held by store. The store is read
// on every request, so login and logout take effect immediately.
func BearerToken(store session.Store) Middleware {
	return func(next Responder) Responder {
		return func(r *http.Request) (*http.Response, error) {
			if s, err := store.Load(r.Context()); err == nil && s.Authenticated() {
				r.Header.Set("Authorization", "Bearer "+s.Token)
			}
			return next(r)
		}
	}
}
