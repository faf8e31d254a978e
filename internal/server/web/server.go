// Package web serves the userhub dashboard: server-rendered pages over the
// same services the CLI uses, one workspace per browser session.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/userhub/internal/client/session"
	"github.com/dmitrijs2005/userhub/internal/logging"
	"github.com/dmitrijs2005/userhub/internal/server/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const cookieName = "userhub_session"

// Pinger reports whether the remote API is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	registry *Registry
	secret   []byte
	probe    Pinger
	logger   logging.Logger
	views    *renderer
	now      func() time.Time
}

func NewServer(registry *Registry, secret []byte, probe Pinger, logger logging.Logger) (*Server, error) {
	if len(secret) == 0 {
		return nil, errors.New("empty session secret")
	}

	views, err := newRenderer()
	if err != nil {
		return nil, err
	}

	return &Server{
		registry: registry,
		secret:   secret,
		probe:    probe,
		logger:   logger.With("module", "web"),
		views:    views,
		now:      time.Now,
	}, nil
}

// Router builds the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)

	r.Group(func(r chi.Router) {
		r.Use(s.withWorkspace)
		r.Use(s.gate)

		r.Get("/login", s.handleLoginPage)
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)

		r.Get("/users", s.handleUsers)
		r.Get("/users/{id}/edit", s.handleEditPage)
		r.Post("/users/{id}", s.handleUpdate)
		r.Post("/users/{id}/delete", s.handleDelete)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, session.LoginPath, http.StatusFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, session.LoginPath, http.StatusFound)
	})

	return r
}

type workspaceKey struct{}

func workspaceFrom(ctx context.Context) *Workspace {
	ws, _ := ctx.Value(workspaceKey{}).(*Workspace)
	return ws
}

// withWorkspace resolves the session cookie to a workspace, starting a new
// session when the cookie is missing, forged or refers to a dropped one.
func (s *Server) withWorkspace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		ws := s.lookupWorkspace(r)
		if ws == nil {
			var err error
			ws, err = s.registry.Create()
			if err != nil {
				s.logger.Error(ctx, "error creating workspace", "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			if err := ws.Auth.Init(ctx); err != nil {
				s.logger.Error(ctx, "error initializing session store", "error", err)
			}
			if err := s.setCookie(w, r, ws.ID); err != nil {
				s.logger.Error(ctx, "error signing session cookie", "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, workspaceKey{}, ws)))
	})
}

func (s *Server) lookupWorkspace(r *http.Request) *Workspace {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}

	sid, err := auth.GetSessionIDFromToken(c.Value, s.secret)
	if err != nil {
		s.logger.Debug(r.Context(), "session cookie rejected", "error", err)
		return nil
	}

	ws, ok := s.registry.Get(sid)
	if !ok {
		return nil
	}
	return ws
}

// setCookie issues a session cookie. It has no Max-Age, so it lives as long
// as the browser session.
func (s *Server) setCookie(w http.ResponseWriter, r *http.Request, sid string) error {
	token, err := auth.GenerateToken(sid, s.secret, s.now())
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// gate applies the route policy to every navigation.
func (s *Server) gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/logout" {
			next.ServeHTTP(w, r)
			return
		}

		ws := workspaceFrom(r.Context())
		if redirect, ok := ws.Gate.Resolve(r.Context(), r.URL.Path); !ok {
			http.Redirect(w, r, redirect, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := s.now()

		next.ServeHTTP(ww, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := s.probe.Ping(r.Context()); err != nil {
		s.logger.Warn(r.Context(), "api not ready", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("api unavailable"))
		return
	}
	_, _ = w.Write([]byte("ready"))
}
