package web

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/userhub/internal/client/notify"
	"github.com/dmitrijs2005/userhub/internal/client/services"
	"github.com/dmitrijs2005/userhub/internal/client/session"
	"github.com/dmitrijs2005/userhub/internal/logging"
	"github.com/google/uuid"
)

// Workspace is the state of one browser session: its token store, the
// services working on it and the flash messages waiting to be shown.
type Workspace struct {
	ID        string
	Store     session.Store
	Gate      *session.Gate
	Auth      services.AuthService
	Dashboard *services.Dashboard
	Flashes   *notify.Queue
}

// WorkspaceFactory builds a fresh workspace for a new session id.
type WorkspaceFactory func(id string) (*Workspace, error)

type registryEntry struct {
	ws       *Workspace
	lastSeen time.Time
}

// Registry maps session ids to workspaces. Entries idle for longer than ttl
// are removed by Sweep.
type Registry struct {
	mu      sync.Mutex
	items   map[string]*registryEntry
	ttl     time.Duration
	factory WorkspaceFactory
	logger  logging.Logger
	now     func() time.Time
}

func NewRegistry(ttl time.Duration, factory WorkspaceFactory, logger logging.Logger) *Registry {
	return &Registry{
		items:   make(map[string]*registryEntry),
		ttl:     ttl,
		factory: factory,
		logger:  logger.With("module", "registry"),
		now:     time.Now,
	}
}

// Get returns the workspace for id and marks it as used.
func (r *Registry) Get(id string) (*Workspace, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.ws, true
}

// Create registers a workspace under a new random id.
func (r *Registry) Create() (*Workspace, error) {
	id := uuid.NewString()

	ws, err := r.factory(id)
	if err != nil {
		return nil, fmt.Errorf("workspace init error: %w", err)
	}
	ws.ID = id

	r.mu.Lock()
	r.items[id] = &registryEntry{ws: ws, lastSeen: r.now()}
	r.mu.Unlock()

	return ws, nil
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Sweep drops every workspace idle for longer than the ttl and returns how
// many were dropped.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	n := 0
	for id, e := range r.items {
		if e.lastSeen.Before(cutoff) {
			delete(r.items, id)
			n++
		}
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is done.
func (r *Registry) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Debug(ctx, "idle sessions dropped", "count", n, "active", r.Len())
			}
		case <-ctx.Done():
			return
		}
	}
}
