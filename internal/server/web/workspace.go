package web

import (
	"github.com/dmitrijs2005/userhub/internal/client/client"
	"github.com/dmitrijs2005/userhub/internal/client/notify"
	"github.com/dmitrijs2005/userhub/internal/client/services"
	"github.com/dmitrijs2005/userhub/internal/client/session"
	"github.com/dmitrijs2005/userhub/internal/logging"
)

// newWorkspace wires the services of one browser session around api, whose
// requests must carry the token held by store.
func newWorkspace(id string, api client.Client, store session.Store, logger logging.Logger) *Workspace {
	flashes := &notify.Queue{}
	l := logger.With("session", id)
	return &Workspace{
		ID:        id,
		Store:     store,
		Gate:      session.NewGate(store),
		Auth:      services.NewAuthService(api, store, flashes, l),
		Dashboard: services.NewDashboard(api, flashes, l),
		Flashes:   flashes,
	}
}

// NewWorkspaceFactory returns a factory giving every session its own token
// store and API client. opts.Transport should be shared so connections are
// pooled across sessions.
func NewWorkspaceFactory(opts client.Options, logger logging.Logger) WorkspaceFactory {
	return func(id string) (*Workspace, error) {
		store := session.NewMemoryStore()
		api, err := client.NewHTTPClient(opts, store)
		if err != nil {
			return nil, err
		}
		return newWorkspace(id, api, store, logger), nil
	}
}
