package client

import (
	"context"

	"github.com/dmitrijs2005/userhub/internal/client/models"
)

// Client is the transport-agnostic contract the dashboard needs from the
// remote user API. Every method is exactly one request: no retry, no backoff,
// no caching.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (string, error)
	GetUsers(ctx context.Context, page int) (models.UserPage, error)
	UpdateUser(ctx context.Context, id int, upd models.UserUpdate) error
	DeleteUser(ctx context.Context, id int) error
	Ping(ctx context.Context) error
}
