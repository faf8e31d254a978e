package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/userhub/internal/client/client"
	"github.com/dmitrijs2005/userhub/internal/client/models"
	"github.com/dmitrijs2005/userhub/internal/client/notify"
	"github.com/dmitrijs2005/userhub/internal/client/pagination"
	"github.com/dmitrijs2005/userhub/internal/client/users"
	"github.com/dmitrijs2005/userhub/internal/common"
	"github.com/dmitrijs2005/userhub/internal/logging"
)

// Dashboard is the state behind the users view: the fetched page with local
// edits applied, and the page position.
//
// It is safe for concurrent use. The lock is never held across a network
// call; overlapping fetches are not fenced and the last one to complete
// wins.
type Dashboard struct {
	client   client.Client
	notifier notify.Notifier
	logger   logging.Logger

	mu     sync.Mutex
	list   users.List
	pager  *pagination.Controller
	loaded bool
}

func NewDashboard(c client.Client, n notify.Notifier, l logging.Logger) *Dashboard {
	return &Dashboard{
		client:   c,
		notifier: n,
		logger:   l.With("module", "dashboard"),
		pager:    pagination.New(),
	}
}

// Open fetches the first page unless something was fetched already.
func (d *Dashboard) Open(ctx context.Context) error {
	d.mu.Lock()
	loaded := d.loaded
	d.mu.Unlock()

	if loaded {
		return nil
	}
	return d.fetch(ctx, 1)
}

// Refresh re-fetches the current page, dropping local edits.
func (d *Dashboard) Refresh(ctx context.Context) error {
	d.mu.Lock()
	page := d.pager.Current()
	d.mu.Unlock()

	return d.fetch(ctx, page)
}

// GoTo fetches page p and makes it current. An out-of-range p is a no-op
// and reports false. When the fetch fails the current page does not move.
func (d *Dashboard) GoTo(ctx context.Context, p int) (bool, error) {
	d.mu.Lock()
	ok := d.pager.Accepts(p)
	d.mu.Unlock()

	if !ok {
		return false, nil
	}
	return true, d.fetch(ctx, p)
}

func (d *Dashboard) Next(ctx context.Context) (bool, error) {
	d.mu.Lock()
	p, ok := d.pager.Next()
	d.mu.Unlock()

	if !ok {
		return false, nil
	}
	return d.GoTo(ctx, p)
}

func (d *Dashboard) Prev(ctx context.Context) (bool, error) {
	d.mu.Lock()
	p, ok := d.pager.Prev()
	d.mu.Unlock()

	if !ok {
		return false, nil
	}
	return d.GoTo(ctx, p)
}

func (d *Dashboard) fetch(ctx context.Context, page int) error {
	resp, err := d.client.GetUsers(ctx, page)
	if err != nil {
		d.logger.Error(ctx, "error fetching users", "page", page, "error", err)
		notify.Error(ctx, d.notifier, MsgFetchFailed)
		return fmt.Errorf("fetch page %d: %w", page, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.list.Replace(resp.Data)
	d.pager.Update(page, resp.TotalPages)
	d.loaded = true

	d.logger.Debug(ctx, "users fetched", "page", page, "total_pages", resp.TotalPages, "count", len(resp.Data))
	return nil
}

// Edit validates upd, sends it and, on success, applies it to the local list
// without re-fetching.
func (d *Dashboard) Edit(ctx context.Context, id int, upd models.UserUpdate) (models.User, error) {
	upd, err := users.ValidateUpdate(upd)
	if err != nil {
		notify.Error(ctx, d.notifier, MsgFieldsRequired)
		return models.User{}, err
	}

	if _, ok := d.Find(id); !ok {
		notify.Error(ctx, d.notifier, MsgUserNotOnPage)
		return models.User{}, fmt.Errorf("user %d: %w", id, common.ErrNotFound)
	}

	if err := d.client.UpdateUser(ctx, id, upd); err != nil {
		d.logger.Error(ctx, "error updating user", "id", id, "error", err)
		notify.Error(ctx, d.notifier, MsgUpdateFailed)
		return models.User{}, fmt.Errorf("update user %d: %w", id, err)
	}

	d.mu.Lock()
	updated, err := d.list.ApplyEdit(id, upd)
	d.mu.Unlock()
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return models.User{}, err
	}
	if err != nil {
		// The page changed while the request was in flight.
		d.logger.Warn(ctx, "edited user no longer listed", "id", id)
		updated = models.User{ID: id, Email: upd.Email, FirstName: upd.FirstName, LastName: upd.LastName}
	}

	notify.Success(ctx, d.notifier, MsgUpdateSuccess)
	return updated, nil
}

// Delete removes the user remotely and then from the local list.
func (d *Dashboard) Delete(ctx context.Context, id int) error {
	if _, ok := d.Find(id); !ok {
		notify.Error(ctx, d.notifier, MsgUserNotOnPage)
		return fmt.Errorf("user %d: %w", id, common.ErrNotFound)
	}

	if err := d.client.DeleteUser(ctx, id); err != nil {
		d.logger.Error(ctx, "error deleting user", "id", id, "error", err)
		notify.Error(ctx, d.notifier, MsgDeleteFailed)
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	d.mu.Lock()
	err := d.list.ApplyDelete(id)
	d.mu.Unlock()
	if err != nil {
		d.logger.Warn(ctx, "deleted user no longer listed", "id", id)
	}

	notify.Success(ctx, d.notifier, MsgDeleteSuccess)
	return nil
}

// Reset forgets the fetched page. The next Open fetches page 1 again.
func (d *Dashboard) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.list.Replace(nil)
	d.pager = pagination.New()
	d.loaded = false
}

// Visible is the list as rendered for search term.
func (d *Dashboard) Visible(term string) []models.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.list.Filter(term)
}

func (d *Dashboard) Find(id int) (models.User, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.list.Find(id)
}

func (d *Dashboard) Page() pagination.State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pager.State()
}

func (d *Dashboard) Pages() []int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pager.Pages()
}

// Loaded reports whether any page has been fetched successfully.
func (d *Dashboard) Loaded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loaded
}
