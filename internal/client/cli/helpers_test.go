package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/userhub/internal/client/config"
	"github.com/dmitrijs2005/userhub/internal/client/models"
	"github.com/dmitrijs2005/userhub/internal/client/session"
	"github.com/dmitrijs2005/userhub/internal/logging"
)

// captureOutput redirects printlnFn into the returned buffer for the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(&buf, a...) }
	t.Cleanup(func() { printlnFn = orig })
	return &buf
}

// fakeAPI implements client.Client over two pages of six users.
type fakeAPI struct {
	token    string
	loginErr error
	fetchErr error
	editErr  error
	pingErr  error

	creds   models.Credentials
	fetched []int
	updated map[int]models.UserUpdate
	deleted []int
}

func (f *fakeAPI) Login(_ context.Context, c models.Credentials) (string, error) {
	f.creds = c
	return f.token, f.loginErr
}

func (f *fakeAPI) GetUsers(_ context.Context, page int) (models.UserPage, error) {
	f.fetched = append(f.fetched, page)
	if f.fetchErr != nil {
		return models.UserPage{}, f.fetchErr
	}
	p := models.UserPage{Page: page, PerPage: 6, Total: 12, TotalPages: 2}
	for i := 1; i <= 6; i++ {
		id := (page-1)*6 + i
		p.Data = append(p.Data, models.User{ID: id, Email: fmt.Sprintf("user%d@reqres.in", id), FirstName: "George", LastName: "Bluth"})
	}
	return p, nil
}

func (f *fakeAPI) UpdateUser(_ context.Context, id int, upd models.UserUpdate) error {
	if f.editErr != nil {
		return f.editErr
	}
	if f.updated == nil {
		f.updated = map[int]models.UserUpdate{}
	}
	f.updated[id] = upd
	return nil
}

func (f *fakeAPI) DeleteUser(_ context.Context, id int) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) Ping(context.Context) error { return f.pingErr }

// newTestApp builds an App over api and an in-memory store, reading input
// lines from the given text.
func newTestApp(api *fakeAPI, input string) (*App, *session.MemoryStore) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	store := session.NewMemoryStore()
	r := bufio.NewReader(strings.NewReader(input))
	return newApp(cfg, logging.Discard(), api, store, r, io.Discard), store
}

func loggedIn(t *testing.T, api *fakeAPI, input string) *App {
	t.Helper()
	a, store := newTestApp(api, input)
	if err := store.Save(context.Background(), session.Session{Token: "tok", Email: "eve.holt@reqres.in"}); err != nil {
		t.Fatal(err)
	}
	return a
}
