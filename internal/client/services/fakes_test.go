package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/userhub/internal/client/models"
	"github.com/dmitrijs2005/userhub/internal/client/notify"
)

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	mu sync.Mutex

	LoginToken string
	LoginErr   error

	Pages       map[int]models.UserPage
	GetUsersErr error

	UpdateErr error
	DeleteErr error
	PingErr   error

	// gates holds GetUsers for a page until its channel is closed; entered
	// receives the page once the call is waiting.
	gates   map[int]chan struct{}
	entered chan int

	// onUpdate runs inside UpdateUser, while the request is in flight.
	onUpdate func()

	LastCreds   models.Credentials
	Fetched     []int
	Updated     map[int]models.UserUpdate
	DeletedIDs  []int
	UpdateCalls int
}

func (f *fakeClient) Login(_ context.Context, creds models.Credentials) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastCreds = creds
	return f.LoginToken, f.LoginErr
}

func (f *fakeClient) GetUsers(_ context.Context, page int) (models.UserPage, error) {
	f.mu.Lock()
	f.Fetched = append(f.Fetched, page)
	resp, err := f.Pages[page], f.GetUsersErr
	gate, entered := f.gates[page], f.entered
	f.mu.Unlock()

	if gate != nil {
		entered <- page
		<-gate
	}
	if err != nil {
		return models.UserPage{}, err
	}
	return resp, nil
}

// hold makes GetUsers for pages wait until the returned channels are closed.
func (f *fakeClient) hold(pages ...int) (map[int]chan struct{}, chan int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gates = map[int]chan struct{}{}
	f.entered = make(chan int, len(pages))
	for _, p := range pages {
		f.gates[p] = make(chan struct{})
	}
	return f.gates, f.entered
}

func (f *fakeClient) UpdateUser(_ context.Context, id int, upd models.UserUpdate) error {
	if f.onUpdate != nil {
		f.onUpdate()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls++
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	if f.Updated == nil {
		f.Updated = map[int]models.UserUpdate{}
	}
	f.Updated[id] = upd
	return nil
}

func (f *fakeClient) DeleteUser(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.DeletedIDs = append(f.DeletedIDs, id)
	return nil
}

func (f *fakeClient) Ping(context.Context) error { return f.PingErr }

func (f *fakeClient) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Fetched)
}

// reqresPages mirrors the public demo data: 12 users, 6 per page.
func reqresPages() map[int]models.UserPage {
	pages := map[int]models.UserPage{}
	for p := 1; p <= 2; p++ {
		page := models.UserPage{Page: p, PerPage: 6, Total: 12, TotalPages: 2}
		for i := 1; i <= 6; i++ {
			id := (p-1)*6 + i
			page.Data = append(page.Data, models.User{
				ID:        id,
				Email:     "user" + string(rune('a'+id)) + "@reqres.in",
				FirstName: "Server",
				LastName:  "Name",
			})
		}
		pages[p] = page
	}
	return pages
}

func lastNotification(q *notify.Queue) notify.Notification {
	items := q.Drain()
	if len(items) == 0 {
		return notify.Notification{}
	}
	return items[0]
}
