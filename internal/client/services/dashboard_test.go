package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/userhub/internal/client/client"
	"github.com/dmitrijs2005/userhub/internal/client/models"
	"github.com/dmitrijs2005/userhub/internal/client/notify"
	"github.com/dmitrijs2005/userhub/internal/client/pagination"
	"github.com/dmitrijs2005/userhub/internal/common"
	"github.com/dmitrijs2005/userhub/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDashboard(t *testing.T) (*Dashboard, *fakeClient, *notify.Queue) {
	t.Helper()
	fc := &fakeClient{Pages: reqresPages()}
	q := &notify.Queue{}
	d := NewDashboard(fc, q, logging.Discard())
	require.NoError(t, d.Open(context.Background()))
	return d, fc, q
}

func TestDashboard_OpenFetchesFirstPageOnce(t *testing.T) {
	d, fc, _ := openDashboard(t)

	require.NoError(t, d.Open(context.Background()))
	assert.Equal(t, []int{1}, fc.Fetched)
	assert.True(t, d.Loaded())
	assert.Equal(t, pagination.State{Current: 1, Total: 2, HasPrev: false, HasNext: true}, d.Page())
	assert.Equal(t, []int{1, 2}, d.Pages())

	visible := d.Visible("")
	require.Len(t, visible, 6)
	assert.Equal(t, "Vivaan", visible[0].FirstName)
	assert.Equal(t, "Singh", visible[0].LastName)
	assert.Equal(t, "Server", visible[0].OriginalFirstName)
}

func TestDashboard_NextOnLastPageIsDisabled(t *testing.T) {
	ctx := context.Background()
	d, fc, _ := openDashboard(t)

	moved, err := d.Next(ctx)
	require.NoError(t, err)
	require.True(t, moved)
	assert.Equal(t, pagination.State{Current: 2, Total: 2, HasPrev: true, HasNext: false}, d.Page())
	assert.Equal(t, 7, d.Visible("")[0].ID)

	moved, err = d.Next(ctx)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, []int{1, 2}, fc.Fetched)

	moved, err = d.Prev(ctx)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, 1, d.Page().Current)
}

func TestDashboard_GoToOutOfRangeIsNoop(t *testing.T) {
	d, fc, _ := openDashboard(t)

	for _, p := range []int{0, -1, 3} {
		moved, err := d.GoTo(context.Background(), p)
		require.NoError(t, err)
		assert.False(t, moved, "page %d", p)
	}
	assert.Equal(t, []int{1}, fc.Fetched)
}

func TestDashboard_FetchFailureKeepsList(t *testing.T) {
	ctx := context.Background()
	d, fc, q := openDashboard(t)
	q.Drain()

	fc.GetUsersErr = client.ErrUnavailable
	moved, err := d.GoTo(ctx, 2)
	assert.True(t, moved)
	require.ErrorIs(t, err, client.ErrUnavailable)

	assert.Equal(t, 1, d.Page().Current)
	assert.Len(t, d.Visible(""), 6)
	assert.Equal(t, 1, d.Visible("")[0].ID)
	assert.Equal(t, MsgFetchFailed, lastNotification(q).Message)
}

func TestDashboard_EditAppliesLocallyWithoutRefetch(t *testing.T) {
	ctx := context.Background()
	d, fc, q := openDashboard(t)

	upd := models.UserUpdate{FirstName: " Jane ", LastName: "Doe", Email: "jane@x.io"}
	got, err := d.Edit(ctx, 3, upd)
	require.NoError(t, err)

	assert.Equal(t, "Jane", got.FirstName)
	assert.Equal(t, "Doe", got.LastName)
	assert.Equal(t, "jane@x.io", got.Email)
	assert.Equal(t, models.UserUpdate{FirstName: "Jane", LastName: "Doe", Email: "jane@x.io"}, fc.Updated[3])

	u, ok := d.Find(3)
	require.True(t, ok)
	assert.Equal(t, got, u)
	assert.Equal(t, 1, fc.fetchCount())
	assert.Len(t, d.Visible(""), 6)
	assert.Equal(t, MsgUpdateSuccess, lastNotification(q).Message)
}

func TestDashboard_EditRequiresAllFields(t *testing.T) {
	d, fc, q := openDashboard(t)

	_, err := d.Edit(context.Background(), 3, models.UserUpdate{FirstName: "Jane", LastName: "  "})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Zero(t, fc.UpdateCalls)
	assert.Equal(t, MsgFieldsRequired, lastNotification(q).Message)
}

func TestDashboard_EditUnknownIDMakesNoCall(t *testing.T) {
	d, fc, q := openDashboard(t)

	_, err := d.Edit(context.Background(), 99, models.UserUpdate{FirstName: "a", LastName: "b", Email: "c"})
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Zero(t, fc.UpdateCalls)
	assert.Equal(t, MsgUserNotOnPage, lastNotification(q).Message)
}

func TestDashboard_EditFailureLeavesUserUnchanged(t *testing.T) {
	d, fc, q := openDashboard(t)
	before, _ := d.Find(2)

	fc.UpdateErr = errors.New("boom")
	_, err := d.Edit(context.Background(), 2, models.UserUpdate{FirstName: "a", LastName: "b", Email: "c"})
	require.Error(t, err)

	after, _ := d.Find(2)
	assert.Equal(t, before, after)
	assert.Equal(t, MsgUpdateFailed, lastNotification(q).Message)
}

func TestDashboard_DeleteRemovesExactlyOne(t *testing.T) {
	d, fc, q := openDashboard(t)

	require.NoError(t, d.Delete(context.Background(), 4))
	visible := d.Visible("")
	assert.Len(t, visible, 5)
	for _, u := range visible {
		assert.NotEqual(t, 4, u.ID)
	}
	assert.Equal(t, []int{4}, fc.DeletedIDs)
	assert.Equal(t, 1, fc.fetchCount())
	assert.Equal(t, MsgDeleteSuccess, lastNotification(q).Message)
}

func TestDashboard_DeleteFailureKeepsUser(t *testing.T) {
	d, fc, q := openDashboard(t)
	fc.DeleteErr = client.ErrUnexpectedStatus

	err := d.Delete(context.Background(), 4)
	require.ErrorIs(t, err, client.ErrUnexpectedStatus)
	assert.Len(t, d.Visible(""), 6)
	assert.Equal(t, MsgDeleteFailed, lastNotification(q).Message)
}

func TestDashboard_VisibleFiltersByDisplayName(t *testing.T) {
	d, _, _ := openDashboard(t)

	// id 7 is Divya Chopra on page 2; page 1 has none.
	assert.Empty(t, d.Visible("chopra"))
	assert.Len(t, d.Visible("server"), 0)
	assert.Len(t, d.Visible("@reqres.in"), 6)
}

func TestDashboard_ResetRefetchesOnOpen(t *testing.T) {
	d, fc, _ := openDashboard(t)
	_, err := d.Next(context.Background())
	require.NoError(t, err)

	d.Reset()
	assert.False(t, d.Loaded())
	assert.Empty(t, d.Visible(""))

	require.NoError(t, d.Open(context.Background()))
	assert.Equal(t, []int{1, 2, 1}, fc.Fetched)
	assert.Equal(t, 1, d.Page().Current)
}

func TestDashboard_OverlappingFetchesLastResponseWins(t *testing.T) {
	ctx := context.Background()
	d, fc, _ := openDashboard(t)
	gates, entered := fc.hold(1, 2)

	done := map[int]chan struct{}{1: make(chan struct{}), 2: make(chan struct{})}
	for _, p := range []int{2, 1} {
		go func(p int) {
			defer close(done[p])
			_, err := d.GoTo(ctx, p)
			assert.NoError(t, err)
		}(p)
	}
	<-entered
	<-entered

	// Both requests are in flight and the state is still readable.
	assert.Equal(t, 1, d.Page().Current)
	assert.Len(t, d.Visible(""), 6)
	_, ok := d.Find(1)
	assert.True(t, ok)

	close(gates[1])
	<-done[1]
	assert.Equal(t, 1, d.Page().Current)

	close(gates[2])
	<-done[2]

	assert.Equal(t, pagination.State{Current: 2, Total: 2, HasPrev: true, HasNext: false}, d.Page())
	visible := d.Visible("")
	require.Len(t, visible, 6)
	assert.Equal(t, 7, visible[0].ID)
}

func TestDashboard_EditAfterPageChangedReturnsSubmittedUser(t *testing.T) {
	ctx := context.Background()
	d, fc, q := openDashboard(t)
	fc.onUpdate = func() {
		_, err := d.GoTo(ctx, 2)
		assert.NoError(t, err)
	}

	upd := models.UserUpdate{FirstName: "Jane", LastName: "Doe", Email: "jane@x.io"}
	got, err := d.Edit(ctx, 1, upd)
	require.NoError(t, err)

	assert.Equal(t, models.User{ID: 1, FirstName: "Jane", LastName: "Doe", Email: "jane@x.io"}, got)
	_, ok := d.Find(1)
	assert.False(t, ok)
	assert.Equal(t, 2, d.Page().Current)
	assert.Equal(t, MsgUpdateSuccess, lastNotification(q).Message)
}
