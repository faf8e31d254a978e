package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/userhub/internal/client/models"
	"github.com/dmitrijs2005/userhub/internal/client/notify"
	"github.com/dmitrijs2005/userhub/internal/client/services"
	"github.com/dmitrijs2005/userhub/internal/client/users"
	"github.com/dmitrijs2005/userhub/internal/common"
	"github.com/gosuri/uitable"
)

// List fetches the first page if nothing is loaded yet and prints the
// current page, filtered by the active search term.
func (a *App) List(ctx context.Context) error {
	if err := a.dashboard.Open(ctx); err != nil {
		return err
	}
	a.printPage()
	return nil
}

// Refresh re-fetches the current page.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.dashboard.Refresh(ctx); err != nil {
		return err
	}
	a.printPage()
	return nil
}

// Page moves to the page given as the single argument.
func (a *App) Page(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: page <n>")
		return nil
	}
	p, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Usage: page <n>")
		return nil
	}

	if err := a.dashboard.Open(ctx); err != nil {
		return err
	}
	moved, err := a.dashboard.GoTo(ctx, p)
	if err != nil {
		return err
	}
	if !moved {
		printlnFn(fmt.Sprintf("No page %d (pages 1..%d)", p, a.dashboard.Page().Total))
		return nil
	}
	a.printPage()
	return nil
}

func (a *App) Next(ctx context.Context) error {
	if err := a.dashboard.Open(ctx); err != nil {
		return err
	}
	moved, err := a.dashboard.Next(ctx)
	if err != nil {
		return err
	}
	if !moved {
		printlnFn("Already on the last page")
		return nil
	}
	a.printPage()
	return nil
}

func (a *App) Prev(ctx context.Context) error {
	if err := a.dashboard.Open(ctx); err != nil {
		return err
	}
	moved, err := a.dashboard.Prev(ctx)
	if err != nil {
		return err
	}
	if !moved {
		printlnFn("Already on the first page")
		return nil
	}
	a.printPage()
	return nil
}

// Search sets the search term to the joined arguments; no arguments clear it.
func (a *App) Search(ctx context.Context, args []string) error {
	a.term = strings.TrimSpace(strings.Join(args, " "))
	if err := a.dashboard.Open(ctx); err != nil {
		return err
	}
	a.printPage()
	return nil
}

// Edit prompts for the editable fields of a user on the current page. Each
// prompt is prefilled with the current value.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, ok := parseID(args, "edit")
	if !ok {
		return nil
	}
	if err := a.dashboard.Open(ctx); err != nil {
		return err
	}

	u, found := a.dashboard.Find(id)
	if !found {
		notify.Error(ctx, notify.Func(a.showNotification), services.MsgUserNotOnPage)
		return fmt.Errorf("user %d: %w", id, common.ErrNotFound)
	}

	var upd models.UserUpdate
	var err error
	if upd.FirstName, err = getTextWithDefault(a.reader, "First name", u.FirstName, a.out); err != nil {
		return err
	}
	if upd.LastName, err = getTextWithDefault(a.reader, "Last name", u.LastName, a.out); err != nil {
		return err
	}
	if upd.Email, err = getTextWithDefault(a.reader, "Email", u.Email, a.out); err != nil {
		return err
	}

	updated, err := a.dashboard.Edit(ctx, id, upd)
	if err != nil {
		return err
	}
	a.printUsers([]models.User{updated})
	return nil
}

// Delete removes a user on the current page after a confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, ok := parseID(args, "delete")
	if !ok {
		return nil
	}
	if err := a.dashboard.Open(ctx); err != nil {
		return err
	}

	if u, found := a.dashboard.Find(id); found {
		answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete %s <%s>? [y/N]", u.FullName(), u.Email), a.out)
		if err != nil {
			return err
		}
		if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			printlnFn("Cancelled")
			return nil
		}
	}

	if err := a.dashboard.Delete(ctx, id); err != nil {
		return err
	}
	a.printPage()
	return nil
}

// Names prints the display name tables.
func (a *App) Names(context.Context) error {
	table := uitable.New()
	table.AddRow("#", "FIRST NAME", "LAST NAME")
	for i := range users.FirstNames {
		table.AddRow(i, users.FirstNames[i], users.LastNames[i])
	}
	printlnFn(table)
	return nil
}

// parseID reads the single positive id argument of cmd, printing the usage
// line when there is none.
func parseID(args []string, cmd string) (int, bool) {
	if len(args) == 1 {
		if id, err := strconv.Atoi(args[0]); err == nil && id > 0 {
			return id, true
		}
	}
	printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
	return 0, false
}

func (a *App) printUsers(list []models.User) {
	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("ID", "FIRST NAME", "LAST NAME", "EMAIL")
	for _, u := range list {
		table.AddRow(u.ID, u.FirstName, u.LastName, u.Email)
	}
	printlnFn(table)
}

func (a *App) printPage() {
	visible := a.dashboard.Visible(a.term)
	if len(visible) == 0 {
		printlnFn("No users found")
	} else {
		a.printUsers(visible)
	}

	st := a.dashboard.Page()
	footer := fmt.Sprintf("Page %d of %d", st.Current, st.Total)
	var hints []string
	if st.HasPrev {
		hints = append(hints, "prev")
	}
	if st.HasNext {
		hints = append(hints, "next")
	}
	if len(hints) > 0 {
		footer += " (" + strings.Join(hints, ", ") + ")"
	}
	if a.term != "" {
		footer += fmt.Sprintf(", search %q", a.term)
	}
	printlnFn(footer)
}
