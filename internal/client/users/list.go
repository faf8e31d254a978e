// Package users holds the in-memory user list of the dashboard and the
// rules for merging local edits and deletes into it without re-fetching.
package users

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/userhub/internal/client/models"
	"github.com/dmitrijs2005/userhub/internal/common"
)

// Decorate replaces the server names of u with its derived display name and
// keeps the server names as shadow fields.
func Decorate(u models.User) models.User {
	first, last := DisplayName(u.ID)
	u.OriginalFirstName = u.FirstName
	u.OriginalLastName = u.LastName
	u.FirstName = first
	u.LastName = last
	return u
}

// List is the fetched page of users plus local mutations. The zero value is
// an empty list. List is not safe for concurrent use.
type List struct {
	users []models.User
}

// Replace swaps the contents for a freshly fetched page, decorating every
// user. Local edits made to the previous page are dropped.
func (l *List) Replace(raw []models.User) {
	users := make([]models.User, 0, len(raw))
	for _, u := range raw {
		users = append(users, Decorate(u))
	}
	l.users = users
}

// All returns a copy of every user in list order.
func (l *List) All() []models.User {
	return slices.Clone(l.users)
}

func (l *List) Len() int {
	return len(l.users)
}

// Find returns the user with id.
func (l *List) Find(id int) (models.User, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return models.User{}, false
	}
	return l.users[i], true
}

func (l *List) indexOf(id int) int {
	return slices.IndexFunc(l.users, func(u models.User) bool { return u.ID == id })
}

// ApplyEdit replaces the editable fields of the entry with id in place.
func (l *List) ApplyEdit(id int, upd models.UserUpdate) (models.User, error) {
	i := l.indexOf(id)
	if i < 0 {
		return models.User{}, fmt.Errorf("user %d: %w", id, common.ErrNotFound)
	}
	l.users[i] = l.users[i].Apply(upd)
	return l.users[i], nil
}

// ApplyDelete removes the entry with id.
func (l *List) ApplyDelete(id int) error {
	i := l.indexOf(id)
	if i < 0 {
		return fmt.Errorf("user %d: %w", id, common.ErrNotFound)
	}
	l.users = slices.Delete(l.users, i, i+1)
	return nil
}

// Filter returns the users whose first name, last name or email contain
// term, ignoring case. An empty term matches everyone. The list itself is
// never modified.
func (l *List) Filter(term string) []models.User {
	return Filter(l.users, term)
}

// Filter is List.Filter over a plain slice.
func Filter(users []models.User, term string) []models.User {
	needle := strings.ToLower(term)
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if matches(u, needle) {
			out = append(out, u)
		}
	}
	return out
}

func matches(u models.User, needle string) bool {
	return strings.Contains(strings.ToLower(u.FirstName), needle) ||
		strings.Contains(strings.ToLower(u.LastName), needle) ||
		strings.Contains(strings.ToLower(u.Email), needle)
}
