package models

import "strings"

// User is a reqres.in user as held by the dashboard.
//
// FirstName and LastName carry the derived display name once the user has
// passed through the reconciler; the names the API returned are kept in
// OriginalFirstName and OriginalLastName.
type User struct {
	ID                int    `json:"id"`
	Email             string `json:"email"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Avatar            string `json:"avatar"`
	OriginalFirstName string `json:"original_first_name,omitempty"`
	OriginalLastName  string `json:"original_last_name,omitempty"`
}

// FullName joins first and last name.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// UserPage is the envelope returned by GET /users.
type UserPage struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	Data       []User `json:"data"`
}

// Credentials is the body of POST /login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdate holds the editable fields of a user. All of them are required.
type UserUpdate struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (u UserUpdate) Trimmed() UserUpdate {
	return UserUpdate{
		FirstName: strings.TrimSpace(u.FirstName),
		LastName:  strings.TrimSpace(u.LastName),
		Email:     strings.TrimSpace(u.Email),
	}
}

// Apply returns u with the edited fields replaced. Id, avatar and the shadow
// names are kept.
func (u User) Apply(upd UserUpdate) User {
	u.FirstName = upd.FirstName
	u.LastName = upd.LastName
	u.Email = upd.Email
	return u
}
