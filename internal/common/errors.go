// Package common defines shared constants and sentinel errors used across
// client and server layers of UserHub. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// ErrNotFound is returned when a user id is not present in the local list.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks input rejected before any request was made,
	// e.g. an edit form with an empty required field.
	ErrValidation = errors.New("validation error")

	// ErrInvalidSession is returned for a missing, malformed or foreign
	// session cookie.
	ErrInvalidSession = errors.New("invalid session")
)
