package client

import "errors"

var (
	// ErrUnavailable means the request never got an HTTP response.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized means bad credentials on login or a 401 elsewhere.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnexpectedStatus is any other non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected status")
)
