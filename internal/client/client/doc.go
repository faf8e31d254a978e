// Package client talks to the reqres.in user API.
//
// # Overview
//
// Client is the contract used by the services layer: Login, GetUsers,
// UpdateUser, DeleteUser and Ping. HTTPClient implements it over net/http.
// Headers common to every call (User-Agent, x-api-key and the bearer token
// of the current session) are added by a chain of RoundTripper middleware,
// see Chain, UserAgent, APIKey and BearerToken.
//
// # Error Handling
//
// Failures map onto sentinel errors matched with errors.Is:
// ErrUnavailable (transport failure), ErrUnauthorized (rejected login or
// 401) and ErrUnexpectedStatus (any other non-2xx). Nothing is retried.
package client
