// Package common contains shared constants and sentinel errors used across
// UserHub components.
package common

// AppName is reported in the User-Agent of outbound API requests.
const AppName = "userhub"

// APIKeyHeaderName is the HTTP header reqres.in expects the API key in.
const APIKeyHeaderName = "x-api-key"

// Demo credentials accepted by the reqres.in login endpoint. The login form
// is prefilled with them.
const (
	DemoEmail    = "eve.holt@reqres.in"
	DemoPassword = "cityslicka"
)
