// Package cli provides the interactive userhub command-line client.
//
// It wires configuration, the persisted session token, the users API client
// and an interactive REPL. Typical flow: check whether the API is reachable,
// prompt for credentials unless a token is already stored, then execute user
// commands against the current page of users.
//
// Key features:
//   - Login / Logout (the token survives restarts)
//   - List a page of users, move between pages, search the page
//   - Edit and delete users
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
