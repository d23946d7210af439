// Package cli implements the trackfit command tree.
package cli

import (
	"errors"
	"fmt"

	"github.com/trackfit/trackfit/internal/client"
)

var errNotLoggedIn = errors.New("not logged in, run `trackfit auth login` first")

// Context carries the shared command dependencies: where the session and
// workout plan live, which server to talk to, and the model settings for
// the AI workout path.
type Context struct {
	Store  client.Store
	Server string

	ModelAPIKey  string
	ModelBaseURL string
	ModelName    string
}

// API returns a client for the configured server, authenticated with the
// stored session token when one exists.
func (c *Context) API() (*client.Client, error) {
	session, err := c.Store.Session()
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	token := ""
	if session.LoggedIn() {
		token = session.Token
	}
	return client.New(c.Server, token), nil
}

// AuthedAPI is like API but fails fast when nobody is logged in, so gated
// commands report a clear error instead of a server 401.
func (c *Context) AuthedAPI() (*client.Client, error) {
	session, err := c.Store.Session()
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !session.LoggedIn() {
		return nil, errNotLoggedIn
	}
	return client.New(c.Server, session.Token), nil
}
