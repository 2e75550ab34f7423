package unifi

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/lexfrei/go-unifi-controller/internal/response"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login stores the credential pair and establishes a session via
// POST /api/login. On success the controller's Set-Cookie lands in the
// shared jar, so every subsequent call on this client rides the session
// without further work.
//
// Credentials are stored even when the login attempt fails, so a later
// Relogin retries the same pair.
func (c *Client) Login(ctx context.Context, username, password string) error {
	c.SetLoginData(username, password)

	resp, err := c.Post(ctx, "/api/login", loginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	return response.Check(resp, "login failed")
}

// Relogin re-establishes a session with the most recently stored
// credentials, typically after the server-side session expired. Fails with
// ErrMissingCredentials, before any network call, when nothing was stored
// by a prior Login or SetLoginData.
func (c *Client) Relogin(ctx context.Context) error {
	c.mu.Lock()
	creds := c.creds
	c.mu.Unlock()

	if creds == nil {
		return errors.WithStack(ErrMissingCredentials)
	}

	return c.Login(ctx, creds.username, creds.password)
}

// SetLoginData pre-seeds credentials (e.g. from secure storage) without an
// immediate login call, so a later Relogin can use them.
func (c *Client) SetLoginData(username, password string) {
	c.mu.Lock()
	c.creds = &credentials{username: username, password: password}
	c.mu.Unlock()
}

// Logout ends the server-side session via GET /logout. The controller
// answers with a redirect, which the client does not follow; any response
// at all counts as success. Stored credentials are kept, so Relogin
// remains possible.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.Get(ctx, "/logout", nil)
	if err != nil {
		return err
	}
	resp.Body.Close()

	return nil
}
