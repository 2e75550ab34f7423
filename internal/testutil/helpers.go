// Package testutil provides a fake legacy controller for tests.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// SessionCookieName is the cookie the fake controller issues on login.
const SessionCookieName = "unifises"

// SessionCookieValue is the value of the issued session cookie.
const SessionCookieValue = "fake-session-token"

// RecordedRequest captures one request seen by the fake controller.
type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Body     []byte
	Cookies  []*http.Cookie
}

// JSON unmarshals the recorded body into a map for assertions.
func (r RecordedRequest) JSON(t *testing.T) map[string]any {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal(r.Body, &m), "recorded body should be valid JSON")
	return m
}

// Controller is a fake legacy controller backed by httptest.Server.
// It implements the session endpoints (login sets the session cookie,
// logout answers with a redirect) and answers every other path with an
// ok envelope, while recording all traffic for assertions.
type Controller struct {
	Server *httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest

	// Responses maps a path to a canned response body. Paths not present
	// answer with an empty ok envelope.
	Responses map[string]string

	// RequireSession makes non-login endpoints answer 401 with a
	// LoginRequired envelope unless the session cookie is present.
	RequireSession bool
}

// NewController starts a fake controller. The server is shut down via
// t.Cleanup.
func NewController(t *testing.T) *Controller {
	t.Helper()

	c := &Controller{
		Responses: map[string]string{},
	}

	c.Server = httptest.NewServer(http.HandlerFunc(c.handle))
	t.Cleanup(c.Server.Close)

	return c
}

// URL returns the base URL of the fake controller.
func (c *Controller) URL() string {
	return c.Server.URL
}

// Requests returns a snapshot of all recorded requests.
func (c *Controller) Requests() []RecordedRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]RecordedRequest, len(c.requests))
	copy(out, c.requests)
	return out
}

// LastRequest returns the most recent recorded request.
func (c *Controller) LastRequest(t *testing.T) RecordedRequest {
	t.Helper()

	c.mu.Lock()
	defer c.mu.Unlock()

	require.NotEmpty(t, c.requests, "no requests recorded")
	return c.requests[len(c.requests)-1]
}

func (c *Controller) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	c.mu.Lock()
	c.requests = append(c.requests, RecordedRequest{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Body:     body,
		Cookies:  r.Cookies(),
	})
	c.mu.Unlock()

	switch r.URL.Path {
	case "/api/login":
		http.SetCookie(w, &http.Cookie{
			Name:  SessionCookieName,
			Value: SessionCookieValue,
			Path:  "/",
		})
		writeEnvelope(w, http.StatusOK, `{"meta":{"rc":"ok"},"data":[]}`)
		return

	case "/logout":
		http.Redirect(w, r, "/manage/account/login", http.StatusFound)
		return
	}

	if c.RequireSession && !c.hasSession(r) {
		writeEnvelope(w, http.StatusUnauthorized,
			`{"meta":{"rc":"error","msg":"api.err.LoginRequired"},"data":[]}`)
		return
	}

	if resp, ok := c.Responses[r.URL.Path]; ok {
		writeEnvelope(w, http.StatusOK, resp)
		return
	}

	writeEnvelope(w, http.StatusOK, `{"meta":{"rc":"ok"},"data":[]}`)
}

func (c *Controller) hasSession(r *http.Request) bool {
	cookie, err := r.Cookie(SessionCookieName)
	return err == nil && cookie.Value == SessionCookieValue
}

func writeEnvelope(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
