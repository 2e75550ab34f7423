package unifi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/cockroachdb/errors"
)

// Get issues a GET against path (relative to the controller base URL).
// A non-empty query is encoded into the URL; an empty or nil query sends
// no query string at all.
//
// The raw response is returned without status interpretation: an expired
// session, a 404 for a malformed site identifier, and a successful call all
// come back the same way, and the caller decides what they mean. The
// returned error covers transport failures only.
func (c *Client) Get(ctx context.Context, path string, query url.Values, opts ...RequestOption) (*http.Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build GET %s", path)
	}

	return c.do(req, opts)
}

// Post issues a POST with body serialized as JSON. A nil body is sent as a
// literal empty object, never as an omitted body: the legacy API rejects
// bodyless POSTs.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*http.Response, error) {
	return c.send(ctx, http.MethodPost, path, body, opts)
}

// Put is Post with PUT semantics, used for idempotent updates.
func (c *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) (*http.Response, error) {
	return c.send(ctx, http.MethodPut, path, body, opts)
}

func (c *Client) send(ctx context.Context, method, path string, body any, opts []RequestOption) (*http.Response, error) {
	if body == nil {
		body = struct{}{}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %s %s body", method, path)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s %s", method, path)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, opts)
}

func (c *Client) do(req *http.Request, opts []RequestOption) (*http.Response, error) {
	for _, opt := range opts {
		opt(req)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s failed", req.Method, req.URL.Path)
	}

	return resp, nil
}
