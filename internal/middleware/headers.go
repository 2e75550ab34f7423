// Package middleware provides reusable HTTP middleware components.
package middleware

import (
	"maps"
	"net/http"
)

// Headers returns a middleware that sets default headers on all requests.
// The controller's session API does not use an auth header (the session
// cookie carries identity), but every request still wants Accept and
// User-Agent set consistently. Headers already present on a request are
// not overwritten.
func Headers(defaults map[string]string) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return &headerTransport{
			next:     next,
			defaults: defaults,
		}
	}
}

type headerTransport struct {
	next     http.RoundTripper
	defaults map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone request to avoid modifying original
	req = cloneRequest(req)

	for name, value := range t.defaults {
		// Presence check, not Get: a header set to "" per call stays "".
		if _, ok := req.Header[http.CanonicalHeaderKey(name)]; !ok {
			req.Header.Set(name, value)
		}
	}

	//nolint:wrapcheck // Middleware passes through errors from next handler in chain
	return t.next.RoundTrip(req)
}

// cloneRequest creates a shallow copy of the request with a cloned header map.
func cloneRequest(req *http.Request) *http.Request {
	r := new(http.Request)
	*r = *req
	r.Header = make(http.Header, len(req.Header))
	maps.Copy(r.Header, req.Header)
	return r
}
