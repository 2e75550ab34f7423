package unifi

import (
	"maps"
	"net/http"
)

// Request settings are layered with documented precedence: package defaults
// < ClientConfig.Headers < per-call RequestOption, later layers winning on
// conflicting names. The cookie jar and TLS policy are deliberately outside
// the merge: they are fixed at construction and no per-call option can
// replace them.

// RequestOption overrides request settings for a single call.
type RequestOption func(*http.Request)

// WithHeader sets a header on this request only, overriding any default or
// constructor-supplied value of the same name.
func WithHeader(name, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(name, value)
	}
}

// defaultHeaders is the package-default layer.
func defaultHeaders() map[string]string {
	return map[string]string{
		"Accept":     "application/json",
		"User-Agent": "go-unifi-controller",
	}
}

// mergeHeaders layers overrides on top of base, later values winning.
// Absent keys simply fall back to the earlier layer.
func mergeHeaders(base, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(overrides))
	maps.Copy(merged, base)
	maps.Copy(merged, overrides)
	return merged
}
