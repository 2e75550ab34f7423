package middleware

import (
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/lexfrei/go-unifi-controller/observability"
)

// Observability returns a middleware that logs and records metrics for HTTP requests.
func Observability(logger observability.Logger, metrics observability.MetricsRecorder) func(http.RoundTripper) http.RoundTripper {
	if logger == nil {
		logger = observability.NoopLogger()
	}
	if metrics == nil {
		metrics = observability.NoopMetricsRecorder()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return &observabilityTransport{
			next:    next,
			logger:  logger,
			metrics: metrics,
		}
	}
}

type observabilityTransport struct {
	next    http.RoundTripper
	logger  observability.Logger
	metrics observability.MetricsRecorder
}

func (t *observabilityTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	// Compute URL string once to avoid multiple allocations
	urlStr := req.URL.String()

	t.logger.Debug("http request started",
		observability.Field{Key: "method", Value: req.Method},
		observability.Field{Key: "url", Value: urlStr},
		observability.Field{Key: "path", Value: req.URL.Path},
	)

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		t.logger.Error("http request failed",
			observability.Field{Key: "method", Value: req.Method},
			observability.Field{Key: "url", Value: urlStr},
			observability.Field{Key: "duration", Value: duration},
			observability.Field{Key: "error", Value: err.Error()},
		)

		t.metrics.RecordError("http_request", "NetworkError")

		//nolint:wrapcheck // Observability middleware logs error but passes it through unchanged
		return nil, err
	}

	fields := []observability.Field{
		{Key: "method", Value: req.Method},
		{Key: "url", Value: urlStr},
		{Key: "status", Value: resp.StatusCode},
		{Key: "duration", Value: duration},
	}

	if resp.StatusCode >= http.StatusBadRequest {
		t.logger.Warn("http request completed with error", fields...)
	} else {
		t.logger.Debug("http request completed", fields...)
	}

	// Record metrics with normalized path to avoid unbounded cardinality
	normalizedPath := normalizePath(req.URL.Path)
	t.metrics.RecordHTTPRequest(req.Method, normalizedPath, resp.StatusCode, duration)

	return resp, nil
}

var (
	// sitePattern matches the site segment of legacy API paths:
	// /api/s/{site}/... -> /api/s/:site/...
	sitePattern = regexp.MustCompile(`/api/s/[^/]+`)
	// idPattern matches MongoDB ObjectIDs and MAC addresses embedded in paths.
	idPattern = regexp.MustCompile(`[0-9a-f]{24}|(?:[0-9a-fA-F]{2}:){5}[0-9a-fA-F]{2}`)

	// normalizedPathCache caches normalized paths to avoid repeated regex
	// operations. Production traffic hits a small fixed set of endpoints, so
	// the cache stays bounded and almost always hits.
	normalizedPathCache sync.Map
)

// normalizePath replaces dynamic path segments (site names, ObjectIDs, MACs)
// with placeholders to prevent unbounded cardinality in metrics labels.
//
// Examples:
//   - /api/s/default/stat/sta -> /api/s/:site/stat/sta
//   - /api/s/hotel-lobby/stat/user/aa:bb:cc:dd:ee:ff -> /api/s/:site/stat/user/:id
func normalizePath(path string) string {
	if cached, ok := normalizedPathCache.Load(path); ok {
		//nolint:forcetypeassert // Cache only stores strings, type assertion is safe
		return cached.(string)
	}

	normalized := sitePattern.ReplaceAllString(path, "/api/s/:site")
	normalized = idPattern.ReplaceAllString(normalized, ":id")

	normalizedPathCache.Store(path, normalized)

	return normalized
}
