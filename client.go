package unifi

import (
	"crypto/tls"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/lexfrei/go-unifi-controller/internal/httpclient"
	"github.com/lexfrei/go-unifi-controller/internal/middleware"
	"github.com/lexfrei/go-unifi-controller/internal/ratelimit"
	"github.com/lexfrei/go-unifi-controller/observability"
)

const (
	// DefaultBaseURL is the address of a controller running on the same host.
	DefaultBaseURL = "https://localhost:8443"

	// DefaultRateLimit is the request budget per minute. Self-hosted
	// controllers run on modest hardware and throttle aggressive clients.
	DefaultRateLimit = 300

	// DefaultRetryWaitTime is the wait time between retries when retries
	// are enabled.
	DefaultRetryWaitTime = 1 * time.Second

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

// Client is a session-aware client for the legacy controller API.
// One Client owns one cookie jar and one credential pair, so independent
// sessions against multiple controllers are just multiple Clients.
type Client struct {
	baseURL string
	http    *httpclient.Client

	// Credentials are written by Login/SetLoginData and read by Relogin,
	// possibly from different goroutines.
	mu    sync.Mutex
	creds *credentials
}

type credentials struct {
	username string
	password string
}

// Compile-time check to ensure Client implements ControllerAPIClient interface.
var _ ControllerAPIClient = (*Client)(nil)

// ClientConfig holds configuration for the controller client.
type ClientConfig struct {
	// BaseURL is the controller address (defaults to https://localhost:8443)
	BaseURL string

	// CookieJar holds the session cookie. A fresh in-memory jar is
	// allocated when nil; supply one to share or persist a session.
	CookieJar http.CookieJar

	// VerifyTLS enables certificate verification against system roots.
	// Defaults to false: controllers ship with self-signed certificates.
	VerifyTLS bool

	// CABundle is a path to a PEM bundle to verify the controller
	// certificate against. Setting it enables verification regardless of
	// VerifyTLS.
	CABundle string

	// Headers are extra headers sent with every request. They override the
	// package defaults (Accept, User-Agent) on conflicting names.
	Headers map[string]string

	// HTTPClient is the HTTP client to use (optional)
	HTTPClient *http.Client

	// RateLimitPerMinute sets the rate limit (defaults to 300; negative disables)
	RateLimitPerMinute int

	// MaxRetries enables transport-level retries for 5xx/429 responses.
	// Defaults to 0: the session contract is that the caller recovers from
	// failures, via Relogin when the session expired.
	MaxRetries int

	// RetryWaitTime sets the wait time between retries
	RetryWaitTime time.Duration

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// Logger for observability (optional, uses noop logger if nil)
	Logger observability.Logger

	// Metrics recorder for observability (optional, uses noop recorder if nil)
	Metrics observability.MetricsRecorder
}

// New creates a client for the controller at baseURL with default settings.
// This is the recommended way to create a client for most use cases.
//
// Defaults:
//   - TLS verification: disabled (self-signed controller certificates)
//   - Cookie jar: fresh in-memory jar
//   - Rate limit: 300 requests/minute
//   - Retries: none (callers recover via Relogin)
//   - Timeout: 30 seconds
//
// For custom configuration, use NewWithConfig.
//
// Example:
//
//	client, err := unifi.New("https://controller.example:8443")
func New(baseURL string) (*Client, error) {
	return NewWithConfig(&ClientConfig{
		BaseURL: baseURL,
	})
}

// NewWithConfig creates a client with custom configuration.
//
// Example:
//
//	client, err := unifi.NewWithConfig(&unifi.ClientConfig{
//	    BaseURL:  "https://controller.example:8443",
//	    CABundle: "/etc/unifi/ca.pem",
//	    Logger:   myLogger,
//	    Metrics:  myMetrics,
//	})
func NewWithConfig(cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	// Set defaults
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	// Paths are joined by plain concatenation, so a trailing slash here
	// would produce "//api/..." URLs.
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.RateLimitPerMinute == 0 {
		cfg.RateLimitPerMinute = DefaultRateLimit
	}
	if cfg.RetryWaitTime == 0 {
		cfg.RetryWaitTime = DefaultRetryWaitTime
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	jar := cfg.CookieJar
	if jar == nil {
		var err error
		jar, err = cookiejar.New(nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create cookie jar")
		}
	}

	tlsConfig, err := buildTLSConfig(cfg)
	if err != nil {
		return nil, err
	}

	limiter := ratelimit.NewRateLimiter(cfg.RateLimitPerMinute)
	if cfg.RateLimitPerMinute < 0 {
		// Negative budget disables rate limiting
		limiter = nil
	}

	// Build middleware chain (first middleware is outermost).
	// Order from outside to inside: Observability -> RateLimit -> Retry ->
	// Headers -> TLS.
	chain := []httpclient.Middleware{
		middleware.Observability(cfg.Logger, cfg.Metrics),
		middleware.RateLimit(middleware.RateLimitConfig{
			Limiter: limiter,
			Logger:  cfg.Logger,
			Metrics: cfg.Metrics,
		}),
	}

	if cfg.MaxRetries > 0 {
		chain = append(chain, middleware.Retry(middleware.RetryConfig{
			MaxRetries:  cfg.MaxRetries,
			InitialWait: cfg.RetryWaitTime,
			Logger:      cfg.Logger,
			Metrics:     cfg.Metrics,
		}))
	}

	chain = append(chain, middleware.Headers(mergeHeaders(defaultHeaders(), cfg.Headers)))

	if tlsConfig != nil {
		chain = append(chain, middleware.TLSConfig(tlsConfig))
	}

	opts := []httpclient.Option{}
	if cfg.HTTPClient != nil {
		opts = append(opts, httpclient.WithHTTPClient(cfg.HTTPClient))
	}
	opts = append(opts,
		httpclient.WithTimeout(cfg.Timeout),
		httpclient.WithCookieJar(jar),
		// The legacy API signals logout success with a redirect; following
		// it would discard the interesting response.
		httpclient.WithoutRedirects(),
		httpclient.WithMiddleware(chain...),
	)

	return &Client{
		baseURL: cfg.BaseURL,
		http:    httpclient.New(opts...),
	}, nil
}

// buildTLSConfig resolves the verification policy: a CA bundle wins, then
// VerifyTLS selects system roots, and the default is no verification.
func buildTLSConfig(cfg *ClientConfig) (*tls.Config, error) {
	if cfg.CABundle != "" {
		config, err := middleware.CABundle(cfg.CABundle)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load CA bundle")
		}
		return config, nil
	}

	if !cfg.VerifyTLS {
		return middleware.InsecureSkipVerify(), nil
	}

	// System roots, nothing to override.
	return nil, nil
}

// BaseURL returns the controller address the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CookieJar returns the jar holding the session cookie. Useful for
// persisting a session across processes.
func (c *Client) CookieJar() http.CookieJar {
	return c.http.Jar()
}
