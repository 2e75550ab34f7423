package middleware

import (
	"crypto/tls"
	"crypto/x509"
	"net/http"
	"os"

	"github.com/cockroachdb/errors"
)

// TLSConfig returns a middleware that configures TLS for HTTPS connections.
// This is useful for:
// - Disabling certificate verification for self-signed controller certificates.
// - Verifying against a private CA bundle.
// - Minimum TLS version enforcement.
func TLSConfig(config *tls.Config) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		// Get underlying transport or create default
		transport, ok := next.(*http.Transport)
		if !ok {
			defaultTransport, ok := http.DefaultTransport.(*http.Transport)
			if !ok {
				// Should never happen, but handle gracefully
				return next
			}
			transport = defaultTransport.Clone()
			transport.ForceAttemptHTTP2 = true
		} else {
			transport = transport.Clone()
		}

		// Apply TLS config
		transport.TLSClientConfig = config

		return transport
	}
}

// InsecureSkipVerify returns a TLS config that skips certificate verification.
// Self-hosted controllers ship with a self-signed certificate out of the box,
// so this is the default verification policy of the client. Prefer CABundle
// when the controller certificate can be pinned.
func InsecureSkipVerify() *tls.Config {
	return &tls.Config{
		InsecureSkipVerify: true, //nolint:gosec // Controllers use self-signed certs by default; opt-out via CABundle
	}
}

// CABundle returns a TLS config that verifies the server certificate against
// the PEM bundle at path. Fails if the file cannot be read or contains no
// usable certificates.
func CABundle(path string) (*tls.Config, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read CA bundle %s", path)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.Newf("no certificates found in CA bundle %s", path)
	}

	return &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}, nil
}
