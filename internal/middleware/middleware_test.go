package middleware_test

import (
	"crypto/tls"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/lexfrei/go-unifi-controller/internal/middleware"
	"github.com/lexfrei/go-unifi-controller/observability"
)

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o600)
}

func encodeCertPEM(t *testing.T, der []byte) []byte {
	t.Helper()
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}

func TestHeaders(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if accept := r.Header.Get("Accept"); accept != "application/json" {
			t.Errorf("Accept = %s, want %s", accept, "application/json")
		}
		if ua := r.Header.Get("User-Agent"); ua != "go-unifi-controller" {
			t.Errorf("User-Agent = %s, want %s", ua, "go-unifi-controller")
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := middleware.Headers(map[string]string{
		"Accept":     "application/json",
		"User-Agent": "go-unifi-controller",
	})(http.DefaultTransport)

	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	resp, err := transport.RoundTrip(req)
	if err != nil {
		t.Fatalf("RoundTrip() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestHeadersDoesNotOverwriteExisting(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if accept := r.Header.Get("Accept"); accept != "text/plain" {
			t.Errorf("Accept = %s, want %s", accept, "text/plain")
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := middleware.Headers(map[string]string{
		"Accept": "application/json",
	})(http.DefaultTransport)

	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	req.Header.Set("Accept", "text/plain")

	resp, err := transport.RoundTrip(req)
	if err != nil {
		t.Fatalf("RoundTrip() error = %v", err)
	}
	defer resp.Body.Close()
}

type captureTransport struct {
	req *http.Request
}

func (c *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.req = req
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
}

func TestHeadersKeepsExplicitEmptyValue(t *testing.T) {
	t.Parallel()

	capture := &captureTransport{}
	transport := middleware.Headers(map[string]string{
		"Accept": "application/json",
	})(capture)

	req, _ := http.NewRequest(http.MethodGet, "http://controller.local/api/self/sites", nil)
	req.Header.Set("Accept", "")

	resp, err := transport.RoundTrip(req)
	if err != nil {
		t.Fatalf("RoundTrip() error = %v", err)
	}
	resp.Body.Close()

	// An empty value is still a present header and must not be replaced
	values, ok := capture.req.Header["Accept"]
	if !ok {
		t.Fatal("Accept header was removed")
	}
	if len(values) != 1 || values[0] != "" {
		t.Errorf("Accept = %q, want a single empty value", values)
	}
}

func TestHeadersDoesNotModifyOriginalRequest(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := middleware.Headers(map[string]string{
		"Accept": "application/json",
	})(http.DefaultTransport)

	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	originalHeaders := len(req.Header)

	resp, err := transport.RoundTrip(req)
	if err != nil {
		t.Fatalf("RoundTrip() error = %v", err)
	}
	defer resp.Body.Close()

	// Original request should not be modified
	if len(req.Header) != originalHeaders {
		t.Errorf("Original request was modified: headers = %d, want %d", len(req.Header), originalHeaders)
	}
}

func TestTLSConfig(t *testing.T) {
	t.Parallel()

	config := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	transport := middleware.TLSConfig(config)(http.DefaultTransport)

	// Verify it's an HTTP transport with TLS config
	httpTransport, ok := transport.(*http.Transport)
	if !ok {
		t.Fatal("Transport is not *http.Transport")
	}

	if httpTransport.TLSClientConfig == nil {
		t.Fatal("TLSClientConfig is nil")
	}

	if httpTransport.TLSClientConfig.MinVersion != tls.VersionTLS12 {
		t.Errorf("MinVersion = %d, want %d", httpTransport.TLSClientConfig.MinVersion, tls.VersionTLS12)
	}
}

func TestInsecureSkipVerify(t *testing.T) {
	t.Parallel()

	config := middleware.InsecureSkipVerify()

	if config == nil {
		t.Fatal("InsecureSkipVerify() returned nil")
	}

	if !config.InsecureSkipVerify {
		t.Error("InsecureSkipVerify should be true")
	}
}

func TestCABundleMissingFile(t *testing.T) {
	t.Parallel()

	_, err := middleware.CABundle("/nonexistent/ca.pem")
	if err == nil {
		t.Fatal("CABundle() with missing file should fail")
	}
}

func TestCABundleInvalidPEM(t *testing.T) {
	t.Parallel()

	path := t.TempDir() + "/ca.pem"
	if err := writeFile(path, []byte("not a certificate")); err != nil {
		t.Fatalf("writeFile() failed: %v", err)
	}

	_, err := middleware.CABundle(path)
	if err == nil {
		t.Fatal("CABundle() with invalid PEM should fail")
	}
}

func TestCABundleValid(t *testing.T) {
	t.Parallel()

	// Use the cert of a throwaway TLS test server as a known-good PEM.
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	pem := encodeCertPEM(t, server.Certificate().Raw)

	path := t.TempDir() + "/ca.pem"
	if err := writeFile(path, pem); err != nil {
		t.Fatalf("writeFile() failed: %v", err)
	}

	config, err := middleware.CABundle(path)
	if err != nil {
		t.Fatalf("CABundle() error = %v", err)
	}

	if config.RootCAs == nil {
		t.Error("RootCAs is nil")
	}
	if config.InsecureSkipVerify {
		t.Error("InsecureSkipVerify should be false when verifying against a bundle")
	}
}

func TestObservability(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	logger := observability.NoopLogger()
	metrics := observability.NoopMetricsRecorder()

	transport := middleware.Observability(logger, metrics)(http.DefaultTransport)

	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	resp, err := transport.RoundTrip(req)
	if err != nil {
		t.Fatalf("RoundTrip() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestObservabilityWithNilParams(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// Should use no-op implementations
	transport := middleware.Observability(nil, nil)(http.DefaultTransport)

	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	resp, err := transport.RoundTrip(req)
	if err != nil {
		t.Fatalf("RoundTrip() error = %v", err)
	}
	defer resp.Body.Close()
}
