// Package observability defines the logging and metrics interfaces used by
// the controller client.
//
// The client never logs or records metrics on its own: callers plug
// implementations of Logger and MetricsRecorder into the client
// configuration, and both default to no-op implementations with zero
// overhead when unset.
//
// # Logger Interface
//
// The Logger interface supports structured logging with key-value pairs:
//
//	logger := myLogger{} // implements observability.Logger
//	client, err := unifi.NewWithConfig(&unifi.ClientConfig{
//		BaseURL: "https://controller.example:8443",
//		Logger:  logger,
//	})
//
// Supported log levels:
//   - Debug: per-request diagnostics (method, URL, duration)
//   - Info: general informational messages
//   - Warn: non-2xx responses and retry attempts
//   - Error: transport failures
//
// # MetricsRecorder Interface
//
// The MetricsRecorder interface tracks client behavior:
//
//	metrics := myRecorder{} // implements observability.MetricsRecorder
//	client, err := unifi.NewWithConfig(&unifi.ClientConfig{
//		BaseURL: "https://controller.example:8443",
//		Metrics: metrics,
//	})
//
// Tracked metrics include HTTP request counts, status codes and durations,
// retry attempts, rate-limit waits, and error occurrences by type.
package observability
