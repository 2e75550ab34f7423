package retry

import (
	"testing"
	"time"
)

func TestShouldRetry(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		statusCode int
		want       bool
	}{
		{
			name:       "429 Too Many Requests",
			statusCode: 429,
			want:       true,
		},
		{
			name:       "500 Internal Server Error",
			statusCode: 500,
			want:       true,
		},
		{
			name:       "503 Service Unavailable",
			statusCode: 503,
			want:       true,
		},
		{
			name:       "200 OK",
			statusCode: 200,
			want:       false,
		},
		{
			name:       "302 Found (logout redirect)",
			statusCode: 302,
			want:       false,
		},
		{
			name:       "400 Bad Request",
			statusCode: 400,
			want:       false,
		},
		{
			name:       "401 Unauthorized (expired session, caller relogs in)",
			statusCode: 401,
			want:       false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ShouldRetry(tt.statusCode); got != tt.want {
				t.Errorf("ShouldRetry(%d) = %v, want %v", tt.statusCode, got, tt.want)
			}
		})
	}
}

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		header string
		want   time.Duration
	}{
		{
			name:   "seconds",
			header: "120",
			want:   120 * time.Second,
		},
		{
			name:   "zero",
			header: "0",
			want:   0,
		},
		{
			name:   "empty header",
			header: "",
			want:   0,
		},
		{
			name:   "http date unsupported",
			header: "Fri, 29 Aug 2025 12:00:00 GMT",
			want:   0,
		},
		{
			name:   "garbage",
			header: "soon",
			want:   0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseRetryAfter(tt.header); got != tt.want {
				t.Errorf("ParseRetryAfter(%q) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}
