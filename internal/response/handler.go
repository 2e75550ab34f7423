// Package response provides generic handlers for legacy API responses to
// eliminate boilerplate in the typed endpoint wrappers.
//
// Every legacy controller endpoint answers with the same envelope:
//
//	{"meta": {"rc": "ok"}, "data": [ ... ]}
//
// and signals application-level failure with rc="error" plus a msg field,
// sometimes on a 200 status.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Meta is the status block of the legacy envelope.
type Meta struct {
	RC  string `json:"rc"`
	Msg string `json:"msg,omitempty"`
}

// Envelope is the uniform response shape of the legacy API.
type Envelope[T any] struct {
	Meta Meta `json:"meta"`
	Data []T  `json:"data"`
}

// Decode consumes resp, validates the HTTP status and the envelope's
// meta.rc, and returns the data rows.
//
// Usage:
//
//	resp, err := c.Get(ctx, "/api/self/sites", nil)
//	if err != nil {
//		return nil, err
//	}
//	return response.Decode[Site](resp, "failed to list sites")
//
// The response body is always closed.
func Decode[T any](resp *http.Response, errorMsg string) ([]T, error) {
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Newf("%s: status=%d", errorMsg, resp.StatusCode)
	}

	var env Envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, errors.Wrap(err, errorMsg)
	}

	if env.Meta.RC != "ok" {
		if env.Meta.Msg != "" {
			return nil, errors.Newf("%s: rc=%s msg=%s", errorMsg, env.Meta.RC, env.Meta.Msg)
		}
		return nil, errors.Newf("%s: rc=%s", errorMsg, env.Meta.RC)
	}

	return env.Data, nil
}

// Check is like Decode for endpoints whose data rows carry nothing useful
// (command dispatch, login). It validates status and meta.rc and discards
// the rows.
func Check(resp *http.Response, errorMsg string) error {
	_, err := Decode[json.RawMessage](resp, errorMsg)
	return err
}
