package unifi

import "github.com/cockroachdb/errors"

// ErrMissingCredentials is returned by Relogin when no credentials were
// stored by a prior Login or SetLoginData. The check happens before any
// network call: controllers throttle failed logins, so an attempt with
// empty credentials would burn one for nothing.
var ErrMissingCredentials = errors.New("no stored credentials: call Login or SetLoginData first")
