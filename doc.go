// Package unifi provides a Go client for the legacy session API of
// self-hosted UniFi Network controllers.
//
// Unlike the cloud APIs, the legacy controller API authenticates with a
// username/password login that establishes a cookie-backed session. The
// client owns a single cookie jar shared by every request it issues, so a
// successful Login makes the session visible to all subsequent calls
// without further plumbing.
//
// # Sessions
//
// Controller sessions expire server-side; the client never polls for this.
// An expired session surfaces as a failed call, and the recovery path is an
// explicit Relogin (which reuses the stored credentials) followed by
// re-issuing the original operation:
//
//	client, err := unifi.New("https://controller.example:8443")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := client.Login(ctx, "admin", "secret"); err != nil {
//	    log.Fatal(err)
//	}
//
//	sites, err := client.ListSites(ctx)
//	if err != nil {
//	    // session may have expired
//	    if err := client.Relogin(ctx); err != nil {
//	        log.Fatal(err)
//	    }
//	    sites, err = client.ListSites(ctx)
//	}
//
// # TLS Verification
//
// Self-hosted controllers ship with a self-signed certificate, so
// certificate verification is DISABLED by default. To verify, either set
// VerifyTLS (system roots) or point CABundle at a PEM file with the
// controller certificate:
//
//	client, err := unifi.NewWithConfig(&unifi.ClientConfig{
//	    BaseURL:  "https://controller.example:8443",
//	    CABundle: "/etc/unifi/ca.pem",
//	})
//
// # Station Commands
//
// Site-scoped actions (guest authorization, kicking a station) are
// dispatched through the controller's generic command endpoint
// /api/s/{site}/cmd/stamgr as a JSON envelope {cmd, ...params}:
//
//	err := client.AuthorizeGuest(ctx, "default", "aa:bb:cc:dd:ee:ff", 60, map[string]any{
//	    "up":    2048, // kbps
//	    "down":  4096, // kbps
//	    "bytes": 512,  // MB quota
//	})
//
// # Raw Dispatch
//
// Endpoints not wrapped by this package are reachable through Get, Post,
// and Put, which return the raw *http.Response and leave status
// interpretation to the caller.
package unifi
