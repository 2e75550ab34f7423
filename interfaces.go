package unifi

import "context"

// ControllerAPIClient defines the interface for legacy controller API
// operations. This interface enables consumers to create mock
// implementations for testing.
//
// The legacy API provides local access to a self-hosted controller for:
//   - Session management (cookie-backed login)
//   - Site enumeration
//   - Station and device statistics
//   - Station manager commands (guest authorization, kick, block)
//
// All methods mirror the corresponding methods in Client.
//
// Example usage with testify/mock:
//
//	type MockClient struct {
//	    mock.Mock
//	}
//
//	func (m *MockClient) ListSites(ctx context.Context) ([]unifi.Site, error) {
//	    args := m.Called(ctx)
//	    return args.Get(0).([]unifi.Site), args.Error(1)
//	}
//
//nolint:revive // ControllerAPIClient is intentionally explicit to avoid confusion with the Client struct
type ControllerAPIClient interface {
	// Session operations

	// Login stores the credential pair and establishes a cookie session.
	Login(ctx context.Context, username, password string) error

	// Relogin re-establishes a session with the stored credentials.
	Relogin(ctx context.Context) error

	// SetLoginData pre-seeds credentials without logging in.
	SetLoginData(username, password string)

	// Logout ends the server-side session, keeping stored credentials.
	Logout(ctx context.Context) error

	// Site operations

	// ListSites retrieves the sites visible to the logged-in account.
	ListSites(ctx context.Context) ([]Site, error)

	// Statistics operations

	// StatClients retrieves statistics for the stations of a site.
	StatClients(ctx context.Context, site string) ([]Station, error)

	// StatDevices retrieves statistics for the UniFi devices of a site.
	StatDevices(ctx context.Context, site string) ([]Device, error)

	// Station manager commands

	// AuthorizeGuest grants a guest station access for minutes, with
	// optional extra envelope fields.
	AuthorizeGuest(ctx context.Context, site, mac string, minutes int, extra map[string]any) error

	// UnauthorizeGuest revokes a guest station's access.
	UnauthorizeGuest(ctx context.Context, site, mac string) error

	// ReconnectClient kicks a station, forcing it to reconnect.
	ReconnectClient(ctx context.Context, site, mac string) error

	// BlockClient bars a station from the network.
	BlockClient(ctx context.Context, site, mac string) error

	// UnblockClient lifts a block placed by BlockClient.
	UnblockClient(ctx context.Context, site, mac string) error
}
