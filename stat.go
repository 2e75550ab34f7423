package unifi

import (
	"context"

	"github.com/lexfrei/go-unifi-controller/internal/response"
)

// ListSites retrieves the sites visible to the logged-in account.
func (c *Client) ListSites(ctx context.Context) ([]Site, error) {
	resp, err := c.Get(ctx, "/api/self/sites", nil)
	if err != nil {
		return nil, err
	}

	//nolint:wrapcheck // response.Decode wraps errors internally
	return response.Decode[Site](resp, "failed to list sites")
}

// StatClients retrieves statistics for the stations of a site.
func (c *Client) StatClients(ctx context.Context, site string) ([]Station, error) {
	resp, err := c.Get(ctx, "/api/s/"+site+"/stat/sta", nil)
	if err != nil {
		return nil, err
	}

	//nolint:wrapcheck // response.Decode wraps errors internally
	return response.Decode[Station](resp, "failed to get client stats for site "+site)
}

// StatDevices retrieves statistics for the UniFi devices of a site.
func (c *Client) StatDevices(ctx context.Context, site string) ([]Device, error) {
	resp, err := c.Get(ctx, "/api/s/"+site+"/stat/device", nil)
	if err != nil {
		return nil, err
	}

	//nolint:wrapcheck // response.Decode wraps errors internally
	return response.Decode[Device](resp, "failed to get device stats for site "+site)
}
