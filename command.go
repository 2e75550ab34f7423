package unifi

import (
	"context"
	"encoding/json"
	"maps"

	"github.com/cockroachdb/errors"

	"github.com/lexfrei/go-unifi-controller/internal/response"
)

// stationCommand is the typed base of the station manager envelope. The
// cmd discriminator selects the server-side action.
type stationCommand struct {
	Cmd string `json:"cmd"`
	MAC string `json:"mac"`
}

// authorizeCommand carries the authorization duration. Minutes is always
// serialized: zero means zero minutes, which is distinct from leaving the
// duration to the controller's guest policy.
type authorizeCommand struct {
	Cmd     string `json:"cmd"`
	MAC     string `json:"mac"`
	Minutes int    `json:"minutes"`
}

// AuthorizeGuest grants a guest station network access for the given
// number of minutes. The extra map carries optional envelope fields such
// as "up"/"down" (kbps rate limits), "bytes" (MB quota), or "ap_mac".
//
// Extra is overlaid onto the base envelope last-write-wins: a caller key
// that collides with a fixed field, mac included, replaces it. MAC format
// is not validated here; malformed values are rejected by the controller.
func (c *Client) AuthorizeGuest(ctx context.Context, site, mac string, minutes int, extra map[string]any) error {
	envelope, err := overlay(authorizeCommand{
		Cmd:     "authorize-guest",
		MAC:     mac,
		Minutes: minutes,
	}, extra)
	if err != nil {
		return err
	}

	return c.stationManager(ctx, site, envelope, "failed to authorize guest "+mac)
}

// UnauthorizeGuest revokes a guest station's network access.
func (c *Client) UnauthorizeGuest(ctx context.Context, site, mac string) error {
	envelope, err := overlay(stationCommand{Cmd: "unauthorize-guest", MAC: mac}, nil)
	if err != nil {
		return err
	}

	return c.stationManager(ctx, site, envelope, "failed to unauthorize guest "+mac)
}

// ReconnectClient kicks a station off the network; the station typically
// reconnects immediately, which forces reauthentication and AP reselection.
func (c *Client) ReconnectClient(ctx context.Context, site, mac string) error {
	envelope, err := overlay(stationCommand{Cmd: "kick-sta", MAC: mac}, nil)
	if err != nil {
		return err
	}

	return c.stationManager(ctx, site, envelope, "failed to reconnect client "+mac)
}

// BlockClient bars a station from the network until unblocked.
func (c *Client) BlockClient(ctx context.Context, site, mac string) error {
	envelope, err := overlay(stationCommand{Cmd: "block-sta", MAC: mac}, nil)
	if err != nil {
		return err
	}

	return c.stationManager(ctx, site, envelope, "failed to block client "+mac)
}

// UnblockClient lifts a block placed by BlockClient.
func (c *Client) UnblockClient(ctx context.Context, site, mac string) error {
	envelope, err := overlay(stationCommand{Cmd: "unblock-sta", MAC: mac}, nil)
	if err != nil {
		return err
	}

	return c.stationManager(ctx, site, envelope, "failed to unblock client "+mac)
}

// stationManager posts an envelope to the site's generic station command
// endpoint. The site identifier is interpolated as-is: a malformed one
// comes back as an ordinary HTTP error from the controller.
func (c *Client) stationManager(ctx context.Context, site string, envelope map[string]any, errorMsg string) error {
	resp, err := c.Post(ctx, "/api/s/"+site+"/cmd/stamgr", envelope)
	if err != nil {
		return err
	}

	return response.Check(resp, errorMsg)
}

// overlay converts the typed base command into its envelope map and copies
// extra over it. Precedence is last-write-wins: extra keys replace base
// fields on collision.
func overlay(base any, extra map[string]any) (map[string]any, error) {
	raw, err := json.Marshal(base)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal command envelope")
	}

	envelope := make(map[string]any, len(extra)+3)
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, errors.Wrap(err, "failed to build command envelope")
	}

	maps.Copy(envelope, extra)

	return envelope, nil
}
