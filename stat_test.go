package unifi_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfrei/go-unifi-controller/internal/testutil"
)

func TestListSites(t *testing.T) {
	t.Parallel()

	controller := testutil.NewController(t)
	controller.Responses["/api/self/sites"] = `{"meta":{"rc":"ok"},"data":[
		{"_id":"5c8a","name":"default","desc":"Default","role":"admin"},
		{"_id":"5c8b","name":"hotel-lobby","desc":"Hotel Lobby"}
	]}`

	client := newTestClient(t, controller)

	sites, err := client.ListSites(context.Background())
	require.NoError(t, err)

	require.Len(t, sites, 2)
	assert.Equal(t, "default", sites[0].Name)
	assert.Equal(t, "Default", sites[0].Desc)
	assert.Equal(t, "admin", sites[0].Role)
	assert.Equal(t, "hotel-lobby", sites[1].Name)
}

func TestStatClients(t *testing.T) {
	t.Parallel()

	controller := testutil.NewController(t)
	controller.Responses["/api/s/default/stat/sta"] = `{"meta":{"rc":"ok"},"data":[
		{"_id":"abc","mac":"aa:bb:cc:dd:ee:ff","hostname":"laptop","ip":"10.0.0.5",
		 "essid":"guest-wifi","is_guest":true,"authorized":true,"signal":-61,
		 "rx_bytes":123456,"tx_bytes":654321}
	]}`

	client := newTestClient(t, controller)

	stations, err := client.StatClients(context.Background(), "default")
	require.NoError(t, err)

	require.Len(t, stations, 1)
	station := stations[0]
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", station.MAC)
	assert.Equal(t, "laptop", station.Hostname)
	assert.True(t, station.IsGuest)
	assert.True(t, station.Authorized)
	assert.Equal(t, -61, station.Signal)
	assert.Equal(t, int64(123456), station.RxBytes)
}

func TestStatDevices(t *testing.T) {
	t.Parallel()

	controller := testutil.NewController(t)
	controller.Responses["/api/s/default/stat/device"] = `{"meta":{"rc":"ok"},"data":[
		{"_id":"dev1","mac":"11:22:33:44:55:66","name":"Office AP","model":"U7PG2",
		 "type":"uap","version":"6.6.55","adopted":true,"state":1,"num_sta":12}
	]}`

	client := newTestClient(t, controller)

	devices, err := client.StatDevices(context.Background(), "default")
	require.NoError(t, err)

	require.Len(t, devices, 1)
	device := devices[0]
	assert.Equal(t, "Office AP", device.Name)
	assert.Equal(t, "uap", device.Type)
	assert.True(t, device.Adopted)
	assert.Equal(t, 12, device.NumSta)
}

func TestStatClientsExpiredSession(t *testing.T) {
	t.Parallel()

	controller := testutil.NewController(t)
	controller.RequireSession = true

	client := newTestClient(t, controller)

	// No session: the typed wrapper surfaces the failure for the caller
	// to recover from with Relogin
	_, err := client.StatClients(context.Background(), "default")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=401")

	require.NoError(t, client.Login(context.Background(), "admin", "secret"))

	_, err = client.StatClients(context.Background(), "default")
	require.NoError(t, err)
}
