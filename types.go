package unifi

// Site is one logical tenant on the controller. The Name field is the
// opaque identifier used in /api/s/{site}/... paths; Desc carries the
// human-readable label shown in the controller UI.
type Site struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Desc         string `json:"desc"`
	Role         string `json:"role,omitempty"`
	NumNewAlarms int    `json:"num_new_alarms,omitempty"`
}

// Station is a client device (wired or wireless) known to a site.
type Station struct {
	ID         string `json:"_id"`
	MAC        string `json:"mac"`
	SiteID     string `json:"site_id,omitempty"`
	Hostname   string `json:"hostname,omitempty"`
	Name       string `json:"name,omitempty"`
	IP         string `json:"ip,omitempty"`
	ESSID      string `json:"essid,omitempty"`
	APMAC      string `json:"ap_mac,omitempty"`
	IsGuest    bool   `json:"is_guest,omitempty"`
	IsWired    bool   `json:"is_wired,omitempty"`
	Authorized bool   `json:"authorized,omitempty"`
	Signal     int    `json:"signal,omitempty"`
	RxBytes    int64  `json:"rx_bytes,omitempty"`
	TxBytes    int64  `json:"tx_bytes,omitempty"`
	Uptime     int64  `json:"uptime,omitempty"`
	FirstSeen  int64  `json:"first_seen,omitempty"`
	LastSeen   int64  `json:"last_seen,omitempty"`
}

// Device is UniFi hardware (access point, switch, gateway) adopted by a
// site.
type Device struct {
	ID       string `json:"_id"`
	MAC      string `json:"mac"`
	Name     string `json:"name,omitempty"`
	Model    string `json:"model,omitempty"`
	Type     string `json:"type,omitempty"`
	Version  string `json:"version,omitempty"`
	IP       string `json:"ip,omitempty"`
	Adopted  bool   `json:"adopted,omitempty"`
	State    int    `json:"state,omitempty"`
	Uptime   int64  `json:"uptime,omitempty"`
	LastSeen int64  `json:"last_seen,omitempty"`
	NumSta   int    `json:"num_sta,omitempty"`
}
