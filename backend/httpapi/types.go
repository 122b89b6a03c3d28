package httpapi

import (
	"time"

	"github.com/viert/awxinv/inventory"
)

const apiPath = "/api/v1/inventory"

// HTTPAPI is a backend loading inventory data from a remote HTTP(S) API
type HTTPAPI struct {
	cacheTTL  time.Duration
	cacheDir  string
	url       string
	authToken string
	insecure  bool
	hosts     []*inventory.HostData
	groups    []*inventory.GroupData
}

type cache struct {
	Hosts  []*inventory.HostData  `json:"hosts"`
	Groups []*inventory.GroupData `json:"groups"`
}

type api struct {
	Data *cache `json:"data"`
}
