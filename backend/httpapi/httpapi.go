package httpapi

import (
	"crypto/sha1"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/viert/awxinv/config"
	"github.com/viert/awxinv/inventory"
	"github.com/viert/awxinv/log"
	"github.com/viert/awxinv/term"
)

const requestTimeout = 30 * time.Second

// New creates a new instance of HTTPAPI backend
func New(cfg *config.Config) (*HTTPAPI, error) {
	h := &HTTPAPI{
		cacheTTL: cfg.CacheTTL,
		cacheDir: cfg.CacheDir,
		hosts:    make([]*inventory.HostData, 0),
		groups:   make([]*inventory.GroupData, 0),
	}

	options := cfg.BackendCfg.Options

	// url configuration
	url, found := options["url"]
	if !found || url == "" {
		return nil, fmt.Errorf("HTTP backend URL is not configured")
	}
	h.url = strings.TrimRight(url, "/")

	h.authToken = options["auth_token"]

	insec := options["insecure"]
	if insec == "true" || insec == "yes" || insec == "1" {
		h.insecure = true
		term.Warnf("WARNING: Inventory backend will be accessed in insecure mode\n")
	}
	return h, nil
}

// Hosts exported backend method
func (h *HTTPAPI) Hosts() []*inventory.HostData {
	return h.hosts
}

// Groups exported backend method
func (h *HTTPAPI) Groups() []*inventory.GroupData {
	return h.groups
}

// Reload forces reloading data from HTTP(S)
func (h *HTTPAPI) Reload() error {
	err := h.loadRemote()
	if err != nil {
		term.Errorf("%s\n", err)
		term.Warnf("Trying to load data from cache...\n")
		// trying to use cache
		return h.loadLocal()
	}
	return nil
}

// Load tries to load data from cache unless it's expired
// In case of cache expiration or absense it triggers Reload()
func (h *HTTPAPI) Load() error {
	if h.cacheExpired() {
		return h.Reload()
	}
	// trying to use cache
	err := h.loadLocal()
	if err != nil {
		// if it failed, trying to get data from remote
		return h.loadRemote()
	}
	return nil
}

func (h *HTTPAPI) loadLocal() error {
	data, err := ioutil.ReadFile(h.cacheFilename())
	if err != nil {
		return err
	}
	lc := new(cache)
	err = json.Unmarshal(data, lc)
	if err != nil {
		return err
	}
	h.extractCache(lc)
	log.Debugf("inventory loaded from cache %s", h.cacheFilename())
	return nil
}

func (h *HTTPAPI) cacheExpired() bool {
	st, err := os.Stat(h.cacheFilename())
	if err != nil {
		// no cache in general means that it's been expired
		return true
	}
	modifiedAt := st.ModTime()
	return modifiedAt.Add(h.cacheTTL).Before(time.Now())
}

// cacheFilename is unique per backend url so that several
// configurations can share one cache dir
func (h *HTTPAPI) cacheFilename() string {
	sum := sha1.Sum([]byte(h.url))
	fn := fmt.Sprintf("http_cache_%x.json", sum[:6])
	return path.Join(h.cacheDir, fn)
}

func (h *HTTPAPI) saveCache(lc *cache) error {
	_, err := os.Stat(h.cacheDir)
	if err != nil && os.IsNotExist(err) {
		err = os.MkdirAll(h.cacheDir, 0755)
		if err != nil {
			return fmt.Errorf("Error creating cache dir: %s", err)
		}
	}
	data, err := json.Marshal(lc)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(h.cacheFilename(), data, 0644)
}

func (h *HTTPAPI) extractCache(lc *cache) {
	h.hosts = make([]*inventory.HostData, 0, len(lc.Hosts))
	h.groups = make([]*inventory.GroupData, 0, len(lc.Groups))

	for _, host := range lc.Hosts {
		if host != nil {
			h.hosts = append(h.hosts, host)
		}
	}
	for _, group := range lc.Groups {
		if group != nil {
			h.groups = append(h.groups, group)
		}
	}
}

func (h *HTTPAPI) client() *http.Client {
	client := &http.Client{Timeout: requestTimeout}

	if h.insecure {
		rootCAs, _ := x509.SystemCertPool()
		tlsconf := &tls.Config{
			InsecureSkipVerify: true,
			RootCAs:            rootCAs,
		}
		client.Transport = &http.Transport{TLSClientConfig: tlsconf}
	}
	return client
}

func (h *HTTPAPI) httpGet(path string) ([]byte, error) {
	url := fmt.Sprintf("%s%s", h.url, path)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if h.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+h.authToken)
	}

	resp, err := h.client().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Status code %d while fetching %s", resp.StatusCode, url)
	}
	return ioutil.ReadAll(resp.Body)
}

func (h *HTTPAPI) loadRemote() error {
	log.Debugf("loading inventory from %s", h.url)
	data, err := h.httpGet(apiPath)
	if err != nil {
		return err
	}

	apiResponse := new(api)
	err = json.Unmarshal(data, apiResponse)
	if err != nil {
		return fmt.Errorf("error parsing inventory response: %w", err)
	}
	if apiResponse.Data == nil {
		return fmt.Errorf("inventory response has no data")
	}

	lc := apiResponse.Data
	err = h.saveCache(lc)
	if err != nil {
		term.Errorf("Error saving cache: %s\n", err)
	} else {
		log.Debugf("cache saved to %s", h.cacheFilename())
	}
	h.extractCache(lc)
	return nil
}
