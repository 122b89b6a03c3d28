package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"strings"
	"time"

	"github.com/viert/properties"
)

const defaultConfigContents = `[main]
log_file =
debug = false
format = json
natural_sort = false
cache_dir = ~/.awxinv_cache
cache_ttl = 24

[backend]
type = ini
filename = ~/.awxinv.ini
`

// EnvConfigFile is an environment variable overriding the config location
const EnvConfigFile = "AWXINV_CONFIG"

// BackendType is a backend type enum
type BackendType int

// Backend types
const (
	BTIni BackendType = iota
	BTFile
	BTHTTP
)

// BackendConfig is a backend configuration struct
type BackendConfig struct {
	Type       BackendType
	TypeString string
	Options    map[string]string
}

// Config represents a configuration struct for awxinv
type Config struct {
	BackendCfg  *BackendConfig
	LogFile     string
	Debug       bool
	Format      string
	NaturalSort bool
	CacheDir    string
	CacheTTL    time.Duration
}

const (
	defaultLogFile     = ""
	defaultDebug       = false
	defaultFormat      = "json"
	defaultNaturalSort = false
	defaultCacheDir    = "~/.awxinv_cache"
	defaultCacheTTL    = 24
)

// ExpandPath helper helps to expand ~ as a home directory
// as well as it expands any env variable usage in path
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		path = "$HOME/" + path[2:]
	}
	return os.ExpandEnv(path)
}

// DefaultFilename returns the config location, $AWXINV_CONFIG
// if set or ~/.awxinv.conf otherwise
func DefaultFilename() string {
	if fn := os.Getenv(EnvConfigFile); fn != "" {
		return ExpandPath(fn)
	}
	return path.Join(os.Getenv("HOME"), ".awxinv.conf")
}

// Read reads and parses a configuration file. A missing file
// is created with default contents
func Read(filename string) (*Config, error) {
	return read(filename, false)
}

func read(filename string, secondPass bool) (*Config, error) {
	var props *properties.Properties
	var err error

	props, err = properties.Load(filename)
	if err != nil {
		if secondPass {
			return nil, err
		}

		if os.IsNotExist(err) {
			err = ioutil.WriteFile(filename, []byte(defaultConfigContents), 0644)
			if err != nil {
				return nil, err
			}
		}
		return read(filename, true)
	}

	cfg := new(Config)
	cfg.BackendCfg = &BackendConfig{Type: BTIni, Options: make(map[string]string)}

	lf, err := props.GetString("main.log_file")
	if err != nil {
		lf = defaultLogFile
	}
	cfg.LogFile = ExpandPath(lf)

	dbg, err := props.GetBool("main.debug")
	if err != nil {
		dbg = defaultDebug
	}
	cfg.Debug = dbg

	format, err := props.GetString("main.format")
	if err != nil || format == "" {
		format = defaultFormat
	}
	cfg.Format = format

	ns, err := props.GetBool("main.natural_sort")
	if err != nil {
		ns = defaultNaturalSort
	}
	cfg.NaturalSort = ns

	cd, err := props.GetString("main.cache_dir")
	if err != nil || cd == "" {
		cd = defaultCacheDir
	}
	cfg.CacheDir = ExpandPath(cd)

	cttl, err := props.GetInt("main.cache_ttl")
	if err != nil || cttl < 0 {
		cttl = defaultCacheTTL
	}
	cfg.CacheTTL = time.Hour * time.Duration(cttl)

	bkeys, err := props.Subkeys("backend")
	if err != nil {
		return nil, fmt.Errorf("Backend configuration error: %s", err)
	}

	typeFound := false
	for _, key := range bkeys {
		value, _ := props.GetString("backend." + key)
		if key == "type" {
			cfg.BackendCfg.TypeString = value
			switch value {
			case "ini":
				cfg.BackendCfg.Type = BTIni
			case "file", "json", "yaml":
				cfg.BackendCfg.Type = BTFile
			case "http":
				cfg.BackendCfg.Type = BTHTTP
			default:
				return nil, fmt.Errorf("Invalid backend type \"%s\"", value)
			}
			typeFound = true
		} else {
			cfg.BackendCfg.Options[key] = value
		}
	}

	if !typeFound {
		return nil, fmt.Errorf("Error configuring backend: backend type is not defined")
	}

	if fn, found := cfg.BackendCfg.Options["filename"]; found {
		cfg.BackendCfg.Options["filename"] = ExpandPath(fn)
	}

	return cfg, nil
}
