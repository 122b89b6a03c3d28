package localfile

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/viert/awxinv/config"
	"github.com/viert/awxinv/inventory"
	"github.com/viert/awxinv/log"

	"gopkg.in/yaml.v3"
)

// Data is struct for file data
type Data struct {
	Hosts  []*inventory.HostData  `json:"hosts" yaml:"hosts"`
	Groups []*inventory.GroupData `json:"groups" yaml:"groups"`
}

// LocalFile is a backend reading a structured JSON or YAML file.
// Files ending with .yaml or .yml are read as YAML, any other as JSON
type LocalFile struct {
	filename string
	Data     Data
}

// New used for Init file backend
func New(cfg *config.Config) (*LocalFile, error) {
	filename, found := cfg.BackendCfg.Options["filename"]
	if !found || filename == "" {
		return nil, fmt.Errorf("localfile backend filename option is missing")
	}
	return &LocalFile{filename: filename}, nil
}

// Hosts exported backend method
func (lf *LocalFile) Hosts() []*inventory.HostData {
	return lf.Data.Hosts
}

// Groups exported backend method
func (lf *LocalFile) Groups() []*inventory.GroupData {
	return lf.Data.Groups
}

// Load used for load file from disk
func (lf *LocalFile) Load() error {
	b, err := ioutil.ReadFile(lf.filename)
	if err != nil {
		return err
	}
	log.Debugf("loading inventory from %s", lf.filename)
	return lf.read(b, isYAML(lf.filename))
}

// Reload implements Load call for reload file from disk
func (lf *LocalFile) Reload() error {
	return lf.Load()
}

func isYAML(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}

func (lf *LocalFile) read(b []byte, asYAML bool) error {
	var data Data
	var err error

	if asYAML {
		err = yaml.Unmarshal(b, &data)
	} else {
		err = json.Unmarshal(b, &data)
	}
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", lf.filename, err)
	}

	for i, host := range data.Hosts {
		if host == nil || host.Name == "" {
			return fmt.Errorf("host #%d in %s has no name", i, lf.filename)
		}
	}
	for i, group := range data.Groups {
		if group == nil || group.Name == "" {
			return fmt.Errorf("group #%d in %s has no name", i, lf.filename)
		}
	}
	lf.Data = data
	return nil
}
