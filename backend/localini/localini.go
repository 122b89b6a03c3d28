package localini

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/viert/awxinv/config"
	"github.com/viert/awxinv/inventory"
	"github.com/viert/awxinv/log"
	"github.com/viert/sekwence"
)

type parseSection int

const (
	sectionGroups parseSection = iota
	sectionHosts
	sectionNone
)

const (
	hostGroupsKey  = "groups"
	groupHostsKey  = "hosts"
	listSeparator  = ","
	valueSeparator = "="
)

// LocalIni backend loads inventory data from a sectioned text file:
//
//	[groups]
//	web http_port=80 env=prod
//	db hosts=db1.example.com,db2.example.com
//
//	[hosts]
//	web1.example.com groups=web,frontend ansible_user=deploy
//
// The first token of a line is a name, the rest are key=value pairs.
// Host names may be sekwence patterns expanding to several hosts.
type LocalIni struct {
	filename  string
	lineCount int
	hosts     []*inventory.HostData
	groups    []*inventory.GroupData
}

// New creates a new LocalIni backend
func New(cfg *config.Config) (*LocalIni, error) {
	filename, found := cfg.BackendCfg.Options["filename"]
	if !found || filename == "" {
		return nil, fmt.Errorf("localini backend filename option is missing")
	}
	return &LocalIni{filename: filename}, nil
}

// Hosts exported backend method
func (li *LocalIni) Hosts() []*inventory.HostData {
	return li.hosts
}

// Groups exported backend method
func (li *LocalIni) Groups() []*inventory.GroupData {
	return li.groups
}

// Load loads the data from file
func (li *LocalIni) Load() error {
	f, err := os.Open(li.filename)
	if err != nil {
		return err
	}
	defer f.Close()

	log.Debugf("loading inventory from %s", li.filename)
	return li.read(f)
}

// Reload force reloads data from file
func (li *LocalIni) Reload() error {
	return li.Load()
}

func (li *LocalIni) read(r io.Reader) error {
	var line string

	li.hosts = make([]*inventory.HostData, 0)
	li.groups = make([]*inventory.GroupData, 0)

	li.lineCount = 0
	section := sectionNone
	scan := bufio.NewScanner(r)

	for scan.Scan() {
		li.lineCount++
		line = strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		switch line {
		case "[groups]":
			section = sectionGroups
		case "[hosts]":
			section = sectionHosts
		default:
			var err error
			switch section {
			case sectionNone:
				err = fmt.Errorf("Unexpected line #%d outside sections: %s", li.lineCount, line)
			case sectionGroups:
				err = li.addGroup(line)
			case sectionHosts:
				err = li.addHost(line)
			}
			if err != nil {
				return err
			}
		}
	}
	return scan.Err()
}

func (li *LocalIni) parseLine(line string) (string, map[string]string, error) {
	data := make(map[string]string)
	tokens := strings.Fields(line)
	if len(tokens) < 1 {
		return "", nil, fmt.Errorf("Malformed line, can't read name at line %d: %s", li.lineCount, line)
	}
	name := tokens[0]
	if strings.Contains(name, valueSeparator) {
		return "", nil, fmt.Errorf("Malformed line, name expected before key=value pairs at line %d: %s", li.lineCount, line)
	}
	for _, token := range tokens[1:] {
		kv := strings.SplitN(token, valueSeparator, 2)
		if len(kv) != 2 || kv[0] == "" {
			return "", nil, fmt.Errorf("Invalid token \"%s\", expected key=value format at line %d", token, li.lineCount)
		}
		data[kv[0]] = kv[1]
	}

	return name, data, nil
}

func expandHosts(pattern string) []string {
	hosts, err := sekwence.ExpandPattern(pattern)
	if err != nil || len(hosts) == 0 {
		hosts = []string{pattern}
	}
	return hosts
}

func splitList(value string) []string {
	res := make([]string, 0)
	for _, item := range strings.Split(value, listSeparator) {
		item = strings.TrimSpace(item)
		if item != "" {
			res = append(res, item)
		}
	}
	return res
}

func (li *LocalIni) addGroup(line string) error {
	name, data, err := li.parseLine(line)
	if err != nil {
		return err
	}
	group := &inventory.GroupData{Name: name}
	for key, value := range data {
		switch key {
		case groupHostsKey:
			for _, pattern := range splitList(value) {
				group.Hosts = append(group.Hosts, expandHosts(pattern)...)
			}
		default:
			if group.Vars == nil {
				group.Vars = make(inventory.Vars)
			}
			group.Vars[key] = value
		}
	}
	li.groups = append(li.groups, group)
	return nil
}

func (li *LocalIni) addHost(line string) error {
	pattern, data, err := li.parseLine(line)
	if err != nil {
		return err
	}

	var groups []string
	vars := make(inventory.Vars)
	for key, value := range data {
		switch key {
		case hostGroupsKey:
			groups = splitList(value)
		default:
			vars[key] = value
		}
	}

	for _, name := range expandHosts(pattern) {
		host := &inventory.HostData{Name: name, Groups: groups}
		if len(vars) > 0 {
			host.Vars = make(inventory.Vars)
			host.Vars.Patch(vars)
		}
		li.hosts = append(li.hosts, host)
	}
	return nil
}
