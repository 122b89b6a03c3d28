package inventory

import (
	"github.com/viert/awxinv/stringslice"
)

const (
	// AllGroup is the name of the implicit group holding every host
	AllGroup = "all"
	// MetaKey is the reserved top-level key of an exported document
	MetaKey = "_meta"
)

// Document is an exported inventory, a nested map ready to be encoded
type Document map[string]interface{}

// Encoder renders an exported document into text
type Encoder interface {
	Encode(doc Document) ([]byte, error)
}

// EncoderFunc is an adapter to use an ordinary function as an Encoder
type EncoderFunc func(doc Document) ([]byte, error)

// Encode calls f(doc)
func (f EncoderFunc) Encode(doc Document) ([]byte, error) {
	return f(doc)
}

// syncAllGroup makes sure the "all" group exists and contains every
// registered host. Hosts that are already members are not added again so
// repeated exports don't grow the group.
func (inv *Inventory) syncAllGroup() {
	all, found := inv.groups[AllGroup]
	if !found {
		all = new(Group)
		inv.groups[AllGroup] = all
	}
	for _, host := range inv.HostNames() {
		if !stringslice.Contains(all.Hosts, host) {
			all.Hosts = append(all.Hosts, host)
		}
	}
}

// Document materializes the "all" group and builds the exported document.
// Groups with neither vars nor hosts are left out; the "_meta" key holds
// the vars of every host.
func (inv *Inventory) Document() Document {
	inv.syncAllGroup()

	doc := make(Document)
	for name, group := range inv.groups {
		if group.empty() {
			continue
		}
		entry := make(map[string]interface{})
		if len(group.Hosts) > 0 {
			hosts := make([]string, len(group.Hosts))
			copy(hosts, group.Hosts)
			entry["hosts"] = hosts
		}
		if len(group.Vars) > 0 {
			entry["vars"] = map[string]interface{}(group.Vars)
		}
		doc[name] = entry
	}

	hostvars := make(map[string]interface{}, len(inv.hosts))
	for name, vars := range inv.hosts {
		hostvars[name] = map[string]interface{}(vars)
	}
	doc[MetaKey] = map[string]interface{}{"hostvars": hostvars}
	return doc
}

// Export builds the exported document and renders it with a given encoder
func (inv *Inventory) Export(enc Encoder) ([]byte, error) {
	return enc.Encode(inv.Document())
}
