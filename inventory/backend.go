package inventory

import (
	"github.com/viert/awxinv/log"
	"github.com/viert/awxinv/stringslice"
)

// Backend represents an inventory source interface
type Backend interface {
	Load() error
	Reload() error

	Hosts() []*HostData
	Groups() []*GroupData
}

// CreateInventory creates a new inventory and fills it with data
// loaded from a given backend
func CreateInventory(backend Backend) (*Inventory, error) {
	if err := backend.Load(); err != nil {
		return nil, err
	}
	return fromBackendData(backend)
}

// RefreshInventory is like CreateInventory but makes the backend
// reload its data bypassing any cache
func RefreshInventory(backend Backend) (*Inventory, error) {
	if err := backend.Reload(); err != nil {
		return nil, err
	}
	return fromBackendData(backend)
}

// fromBackendData creates groups first so that their vars are in place,
// then hosts with their groups, then the members declared by groups.
// A membership declared by both the host and the group is added once.
func fromBackendData(backend Backend) (*Inventory, error) {
	inv := New()

	for _, group := range backend.Groups() {
		if _, found := inv.groups[group.Name]; found {
			if group.Vars != nil {
				if err := inv.AddGroupVars(group.Name, group.Vars); err != nil {
					return nil, err
				}
			}
			continue
		}
		if err := inv.AddGroup(group.Name, group.Vars, nil); err != nil {
			return nil, err
		}
	}

	for _, host := range backend.Hosts() {
		if err := inv.AddHost(host.Name, host.Vars, host.Groups); err != nil {
			return nil, err
		}
	}

	for _, group := range backend.Groups() {
		for _, host := range group.Hosts {
			if stringslice.Contains(inv.groups[group.Name].Hosts, host) {
				continue
			}
			if err := inv.AddHostToGroup(host, group.Name); err != nil {
				return nil, err
			}
		}
	}

	log.Debugf("inventory loaded: %d hosts, %d groups", len(inv.hosts), len(inv.groups))
	return inv, nil
}
