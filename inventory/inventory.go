package inventory

import (
	"sort"

	"github.com/facette/natsort"
	"github.com/viert/awxinv/stringslice"
)

// Inventory represents an in-memory registry of hosts and groups.
// It holds no locks: build it from a single goroutine, then export.
type Inventory struct {
	hosts     map[string]Vars
	hostOrder []string
	groups    map[string]*Group

	naturalSort bool
}

// New creates an empty inventory
func New() *Inventory {
	inv := new(Inventory)
	inv.hosts = make(map[string]Vars)
	inv.hostOrder = make([]string, 0)
	inv.groups = make(map[string]*Group)
	return inv
}

// SetNaturalSort enables/disables natural ordering of hosts
// in listings and in the exported "all" group
func (inv *Inventory) SetNaturalSort(value bool) {
	inv.naturalSort = value
}

// AddHost adds a host with an optional set of vars and an optional list
// of groups. Groups that don't exist yet are created. A nil vars or groups
// argument means none.
func (inv *Inventory) AddHost(name string, vars Vars, groups []string) error {
	if _, found := inv.hosts[name]; found {
		return newError(ErrHostAlreadyExists, name)
	}

	inv.hosts[name] = make(Vars)
	inv.hostOrder = append(inv.hostOrder, name)

	if vars != nil {
		if err := inv.AddHostVars(name, vars); err != nil {
			return err
		}
	}

	for _, group := range groups {
		if _, found := inv.groups[group]; !found {
			if err := inv.AddGroup(group, nil, nil); err != nil {
				return err
			}
		}
		if err := inv.AddHostToGroup(name, group); err != nil {
			return err
		}
	}
	return nil
}

// RemoveHost removes a host from the inventory and from every group
// it is a member of. Removing an unknown host is a no-op.
func (inv *Inventory) RemoveHost(name string) {
	if _, found := inv.hosts[name]; !found {
		return
	}
	delete(inv.hosts, name)
	inv.hostOrder = stringslice.Remove(inv.hostOrder, name)

	for _, group := range inv.groups {
		if group.Hosts != nil {
			group.Hosts = stringslice.Remove(group.Hosts, name)
		}
	}
}

// AddGroup adds a group with an optional set of vars and an optional list
// of member hosts. Every member must already be registered. The "_meta"
// name is taken by exported documents and can't be used for a group.
//
// The operation is not atomic: if a member host doesn't exist the group is
// left in place with the members processed before the failing one. Register
// hosts first if that matters.
func (inv *Inventory) AddGroup(name string, vars Vars, hosts []string) error {
	if name == MetaKey {
		return newError(ErrReservedGroupName, name)
	}
	if _, found := inv.groups[name]; found {
		return newError(ErrGroupAlreadyExists, name)
	}

	inv.groups[name] = new(Group)

	if vars != nil {
		if err := inv.AddGroupVars(name, vars); err != nil {
			return err
		}
	}

	for _, host := range hosts {
		if err := inv.AddHostToGroup(host, name); err != nil {
			return err
		}
	}
	return nil
}

// RemoveGroup removes a group. When deleteHosts is set, every member
// of the group is removed from the inventory (and so from every other
// group) as well. Removing an unknown group is a no-op.
func (inv *Inventory) RemoveGroup(name string, deleteHosts bool) {
	group, found := inv.groups[name]
	if !found {
		return
	}

	if deleteHosts {
		members := make([]string, len(group.Hosts))
		copy(members, group.Hosts)
		for _, host := range members {
			inv.RemoveHost(host)
		}
	}
	delete(inv.groups, name)
}

// AddHostVars patches the vars of an existing host
func (inv *Inventory) AddHostVars(name string, vars Vars) error {
	hostVars, found := inv.hosts[name]
	if !found {
		return newError(ErrHostDoesNotExist, name)
	}
	hostVars.Patch(vars)
	return nil
}

// AddGroupVars patches the vars of an existing group
func (inv *Inventory) AddGroupVars(name string, vars Vars) error {
	group, found := inv.groups[name]
	if !found {
		return newError(ErrGroupDoesNotExist, name)
	}
	if group.Vars == nil {
		group.Vars = make(Vars)
	}
	group.Vars.Patch(vars)
	return nil
}

// AddHostToGroup appends a host to the member list of a group. Both must
// exist. Membership is not deduplicated.
func (inv *Inventory) AddHostToGroup(host string, group string) error {
	if _, found := inv.hosts[host]; !found {
		return newError(ErrHostDoesNotExist, host)
	}
	g, found := inv.groups[group]
	if !found {
		return newError(ErrGroupDoesNotExist, group)
	}
	if g.Hosts == nil {
		g.Hosts = make([]string, 0)
	}
	g.Hosts = append(g.Hosts, host)
	return nil
}

// Host returns the vars of a given host. The map is owned by the inventory
func (inv *Inventory) Host(name string) (Vars, bool) {
	vars, found := inv.hosts[name]
	return vars, found
}

// Group returns a given group. The group is owned by the inventory
func (inv *Inventory) Group(name string) (*Group, bool) {
	group, found := inv.groups[name]
	return group, found
}

// HostNames returns all host names in insertion order,
// or naturally sorted if natural sort is enabled
func (inv *Inventory) HostNames() []string {
	res := make([]string, len(inv.hostOrder))
	copy(res, inv.hostOrder)
	if inv.naturalSort {
		natsort.Sort(res)
	}
	return res
}

// GroupNames returns all group names sorted
func (inv *Inventory) GroupNames() []string {
	res := make([]string, 0, len(inv.groups))
	for name := range inv.groups {
		res = append(res, name)
	}
	if inv.naturalSort {
		natsort.Sort(res)
	} else {
		sort.Strings(res)
	}
	return res
}
