package inventory

// Vars represents a variable map of a host or a group.
// Values are never inspected by the inventory
type Vars map[string]interface{}

// Patch merges other into v: matching keys are overwritten,
// new keys are added and keys absent from other are kept
func (v Vars) Patch(other Vars) {
	for key, value := range other {
		v[key] = value
	}
}

// Group represents a named collection of hosts
type Group struct {
	Vars  Vars
	Hosts []string
}

func (g *Group) empty() bool {
	return len(g.Vars) == 0 && len(g.Hosts) == 0
}

// HostData is a host definition provided by a backend
type HostData struct {
	Name   string   `json:"name" yaml:"name"`
	Vars   Vars     `json:"vars" yaml:"vars"`
	Groups []string `json:"groups" yaml:"groups"`
}

// GroupData is a group definition provided by a backend
type GroupData struct {
	Name  string   `json:"name" yaml:"name"`
	Vars  Vars     `json:"vars" yaml:"vars"`
	Hosts []string `json:"hosts" yaml:"hosts"`
}
