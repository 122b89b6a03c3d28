package cli

import (
	"fmt"
	"io"

	"github.com/viert/awxinv/config"
	"github.com/viert/awxinv/encoder"
	"github.com/viert/awxinv/inventory"
	"github.com/viert/awxinv/log"
)

// Cli is the command line interface object
type Cli struct {
	inv    *inventory.Inventory
	format string
	out    io.Writer
}

// New creates a new instance of CLI loading the inventory from a given
// backend. With refresh set the backend is forced to reload its data
func New(cfg *config.Config, backend inventory.Backend, refresh bool, out io.Writer) (*Cli, error) {
	var inv *inventory.Inventory
	var err error

	if refresh {
		inv, err = inventory.RefreshInventory(backend)
	} else {
		inv, err = inventory.CreateInventory(backend)
	}
	if err != nil {
		return nil, fmt.Errorf("Error initializing backend: %s", err)
	}
	inv.SetNaturalSort(cfg.NaturalSort)

	return &Cli{inv: inv, format: cfg.Format, out: out}, nil
}

// SetFormat overrides the output format
func (c *Cli) SetFormat(format string) {
	c.format = format
}

// List prints the whole exported inventory
func (c *Cli) List() error {
	enc, err := encoder.New(c.format)
	if err != nil {
		return err
	}
	data, err := c.inv.Export(enc)
	if err != nil {
		return err
	}
	log.Debugf("exported inventory, %d bytes", len(data))
	_, err = c.out.Write(data)
	return err
}

// Host prints vars of a given host. Unknown hosts
// result in empty vars as ansible expects
func (c *Cli) Host(name string) error {
	enc, err := encoder.New(c.format)
	if err != nil {
		return err
	}

	doc := make(inventory.Document)
	vars, found := c.inv.Host(name)
	if found {
		for key, value := range vars {
			doc[key] = value
		}
	} else {
		log.Warningf("host %s is not in the inventory", name)
	}

	data, err := enc.Encode(doc)
	if err != nil {
		return err
	}
	_, err = c.out.Write(data)
	return err
}

// Hosts prints host names one per line
func (c *Cli) Hosts() {
	for _, host := range c.inv.HostNames() {
		fmt.Fprintln(c.out, host)
	}
}

// Groups prints group names along with the number of their members
func (c *Cli) Groups() {
	for _, name := range c.inv.GroupNames() {
		group, _ := c.inv.Group(name)
		fmt.Fprintf(c.out, "%s\t%d\n", name, len(group.Hosts))
	}
}
