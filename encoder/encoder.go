// Package encoder provides text encoders for exported inventory documents
package encoder

import (
	"fmt"
	"strings"

	"github.com/viert/awxinv/inventory"
)

// Format names
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// New returns an encoder for a given format name
func New(format string) (inventory.Encoder, error) {
	switch strings.ToLower(format) {
	case "", FormatJSON:
		return NewJSON(), nil
	case FormatYAML, "yml":
		return NewYAML(), nil
	default:
		return nil, fmt.Errorf("unknown output format \"%s\"", format)
	}
}
