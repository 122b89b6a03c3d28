package encoder

import (
	"bytes"
	"fmt"

	"github.com/viert/awxinv/inventory"

	"gopkg.in/yaml.v3"
)

// YAML encodes documents as YAML
type YAML struct {
	Indent int
}

// NewYAML creates a YAML encoder with two-space indentation
func NewYAML() *YAML {
	return &YAML{Indent: 2}
}

// Encode implements inventory.Encoder
func (y *YAML) Encode(doc inventory.Document) ([]byte, error) {
	buf := new(bytes.Buffer)
	encoder := yaml.NewEncoder(buf)
	encoder.SetIndent(y.Indent)

	if err := encoder.Encode(map[string]interface{}(doc)); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}
