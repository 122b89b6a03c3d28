package encoder

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/viert/awxinv/inventory"
)

// JSON encodes documents as indented JSON, the format
// ansible expects from inventory scripts
type JSON struct {
	Indent string
}

// NewJSON creates a JSON encoder with two-space indentation
func NewJSON() *JSON {
	return &JSON{Indent: "  "}
}

// Encode implements inventory.Encoder
func (j *JSON) Encode(doc inventory.Document) ([]byte, error) {
	buf := new(bytes.Buffer)
	encoder := json.NewEncoder(buf)
	encoder.SetIndent("", j.Indent)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return buf.Bytes(), nil
}
