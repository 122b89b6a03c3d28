package encoder

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/viert/awxinv/inventory"
	"gopkg.in/yaml.v3"
)

func testInventory(t *testing.T) *inventory.Inventory {
	inv := inventory.New()
	require.NoError(t, inv.AddHost("h1", inventory.Vars{"a": 1, "url": "http://x/?a=1&b=<2>"}, nil))
	require.NoError(t, inv.AddHost("h2", nil, nil))
	require.NoError(t, inv.AddGroup("g1", inventory.Vars{"k": "v"}, []string{"h1"}))
	require.NoError(t, inv.AddGroup("empty", nil, nil))
	return inv
}

func TestJSONExport(t *testing.T) {
	out, err := testInventory(t).Export(NewJSON())
	require.NoError(t, err)

	expected := `{
  "_meta": {
    "hostvars": {
      "h1": {
        "a": 1,
        "url": "http://x/?a=1&b=<2>"
      },
      "h2": {}
    }
  },
  "all": {
    "hosts": [
      "h1",
      "h2"
    ]
  },
  "g1": {
    "hosts": [
      "h1"
    ],
    "vars": {
      "k": "v"
    }
  }
}
`
	require.Equal(t, expected, string(out))
}

func TestJSONEncodeError(t *testing.T) {
	_, err := NewJSON().Encode(inventory.Document{"bad": make(chan int)})
	require.Error(t, err)
}

func TestYAMLExport(t *testing.T) {
	out, err := testInventory(t).Export(NewYAML())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &decoded))

	require.Equal(t, map[string]interface{}{
		"hosts": []interface{}{"h1", "h2"},
	}, decoded["all"])
	require.Equal(t, map[string]interface{}{
		"hosts": []interface{}{"h1"},
		"vars":  map[string]interface{}{"k": "v"},
	}, decoded["g1"])

	meta := decoded["_meta"].(map[string]interface{})
	hostvars := meta["hostvars"].(map[string]interface{})
	require.Equal(t, map[string]interface{}{}, hostvars["h2"])
	require.Equal(t, 1, hostvars["h1"].(map[string]interface{})["a"])
	require.NotContains(t, decoded, "empty")
}

func TestNew(t *testing.T) {
	enc, err := New("json")
	require.NoError(t, err)
	require.IsType(t, &JSON{}, enc)

	enc, err = New("")
	require.NoError(t, err)
	require.IsType(t, &JSON{}, enc)

	enc, err = New("YAML")
	require.NoError(t, err)
	require.IsType(t, &YAML{}, enc)

	enc, err = New("yml")
	require.NoError(t, err)
	require.IsType(t, &YAML{}, enc)

	_, err = New("toml")
	require.EqualError(t, err, `unknown output format "toml"`)
}
