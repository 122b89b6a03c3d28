package localfile

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/viert/awxinv/config"
	"github.com/viert/awxinv/inventory"
)

const testJSON = `{
  "groups": [
    {"name": "web", "vars": {"http_port": 80}},
    {"name": "db", "hosts": ["db1"]}
  ],
  "hosts": [
    {"name": "web1", "vars": {"ansible_user": "deploy", "tags": ["a", "b"]}, "groups": ["web"]},
    {"name": "db1", "vars": {"ansible_host": "10.0.0.5"}}
  ]
}`

const testYAML = `
groups:
  - name: web
    vars:
      http_port: 80
  - name: db
    hosts: [db1]
hosts:
  - name: web1
    groups: [web]
    vars:
      ansible_user: deploy
      tags: [a, b]
  - name: db1
    vars:
      ansible_host: 10.0.0.5
`

func newBackend(t *testing.T, name string, contents string) *LocalFile {
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(fn, []byte(contents), 0644))
	cfg := &config.Config{BackendCfg: &config.BackendConfig{
		Type:    config.BTFile,
		Options: map[string]string{"filename": fn},
	}}
	lf, err := New(cfg)
	require.NoError(t, err)
	return lf
}

func checkInventory(t *testing.T, inv *inventory.Inventory) {
	web, found := inv.Group("web")
	require.True(t, found)
	require.Equal(t, []string{"web1"}, web.Hosts)
	require.Len(t, web.Vars, 1)

	db, _ := inv.Group("db")
	require.Equal(t, []string{"db1"}, db.Hosts)

	vars, found := inv.Host("web1")
	require.True(t, found)
	require.Equal(t, "deploy", vars["ansible_user"])
	require.Equal(t, []interface{}{"a", "b"}, vars["tags"])

	vars, _ = inv.Host("db1")
	require.Equal(t, "10.0.0.5", vars["ansible_host"])
}

func TestLoadJSON(t *testing.T) {
	lf := newBackend(t, "inventory.json", testJSON)
	inv, err := inventory.CreateInventory(lf)
	require.NoError(t, err)
	checkInventory(t, inv)

	web, _ := inv.Group("web")
	require.Equal(t, float64(80), web.Vars["http_port"])
}

func TestLoadYAML(t *testing.T) {
	lf := newBackend(t, "inventory.yml", testYAML)
	inv, err := inventory.RefreshInventory(lf)
	require.NoError(t, err)
	checkInventory(t, inv)

	web, _ := inv.Group("web")
	require.Equal(t, 80, web.Vars["http_port"])
}

func TestLoadErrors(t *testing.T) {
	lf := newBackend(t, "inventory.json", `{"hosts": [`)
	require.Error(t, lf.Load())

	lf = newBackend(t, "inventory.yaml", "hosts:\n  - vars: {a: 1}\n")
	require.EqualError(t, lf.Load(), "host #0 in "+lf.filename+" has no name")

	cfg := &config.Config{BackendCfg: &config.BackendConfig{Options: map[string]string{}}}
	_, err := New(cfg)
	require.Error(t, err)
}
