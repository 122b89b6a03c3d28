package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testIni = `[groups]
web http_port=80

[hosts]
web10 groups=web
web2 groups=web ansible_user=deploy
db1 groups=db
`

func writeTestConfig(t *testing.T, naturalSort bool) string {
	dir := t.TempDir()
	iniFile := filepath.Join(dir, "inventory.ini")
	require.NoError(t, ioutil.WriteFile(iniFile, []byte(testIni), 0644))

	cfgFile := filepath.Join(dir, "awxinv.conf")
	contents := fmt.Sprintf(`[main]
format = json
natural_sort = %t
cache_dir = %s

[backend]
type = ini
filename = %s
`, naturalSort, filepath.Join(dir, "cache"), iniFile)
	require.NoError(t, ioutil.WriteFile(cfgFile, []byte(contents), 0644))
	return cfgFile
}

func run(t *testing.T, args ...string) (string, error) {
	cmd := NewCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	cfgFile := writeTestConfig(t, false)

	for _, args := range [][]string{
		{"-c", cfgFile, "--list"},
		{"-c", cfgFile},
	} {
		out, err := run(t, args...)
		require.NoError(t, err)

		var doc map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &doc))

		require.Equal(t, map[string]interface{}{
			"hosts": []interface{}{"web10", "web2"},
			"vars":  map[string]interface{}{"http_port": "80"},
		}, doc["web"])
		require.Equal(t, map[string]interface{}{
			"hosts": []interface{}{"db1"},
		}, doc["db"])
		require.Equal(t, map[string]interface{}{
			"hosts": []interface{}{"web10", "web2", "db1"},
		}, doc["all"])
		require.Equal(t, map[string]interface{}{
			"hostvars": map[string]interface{}{
				"web10": map[string]interface{}{},
				"web2":  map[string]interface{}{"ansible_user": "deploy"},
				"db1":   map[string]interface{}{},
			},
		}, doc["_meta"])
	}
}

func TestListYAML(t *testing.T) {
	cfgFile := writeTestConfig(t, true)
	out, err := run(t, "-c", cfgFile, "--format", "yaml")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Equal(t, map[string]interface{}{
		"hosts": []interface{}{"db1", "web2", "web10"},
	}, doc["all"])
}

func TestHost(t *testing.T) {
	cfgFile := writeTestConfig(t, false)

	out, err := run(t, "-c", cfgFile, "--host", "web2")
	require.NoError(t, err)
	require.Equal(t, "{\n  \"ansible_user\": \"deploy\"\n}\n", out)

	out, err = run(t, "-c", cfgFile, "--host", "missing")
	require.NoError(t, err)
	require.Equal(t, "{}\n", out)

	_, err = run(t, "-c", cfgFile, "--host", "web2", "--list")
	require.Error(t, err)
}

func TestHostsAndGroups(t *testing.T) {
	cfgFile := writeTestConfig(t, true)

	out, err := run(t, "hosts", "-c", cfgFile)
	require.NoError(t, err)
	require.Equal(t, "db1\nweb2\nweb10\n", out)

	out, err = run(t, "groups", "-c", cfgFile)
	require.NoError(t, err)
	require.Equal(t, "db\t1\nweb\t2\n", out)
}

func TestUnknownFormat(t *testing.T) {
	cfgFile := writeTestConfig(t, false)
	_, err := run(t, "-c", cfgFile, "-f", "toml")
	require.EqualError(t, err, `unknown output format "toml"`)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Equal(t, "dev\n", out)
}
