package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlCatalog = `
entities:
  - kind: region
    key: china
    attributes: {name: China, description: "中国"}
  - kind: region
    key: shanghai
    attributes:
      name: Shanghai
    parents:
      - {kind: region, key: china, field: parent, mutable: true}
  - kind: Device_Role
    key: server
    attributes: {name: Server, color: 00bcd4, vm_role: true}
`

const tomlCatalog = `
[[entities]]
kind = "manufacturer"
key = "cisco"
[entities.attributes]
name = "Cisco"

[[entities]]
kind = "platform"
key = "cisco-ios"
[entities.attributes]
name = "Cisco IOS"
[[entities.parents]]
kind = "manufacturer"
key = "cisco"
field = "manufacturer"
mutable = true
`

func TestParse_YAML(t *testing.T) {
	c, err := Parse([]byte(yamlCatalog), "yaml")
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	shanghai, ok := c.Lookup(Ref{Kind: KindRegion, Key: "shanghai"})
	require.True(t, ok)
	assert.Equal(t, "Shanghai", shanghai.Name())
	require.Len(t, shanghai.Parents, 1)
	assert.True(t, shanghai.Parents[0].Mutable)

	role, ok := c.Lookup(Ref{Kind: KindDeviceRole, Key: "server"})
	require.True(t, ok)
	assert.Equal(t, true, role.Attributes["vm_role"])
}

func TestParse_TOML(t *testing.T) {
	c, err := Parse([]byte(tomlCatalog), "toml")
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	p, ok := c.Lookup(Ref{Kind: KindPlatform, Key: "cisco-ios"})
	require.True(t, ok)
	assert.Equal(t, KindManufacturer, p.Parents[0].Kind)
	assert.Equal(t, "manufacturer", p.Parents[0].Field)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte(yamlCatalog), "json")
	assert.ErrorContains(t, err, "unsupported catalog format")

	_, err = Parse([]byte("entities:\n  - kind: cable\n    key: c1\n"), "yaml")
	assert.ErrorContains(t, err, "unknown kind")

	_, err = Parse([]byte("entities:\n  - kind: region\n    key: c1\n    colour: red\n"), "yaml")
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regions.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlCatalog), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read catalog")
}
