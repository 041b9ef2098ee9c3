package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDefaultsToFrozen(t *testing.T) {
	c := newConfigBase(MapReader{"some-key": "some-value"})
	require.NoError(t, c.Initialize("config.properties"))

	assert.False(t, c.Mutable())
	v, ok := c.Get("some-key")
	require.True(t, ok)
	assert.Equal(t, "some-value", v)
}

func TestInitializeMutableVariant(t *testing.T) {
	c := newConfigBase(MapReader{KeyMutableConfig: "true"})
	require.NoError(t, c.Initialize("config.properties"))
	assert.True(t, c.Mutable())
}

func TestInitializeBadMutableFlag(t *testing.T) {
	c := newConfigBase(MapReader{KeyMutableConfig: "maybe"})
	err := c.Initialize("config.properties")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPropertyValue))
}

func TestSetValueOnFrozenConfig(t *testing.T) {
	c := newConfigBase(MapReader{"k": "v"})
	require.NoError(t, c.Initialize("config.properties"))

	_, _, err := c.SetValue("k", "other")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotMutable))

	// Value untouched after the rejected write.
	v, _ := c.Get("k")
	assert.Equal(t, "v", v)
}

// TestUnsupportedKeysRemainQueryable verifies that validation only logs:
// keys outside the allow-list still load and resolve.
func TestUnsupportedKeysRemainQueryable(t *testing.T) {
	c := newConfigBase(MapReader{
		KeyHTTPServerHTTPPort: "8080",
		"totally-unknown-key": "still-here",
	})
	require.NoError(t, c.Initialize("config.properties"))

	v, ok := c.Get(KeyHTTPServerHTTPPort)
	require.True(t, ok)
	assert.Equal(t, "8080", v)

	v, ok = c.Get("totally-unknown-key")
	require.True(t, ok)
	assert.Equal(t, "still-here", v)
}

func TestInitializeReaderFailure(t *testing.T) {
	c := newConfigBase(FileReader{})
	err := c.Initialize(filepath.Join(t.TempDir(), "missing", "config.properties"))
	assert.Error(t, err)
}

// TestFileReaderProperties loads a real .properties file end to end.
func TestFileReaderProperties(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.properties")
	content := "" +
		"mutable-config=true\n" +
		"http-server.http.port=8080\n" +
		"# a comment line\n" +
		"discovery.uri=http://coordinator:8081\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c := newConfigBase(FileReader{})
	require.NoError(t, c.Initialize(path))
	assert.Equal(t, path, c.FilePath())
	assert.True(t, c.Mutable())

	v, ok := c.Get("http-server.http.port")
	require.True(t, ok)
	assert.Equal(t, "8080", v)

	v, ok = c.Get("discovery.uri")
	require.True(t, ok)
	assert.Equal(t, "http://coordinator:8081", v)
}

// TestMutableLoadThenOverride is the end-to-end scenario: load a mutable
// config, read a typed property, overwrite it, and get the old value back.
func TestMutableLoadThenOverride(t *testing.T) {
	sys := NewSystemConfig(MapReader{
		KeyMutableConfig:      "true",
		KeyHTTPServerHTTPPort: "8080",
	})
	require.NoError(t, sys.Initialize("config.properties"))

	port, err := sys.HTTPServerHTTPPort()
	require.NoError(t, err)
	assert.Equal(t, 8080, port)

	prev, had, err := sys.SetValue(KeyHTTPServerHTTPPort, "9090")
	require.NoError(t, err)
	require.True(t, had)
	assert.Equal(t, "8080", prev)

	port, err = sys.HTTPServerHTTPPort()
	require.NoError(t, err)
	assert.Equal(t, 9090, port)
}
