package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNodeConfig(t *testing.T, values map[string]string) *NodeConfig {
	t.Helper()
	c := NewNodeConfig(MapReader(values))
	require.NoError(t, c.Initialize("node.properties"))
	return c
}

func TestNodeConfigRequiredIdentity(t *testing.T) {
	c := testNodeConfig(t, map[string]string{
		KeyNodeEnvironment: "production",
		KeyNodeID:          "worker-17",
		KeyNodeLocation:    "rack-b",
	})

	env, err := c.NodeEnvironment()
	require.NoError(t, err)
	assert.Equal(t, "production", env)

	id, err := c.NodeID()
	require.NoError(t, err)
	assert.Equal(t, "worker-17", id)

	loc, err := c.NodeLocation()
	require.NoError(t, err)
	assert.Equal(t, "rack-b", loc)

	empty := testNodeConfig(t, nil)
	_, err = empty.NodeID()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingProperty))
}

func TestNodeIP(t *testing.T) {
	c := testNodeConfig(t, map[string]string{KeyNodeIP: "10.0.0.5"})
	ip, err := c.NodeIP(nil)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", ip)

	// Fallback producer fills in an absent property.
	empty := testNodeConfig(t, nil)
	ip, err = empty.NodeIP(func() string { return "127.0.0.1" })
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", ip)

	// Absent with no fallback is the fatal sharp edge.
	_, err = empty.NodeIP(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFatal))
}

func TestNodeMemoryGb(t *testing.T) {
	c := testNodeConfig(t, map[string]string{KeyNodeMemoryGb: "128"})
	mem, err := c.NodeMemoryGb(nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(128), mem)

	empty := testNodeConfig(t, nil)
	mem, err = empty.NodeMemoryGb(func() uint64 { return 64 })
	require.NoError(t, err)
	assert.Equal(t, uint64(64), mem)

	_, err = empty.NodeMemoryGb(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFatal))
}

// TestNodeMemoryGbZeroRejected: zero is never a usable memory size, from
// the property or from a fallback.
func TestNodeMemoryGbZeroRejected(t *testing.T) {
	c := testNodeConfig(t, map[string]string{KeyNodeMemoryGb: "0"})
	_, err := c.NodeMemoryGb(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFatal))

	empty := testNodeConfig(t, nil)
	_, err = empty.NodeMemoryGb(func() uint64 { return 0 })
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFatal))
}

func TestNodeMemoryGbUnparsable(t *testing.T) {
	c := testNodeConfig(t, map[string]string{KeyNodeMemoryGb: "lots"})
	_, err := c.NodeMemoryGb(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPropertyValue))
}

func TestGetNodeConfigSingleton(t *testing.T) {
	a := GetNodeConfig()
	b := GetNodeConfig()
	assert.Same(t, a, b)
}
