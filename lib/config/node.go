package config

import (
	"sync"

	"github.com/samber/oops"
)

// Node property keys recognized by the worker, read from node.properties.
const (
	KeyNodeEnvironment = "node.environment"
	KeyNodeID          = "node.id"
	KeyNodeIP          = "node.ip"
	KeyNodeLocation    = "node.location"
	KeyNodeMemoryGb    = "node.memory-gb"
)

// NodeConfig is the process-wide view over node.properties: the worker's
// identity and capacity.
type NodeConfig struct {
	*ConfigBase
}

var (
	nodeOnce     sync.Once
	nodeInstance *NodeConfig
)

// GetNodeConfig returns the process-wide NodeConfig, constructing it on
// first use.
func GetNodeConfig() *NodeConfig {
	nodeOnce.Do(func() {
		nodeInstance = NewNodeConfig(FileReader{})
	})
	return nodeInstance
}

// NewNodeConfig builds a standalone NodeConfig over reader.
func NewNodeConfig(reader PropertiesReader) *NodeConfig {
	return &NodeConfig{ConfigBase: newConfigBase(reader)}
}

func (c *NodeConfig) NodeEnvironment() (string, error) {
	return requiredProperty[string](c.ConfigBase, KeyNodeEnvironment)
}

func (c *NodeConfig) NodeID() (string, error) {
	return requiredProperty[string](c.ConfigBase, KeyNodeID)
}

func (c *NodeConfig) NodeLocation() (string, error) {
	return requiredProperty[string](c.ConfigBase, KeyNodeLocation)
}

// NodeIP returns the configured node IP, or defaultIP() when the property
// is absent and a producer was supplied. With neither, the error wraps
// ErrFatal: a worker cannot announce itself without an address.
func (c *NodeConfig) NodeIP(defaultIP func() string) (string, error) {
	if ip, ok := c.Get(KeyNodeIP); ok {
		return ip, nil
	}
	if defaultIP != nil {
		return defaultIP(), nil
	}
	return "", oops.Wrapf(ErrFatal,
		"node IP was not found in node properties and no default was provided")
}

// NodeMemoryGb returns the configured node memory, or defaultMemoryGb()
// when the property is absent and a producer was supplied. Missing with no
// producer, or a resolved size of zero, wraps ErrFatal.
func (c *NodeConfig) NodeMemoryGb(defaultMemoryGb func() uint64) (uint64, error) {
	result, ok, err := optionalProperty[uint64](c.ConfigBase, KeyNodeMemoryGb)
	if err != nil {
		return 0, err
	}
	if !ok {
		if defaultMemoryGb == nil {
			return 0, oops.Wrapf(ErrFatal,
				"node memory GB was not found in node properties and no default was provided")
		}
		result = defaultMemoryGb()
	}
	if result == 0 {
		return 0, oops.Wrapf(ErrFatal, "bad node memory size")
	}
	return result, nil
}
