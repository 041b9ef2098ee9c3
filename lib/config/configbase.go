package config

import (
	"strings"

	"github.com/samber/oops"

	"github.com/stratalake/queryd/lib/util/logger"
)

var log = logger.GetQuerydLogger()

// ConfigBase owns one PropertyStore and the path it was loaded from. A
// fresh ConfigBase carries an empty frozen store; Initialize replaces it
// with a store built from the file at path, choosing the mutable variant
// when the loaded data asks for it.
type ConfigBase struct {
	reader   PropertiesReader
	store    PropertyStore
	filePath string
}

func newConfigBase(reader PropertiesReader) *ConfigBase {
	return &ConfigBase{
		reader: reader,
		store:  NewFrozenStore(nil),
	}
}

// Initialize loads properties from filePath. Keys are checked against the
// matching allow-list for operator visibility but never rejected. The
// store variant comes from the mutable-config property in the loaded data
// itself, defaulting to frozen.
func (c *ConfigBase) Initialize(filePath string) error {
	values, err := c.reader.Read(filePath)
	if err != nil {
		return oops.Wrapf(err, "failed to initialize config from %q", filePath)
	}

	if strings.Contains(filePath, systemPropertiesFile) {
		reportSystemProperties(values)
	} else if strings.Contains(filePath, nodePropertiesFile) {
		reportNodeProperties(values)
	}

	mutableConfig := false
	if raw, ok := values[KeyMutableConfig]; ok {
		mutableConfig, err = parseProperty[bool](KeyMutableConfig, raw)
		if err != nil {
			return err
		}
	}

	if mutableConfig {
		c.store = NewMutableStore(values)
	} else {
		c.store = NewFrozenStore(values)
	}
	c.filePath = filePath
	return nil
}

// Get returns the raw value for name from the underlying store.
func (c *ConfigBase) Get(name string) (string, bool) {
	return c.store.Get(name)
}

// Mutable reports whether SetValue is allowed on this config.
func (c *ConfigBase) Mutable() bool {
	return c.store.Mutable()
}

// Properties returns a copy of the currently loaded mapping, for
// diagnostics output.
func (c *ConfigBase) Properties() map[string]string {
	return c.store.Snapshot()
}

// FilePath returns the path this config was initialized from, for
// diagnostics.
func (c *ConfigBase) FilePath() string {
	return c.filePath
}

// SetValue overwrites name at runtime, returning the previous value if one
// existed. Fails with ErrNotMutable on a frozen store.
func (c *ConfigBase) SetValue(name, value string) (string, bool, error) {
	if !c.store.Mutable() {
		return "", false, oops.Wrapf(ErrNotMutable,
			"consider setting %q to \"true\"", KeyMutableConfig)
	}
	prev, had := c.store.(*MutableStore).Set(name, value)
	return prev, had, nil
}
