package config

import (
	"sync"

	"github.com/samber/oops"
)

// QueryOverlay holds runtime overrides for per-query defaults. It is
// independent of file loading; whether writes are allowed is captured from
// the system config's mutability flag when the overlay is constructed.
type QueryOverlay struct {
	mu      sync.RWMutex
	values  map[string]string
	mutable bool
}

var (
	overlayOnce     sync.Once
	overlayInstance *QueryOverlay
)

// GetQueryOverlay returns the process-wide QueryOverlay, constructing it
// on first use. Construct it after the system config is initialized, or
// the overlay comes up frozen.
func GetQueryOverlay() *QueryOverlay {
	overlayOnce.Do(func() {
		overlayInstance = NewQueryOverlay(GetSystemConfig().MutableConfig())
	})
	return overlayInstance
}

// NewQueryOverlay builds a standalone overlay with an explicit mutability
// flag.
func NewQueryOverlay(mutable bool) *QueryOverlay {
	return &QueryOverlay{
		values:  make(map[string]string),
		mutable: mutable,
	}
}

// SetValue overwrites name, returning the previous value if one existed.
// Fails with ErrNotMutable when the overlay was constructed frozen.
func (o *QueryOverlay) SetValue(name, value string) (string, bool, error) {
	if !o.mutable {
		return "", false, oops.Wrapf(ErrNotMutable,
			"consider setting the system config's %q to \"true\"", KeyMutableConfig)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	prev, had := o.values[name]
	o.values[name] = value
	return prev, had, nil
}

// GetValue returns the override for name, or false if none was set.
func (o *QueryOverlay) GetValue(name string) (string, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	v, ok := o.values[name]
	return v, ok
}

// Values returns a snapshot copy of all current overrides.
func (o *QueryOverlay) Values() map[string]string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make(map[string]string, len(o.values))
	for k, v := range o.values {
		out[k] = v
	}
	return out
}
