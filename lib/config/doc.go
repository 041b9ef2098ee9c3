// Package config provides the typed, validated configuration subsystem for
// the queryd worker.
//
// # Property files
//
// The worker loads two property files at startup: config.properties (system
// properties, see SystemConfig) and node.properties (node identity and
// capacity, see NodeConfig). Both are flat key/value files; values are
// strings until a typed accessor parses them. Incoming keys are checked
// against the allow-list matching the file's name and the partition is
// logged at startup. Unsupported keys are never rejected: they stay loaded
// and queryable, they are only flagged for the operator.
//
// # Mutability
//
// A loaded property set that carries mutable-config=true is stored in a
// mutable, lock-guarded store and accepts runtime overwrites through
// SetValue. Any other property set is frozen at load time: reads need no
// locking and SetValue fails with ErrNotMutable. The variant is chosen
// exactly once, when Initialize runs.
//
// The QueryOverlay singleton holds per-query default overrides in its own
// guarded map, independent of the property files. It captures the system
// config's mutability flag at construction.
package config
