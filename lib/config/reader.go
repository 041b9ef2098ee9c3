package config

import (
	"github.com/magiconair/properties"
	"github.com/samber/oops"
)

// PropertiesReader yields raw key/value pairs from a config source. The
// core never interprets file syntax itself; it consumes whatever mapping
// the reader produces.
type PropertiesReader interface {
	Read(path string) (map[string]string, error)
}

// FileReader reads Java-style .properties files.
type FileReader struct{}

func (FileReader) Read(path string) (map[string]string, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, oops.Wrapf(err, "failed to read properties from %q", path)
	}
	values := make(map[string]string, p.Len())
	for _, key := range p.Keys() {
		if v, ok := p.Get(key); ok {
			values[key] = v
		}
	}
	return values, nil
}

// MapReader serves a fixed in-memory mapping; used by tests and embedders
// that assemble properties programmatically.
type MapReader map[string]string

func (r MapReader) Read(path string) (map[string]string, error) {
	values := make(map[string]string, len(r))
	for k, v := range r {
		values[k] = v
	}
	return values, nil
}
