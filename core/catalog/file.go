package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a catalog file.
type File struct {
	Entities []Entity `yaml:"entities" toml:"entities"`
}

// LoadFile reads a catalog from a .yaml, .yml or .toml file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes catalog data in the given format ("yaml", "yml" or "toml").
func Parse(data []byte, format string) (*Catalog, error) {
	var f File
	switch format {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to decode yaml: %w", err)
		}
	case "toml":
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, fmt.Errorf("failed to decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}

	for i := range f.Entities {
		e := &f.Entities[i]
		kind, err := ParseKind(string(e.Kind))
		if err != nil {
			return nil, fmt.Errorf("entity %d (%s): %w", i, e.Key, err)
		}
		e.Kind = kind
		for j := range e.Parents {
			pk, err := ParseKind(string(e.Parents[j].Kind))
			if err != nil {
				return nil, fmt.Errorf("entity %d (%s) parent %d: %w", i, e.Key, j, err)
			}
			e.Parents[j].Kind = pk
		}
	}
	return New(f.Entities...)
}
