// Package config stores application settings as a flat map of dotted keys to string values.
//
// Files may be INI, TOML, or YAML. Nested tables and INI sections flatten into dotted keys, so the
// TOML table
//
//	[log]
//	level = "info"
//
// and the INI section
//
//	[log]
//	level = info
//
// both produce the key "log.level".
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-ini/ini"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by Load for file extensions it does not recognize.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config is a flat key-value store. The zero value is empty and ready to use.
type Config struct {
	data map[string]string
}

// New returns an empty Config.
func New() *Config {
	return &Config{data: make(map[string]string)}
}

// Load reads the file at path into a new Config. The format is chosen by file extension: .ini,
// .toml, .yaml, or .yml.
func Load(path string) (*Config, error) {
	c := New()
	if err := c.LoadFile(path); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile merges the file at path into c, overwriting existing keys.
func (c *Config) LoadFile(path string) error {
	var load func(io.Reader) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini":
		load = c.LoadINI
	case ".toml":
		load = c.LoadTOML
	case ".yaml", ".yml":
		load = c.LoadYAML
	default:
		return fmt.Errorf("config file %q: %w", path, ErrUnsupportedFormat)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open config file: %w", err)
	}
	defer f.Close()
	if err := load(f); err != nil {
		return fmt.Errorf("config file %q: %w", path, err)
	}
	return nil
}

// LoadINI merges INI data into c. Keys in the default section are stored without a prefix.
func (c *Config) LoadINI(r io.Reader) error {
	f, err := ini.Load(r)
	if err != nil {
		return err
	}
	for _, sec := range f.Sections() {
		prefix := ""
		if sec.Name() != ini.DefaultSection {
			prefix = sec.Name()
		}
		for _, key := range sec.Keys() {
			c.Set(join(prefix, key.Name()), key.String())
		}
	}
	return nil
}

// LoadTOML merges TOML data into c.
func (c *Config) LoadTOML(r io.Reader) error {
	var table map[string]any
	if _, err := toml.NewDecoder(r).Decode(&table); err != nil {
		return err
	}
	return c.insert("", table)
}

// LoadYAML merges YAML data into c. The document root must be a mapping.
func (c *Config) LoadYAML(r io.Reader) error {
	var table map[string]any
	if err := yaml.NewDecoder(r).Decode(&table); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return c.insert("", table)
}

func (c *Config) insert(root string, table map[string]any) error {
	for key, node := range table {
		pathKey := join(root, key)
		switch v := node.(type) {
		case map[string]any:
			if err := c.insert(pathKey, v); err != nil {
				return err
			}
		case []any, []map[string]any:
			return fmt.Errorf("unexpected node type for %q: %T", pathKey, node)
		case nil:
			c.Set(pathKey, "")
		default:
			c.Set(pathKey, fmt.Sprint(v))
		}
	}
	return nil
}

// Set stores value under key.
func (c *Config) Set(key, value string) {
	if c.data == nil {
		c.data = make(map[string]string)
	}
	c.data[key] = value
}

// Get returns the value stored under key and whether it was present.
func (c *Config) Get(key string) (string, bool) {
	v, ok := c.data[key]
	return v, ok
}

// Value returns the value stored under key, or def if the key is absent.
func (c *Config) Value(key, def string) string {
	if v, ok := c.data[key]; ok {
		return v
	}
	return def
}

// Keys returns every stored key in sorted order.
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(c.data))
	for k := range c.data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
