// Package config loads the shared-type table: named schemas that are emitted
// once into the shared module and referenced wherever a structurally equal
// schema occurs.
//
// The file is JSON or YAML:
//
//	{
//	  "schemas": {
//	    "ProblemDetails": {"type": "object", "properties": {...}},
//	    "Page": {...}
//	  }
//	}
//
// "sharedSchemas" is accepted in place of "schemas". Entries keep their
// declared order, which decides between structurally identical entries.
package config

import (
	"fmt"
	"os"

	"github.com/openapigen/openapigen/internal/naming"
	"github.com/openapigen/openapigen/internal/schemautil"
	"github.com/openapigen/openapigen/oaserrors"
	"github.com/openapigen/openapigen/parser"
)

// Config is the loaded shared-type table.
type Config struct {
	// Source is the file the table was read from, empty for in-memory input.
	Source string
	// SharedSchemas maps type names to schemas in declared order.
	SharedSchemas *parser.OrderedMap[parser.Schema]
}

// Empty returns a configuration without shared types.
func Empty() *Config {
	return &Config{SharedSchemas: parser.NewOrderedMap[parser.Schema]()}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "configuration file", Value: path, Cause: err}
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Parse decodes and validates configuration content.
func Parse(data []byte) (*Config, error) {
	root, err := parser.DecodeNode(data)
	if err != nil {
		return nil, err
	}
	doc, err := parser.DecodeNodeMap(root)
	if err != nil {
		return nil, err
	}

	key := "schemas"
	if doc.Has("sharedSchemas") {
		if doc.Has("schemas") {
			return nil, &oaserrors.ConfigError{Option: "sharedSchemas", Message: `"schemas" and "sharedSchemas" are mutually exclusive`}
		}
		key = "sharedSchemas"
	}

	cfg := Empty()
	table, ok := doc.Get(key)
	if !ok || parser.IsNullNode(table) {
		return cfg, nil
	}
	entries, err := parser.DecodeNodeMap(table)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: key, Cause: err}
	}
	for name, node := range entries.All() {
		s, err := parser.DecodeSchema(node)
		if err != nil {
			return nil, &oaserrors.ConfigError{Option: key + "." + name, Cause: err}
		}
		cfg.SharedSchemas.Set(name, s)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every shared name is a usable type name and that no
// shared schema is nullable.
func (c *Config) Validate() error {
	for name, s := range c.SharedSchemas.All() {
		if !naming.IsIdentifier(name) || naming.IsReserved(name) {
			return &oaserrors.ConfigError{Option: "schemas." + name, Message: "shared type name is not a valid TypeScript identifier"}
		}
		if parser.IsNullable(s) || schemautil.HasType(s, parser.TypeNull) {
			return &oaserrors.ConfigError{Option: "schemas." + name, Message: "shared types cannot be nullable"}
		}
	}
	return nil
}

// Names returns the shared type names in declared order.
func (c *Config) Names() []string {
	return c.SharedSchemas.Keys()
}
