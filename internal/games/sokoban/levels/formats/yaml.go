// Package formats provides level pack file parsers.
package formats

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed pack.schema.json
var packSchemaJSON []byte

const packSchemaURL = "mem://schemas/sokoban-pack.json"

var (
	schemaOnce sync.Once
	packSchema *jsonschema.Schema
	schemaErr  error
)

// YAMLPack represents the YAML structure for a level pack file.
type YAMLPack struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Author string      `yaml:"author,omitempty"`
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel is one level inside a pack. Either Rows or Map is set.
type YAMLLevel struct {
	ID   string   `yaml:"id,omitempty"`
	Name string   `yaml:"name,omitempty"`
	Rows []string `yaml:"rows,omitempty"`
	Map  string   `yaml:"map,omitempty"` // Block scalar alternative to rows
}

// Schema returns the compiled pack schema.
func Schema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(packSchemaURL, bytes.NewReader(packSchemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		packSchema, schemaErr = compiler.Compile(packSchemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
	return packSchema, schemaErr
}

// Validate checks raw YAML against the pack schema.
// Schema violations are returned as *jsonschema.ValidationError.
func Validate(data []byte) error {
	schema, err := Schema()
	if err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("yaml unmarshal: %w", err)
	}

	// Round-trip through JSON so the validator sees JSON types
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert to json: %w", err)
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("convert to json: %w", err)
	}

	return schema.Validate(value)
}

// ParseYAML validates and decodes a pack file.
func ParseYAML(data []byte) (YAMLPack, error) {
	if err := Validate(data); err != nil {
		return YAMLPack{}, err
	}

	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return YAMLPack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return yp, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
