// internal/config/schema.go
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed city.schema.json
var citySchemaJSON string

var (
	schemaOnce sync.Once
	citySchema *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		citySchema, schemaErr = jsonschema.CompileString("city.schema.json", citySchemaJSON)
	})
	return citySchema, schemaErr
}

// ValidateDocument checks a raw YAML or JSON config against the city schema.
func ValidateDocument(raw []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compiling city schema: %w", err)
	}
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing city config: %w", err)
	}
	// The validator expects encoding/json values (float64 numbers, string keyed maps).
	buf, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("parsing city config: %w", err)
	}
	var value any
	if err := json.Unmarshal(buf, &value); err != nil {
		return fmt.Errorf("parsing city config: %w", err)
	}
	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
