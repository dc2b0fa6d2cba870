// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrBadFootprint      = errors.New("footprint width and length must be at least 1")
	ErrDuplicateTemplate = errors.New("duplicate building type id")
	ErrEmptyCatalog      = errors.New("building catalog is empty")
)

// DecodeCatalog parses a list of building types. JSON input is accepted as well.
func DecodeCatalog(data []byte) (Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal building definitions: %w", err)
	}
	if err := catalog.Normalize(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// LoadCatalog reads a building definitions file.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read building definitions file: %w", err)
	}
	return DecodeCatalog(data)
}