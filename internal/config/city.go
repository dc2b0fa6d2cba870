// internal/config/city.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go-city-builder/internal/defs"
	"go-city-builder/pkg/grid"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCellSize      = 1.0
	DefaultDragThreshold = 0.01

	// MaxCitySide caps each city dimension so the occupancy mask stays small.
	MaxCitySide = 4096
)

var ErrInvalidConfig = errors.New("invalid city config")

// CityConfig is the static description of a city: its size, the cell size
// used for world/grid conversion and the catalog of building types.
type CityConfig struct {
	CityWidth     uint16       `yaml:"cityWidth"`
	CityLength    uint16       `yaml:"cityLength"`
	CellSize      float64      `yaml:"cellSize"`
	DragThreshold float64      `yaml:"dragThreshold"`
	Seed          int64        `yaml:"seed"`
	CatalogPath   string       `yaml:"catalogPath"`
	BuildingTypes defs.Catalog `yaml:"buildingTypes"`
}

// Bounds returns the city size in cells.
func (c *CityConfig) Bounds() grid.Bounds {
	return grid.Bounds{Width: c.CityWidth, Length: c.CityLength}
}

// Load reads, schema-checks and decodes a city config. The JSON
// game_config.json layout is valid YAML, so .json files load as well.
func Load(path string) (*CityConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading city config: %w", err)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if cfg.CatalogPath != "" && len(cfg.BuildingTypes) == 0 {
		catalogPath := cfg.CatalogPath
		if !filepath.IsAbs(catalogPath) {
			catalogPath = filepath.Join(filepath.Dir(path), catalogPath)
		}
		if cfg.BuildingTypes, err = defs.LoadCatalog(catalogPath); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Parse decodes a config document without resolving catalogPath or running Validate.
func Parse(raw []byte) (*CityConfig, error) {
	if err := ValidateDocument(raw); err != nil {
		return nil, err
	}
	cfg := &CityConfig{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing city config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.BuildingTypes.Normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *CityConfig) applyDefaults() {
	if c.CellSize == 0 {
		c.CellSize = DefaultCellSize
	}
	if c.DragThreshold == 0 {
		c.DragThreshold = DefaultDragThreshold
	}
}

// Validate checks the semantic rules the schema cannot express.
func (c *CityConfig) Validate() error {
	if c.CityWidth == 0 || c.CityLength == 0 || c.CityWidth > MaxCitySide || c.CityLength > MaxCitySide {
		return fmt.Errorf("city size %dx%d: %w", c.CityWidth, c.CityLength, ErrInvalidConfig)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cellSize %v: %w", c.CellSize, ErrInvalidConfig)
	}
	if c.DragThreshold <= 0 {
		return fmt.Errorf("dragThreshold %v: %w", c.DragThreshold, ErrInvalidConfig)
	}
	if len(c.BuildingTypes) == 0 {
		return defs.ErrEmptyCatalog
	}
	return nil
}
