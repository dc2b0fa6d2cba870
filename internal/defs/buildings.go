// internal/defs/buildings.go
package defs

import (
	"fmt"

	"go-city-builder/pkg/grid"
)

// BuildingTemplate holds the static data for one building type.
type BuildingTemplate struct {
	ID             string `yaml:"id" json:"id"`
	Name           string `yaml:"name" json:"name"`
	grid.Footprint `yaml:",inline" json:",inline"`
	Power          uint32 `yaml:"power" json:"power"`
}

// Label returns the display name of the template.
func (t BuildingTemplate) Label() string {
	if t.Name != "" {
		return t.Name
	}
	return t.ID
}

// Catalog is the fixed list of building types available to build mode.
type Catalog []BuildingTemplate

// Lookup finds a template by ID.
func (c Catalog) Lookup(id string) (BuildingTemplate, bool) {
	for _, t := range c {
		if t.ID == id {
			return t, true
		}
	}
	return BuildingTemplate{}, false
}

// Index returns the position of the template with the given ID, or -1.
func (c Catalog) Index(id string) int {
	for i, t := range c {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Normalize fills in missing IDs and checks footprints.
func (c Catalog) Normalize() error {
	seen := make(map[string]struct{}, len(c))
	for i := range c {
		t := &c[i]
		if t.ID == "" {
			t.ID = fmt.Sprintf("type-%d", i)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("building type %q: %w", t.ID, ErrDuplicateTemplate)
		}
		seen[t.ID] = struct{}{}
		if t.Width == 0 || t.Length == 0 {
			return fmt.Errorf("building type %q has footprint %dx%d: %w", t.ID, t.Width, t.Length, ErrBadFootprint)
		}
	}
	return nil
}
