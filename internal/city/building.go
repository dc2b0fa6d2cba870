// internal/city/building.go
package city

import (
	"go-city-builder/internal/defs"
	"go-city-builder/pkg/grid"

	"github.com/google/uuid"
)

// PlacementMargin is the clearance, in cells, required between two buildings.
const PlacementMargin = 1

// Building is a committed building. It is never mutated after creation.
type Building struct {
	ID       uuid.UUID
	Position grid.Position
	Template defs.BuildingTemplate
}

// NewBuilding creates a building with a fresh id.
func NewBuilding(pos grid.Position, template defs.BuildingTemplate) *Building {
	return &Building{
		ID:       uuid.New(),
		Position: pos,
		Template: template,
	}
}

// Rect returns the cells covered by the building.
func (b *Building) Rect() grid.Rect {
	return grid.FootprintRect(b.Position, b.Template.Footprint, 0)
}

// ClearanceRect returns the building rectangle grown by PlacementMargin.
func (b *Building) ClearanceRect() grid.Rect {
	return grid.FootprintRect(b.Position, b.Template.Footprint, PlacementMargin)
}
