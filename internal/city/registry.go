// internal/city/registry.go
package city

import (
	"fmt"

	"go-city-builder/pkg/grid"

	"github.com/boljen/go-bitmap"
	"github.com/google/uuid"
)

// Registry owns every committed building, keyed by anchor cell.
type Registry struct {
	bounds    grid.Bounds
	byPos     map[grid.Position]*Building
	byID      map[uuid.UUID]*Building
	order     []*Building
	occupancy bitmap.Bitmap // one bit per city cell, set when a footprint covers it
}

// NewRegistry creates an empty registry for a city of the given size.
func NewRegistry(bounds grid.Bounds) *Registry {
	return &Registry{
		bounds:    bounds,
		byPos:     make(map[grid.Position]*Building),
		byID:      make(map[uuid.UUID]*Building),
		occupancy: bitmap.New(int(bounds.Width) * int(bounds.Length)),
	}
}

// Bounds returns the city size the registry was created for.
func (r *Registry) Bounds() grid.Bounds {
	return r.bounds
}

// Insert adds b. It fails with ErrDuplicatePosition when the anchor cell is taken.
func (r *Registry) Insert(b *Building) error {
	if _, exists := r.byPos[b.Position]; exists {
		return fmt.Errorf("insert at (%d,%d): %w", b.Position.X, b.Position.Y, ErrDuplicatePosition)
	}
	r.byPos[b.Position] = b
	r.byID[b.ID] = b
	r.order = append(r.order, b)

	for _, cell := range b.Rect().Cells() {
		if r.bounds.Contains(cell) {
			r.occupancy.Set(r.cellIndex(cell), true)
		}
	}
	return nil
}

// All returns a snapshot of the buildings in insertion order.
func (r *Registry) All() []*Building {
	out := make([]*Building, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of buildings.
func (r *Registry) Len() int {
	return len(r.order)
}

// At returns the building anchored at p.
func (r *Registry) At(p grid.Position) (*Building, bool) {
	b, ok := r.byPos[p]
	return b, ok
}

// ByID returns the building with the given id.
func (r *Registry) ByID(id uuid.UUID) (*Building, bool) {
	b, ok := r.byID[id]
	return b, ok
}

// Occupied reports whether any footprint covers the cell.
func (r *Registry) Occupied(cell grid.Position) bool {
	if !r.bounds.Contains(cell) {
		return false
	}
	return r.occupancy.Get(r.cellIndex(cell))
}

// TotalPower sums the power of every building.
func (r *Registry) TotalPower() uint32 {
	var total uint32
	for _, b := range r.order {
		total += b.Template.Power
	}
	return total
}

// Verify checks that every building keeps off the border and that no two
// buildings come closer than PlacementMargin.
func (r *Registry) Verify() error {
	for i, a := range r.order {
		if !InBounds(a.Rect(), r.bounds) {
			return fmt.Errorf("building %s at (%d,%d) touches the city border: %w",
				a.ID, a.Position.X, a.Position.Y, ErrInvariantViolated)
		}
		for _, b := range r.order[i+1:] {
			if a.ClearanceRect().Overlaps(b.Rect()) {
				return fmt.Errorf("buildings %s and %s are too close: %w", a.ID, b.ID, ErrInvariantViolated)
			}
		}
	}
	return nil
}

func (r *Registry) cellIndex(cell grid.Position) int {
	return cell.Y*int(r.bounds.Width) + cell.X
}
