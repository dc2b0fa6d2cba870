// internal/city/validator.go
package city

import "go-city-builder/pkg/grid"

// InBounds reports whether candidate covers at least one cell and keeps off
// the one-cell city border.
func InBounds(candidate grid.Rect, bounds grid.Bounds) bool {
	if candidate.Empty() {
		return false
	}
	return candidate.MinX > 0 && candidate.MinY > 0 &&
		int64(candidate.MaxX) < int64(bounds.Width) && int64(candidate.MaxY) < int64(bounds.Length)
}

// CanPlace reports whether a building covering candidate may be committed.
// Every existing building is grown by PlacementMargin before the overlap test,
// so buildings never touch, not even along an edge.
func CanPlace(candidate grid.Rect, bounds grid.Bounds, existing []*Building) bool {
	if !InBounds(candidate, bounds) {
		return false
	}
	_, blocked := Blocker(candidate, existing)
	return !blocked
}

// Blocker returns the first existing building that rules candidate out, if any.
func Blocker(candidate grid.Rect, existing []*Building) (*Building, bool) {
	for _, b := range existing {
		if b.ClearanceRect().Overlaps(candidate) {
			return b, true
		}
	}
	return nil, false
}
