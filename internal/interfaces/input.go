// internal/interfaces/input.go
package interfaces

import "go-city-builder/pkg/grid"

// InputSource is polled once per tick by the build mode controller.
type InputSource interface {
	// CancelRequested reports an escape-like request to leave build mode.
	CancelRequested() bool
	// PointerCell is the grid cell under the pointer. ok is false when the
	// pointer is not over the city.
	PointerCell() (cell grid.Position, ok bool)
	// ConfirmRequested reports a pointer release this tick, together with the
	// distance the pointer travelled since it went down, in viewport units.
	ConfirmRequested() (dragDelta float64, ok bool)
}
