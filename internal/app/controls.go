// internal/app/controls.go
package app

import "go-city-builder/pkg/grid"

// PointerState is the raw pointer state of one frame, in viewport units.
type PointerState struct {
	Viewport grid.Vec2
	Pressed  bool // went down this frame
	Released bool // went up this frame
	Cancel   bool
}

// Controls turns raw pointer frames into build mode input for a city.
type Controls struct {
	city    *City
	tracker PointerTracker
}

// NewControls creates controls for c.
func NewControls(c *City) *Controls {
	return &Controls{city: c}
}

// Frame records the gesture and returns the build mode input for this frame.
// world is the ground point under the pointer; hasWorld is false when the
// pointer does not hit the ground at all.
func (c *Controls) Frame(p PointerState, world grid.Vec2, hasWorld bool) FrameInput {
	if p.Pressed {
		c.tracker.Press(p.Viewport)
	}
	in := FrameInput{Cancel: p.Cancel}
	if hasWorld {
		in.Cell, in.OverCity = c.city.CellAt(world)
	}
	if p.Released {
		in.Released = true
		in.DragDelta = c.tracker.Release(p.Viewport)
	}
	return in
}

// Step feeds one frame to the city's build mode.
func (c *Controls) Step(p PointerState, world grid.Vec2, hasWorld bool) error {
	return c.city.BuildMode.Update(c.Frame(p, world, hasWorld))
}

// Dragging reports whether the pointer is held down.
func (c *Controls) Dragging() bool {
	return c.tracker.Down()
}
