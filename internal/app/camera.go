// internal/app/camera.go
package app

import "go-city-builder/pkg/grid"

// Camera is a top-down view that pans while the pointer is dragged.
// Offset is the world position shown at the top-left of the viewport and
// View is the world extent covered by the whole viewport.
type Camera struct {
	Offset         grid.Vec2
	View           grid.Vec2
	SpeedX, SpeedY float64

	dragging    bool
	dragOrigin  grid.Vec2
	dragStartAt grid.Vec2
}

// NewCamera creates a camera looking at offset and covering view world units.
func NewCamera(offset, view grid.Vec2, speedX, speedY float64) *Camera {
	return &Camera{Offset: offset, View: view, SpeedX: speedX, SpeedY: speedY}
}

// PointerDown starts a drag at a viewport position.
func (c *Camera) PointerDown(viewport grid.Vec2) {
	c.dragging = true
	c.dragOrigin = viewport
	c.dragStartAt = c.Offset
}

// PointerUp ends the drag.
func (c *Camera) PointerUp() {
	c.dragging = false
}

// PointerMove pans so the world point grabbed at PointerDown follows the pointer.
func (c *Camera) PointerMove(viewport grid.Vec2) {
	if !c.dragging {
		return
	}
	d := viewport.Sub(c.dragOrigin)
	c.Offset = grid.Vec2{
		X: c.dragStartAt.X - c.SpeedX*d.X*c.View.X,
		Y: c.dragStartAt.Y - c.SpeedY*d.Y*c.View.Y,
	}
}

// Dragging reports whether a drag is in progress.
func (c *Camera) Dragging() bool {
	return c.dragging
}

// ViewportToWorld converts a viewport position to world units.
func (c *Camera) ViewportToWorld(viewport grid.Vec2) grid.Vec2 {
	return grid.Vec2{
		X: c.Offset.X + viewport.X*c.View.X,
		Y: c.Offset.Y + viewport.Y*c.View.Y,
	}
}
