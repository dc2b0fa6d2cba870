// internal/app/input.go
package app

import (
	"math"

	"go-city-builder/pkg/grid"
)

// FrameInput is the input state of a single frame. It implements
// interfaces.InputSource for every front end.
type FrameInput struct {
	Cancel    bool
	Cell      grid.Position
	OverCity  bool
	Released  bool
	DragDelta float64
}

// CancelRequested implements interfaces.InputSource.
func (f FrameInput) CancelRequested() bool { return f.Cancel }

// PointerCell implements interfaces.InputSource.
func (f FrameInput) PointerCell() (grid.Position, bool) { return f.Cell, f.OverCity }

// ConfirmRequested implements interfaces.InputSource.
func (f FrameInput) ConfirmRequested() (float64, bool) { return f.DragDelta, f.Released }

// PointerTracker remembers where the pointer went down so a release can be
// told apart from a drag. Positions are in viewport units (0..1 per axis).
type PointerTracker struct {
	down   bool
	origin grid.Vec2
}

// Press records the pointer-down position.
func (p *PointerTracker) Press(viewport grid.Vec2) {
	p.down = true
	p.origin = viewport
}

// Delta returns how far the pointer is from where it went down.
func (p *PointerTracker) Delta(viewport grid.Vec2) float64 {
	if !p.down {
		return math.Inf(1)
	}
	return viewport.Sub(p.origin).Len()
}

// Release ends the gesture and returns its total movement. A release without
// a matching press reports an infinite delta so it can never confirm.
func (p *PointerTracker) Release(viewport grid.Vec2) float64 {
	d := p.Delta(viewport)
	p.down = false
	return d
}

// Down reports whether the pointer is currently pressed.
func (p *PointerTracker) Down() bool {
	return p.down
}
