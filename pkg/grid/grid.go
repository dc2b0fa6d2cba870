// pkg/grid/grid.go
package grid

import "math"

// Position is a cell on the city grid. Buildings are anchored by their minimum corner.
type Position struct {
	X, Y int
}

// MinCell and MaxCell clamp WorldToGrid. They leave room for a full
// uint16 footprint plus margins on top of the anchor without leaving int32.
const (
	MaxCell = math.MaxInt32 - 1<<17
	MinCell = -MaxCell
)

// Footprint is the occupancy of a building on the grid. Height is only visual.
type Footprint struct {
	Width  uint16 `yaml:"width" json:"width"`
	Length uint16 `yaml:"length" json:"length"`
	Height uint16 `yaml:"height" json:"height"`
}

// Bounds are the city dimensions in cells.
type Bounds struct {
	Width, Length uint16
}

// Vec2 is a point in world units on the ground plane.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// WorldToGrid converts a world point into the cell that contains it.
// Results outside [MinCell, MaxCell], NaN included, saturate to those limits,
// which always land outside any city bounds.
func WorldToGrid(world, origin Vec2, cellSize float64) Position {
	return Position{
		X: floorToCell((world.X - origin.X) / cellSize),
		Y: floorToCell((world.Y - origin.Y) / cellSize),
	}
}

// GridToWorld returns the world position of the minimum corner of p.
func GridToWorld(p Position, origin Vec2, cellSize float64) Vec2 {
	return Vec2{
		X: origin.X + float64(p.X)*cellSize,
		Y: origin.Y + float64(p.Y)*cellSize,
	}
}

func floorToCell(v float64) int {
	switch {
	case math.IsNaN(v), v <= MinCell:
		return MinCell
	case v >= MaxCell:
		return MaxCell
	}
	return int(math.Floor(v))
}
