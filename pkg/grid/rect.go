// pkg/grid/rect.go
package grid

// Rect is a half-open cell rectangle [MinX, MaxX) x [MinY, MaxY).
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// FootprintRect returns the rectangle covered by f anchored at p, grown by
// margin cells on every side.
func FootprintRect(p Position, f Footprint, margin int) Rect {
	return Rect{
		MinX: p.X - margin,
		MinY: p.Y - margin,
		MaxX: p.X + int(f.Width) + margin,
		MaxY: p.Y + int(f.Length) + margin,
	}
}

// Expand grows r by margin cells on every side.
func (r Rect) Expand(margin int) Rect {
	return Rect{
		MinX: r.MinX - margin,
		MinY: r.MinY - margin,
		MaxX: r.MaxX + margin,
		MaxY: r.MaxY + margin,
	}
}

// Width returns the number of columns covered by r.
func (r Rect) Width() int {
	return r.MaxX - r.MinX
}

// Length returns the number of rows covered by r.
func (r Rect) Length() int {
	return r.MaxY - r.MinY
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX < o.MaxX && o.MinX < r.MaxX &&
		r.MinY < o.MaxY && o.MinY < r.MaxY
}

// Cells returns every cell covered by r in row-major order.
func (r Rect) Cells() []Position {
	if r.Empty() {
		return nil
	}
	cells := make([]Position, 0, r.Width()*r.Length())
	for y := r.MinY; y < r.MaxY; y++ {
		for x := r.MinX; x < r.MaxX; x++ {
			cells = append(cells, Position{X: x, Y: y})
		}
	}
	return cells
}

// Interior is the buildable area of a city: everything except the one-cell border.
func (b Bounds) Interior() Rect {
	return Rect{MinX: 1, MinY: 1, MaxX: int(b.Width) - 1, MaxY: int(b.Length) - 1}
}

// Contains reports whether p is a cell of the city, border included.
func (b Bounds) Contains(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < int(b.Width) && p.Y < int(b.Length)
}
