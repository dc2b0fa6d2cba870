package grid

import (
	"math"
	"testing"
)

func TestWorldToGridFloors(t *testing.T) {
	origin := Vec2{X: 10, Y: -5}
	tests := []struct {
		name  string
		world Vec2
		cell  float64
		want  Position
	}{
		{"origin", Vec2{10, -5}, 1, Position{0, 0}},
		{"inside first cell", Vec2{10.99, -4.01}, 1, Position{0, 0}},
		{"negative side floors down", Vec2{9.5, -5.5}, 1, Position{-1, -1}},
		{"cell size two", Vec2{15, 0}, 2, Position{2, 2}},
		{"exact boundary", Vec2{12, -3}, 2, Position{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WorldToGrid(tt.world, origin, tt.cell); got != tt.want {
				t.Errorf("WorldToGrid(%v) = %v, want %v", tt.world, got, tt.want)
			}
		})
	}
}

func TestWorldToGridSaturates(t *testing.T) {
	got := WorldToGrid(Vec2{X: math.Inf(1), Y: math.NaN()}, Vec2{}, 1)
	if got.X != MaxCell || got.Y != MinCell {
		t.Fatalf("expected saturated cell, got %v", got)
	}
	got = WorldToGrid(Vec2{X: -1e300, Y: 1e300}, Vec2{}, 0.5)
	if got.X != MinCell || got.Y != MaxCell {
		t.Fatalf("expected saturated cell, got %v", got)
	}

	// The widest footprint plus clearance must still fit in int32 past the clamp.
	r := FootprintRect(Position{X: MaxCell, Y: MaxCell}, Footprint{Width: math.MaxUint16, Length: math.MaxUint16}, 1)
	if int64(r.MaxX) <= int64(r.MinX) || int64(r.MaxX) > math.MaxInt32 {
		t.Fatalf("footprint at the clamp overflowed: %v", r)
	}
}

func TestGridToWorldRoundTrip(t *testing.T) {
	origin := Vec2{X: -3.25, Y: 7.5}
	for _, cellSize := range []float64{0.5, 1, 1.5, 32} {
		for x := 0; x < 20; x++ {
			for y := 0; y < 20; y++ {
				p := Position{X: x, Y: y}
				if got := WorldToGrid(GridToWorld(p, origin, cellSize), origin, cellSize); got != p {
					t.Fatalf("cell size %v: round trip of %v gave %v", cellSize, p, got)
				}
			}
		}
	}
}

func TestFootprintRect(t *testing.T) {
	f := Footprint{Width: 2, Length: 3, Height: 9}
	r := FootprintRect(Position{4, 5}, f, 0)
	if r != (Rect{MinX: 4, MinY: 5, MaxX: 6, MaxY: 8}) {
		t.Fatalf("unexpected rect %+v", r)
	}
	m := FootprintRect(Position{4, 5}, f, 1)
	if m != r.Expand(1) {
		t.Fatalf("margin rect %+v differs from expanded %+v", m, r.Expand(1))
	}
	if m.Width() != 4 || m.Length() != 5 {
		t.Fatalf("margin rect has size %dx%d", m.Width(), m.Length())
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{MinX: 1, MinY: 1, MaxX: 3, MaxY: 3}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"same", a, true},
		{"shared edge", Rect{MinX: 3, MinY: 1, MaxX: 5, MaxY: 3}, false},
		{"one cell overlap", Rect{MinX: 2, MinY: 2, MaxX: 4, MaxY: 4}, true},
		{"diagonal corner", Rect{MinX: 3, MinY: 3, MaxX: 4, MaxY: 4}, false},
		{"contained", Rect{MinX: 2, MinY: 2, MaxX: 3, MaxY: 3}, true},
		{"far away", Rect{MinX: 10, MinY: 10, MaxX: 12, MaxY: 12}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("Overlaps is not symmetric")
			}
		})
	}
}

func TestRectCells(t *testing.T) {
	cells := Rect{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4}.Cells()
	want := []Position{{1, 2}, {2, 2}, {1, 3}, {2, 3}}
	if len(cells) != len(want) {
		t.Fatalf("got %d cells, want %d", len(cells), len(want))
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, cells[i], want[i])
		}
	}
	if (Rect{MinX: 2, MaxX: 2, MinY: 0, MaxY: 5}).Cells() != nil {
		t.Error("empty rect should have no cells")
	}
}

func TestBoundsInterior(t *testing.T) {
	b := Bounds{Width: 10, Length: 8}
	if got := b.Interior(); got != (Rect{MinX: 1, MinY: 1, MaxX: 9, MaxY: 7}) {
		t.Fatalf("unexpected interior %+v", got)
	}
	if !b.Contains(Position{0, 0}) || b.Contains(Position{10, 0}) || b.Contains(Position{-1, 3}) {
		t.Fatal("Contains disagrees with bounds")
	}
}
