package city

import (
	"errors"
	"math"
	"testing"

	"go-city-builder/internal/defs"
	"go-city-builder/internal/event"
	"go-city-builder/pkg/grid"
)

func template(w, l uint16, power uint32) defs.BuildingTemplate {
	return defs.BuildingTemplate{
		ID:        "t",
		Footprint: grid.Footprint{Width: w, Length: l, Height: 1},
		Power:     power,
	}
}

func rectAt(x, y int, w, l uint16) grid.Rect {
	return grid.FootprintRect(grid.Position{X: x, Y: y}, grid.Footprint{Width: w, Length: l}, 0)
}

func TestCanPlaceInsideEmptyCity(t *testing.T) {
	bounds := grid.Bounds{Width: 10, Length: 10}
	for x := 1; x < 9; x++ {
		for y := 1; y < 9; y++ {
			for w := uint16(1); int(w)+x <= 9; w++ {
				for l := uint16(1); int(l)+y <= 9; l++ {
					if !CanPlace(rectAt(x, y, w, l), bounds, nil) {
						t.Fatalf("%dx%d at (%d,%d) should fit in an empty city", w, l, x, y)
					}
				}
			}
		}
	}
}

func TestCanPlaceRejectsBorder(t *testing.T) {
	bounds := grid.Bounds{Width: 10, Length: 10}
	tests := []struct {
		name string
		rect grid.Rect
	}{
		{"origin", rectAt(0, 0, 1, 1)},
		{"left border", rectAt(0, 4, 2, 2)},
		{"bottom border", rectAt(4, 0, 2, 2)},
		{"touches right border", rectAt(8, 4, 2, 2)},
		{"touches top border", rectAt(4, 8, 2, 2)},
		{"crosses right edge", rectAt(7, 4, 5, 2)},
		{"far outside", rectAt(-50, -50, 2, 2)},
		{"larger than city", rectAt(1, 1, 12, 12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if CanPlace(tt.rect, bounds, nil) {
				t.Errorf("expected %+v to be rejected", tt.rect)
			}
		})
	}
}

func TestCanPlaceOriginRejectedWhateverTheRegistry(t *testing.T) {
	bounds := grid.Bounds{Width: 10, Length: 10}
	r := NewRegistry(bounds)
	for w := uint16(1); w < 12; w++ {
		if CanPlace(rectAt(0, 0, w, w), bounds, r.All()) {
			t.Fatalf("%dx%d at origin accepted", w, w)
		}
	}
	if err := r.Insert(NewBuilding(grid.Position{X: 5, Y: 5}, template(2, 2, 1))); err != nil {
		t.Fatal(err)
	}
	if CanPlace(rectAt(0, 0, 2, 2), bounds, r.All()) {
		t.Fatal("origin accepted with a populated registry")
	}
}

func TestCanPlaceRejectsSaturatedCell(t *testing.T) {
	worlds := []grid.Vec2{
		{X: 1e300, Y: 1e300},
		{X: -1e300, Y: -1e300},
		{X: math.Inf(1), Y: 5},
		{X: 5, Y: math.NaN()},
	}
	for _, bounds := range []grid.Bounds{{Width: 10, Length: 10}, {Width: math.MaxUint16, Length: math.MaxUint16}} {
		for _, world := range worlds {
			for _, w := range []uint16{1, 3, math.MaxUint16} {
				cell := grid.WorldToGrid(world, grid.Vec2{}, 1)
				candidate := grid.FootprintRect(cell, grid.Footprint{Width: w, Length: w}, 0)
				if CanPlace(candidate, bounds, nil) {
					t.Fatalf("%dx%d at saturated cell %v accepted in %v", w, w, cell, bounds)
				}
			}
		}
	}
}

func TestInBoundsRejectsEmptyRect(t *testing.T) {
	bounds := grid.Bounds{Width: 10, Length: 10}
	for _, r := range []grid.Rect{
		{MinX: 5, MinY: 2, MaxX: -3, MaxY: 4},
		{MinX: 2, MinY: 5, MaxX: 4, MaxY: 5},
		{MinX: 3, MinY: 3, MaxX: 3, MaxY: 3},
	} {
		if InBounds(r, bounds) {
			t.Fatalf("empty rect %v accepted", r)
		}
	}
}

func TestCanPlaceMargin(t *testing.T) {
	bounds := grid.Bounds{Width: 10, Length: 10}
	existing := []*Building{NewBuilding(grid.Position{X: 1, Y: 1}, template(2, 2, 5))}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"exact overlap", 1, 1, false},
		{"shares edge x=3", 3, 1, false},
		{"one cell gap", 4, 1, true},
		{"shares edge y=3", 1, 3, false},
		{"gap above", 1, 4, true},
		{"diagonal corner contact", 3, 3, false},
		{"diagonal with gap", 4, 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanPlace(rectAt(tt.x, tt.y, 2, 2), bounds, existing); got != tt.want {
				t.Errorf("CanPlace at (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestBlocker(t *testing.T) {
	a := NewBuilding(grid.Position{X: 1, Y: 1}, template(2, 2, 5))
	b := NewBuilding(grid.Position{X: 6, Y: 6}, template(2, 2, 5))
	got, ok := Blocker(rectAt(7, 5, 1, 1), []*Building{a, b})
	if !ok || got != b {
		t.Fatalf("expected b to block, got %v %v", got, ok)
	}
	if _, ok := Blocker(rectAt(4, 4, 1, 1), []*Building{a, b}); ok {
		t.Fatal("(4,4) should be free")
	}
}

func TestRegistryInsertAndLookup(t *testing.T) {
	r := NewRegistry(grid.Bounds{Width: 10, Length: 10})
	b := NewBuilding(grid.Position{X: 2, Y: 3}, template(2, 3, 7))
	if err := r.Insert(b); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d", r.Len())
	}
	if got, ok := r.At(grid.Position{X: 2, Y: 3}); !ok || got != b {
		t.Fatal("At did not return the building")
	}
	if got, ok := r.ByID(b.ID); !ok || got != b {
		t.Fatal("ByID did not return the building")
	}
	for _, cell := range b.Rect().Cells() {
		if !r.Occupied(cell) {
			t.Errorf("cell %v should be occupied", cell)
		}
	}
	for _, cell := range []grid.Position{{X: 1, Y: 3}, {X: 4, Y: 3}, {X: 2, Y: 6}, {X: -1, Y: 0}, {X: 10, Y: 10}} {
		if r.Occupied(cell) {
			t.Errorf("cell %v should be free", cell)
		}
	}
}

func TestRegistryDuplicatePosition(t *testing.T) {
	r := NewRegistry(grid.Bounds{Width: 10, Length: 10})
	pos := grid.Position{X: 1, Y: 1}
	if err := r.Insert(NewBuilding(pos, template(1, 1, 1))); err != nil {
		t.Fatal(err)
	}
	err := r.Insert(NewBuilding(pos, template(2, 2, 2)))
	if !errors.Is(err, ErrDuplicatePosition) {
		t.Fatalf("expected ErrDuplicatePosition, got %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("failed insert changed the registry, Len = %d", r.Len())
	}
}

func TestRegistryAllIsSnapshot(t *testing.T) {
	r := NewRegistry(grid.Bounds{Width: 20, Length: 20})
	_ = r.Insert(NewBuilding(grid.Position{X: 1, Y: 1}, template(1, 1, 1)))
	snap := r.All()
	_ = r.Insert(NewBuilding(grid.Position{X: 5, Y: 5}, template(1, 1, 1)))
	if len(snap) != 1 {
		t.Fatalf("snapshot grew to %d", len(snap))
	}
	snap[0] = nil
	if r.All()[0] == nil {
		t.Fatal("mutating the snapshot changed the registry")
	}
}

func TestRegistryVerify(t *testing.T) {
	bounds := grid.Bounds{Width: 10, Length: 10}
	r := NewRegistry(bounds)
	_ = r.Insert(NewBuilding(grid.Position{X: 1, Y: 1}, template(2, 2, 1)))
	_ = r.Insert(NewBuilding(grid.Position{X: 4, Y: 1}, template(2, 2, 1)))
	if err := r.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	// Insert skips validation, so an illegal layout can be built by hand.
	_ = r.Insert(NewBuilding(grid.Position{X: 6, Y: 1}, template(1, 1, 1)))
	if err := r.Verify(); !errors.Is(err, ErrInvariantViolated) {
		t.Fatalf("expected ErrInvariantViolated, got %v", err)
	}

	edge := NewRegistry(bounds)
	_ = edge.Insert(NewBuilding(grid.Position{X: 0, Y: 4}, template(1, 1, 1)))
	if err := edge.Verify(); !errors.Is(err, ErrInvariantViolated) {
		t.Fatalf("expected border violation, got %v", err)
	}
}

func TestPowerAccumulator(t *testing.T) {
	d := event.NewDispatcher()
	var seen []uint32
	d.SubscribeFunc(event.TotalPowerChanged, func(e event.Event) {
		seen = append(seen, e.Data.(uint32))
	})
	p := NewPowerAccumulator(d)
	if p.Add(5) != 5 || p.Add(0) != 5 || p.Add(12) != 17 {
		t.Fatal("unexpected running totals")
	}
	if p.Total() != 17 {
		t.Fatalf("Total = %d", p.Total())
	}
	want := []uint32{5, 5, 17}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("notifications %v, want %v", seen, want)
		}
	}
}

func TestPowerAccumulatorWithoutDispatcher(t *testing.T) {
	p := NewPowerAccumulator(nil)
	if p.Add(3) != 3 {
		t.Fatal("Add without dispatcher failed")
	}
}
