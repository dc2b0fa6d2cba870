package app

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"go-city-builder/internal/config"
	"go-city-builder/internal/defs"
	"go-city-builder/internal/event"
	"go-city-builder/pkg/grid"
)

func TestPointerTracker(t *testing.T) {
	var p PointerTracker
	if !math.IsInf(p.Release(grid.Vec2{X: 0.5, Y: 0.5}), 1) {
		t.Fatal("release without press should report an infinite delta")
	}
	p.Press(grid.Vec2{X: 0.5, Y: 0.5})
	if !p.Down() {
		t.Fatal("tracker should be down after Press")
	}
	if d := p.Delta(grid.Vec2{X: 0.53, Y: 0.54}); math.Abs(d-0.05) > 1e-9 {
		t.Fatalf("Delta = %v", d)
	}
	if d := p.Release(grid.Vec2{X: 0.5, Y: 0.5}); d != 0 {
		t.Fatalf("Release = %v", d)
	}
	if p.Down() {
		t.Fatal("tracker still down after Release")
	}
}

func TestCameraPanFollowsPointer(t *testing.T) {
	c := NewCamera(grid.Vec2{X: 10, Y: 20}, grid.Vec2{X: 40, Y: 30}, 1, 1)
	grabbed := c.ViewportToWorld(grid.Vec2{X: 0.25, Y: 0.5})

	c.PointerMove(grid.Vec2{X: 0.9, Y: 0.9})
	if c.Offset != (grid.Vec2{X: 10, Y: 20}) {
		t.Fatal("camera moved without a drag")
	}

	c.PointerDown(grid.Vec2{X: 0.25, Y: 0.5})
	c.PointerMove(grid.Vec2{X: 0.5, Y: 0.25})
	if !c.Dragging() {
		t.Fatal("camera should be dragging")
	}
	if got := c.ViewportToWorld(grid.Vec2{X: 0.5, Y: 0.25}); math.Abs(got.X-grabbed.X) > 1e-9 || math.Abs(got.Y-grabbed.Y) > 1e-9 {
		t.Fatalf("grabbed point %v moved to %v", grabbed, got)
	}
	c.PointerUp()
	offset := c.Offset
	c.PointerMove(grid.Vec2{X: 0, Y: 0})
	if c.Offset != offset {
		t.Fatal("camera moved after PointerUp")
	}
}

func TestSequencePicker(t *testing.T) {
	catalog := defs.Catalog{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	p := &SequencePicker{IDs: []string{"c", "missing"}, Fallback: FixedPicker(1)}
	if got := p.Pick(catalog); got != 2 {
		t.Fatalf("first pick %d", got)
	}
	if got := p.Pick(catalog); got != -1 {
		t.Fatalf("unknown id pick %d", got)
	}
	if got := p.Pick(catalog); got != 1 {
		t.Fatalf("fallback pick %d", got)
	}
	if got := (&SequencePicker{}).Pick(catalog); got != 0 {
		t.Fatalf("default pick %d", got)
	}
	if got := (&SequencePicker{}).Pick(nil); got != -1 {
		t.Fatalf("empty catalog pick %d", got)
	}
}

func TestNewCity(t *testing.T) {
	cfg := &config.CityConfig{
		CityWidth:     10,
		CityLength:    8,
		CellSize:      2,
		DragThreshold: 0.01,
		Seed:          99,
		BuildingTypes: defs.Catalog{square("a", 2, 2)},
	}
	c := NewCity(cfg, nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if c.Rng.Seed() != 99 {
		t.Fatalf("seed %d", c.Rng.Seed())
	}
	if c.WorldSize() != (grid.Vec2{X: 20, Y: 16}) {
		t.Fatalf("world size %v", c.WorldSize())
	}
	if cell, ok := c.CellAt(grid.Vec2{X: 5, Y: 3}); !ok || cell != (grid.Position{X: 2, Y: 1}) {
		t.Fatalf("CellAt = %v, %v", cell, ok)
	}
	if _, ok := c.CellAt(grid.Vec2{X: -0.1, Y: 3}); ok {
		t.Fatal("point left of the city reported as over the city")
	}
	if _, ok := c.CellAt(grid.Vec2{X: 20, Y: 3}); ok {
		t.Fatal("point right of the city reported as over the city")
	}

	var total uint32
	c.Events.SubscribeFunc(event.TotalPowerChanged, func(e event.Event) { total = e.Data.(uint32) })
	if err := c.BuildMode.EnterBuildMode(); err != nil {
		t.Fatal(err)
	}
	_ = c.BuildMode.Update(FrameInput{Cell: grid.Position{X: 3, Y: 3}, OverCity: true, Released: true})
	if c.Registry.Len() != 1 || total != 2 {
		t.Fatalf("registry %d, total %d", c.Registry.Len(), total)
	}
}

func TestControlsClickVersusDrag(t *testing.T) {
	cfg := &config.CityConfig{
		CityWidth:     10,
		CityLength:    10,
		CellSize:      1,
		DragThreshold: 0.01,
		BuildingTypes: defs.Catalog{square("a", 2, 7)},
	}
	c := NewCity(cfg, nil, FixedPicker(0), slog.New(slog.NewTextHandler(io.Discard, nil)))
	controls := NewControls(c)
	world := grid.Vec2{X: 3.5, Y: 3.5}

	if err := c.BuildMode.EnterBuildMode(); err != nil {
		t.Fatal(err)
	}

	// Press, drag a fifth of the viewport, release: a camera pan, not a placement.
	in := controls.Frame(PointerState{Viewport: grid.Vec2{X: 0.2, Y: 0.2}, Pressed: true}, world, true)
	if in.Released || !in.OverCity || in.Cell != (grid.Position{X: 3, Y: 3}) {
		t.Fatalf("unexpected press frame %+v", in)
	}
	if !controls.Dragging() {
		t.Fatal("controls should track the press")
	}
	if err := controls.Step(PointerState{Viewport: grid.Vec2{X: 0.4, Y: 0.2}, Released: true}, world, true); err != nil {
		t.Fatal(err)
	}
	if c.Registry.Len() != 0 || !c.BuildMode.Active() {
		t.Fatal("drag release must not place")
	}

	// Press and release in place: placement.
	if err := controls.Step(PointerState{Viewport: grid.Vec2{X: 0.5, Y: 0.5}, Pressed: true}, world, true); err != nil {
		t.Fatal(err)
	}
	if err := controls.Step(PointerState{Viewport: grid.Vec2{X: 0.5, Y: 0.5}, Released: true}, world, true); err != nil {
		t.Fatal(err)
	}
	if c.Registry.Len() != 1 || c.Power.Total() != 7 || c.BuildMode.Active() {
		t.Fatalf("click should place: len %d, power %d", c.Registry.Len(), c.Power.Total())
	}

	// Off the ground nothing is reported as over the city.
	if in := controls.Frame(PointerState{}, grid.Vec2{}, false); in.OverCity {
		t.Fatal("no ground hit but OverCity set")
	}
}

func TestCellInfo(t *testing.T) {
	cfg := &config.CityConfig{
		CityWidth:     10,
		CityLength:    10,
		CellSize:      1,
		DragThreshold: 0.01,
		BuildingTypes: defs.Catalog{{ID: "mill", Name: "Mill", Footprint: grid.Footprint{Width: 2, Length: 2, Height: 1}, Power: 1}},
	}
	c := NewCity(cfg, nil, FixedPicker(0), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if got := c.CellInfo(grid.Position{X: 10, Y: 0}); got != "" {
		t.Fatalf("off-city info %q", got)
	}

	if err := c.BuildMode.EnterBuildMode(); err != nil {
		t.Fatal(err)
	}
	c.BuildMode.Tick(grid.Position{X: 2, Y: 2})
	if ok, err := c.BuildMode.Confirm(0); !ok || err != nil {
		t.Fatalf("Confirm = %v, %v", ok, err)
	}
	if got := c.CellInfo(grid.Position{X: 3, Y: 3}); got != "Cell 3,3 (occupied)" {
		t.Errorf("occupied info %q", got)
	}

	if err := c.BuildMode.EnterBuildMode(); err != nil {
		t.Fatal(err)
	}
	c.BuildMode.Tick(grid.Position{X: 4, Y: 2})
	if got := c.CellInfo(grid.Position{X: 4, Y: 2}); got != "Cell 4,2, too close to Mill" {
		t.Errorf("blocked info %q", got)
	}
	c.BuildMode.Tick(grid.Position{X: 0, Y: 5})
	if got := c.CellInfo(grid.Position{X: 0, Y: 5}); got != "Cell 0,5, outside the buildable area" {
		t.Errorf("border info %q", got)
	}
}
