// pkg/render/scene.go
package render

import (
	"go-city-builder/internal/defs"
	"go-city-builder/internal/interfaces"
	"go-city-builder/pkg/grid"

	"github.com/google/uuid"
)

// BuildingVisual is what a renderer needs to draw one placed building.
type BuildingVisual struct {
	ID       uuid.UUID
	World    grid.Vec2
	Template defs.BuildingTemplate
	Overlay  bool
	Mode     interfaces.DisplayMode
}

// PreviewVisual is the building that follows the pointer in build mode.
type PreviewVisual struct {
	Visible  bool
	World    grid.Vec2
	Template defs.BuildingTemplate
	Mode     interfaces.DisplayMode
}

// Scene records presenter calls as plain state. The ebiten, raylib and PNG
// renderers all draw from a Scene.
type Scene struct {
	Bounds   grid.Bounds
	Origin   grid.Vec2
	CellSize float64

	gridHighlight bool
	buildings     map[uuid.UUID]*BuildingVisual
	order         []uuid.UUID
	preview       PreviewVisual
}

// NewScene creates an empty scene for a city.
func NewScene(bounds grid.Bounds, origin grid.Vec2, cellSize float64) *Scene {
	return &Scene{
		Bounds:    bounds,
		Origin:    origin,
		CellSize:  cellSize,
		buildings: make(map[uuid.UUID]*BuildingVisual),
	}
}

// SetGridHighlight implements interfaces.Presenter.
func (s *Scene) SetGridHighlight(active bool) {
	s.gridHighlight = active
}

// SetOverlayVisible implements interfaces.Presenter. Unknown ids are ignored.
func (s *Scene) SetOverlayVisible(id uuid.UUID, visible bool) {
	if b, ok := s.buildings[id]; ok {
		b.Overlay = visible
	}
}

// SetDisplayMode implements interfaces.Presenter. Unknown ids are ignored.
func (s *Scene) SetDisplayMode(id uuid.UUID, mode interfaces.DisplayMode) {
	if b, ok := s.buildings[id]; ok {
		b.Mode = mode
	}
}

// PlaceBuildingVisual implements interfaces.Presenter.
func (s *Scene) PlaceBuildingVisual(id uuid.UUID, world grid.Vec2, template defs.BuildingTemplate) {
	if _, exists := s.buildings[id]; !exists {
		s.order = append(s.order, id)
	}
	s.buildings[id] = &BuildingVisual{
		ID:       id,
		World:    world,
		Template: template,
		Overlay:  true,
		Mode:     interfaces.DisplayNormal,
	}
}

// UpdatePreview implements interfaces.Presenter.
func (s *Scene) UpdatePreview(world grid.Vec2, template defs.BuildingTemplate, mode interfaces.DisplayMode) {
	s.preview = PreviewVisual{Visible: true, World: world, Template: template, Mode: mode}
}

// HidePreview implements interfaces.Presenter.
func (s *Scene) HidePreview() {
	s.preview.Visible = false
}

// GridHighlight reports whether build mode colors are on.
func (s *Scene) GridHighlight() bool {
	return s.gridHighlight
}

// Buildings returns copies of the building visuals in placement order.
func (s *Scene) Buildings() []BuildingVisual {
	out := make([]BuildingVisual, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.buildings[id])
	}
	return out
}

// Preview returns the preview state.
func (s *Scene) Preview() PreviewVisual {
	return s.preview
}

// WorldSize is the city extent in world units.
func (s *Scene) WorldSize() grid.Vec2 {
	return grid.Vec2{
		X: float64(s.Bounds.Width) * s.CellSize,
		Y: float64(s.Bounds.Length) * s.CellSize,
	}
}

// footprintWorld returns the world rectangle (x, y, w, h) of a footprint
// anchored at world, grown by margin cells.
func (s *Scene) footprintWorld(world grid.Vec2, f grid.Footprint, margin int) (x, y, w, h float64) {
	m := float64(margin) * s.CellSize
	return world.X - m, world.Y - m,
		float64(f.Width)*s.CellSize + 2*m,
		float64(f.Length)*s.CellSize + 2*m
}
