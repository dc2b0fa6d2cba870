// internal/interfaces/presenter.go
package interfaces

import (
	"go-city-builder/internal/defs"
	"go-city-builder/pkg/grid"

	"github.com/google/uuid"
)

// DisplayMode selects how a building (or the preview) is drawn.
type DisplayMode int

const (
	DisplayNormal DisplayMode = iota
	// DisplayPreviewValid is the translucent look. Existing buildings use it
	// too while build mode is active.
	DisplayPreviewValid
	DisplayPreviewInvalid
)

func (m DisplayMode) String() string {
	switch m {
	case DisplayNormal:
		return "normal"
	case DisplayPreviewValid:
		return "preview-valid"
	case DisplayPreviewInvalid:
		return "preview-invalid"
	}
	return "unknown"
}

// Presenter receives visual state changes. It is never consulted for decisions.
type Presenter interface {
	SetGridHighlight(active bool)
	SetOverlayVisible(id uuid.UUID, visible bool)
	SetDisplayMode(id uuid.UUID, mode DisplayMode)
	PlaceBuildingVisual(id uuid.UUID, world grid.Vec2, template defs.BuildingTemplate)
	UpdatePreview(world grid.Vec2, template defs.BuildingTemplate, mode DisplayMode)
	HidePreview()
}
