// internal/app/presenter.go
package app

import (
	"go-city-builder/internal/defs"
	"go-city-builder/internal/interfaces"
	"go-city-builder/pkg/grid"

	"github.com/google/uuid"
)

type nopPresenter struct{}

func (nopPresenter) SetGridHighlight(bool)                                                  {}
func (nopPresenter) SetOverlayVisible(uuid.UUID, bool)                                      {}
func (nopPresenter) SetDisplayMode(uuid.UUID, interfaces.DisplayMode)                       {}
func (nopPresenter) PlaceBuildingVisual(uuid.UUID, grid.Vec2, defs.BuildingTemplate)        {}
func (nopPresenter) UpdatePreview(grid.Vec2, defs.BuildingTemplate, interfaces.DisplayMode) {}
func (nopPresenter) HidePreview()                                                           {}
