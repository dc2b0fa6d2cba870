// internal/app/city.go
package app

import (
	"fmt"
	"log/slog"

	"go-city-builder/internal/city"
	"go-city-builder/internal/config"
	"go-city-builder/internal/event"
	"go-city-builder/internal/interfaces"
	"go-city-builder/internal/utils"
	"go-city-builder/pkg/grid"
)

// City wires the placement core together for one loaded config.
type City struct {
	Config    *config.CityConfig
	Registry  *city.Registry
	Power     *city.PowerAccumulator
	Events    *event.Dispatcher
	Rng       *utils.PRNGService
	BuildMode *BuildMode

	origin grid.Vec2
}

// NewCity builds the core for cfg. A nil picker selects templates uniformly
// at random from a generator seeded with cfg.Seed.
func NewCity(cfg *config.CityConfig, presenter interfaces.Presenter, picker TemplatePicker, logger *slog.Logger) *City {
	if logger == nil {
		logger = slog.Default()
	}
	events := event.NewDispatcher()
	rng := utils.NewPRNGService(cfg.Seed)
	if picker == nil {
		picker = rng
	}

	c := &City{
		Config:   cfg,
		Registry: city.NewRegistry(cfg.Bounds()),
		Power:    city.NewPowerAccumulator(events),
		Events:   events,
		Rng:      rng,
	}
	c.BuildMode = NewBuildMode(Geometry{
		Bounds:        cfg.Bounds(),
		Origin:        c.origin,
		CellSize:      cfg.CellSize,
		DragThreshold: cfg.DragThreshold,
	}, BuildModeDeps{
		Catalog:    cfg.BuildingTypes,
		Registry:   c.Registry,
		Power:      c.Power,
		Picker:     picker,
		Presenter:  presenter,
		Dispatcher: events,
		Logger:     logger,
	})

	logger.Info("city ready",
		"width", cfg.CityWidth,
		"length", cfg.CityLength,
		"cell_size", cfg.CellSize,
		"building_types", len(cfg.BuildingTypes),
		"seed", rng.Seed(),
	)
	return c
}

// Origin is the world position of cell (0, 0).
func (c *City) Origin() grid.Vec2 {
	return c.origin
}

// WorldSize is the city extent in world units.
func (c *City) WorldSize() grid.Vec2 {
	return grid.Vec2{
		X: float64(c.Config.CityWidth) * c.Config.CellSize,
		Y: float64(c.Config.CityLength) * c.Config.CellSize,
	}
}

// CellAt converts a world point to a cell. ok is false when the point is not
// over the city ground.
func (c *City) CellAt(world grid.Vec2) (grid.Position, bool) {
	cell := grid.WorldToGrid(world, c.origin, c.Config.CellSize)
	return cell, c.Config.Bounds().Contains(cell)
}

// CellToWorld returns the world position of the minimum corner of cell.
func (c *City) CellToWorld(cell grid.Position) grid.Vec2 {
	return grid.GridToWorld(cell, c.origin, c.Config.CellSize)
}

// CellInfo describes a cell for hover feedback. It is empty off the city.
func (c *City) CellInfo(cell grid.Position) string {
	if !c.Config.Bounds().Contains(cell) {
		return ""
	}
	info := fmt.Sprintf("Cell %d,%d", cell.X, cell.Y)
	if c.Registry.Occupied(cell) {
		info += " (occupied)"
	}
	if s, ok := c.BuildMode.Session(); ok && s.HasCandidate && !s.Valid {
		if b, found := city.Blocker(s.Rect(), c.Registry.All()); found {
			info += ", too close to " + b.Template.Label()
		} else {
			info += ", outside the buildable area"
		}
	}
	return info
}
