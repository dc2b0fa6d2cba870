// internal/app/build_mode.go
package app

import (
	"fmt"
	"log/slog"
	"math"

	"go-city-builder/internal/city"
	"go-city-builder/internal/defs"
	"go-city-builder/internal/event"
	"go-city-builder/internal/interfaces"
	"go-city-builder/pkg/grid"
)

// Mode is the build mode state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeActive
)

func (m Mode) String() string {
	if m == ModeActive {
		return "active"
	}
	return "idle"
}

// TemplatePicker chooses which catalog entry the next build session places.
type TemplatePicker interface {
	Pick(catalog defs.Catalog) int
}

// BuildSession is the state of one placement attempt. It lives from
// EnterBuildMode until the building is committed or the session is cancelled.
type BuildSession struct {
	Template     defs.BuildingTemplate
	Candidate    grid.Position
	HasCandidate bool
	Valid        bool
}

// DisplayMode returns the preview look for the last validation.
func (s BuildSession) DisplayMode() interfaces.DisplayMode {
	if s.Valid {
		return interfaces.DisplayPreviewValid
	}
	return interfaces.DisplayPreviewInvalid
}

// Rect returns the candidate footprint.
func (s BuildSession) Rect() grid.Rect {
	return grid.FootprintRect(s.Candidate, s.Template.Footprint, 0)
}

// Geometry holds the values needed to validate and place candidates.
type Geometry struct {
	Bounds        grid.Bounds
	Origin        grid.Vec2
	CellSize      float64
	DragThreshold float64
}

// BuildModeDeps are the collaborators of a BuildMode. Presenter, Dispatcher and
// Logger may be nil.
type BuildModeDeps struct {
	Catalog    defs.Catalog
	Registry   *city.Registry
	Power      *city.PowerAccumulator
	Picker     TemplatePicker
	Presenter  interfaces.Presenter
	Dispatcher *event.Dispatcher
	Logger     *slog.Logger
}

// BuildMode drives placement sessions. It is the only writer of the registry
// and must be used from a single goroutine, one Update per frame.
type BuildMode struct {
	geo        Geometry
	catalog    defs.Catalog
	registry   *city.Registry
	power      *city.PowerAccumulator
	picker     TemplatePicker
	presenter  interfaces.Presenter
	dispatcher *event.Dispatcher
	logger     *slog.Logger

	session *BuildSession
}

// NewBuildMode creates an idle controller.
func NewBuildMode(geo Geometry, deps BuildModeDeps) *BuildMode {
	if deps.Registry == nil || deps.Power == nil || deps.Picker == nil {
		panic("build mode needs a registry, a power accumulator and a template picker")
	}
	if deps.Presenter == nil {
		deps.Presenter = nopPresenter{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &BuildMode{
		geo:        geo,
		catalog:    deps.Catalog,
		registry:   deps.Registry,
		power:      deps.Power,
		picker:     deps.Picker,
		presenter:  deps.Presenter,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Mode returns the current state.
func (b *BuildMode) Mode() Mode {
	if b.session != nil {
		return ModeActive
	}
	return ModeIdle
}

// Active reports whether a session is in progress.
func (b *BuildMode) Active() bool {
	return b.session != nil
}

// Session returns a copy of the current session.
func (b *BuildMode) Session() (BuildSession, bool) {
	if b.session == nil {
		return BuildSession{}, false
	}
	return *b.session, true
}

// EnterBuildMode starts a session with a freshly picked template. It does
// nothing when a session is already active.
func (b *BuildMode) EnterBuildMode() error {
	if b.session != nil {
		return nil
	}
	if len(b.catalog) == 0 {
		return fmt.Errorf("enter build mode: %w", defs.ErrEmptyCatalog)
	}
	idx := b.picker.Pick(b.catalog)
	if idx < 0 || idx >= len(b.catalog) {
		return fmt.Errorf("enter build mode: picker chose template %d of %d", idx, len(b.catalog))
	}

	b.session = &BuildSession{Template: b.catalog[idx]}

	b.presenter.SetGridHighlight(true)
	for _, building := range b.registry.All() {
		b.presenter.SetOverlayVisible(building.ID, true)
		b.presenter.SetDisplayMode(building.ID, interfaces.DisplayPreviewValid)
	}

	b.dispatcher.Dispatch(event.Event{Type: event.BuildModeEntered, Data: b.session.Template})
	b.logger.Debug("build mode entered", "template", b.session.Template.ID)
	return nil
}

// Tick moves the candidate to cell and revalidates it.
func (b *BuildMode) Tick(cell grid.Position) {
	s := b.session
	if s == nil {
		return
	}
	s.Candidate = cell
	s.HasCandidate = true
	s.Valid = city.CanPlace(s.Rect(), b.geo.Bounds, b.registry.All())

	b.presenter.UpdatePreview(grid.GridToWorld(cell, b.geo.Origin, b.geo.CellSize), s.Template, s.DisplayMode())
}

// Confirm commits the candidate when it is valid and the pointer moved less
// than the drag threshold since it went down. Larger movements are camera
// drags and never place anything.
//
// A commit that loses its cell to another building returns
// ErrDuplicatePosition and leaves the session active.
func (b *BuildMode) Confirm(dragDelta float64) (bool, error) {
	s := b.session
	if s == nil || !s.HasCandidate || !s.Valid {
		return false, nil
	}
	if !(math.Abs(dragDelta) < b.geo.DragThreshold) {
		return false, nil
	}

	building := city.NewBuilding(s.Candidate, s.Template)
	if err := b.registry.Insert(building); err != nil {
		s.Valid = false
		b.presenter.UpdatePreview(grid.GridToWorld(s.Candidate, b.geo.Origin, b.geo.CellSize), s.Template, s.DisplayMode())
		b.dispatcher.Dispatch(event.Event{Type: event.PlacementRejected, Data: s.Candidate})
		b.logger.Warn("commit rejected", "x", s.Candidate.X, "y", s.Candidate.Y, "error", err)
		return false, err
	}

	b.presenter.PlaceBuildingVisual(building.ID, grid.GridToWorld(building.Position, b.geo.Origin, b.geo.CellSize), building.Template)
	b.dispatcher.Dispatch(event.Event{Type: event.BuildingPlaced, Data: building})
	total := b.power.Add(building.Template.Power)

	b.logger.Info("building placed",
		"id", building.ID,
		"x", building.Position.X,
		"y", building.Position.Y,
		"template", building.Template.ID,
		"total_power", total,
	)

	b.exit(true)
	return true, nil
}

// Cancel ends the session without placing anything.
func (b *BuildMode) Cancel() {
	if b.session == nil {
		return
	}
	b.exit(false)
}

// Update runs one frame of build mode against in.
func (b *BuildMode) Update(in interfaces.InputSource) error {
	if b.session == nil {
		return nil
	}
	if in.CancelRequested() {
		b.Cancel()
		return nil
	}
	cell, overCity := in.PointerCell()
	if !overCity {
		return nil
	}
	b.Tick(cell)
	if dragDelta, released := in.ConfirmRequested(); released {
		_, err := b.Confirm(dragDelta)
		return err
	}
	return nil
}

func (b *BuildMode) exit(placed bool) {
	b.session = nil

	b.presenter.SetGridHighlight(false)
	b.presenter.HidePreview()
	for _, building := range b.registry.All() {
		b.presenter.SetOverlayVisible(building.ID, false)
		b.presenter.SetDisplayMode(building.ID, interfaces.DisplayNormal)
	}

	b.dispatcher.Dispatch(event.Event{Type: event.BuildModeExited, Data: placed})
	b.logger.Debug("build mode exited", "placed", placed)
}
