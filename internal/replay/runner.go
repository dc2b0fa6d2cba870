// internal/replay/runner.go
package replay

import (
	"errors"
	"fmt"
	"log/slog"

	"go-city-builder/internal/app"
	"go-city-builder/internal/city"
	"go-city-builder/internal/config"
	"go-city-builder/internal/event"
	"go-city-builder/internal/interfaces"
	"go-city-builder/internal/utils"
	"go-city-builder/pkg/grid"
)

// Result summarizes a replay.
type Result struct {
	Frames     int
	Placed     []*city.Building
	Rejected   int
	Cancelled  int
	TotalPower uint32
}

// Runner feeds a script to a city one frame per step.
type Runner struct {
	City     *app.City
	controls *app.Controls
	logger   *slog.Logger

	world    grid.Vec2
	hasWorld bool
	result   Result
}

// NewRunner builds a city for cfg whose template choices follow script.
// presenter may be nil.
func NewRunner(cfg *config.CityConfig, script *Script, presenter interfaces.Presenter, logger *slog.Logger) (*Runner, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := script.CheckTemplates(cfg.BuildingTypes); err != nil {
		return nil, err
	}

	var picker app.TemplatePicker
	if len(script.Templates) > 0 {
		picker = &app.SequencePicker{
			IDs:      script.Templates,
			Fallback: utils.NewPRNGService(cfg.Seed),
		}
	}

	r := &Runner{logger: logger}
	r.City = app.NewCity(cfg, presenter, picker, logger)
	r.controls = app.NewControls(r.City)

	r.City.Events.SubscribeFunc(event.BuildingPlaced, func(e event.Event) {
		if b, ok := e.Data.(*city.Building); ok {
			r.result.Placed = append(r.result.Placed, b)
		}
	})
	r.City.Events.SubscribeFunc(event.PlacementRejected, func(event.Event) {
		r.result.Rejected++
	})
	r.City.Events.SubscribeFunc(event.BuildModeExited, func(e event.Event) {
		if placed, ok := e.Data.(bool); ok && !placed {
			r.result.Cancelled++
		}
	})
	return r, nil
}

// Step runs a single step.
func (r *Runner) Step(step Step) error {
	r.result.Frames++
	p := app.PointerState{}
	switch {
	case step.Enter:
		return r.City.BuildMode.EnterBuildMode()
	case step.Cancel:
		p.Cancel = true
	case step.Move != nil:
		r.world = grid.Vec2{X: step.Move.X, Y: step.Move.Y}
		r.hasWorld = true
	case step.Down != nil:
		p.Viewport = grid.Vec2{X: step.Down.X, Y: step.Down.Y}
		p.Pressed = true
	case step.Up != nil:
		p.Viewport = grid.Vec2{X: step.Up.X, Y: step.Up.Y}
		p.Released = true
	default:
		return ErrBadStep
	}

	err := r.controls.Step(p, r.world, r.hasWorld)
	if errors.Is(err, city.ErrDuplicatePosition) {
		return nil
	}
	return err
}

// Run executes every step of script and returns the summary.
func (r *Runner) Run(script *Script) (Result, error) {
	for i, step := range script.Steps {
		if err := r.Step(step); err != nil {
			return r.Result(), fmt.Errorf("step %d: %w", i, err)
		}
	}
	res := r.Result()
	r.logger.Info("replay finished",
		"frames", res.Frames,
		"placed", len(res.Placed),
		"rejected", res.Rejected,
		"cancelled", res.Cancelled,
		"total_power", res.TotalPower,
	)
	return res, nil
}

// Result returns the summary so far.
func (r *Runner) Result() Result {
	res := r.result
	res.Placed = append([]*city.Building(nil), r.result.Placed...)
	res.TotalPower = r.City.Power.Total()
	return res
}
