// internal/state/game_state.go
package state

import (
	"fmt"
	"log/slog"

	"go-city-builder/internal/app"
	"go-city-builder/internal/config"
	"go-city-builder/internal/ui"
	"go-city-builder/pkg/grid"
	"go-city-builder/pkg/render"
	"go-city-builder/pkg/render/view2d"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState is the city view: pan with the mouse, Build to place a building.
type GameState struct {
	sm        *StateMachine
	city      *app.City
	scene     *render.Scene
	renderer  *view2d.Renderer
	camera    *app.Camera
	controls  *app.Controls
	button    *ui.Button
	indicator *ui.PowerIndicator
	logger    *slog.Logger

	pressOnUI bool
}

// NewGameState loads a city from cfg and sets up its 2D view.
func NewGameState(sm *StateMachine, cfg *config.CityConfig, logger *slog.Logger) (*GameState, error) {
	if logger == nil {
		logger = slog.Default()
	}
	labelFace, err := render.NewFace(config.LabelFontSize)
	if err != nil {
		return nil, err
	}
	hudFace, err := render.NewFace(config.HUDFontSize)
	if err != nil {
		return nil, err
	}

	scene := render.NewScene(cfg.Bounds(), grid.Vec2{}, cfg.CellSize)
	c := app.NewCity(cfg, scene, nil, logger)
	scene.Origin = c.Origin()
	counter := render.NewPowerCounter(c.Events)

	// The viewport covers CellPixels pixels per cell, centered on the city.
	view := grid.Vec2{
		X: config.ScreenWidth * cfg.CellSize / config.CellPixels,
		Y: config.ScreenHeight * cfg.CellSize / config.CellPixels,
	}
	size := c.WorldSize()
	offset := grid.Vec2{
		X: c.Origin().X + size.X/2 - view.X/2,
		Y: c.Origin().Y + size.Y/2 - view.Y/2,
	}

	return &GameState{
		sm:       sm,
		city:     c,
		scene:    scene,
		renderer: view2d.NewRenderer(scene, labelFace),
		camera:   app.NewCamera(offset, view, config.CameraMoveSpeedX, config.CameraMoveSpeedY),
		controls: app.NewControls(c),
		button: ui.NewButton(config.BuildButtonX, config.BuildButtonY,
			config.BuildButtonWidth, config.BuildButtonHeight, "Build", hudFace),
		indicator: ui.NewPowerIndicator(config.PowerLabelX, config.PowerLabelY, hudFace, counter),
		logger:    logger,
	}, nil
}

// City returns the city driven by this state.
func (g *GameState) City() *app.City {
	return g.city
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	cx, cy := ebiten.CursorPosition()
	viewport := grid.Vec2{
		X: float64(cx) / config.ScreenWidth,
		Y: float64(cy) / config.ScreenHeight,
	}
	p := app.PointerState{
		Viewport: viewport,
		Cancel:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.button.Contains(cx, cy) {
			g.pressOnUI = true
			g.handleBuildClick()
		} else {
			p.Pressed = true
			g.camera.PointerDown(viewport)
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.camera.PointerMove(viewport)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.pressOnUI {
			g.pressOnUI = false
		} else {
			p.Released = true
			g.camera.PointerUp()
		}
	}

	world := g.camera.ViewportToWorld(viewport)
	if err := g.controls.Step(p, world, true); err != nil {
		g.logger.Warn("placement failed", "error", err)
	}
}

func (g *GameState) handleBuildClick() {
	if g.city.BuildMode.Active() {
		return
	}
	if err := g.city.BuildMode.EnterBuildMode(); err != nil {
		g.logger.Error("cannot enter build mode", "error", err)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen, view2d.View{
		Offset: g.camera.Offset,
		Scale:  config.CellPixels / g.city.Config.CellSize,
	})

	cx, cy := ebiten.CursorPosition()
	g.button.Draw(screen, cx, cy, g.city.BuildMode.Active())
	g.indicator.Draw(screen)

	hover := g.camera.ViewportToWorld(grid.Vec2{
		X: float64(cx) / config.ScreenWidth,
		Y: float64(cy) / config.ScreenHeight,
	})
	if cell, ok := g.city.CellAt(hover); ok {
		ebitenutil.DebugPrintAt(screen, g.city.CellInfo(cell), config.BuildButtonX, config.ScreenHeight-44)
	}

	if s, ok := g.city.BuildMode.Session(); ok {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("Placing %s (%dx%d, power %s). Click to place, Esc to cancel.",
				s.Template.Label(), s.Template.Width, s.Template.Length, render.PowerLabel(s.Template.Power)),
			config.BuildButtonX, config.ScreenHeight-24)
	}
}

func (g *GameState) Exit() {}
