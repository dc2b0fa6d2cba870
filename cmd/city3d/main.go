// cmd/city3d/main.go
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"go-city-builder/internal/app"
	"go-city-builder/internal/assets"
	"go-city-builder/internal/config"
	"go-city-builder/internal/ui"
	"go-city-builder/pkg/grid"
	"go-city-builder/pkg/render"
	"go-city-builder/pkg/render/view3d"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const orbitSpeed = 0.02

func main() {
	configPath := flag.String("config", "configs/game_config.yaml", "path to the city config")
	debug := flag.Bool("debug", os.Getenv("CITY_DEBUG") == "1", "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "City Builder 3D | Q/E - Rotate, Esc - Cancel build")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0) // Escape cancels build mode instead of closing

	scene := render.NewScene(cfg.Bounds(), grid.Vec2{}, cfg.CellSize)
	c := app.NewCity(cfg, scene, nil, logger)
	scene.Origin = c.Origin()
	models := assets.NewModelManager("assets", cfg.CellSize, logger)
	models.LoadCatalog(cfg.BuildingTypes)
	defer models.Cleanup()
	renderer := view3d.NewRenderer(scene)
	renderer.Models = models
	controls := app.NewControls(c)
	counter := render.NewPowerCounter(c.Events)

	button := ui.NewButtonRL(rl.NewRectangle(config.BuildButtonX, config.BuildButtonY,
		config.BuildButtonWidth, config.BuildButtonHeight), "Build")
	indicator := ui.NewPowerIndicatorRL(config.PowerLabelX, config.BuildButtonY+11, counter)
	background := rl.NewColor(config.BackgroundColor.R, config.BackgroundColor.G, config.BackgroundColor.B, 255)

	pressOnUI := false
	var grab grid.Vec2
	grabbing := false

	for !rl.WindowShouldClose() {
		if rl.IsKeyDown(rl.KeyQ) {
			renderer.Orbit(-orbitSpeed)
		}
		if rl.IsKeyDown(rl.KeyE) {
			renderer.Orbit(orbitSpeed)
		}

		mouse := rl.GetMousePosition()
		viewport := grid.Vec2{
			X: float64(mouse.X) / config.ScreenWidth,
			Y: float64(mouse.Y) / config.ScreenHeight,
		}
		p := app.PointerState{Viewport: viewport, Cancel: rl.IsKeyPressed(rl.KeyEscape)}

		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			if button.Contains(mouse) {
				pressOnUI = true
				if !c.BuildMode.Active() {
					if err := c.BuildMode.EnterBuildMode(); err != nil {
						slog.Error("cannot enter build mode", "error", err)
					}
				}
			} else {
				p.Pressed = true
				grab, grabbing = renderer.PickGround(mouse)
			}
		}
		// Keep the grabbed ground point under the cursor while dragging.
		if grabbing && rl.IsMouseButtonDown(rl.MouseLeftButton) {
			if under, ok := renderer.PickGround(mouse); ok {
				renderer.Pan(grab.Sub(under))
			}
		}
		if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
			if pressOnUI {
				pressOnUI = false
			} else {
				p.Released = true
				grabbing = false
			}
		}

		world, hit := renderer.PickGround(mouse)
		if err := controls.Step(p, world, hit); err != nil {
			slog.Warn("placement failed", "error", err)
		}

		rl.BeginDrawing()
		rl.ClearBackground(background)

		rl.BeginMode3D(renderer.Camera)
		renderer.Draw()
		rl.EndMode3D()

		renderer.DrawLabels()
		button.Draw(mouse, c.BuildMode.Active())
		indicator.Draw()
		if hit {
			if cell, ok := c.CellAt(world); ok {
				rl.DrawText(c.CellInfo(cell), config.BuildButtonX, config.ScreenHeight-54, config.HUDFontSize, rl.RayWhite)
			}
		}
		if s, ok := c.BuildMode.Session(); ok {
			hint := fmt.Sprintf("Placing %s (%dx%d). Click to place, Esc to cancel.",
				s.Template.Label(), s.Template.Width, s.Template.Length)
			rl.DrawText(hint, config.BuildButtonX, config.ScreenHeight-30, config.HUDFontSize, rl.RayWhite)
		}

		rl.EndDrawing()
	}
}
