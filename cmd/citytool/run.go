// cmd/citytool/run.go
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"go-city-builder/internal/config"
	"go-city-builder/internal/replay"
	"go-city-builder/pkg/grid"
	"go-city-builder/pkg/render"
)

func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func runValidate(w io.Writer, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	printConfig(w, cfg)
	return nil
}

func runReplay(w io.Writer, configPath, scriptPath, pngPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	script, err := replay.Load(scriptPath)
	if err != nil {
		return err
	}

	scene := render.NewScene(cfg.Bounds(), grid.Vec2{}, cfg.CellSize)
	runner, err := replay.NewRunner(cfg, script, scene, slog.Default())
	if err != nil {
		return err
	}
	scene.Origin = runner.City.Origin()

	res, err := runner.Run(script)
	if err != nil {
		return fmt.Errorf("replay %s: %w", scriptPath, err)
	}
	if err := runner.City.Registry.Verify(); err != nil {
		return fmt.Errorf("replay %s: %w", scriptPath, err)
	}
	printReplay(w, res)

	if pngPath != "" {
		face, err := render.NewFace(config.LabelFontSize)
		if err != nil {
			return err
		}
		snap := render.Snapshot{PixelsPerCell: int(config.CellPixels), LabelFace: face}
		if err := snap.SavePNG(pngPath, scene); err != nil {
			return err
		}
		fmt.Fprintf(w, "Snapshot written to %s\n", pngPath)
	}
	return nil
}
