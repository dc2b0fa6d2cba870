// cmd/game/main.go
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"go-city-builder/internal/config"
	"go-city-builder/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

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

	sm := state.NewStateMachine()
	gs, err := state.NewGameState(sm, cfg, logger)
	if err != nil {
		slog.Error("failed to create city view", "error", err)
		os.Exit(1)
	}
	sm.SetState(gs)

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("City Builder")
	if err := ebiten.RunGame(app); err != nil {
		slog.Error("game stopped", "error", err)
		os.Exit(1)
	}
}
