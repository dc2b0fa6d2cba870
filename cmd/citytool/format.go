// cmd/citytool/format.go
package main

import (
	"fmt"
	"io"

	"go-city-builder/internal/config"
	"go-city-builder/internal/replay"

	"github.com/dustin/go-humanize"
)

func printConfig(w io.Writer, cfg *config.CityConfig) {
	fmt.Fprintf(w, "City: %dx%d cells, cell size %g, drag threshold %g\n",
		cfg.CityWidth, cfg.CityLength, cfg.CellSize, cfg.DragThreshold)
	fmt.Fprintf(w, "Building types (%d):\n", len(cfg.BuildingTypes))
	for _, t := range cfg.BuildingTypes {
		fmt.Fprintf(w, "  %-12s %-16s %dx%dx%d  power %s\n",
			t.ID, t.Label(), t.Width, t.Length, t.Height, humanize.Comma(int64(t.Power)))
	}
	fmt.Fprintln(w, "Result: VALID")
}

func printReplay(w io.Writer, res replay.Result) {
	fmt.Fprintf(w, "Frames: %s\n", humanize.Comma(int64(res.Frames)))
	fmt.Fprintf(w, "Placed (%d):\n", len(res.Placed))
	for _, b := range res.Placed {
		fmt.Fprintf(w, "  %-12s at (%d,%d)  power %s\n",
			b.Template.ID, b.Position.X, b.Position.Y, humanize.Comma(int64(b.Template.Power)))
	}
	if res.Rejected > 0 {
		fmt.Fprintf(w, "Rejected commits: %d\n", res.Rejected)
	}
	if res.Cancelled > 0 {
		fmt.Fprintf(w, "Cancelled sessions: %d\n", res.Cancelled)
	}
	fmt.Fprintf(w, "Total Power: %s\n", humanize.Comma(int64(res.TotalPower)))
}
