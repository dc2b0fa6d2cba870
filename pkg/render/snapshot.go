// pkg/render/snapshot.go
package render

import (
	"fmt"
	"image"
	"io"

	"go-city-builder/internal/config"
	"go-city-builder/pkg/grid"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Snapshot rasterizes a Scene without a window, for tools and replays.
type Snapshot struct {
	PixelsPerCell int
	LabelFace     font.Face // nil skips labels
}

// RenderImage draws the scene top-down, one cell per PixelsPerCell pixels.
func (s Snapshot) RenderImage(scene *Scene) image.Image {
	ppc := s.PixelsPerCell
	if ppc <= 0 {
		ppc = int(config.CellPixels)
	}
	w := int(scene.Bounds.Width) * ppc
	h := int(scene.Bounds.Length) * ppc

	ctx := gg.NewContext(w, h)
	ctx.SetColor(config.GroundColor)
	ctx.Clear()

	ctx.SetColor(GridColor(scene.GridHighlight()))
	ctx.SetLineWidth(config.StrokeWidth)
	for x := 0; x <= int(scene.Bounds.Width); x++ {
		ctx.DrawLine(float64(x*ppc), 0, float64(x*ppc), float64(h))
	}
	for y := 0; y <= int(scene.Bounds.Length); y++ {
		ctx.DrawLine(0, float64(y*ppc), float64(w), float64(y*ppc))
	}
	ctx.Stroke()

	toPixels := func(world grid.Vec2, f grid.Footprint, margin int) (float64, float64, float64, float64) {
		x, y, fw, fh := scene.footprintWorld(world, f, margin)
		k := float64(ppc) / scene.CellSize
		return (x - scene.Origin.X) * k, (y - scene.Origin.Y) * k, fw * k, fh * k
	}

	buildings := scene.Buildings()
	for _, b := range buildings {
		x, y, bw, bh := toPixels(b.World, b.Template.Footprint, 0)
		ctx.SetColor(BuildingFill(b.Mode))
		ctx.DrawRectangle(x, y, bw, bh)
		ctx.Fill()
	}
	ctx.SetColor(config.ClearanceColor)
	ctx.SetLineWidth(config.OverlayStroke)
	for _, b := range buildings {
		if !b.Overlay {
			continue
		}
		x, y, bw, bh := toPixels(b.World, b.Template.Footprint, 1)
		ctx.DrawRectangle(x, y, bw, bh)
		ctx.Stroke()
	}

	if p := scene.Preview(); p.Visible {
		x, y, bw, bh := toPixels(p.World, p.Template.Footprint, 0)
		ctx.SetColor(ModeColor(p.Mode))
		ctx.DrawRectangle(x, y, bw, bh)
		ctx.Fill()
	}

	if s.LabelFace != nil {
		ctx.SetFontFace(s.LabelFace)
		for _, b := range buildings {
			x, y, bw, bh := toPixels(b.World, b.Template.Footprint, 0)
			ctx.SetColor(LabelColor(BuildingFill(b.Mode)))
			ctx.DrawStringAnchored(PowerLabel(b.Template.Power), x+bw/2, y+bh/2, 0.5, 0.5)
		}
	}

	return ctx.Image()
}

// EncodePNG renders the scene and writes it as PNG.
func (s Snapshot) EncodePNG(w io.Writer, scene *Scene) error {
	ctx := gg.NewContextForImage(s.RenderImage(scene))
	if err := ctx.EncodePNG(w); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// SavePNG renders the scene into a PNG file.
func (s Snapshot) SavePNG(path string, scene *Scene) error {
	ctx := gg.NewContextForImage(s.RenderImage(scene))
	if err := ctx.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}
