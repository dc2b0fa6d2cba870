// pkg/render/view2d/renderer.go
package view2d

import (
	"image/color"

	"go-city-builder/internal/city"
	"go-city-builder/internal/config"
	"go-city-builder/internal/interfaces"
	"go-city-builder/pkg/grid"
	"go-city-builder/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// View maps world units to screen pixels.
type View struct {
	Offset grid.Vec2 // world position drawn at the top-left pixel
	Scale  float64   // pixels per world unit
}

// ToScreen converts a world point to screen pixels.
func (v View) ToScreen(w grid.Vec2) (float32, float32) {
	return float32((w.X - v.Offset.X) * v.Scale), float32((w.Y - v.Offset.Y) * v.Scale)
}

// Renderer draws a render.Scene with ebiten.
type Renderer struct {
	scene     *render.Scene
	fillImg   *ebiten.Image
	fillVs    []ebiten.Vertex
	fillIs    []uint16
	strokeVs  []ebiten.Vertex
	strokeIs  []uint16
	labelFace font.Face

	groundImage     *ebiten.Image // pre-rendered ground and grid lines
	groundHighlight bool
	groundReady     bool
}

// NewRenderer creates a renderer for scene.
func NewRenderer(scene *render.Scene, labelFace font.Face) *Renderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	size := scene.WorldSize()
	w := int(size.X*config.CellPixels/scene.CellSize) + 1
	h := int(size.Y*config.CellPixels/scene.CellSize) + 1

	return &Renderer{
		scene:       scene,
		fillImg:     fillImg,
		fillVs:      make([]ebiten.Vertex, 0, 8),
		fillIs:      make([]uint16, 0, 12),
		strokeVs:    make([]ebiten.Vertex, 0, 32),
		strokeIs:    make([]uint16, 0, 48),
		labelFace:   labelFace,
		groundImage: ebiten.NewImage(w, h),
	}
}

// renderGround pre-renders the ground and the grid lines at CellPixels per cell.
func (r *Renderer) renderGround() {
	r.groundImage.Clear()
	r.groundImage.Fill(config.GroundColor)

	b := r.scene.Bounds
	lineColor := render.GridColor(r.scene.GridHighlight())
	px := float32(config.CellPixels)
	for x := 0; x <= int(b.Width); x++ {
		vector.StrokeLine(r.groundImage, float32(x)*px, 0, float32(x)*px, float32(b.Length)*px, config.StrokeWidth, lineColor, false)
	}
	for y := 0; y <= int(b.Length); y++ {
		vector.StrokeLine(r.groundImage, 0, float32(y)*px, float32(b.Width)*px, float32(y)*px, config.StrokeWidth, lineColor, false)
	}
	r.groundHighlight = r.scene.GridHighlight()
	r.groundReady = true
}

// Draw renders the city, buildings, clearance overlays and preview.
func (r *Renderer) Draw(screen *ebiten.Image, view View) {
	if !r.groundReady || r.groundHighlight != r.scene.GridHighlight() {
		r.renderGround()
	}

	op := &ebiten.DrawImageOptions{}
	s := view.Scale * r.scene.CellSize / config.CellPixels
	op.GeoM.Scale(s, s)
	ox, oy := view.ToScreen(r.scene.Origin)
	op.GeoM.Translate(float64(ox), float64(oy))
	screen.DrawImage(r.groundImage, op)

	buildings := r.scene.Buildings()
	for _, b := range buildings {
		r.drawFootprint(screen, view, b.World, b.Template.Footprint, 0, render.BuildingFill(b.Mode), config.BuildingStrokeColor)
	}
	for _, b := range buildings {
		if b.Overlay {
			r.drawOutline(screen, view, b.World, b.Template.Footprint, city.PlacementMargin, config.ClearanceColor, config.OverlayStroke)
		}
	}
	for _, b := range buildings {
		r.drawLabel(screen, view, b.World, b.Template.Footprint, render.PowerLabel(b.Template.Power), render.BuildingFill(b.Mode))
	}

	if p := r.scene.Preview(); p.Visible {
		fill := render.ModeColor(p.Mode)
		r.drawFootprint(screen, view, p.World, p.Template.Footprint, 0, fill, fill)
		r.drawOutline(screen, view, p.World, p.Template.Footprint, city.PlacementMargin, config.ClearanceColor, config.OverlayStroke)
		if p.Mode == interfaces.DisplayPreviewValid {
			r.drawLabel(screen, view, p.World, p.Template.Footprint, render.PowerLabel(p.Template.Power), fill)
		}
	}
}

func (r *Renderer) rectPath(view View, world grid.Vec2, f grid.Footprint, margin int) vector.Path {
	cs := r.scene.CellSize
	m := float64(margin) * cs
	x0, y0 := view.ToScreen(grid.Vec2{X: world.X - m, Y: world.Y - m})
	x1, y1 := view.ToScreen(grid.Vec2{X: world.X + float64(f.Width)*cs + m, Y: world.Y + float64(f.Length)*cs + m})

	path := vector.Path{}
	path.MoveTo(x0, y0)
	path.LineTo(x1, y0)
	path.LineTo(x1, y1)
	path.LineTo(x0, y1)
	path.Close()
	return path
}

func (r *Renderer) drawFootprint(target *ebiten.Image, view View, world grid.Vec2, f grid.Footprint, margin int, fill, stroke color.RGBA) {
	path := r.rectPath(view, world, f, margin)

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	colorVertices(r.fillVs, fill)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	r.drawOutline(target, view, world, f, margin, stroke, config.StrokeWidth)
}

func (r *Renderer) drawOutline(target *ebiten.Image, view View, world grid.Vec2, f grid.Footprint, margin int, stroke color.RGBA, width float32) {
	path := r.rectPath(view, world, f, margin)

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: width,
	})
	colorVertices(r.strokeVs, stroke)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *Renderer) drawLabel(target *ebiten.Image, view View, world grid.Vec2, f grid.Footprint, label string, fill color.RGBA) {
	if r.labelFace == nil {
		return
	}
	cs := r.scene.CellSize
	x, y := view.ToScreen(grid.Vec2{
		X: world.X + float64(f.Width)*cs/2,
		Y: world.Y + float64(f.Length)*cs/2,
	})
	bounds := text.BoundString(r.labelFace, label)
	textWidth := bounds.Max.X - bounds.Min.X
	textHeight := bounds.Max.Y - bounds.Min.Y
	text.Draw(target, label, r.labelFace, int(x)-textWidth/2, int(y)+textHeight/2, render.LabelColor(fill))
}

func colorVertices(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
