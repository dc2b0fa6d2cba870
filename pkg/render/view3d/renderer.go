// pkg/render/view3d/renderer.go
package view3d

import (
	"image/color"

	"go-city-builder/internal/city"
	"go-city-builder/internal/config"
	"go-city-builder/internal/defs"
	"go-city-builder/pkg/grid"
	"go-city-builder/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Ground points (X, Y) map to (X, 0, Y); Y is up in 3D.
const (
	overlayLift = 0.02
	labelLift   = 0.4
)

// ModelSource supplies a model per building type, e.g. assets.ModelManager.
type ModelSource interface {
	Model(id string) (rl.Model, bool)
}

// Renderer draws a render.Scene with raylib.
type Renderer struct {
	scene  *render.Scene
	Camera rl.Camera3D
	Models ModelSource // nil draws plain cubes
}

// NewRenderer creates a renderer with a perspective camera above the city center.
func NewRenderer(scene *render.Scene) *Renderer {
	size := scene.WorldSize()
	center := rl.NewVector3(
		float32(scene.Origin.X+size.X/2), 0, float32(scene.Origin.Y+size.Y/2),
	)
	span := float32(size.X)
	if float32(size.Y) > span {
		span = float32(size.Y)
	}

	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective
	camera.Target = center
	camera.Position = rl.NewVector3(center.X, span*1.1, center.Z+span*0.6)
	camera.Fovy = 45

	return &Renderer{scene: scene, Camera: camera}
}

// Pan moves the camera and its target along the ground plane.
func (r *Renderer) Pan(offset grid.Vec2) {
	d := rl.NewVector3(float32(offset.X), 0, float32(offset.Y))
	r.Camera.Position = rl.Vector3Add(r.Camera.Position, d)
	r.Camera.Target = rl.Vector3Add(r.Camera.Target, d)
}

// Orbit rotates the camera around its target.
func (r *Renderer) Orbit(angle float32) {
	offset := rl.Vector3Subtract(r.Camera.Position, r.Camera.Target)
	offset = rl.Vector3RotateByAxisAngle(offset, r.Camera.Up, angle)
	r.Camera.Position = rl.Vector3Add(r.Camera.Target, offset)
}

// PickGround casts the mouse ray against the ground plane.
func (r *Renderer) PickGround(mouse rl.Vector2) (grid.Vec2, bool) {
	ray := rl.GetMouseRay(mouse, r.Camera)
	if ray.Direction.Y == 0 {
		return grid.Vec2{}, false
	}
	t := -ray.Position.Y / ray.Direction.Y
	if t <= 0 {
		return grid.Vec2{}, false
	}
	hit := rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t))
	return grid.Vec2{X: float64(hit.X), Y: float64(hit.Z)}, true
}

// Draw renders the scene. It must be called between BeginMode3D and EndMode3D.
func (r *Renderer) Draw() {
	s := r.scene
	size := s.WorldSize()
	cs := float32(s.CellSize)
	ox, oz := float32(s.Origin.X), float32(s.Origin.Y)

	rl.DrawPlane(
		rl.NewVector3(ox+float32(size.X)/2, 0, oz+float32(size.Y)/2),
		rl.NewVector2(float32(size.X), float32(size.Y)),
		colorToRL(config.GroundColor),
	)

	lineColor := colorToRL(render.GridColor(s.GridHighlight()))
	for x := 0; x <= int(s.Bounds.Width); x++ {
		fx := ox + float32(x)*cs
		rl.DrawLine3D(rl.NewVector3(fx, overlayLift, oz), rl.NewVector3(fx, overlayLift, oz+float32(size.Y)), lineColor)
	}
	for y := 0; y <= int(s.Bounds.Length); y++ {
		fz := oz + float32(y)*cs
		rl.DrawLine3D(rl.NewVector3(ox, overlayLift, fz), rl.NewVector3(ox+float32(size.X), overlayLift, fz), lineColor)
	}

	for _, b := range s.Buildings() {
		r.drawBox(b.World, b.Template, render.BuildingFill(b.Mode), true)
		if b.Overlay {
			r.drawClearance(b.World, b.Template.Footprint)
		}
	}

	if p := s.Preview(); p.Visible {
		r.drawBox(p.World, p.Template, render.ModeColor(p.Mode), false)
		r.drawClearance(p.World, p.Template.Footprint)
	}
}

// DrawLabels draws power labels above buildings. It must be called after EndMode3D.
func (r *Renderer) DrawLabels() {
	for _, b := range r.scene.Buildings() {
		top := r.boxCenter(b.World, b.Template.Footprint)
		top.Y = float32(b.Template.Height)*float32(r.scene.CellSize) + labelLift
		pos := rl.GetWorldToScreen(top, r.Camera)
		label := render.PowerLabel(b.Template.Power)
		w := rl.MeasureText(label, config.LabelFontSize)
		rl.DrawText(label, int32(pos.X)-w/2, int32(pos.Y), config.LabelFontSize, colorToRL(config.TextLightColor))
	}
}

func (r *Renderer) boxCenter(world grid.Vec2, f grid.Footprint) rl.Vector3 {
	cs := r.scene.CellSize
	return rl.NewVector3(
		float32(world.X+float64(f.Width)*cs/2),
		float32(f.Height)*float32(cs)/2,
		float32(world.Y+float64(f.Length)*cs/2),
	)
}

func (r *Renderer) drawBox(world grid.Vec2, t defs.BuildingTemplate, fill color.RGBA, wires bool) {
	f := t.Footprint
	cs := float32(r.scene.CellSize)
	center := r.boxCenter(world, f)
	w, h, l := float32(f.Width)*cs, float32(f.Height)*cs, float32(f.Length)*cs
	if model, ok := r.model(t.ID); ok {
		rl.DrawModel(model, center, 1, colorToRL(fill))
	} else {
		rl.DrawCube(center, w, h, l, colorToRL(fill))
	}
	if wires {
		rl.DrawCubeWires(center, w, h, l, colorToRL(config.BuildingStrokeColor))
	}
}

func (r *Renderer) model(id string) (rl.Model, bool) {
	if r.Models == nil {
		return rl.Model{}, false
	}
	return r.Models.Model(id)
}

// drawClearance outlines the footprint grown by the placement margin.
func (r *Renderer) drawClearance(world grid.Vec2, f grid.Footprint) {
	cs := float32(r.scene.CellSize)
	m := float32(city.PlacementMargin) * cs
	x0 := float32(world.X) - m
	z0 := float32(world.Y) - m
	x1 := float32(world.X) + float32(f.Width)*cs + m
	z1 := float32(world.Y) + float32(f.Length)*cs + m
	c := colorToRL(config.ClearanceColor)

	rl.DrawLine3D(rl.NewVector3(x0, overlayLift, z0), rl.NewVector3(x1, overlayLift, z0), c)
	rl.DrawLine3D(rl.NewVector3(x1, overlayLift, z0), rl.NewVector3(x1, overlayLift, z1), c)
	rl.DrawLine3D(rl.NewVector3(x1, overlayLift, z1), rl.NewVector3(x0, overlayLift, z1), c)
	rl.DrawLine3D(rl.NewVector3(x0, overlayLift, z1), rl.NewVector3(x0, overlayLift, z0), c)
}

func colorToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
