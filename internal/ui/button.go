// internal/ui/button.go
package ui

import (
	"image/color"

	"go-city-builder/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button is a rectangular clickable button for the ebiten front end.
type Button struct {
	X, Y, Width, Height float32
	Text                string
	Face                font.Face
	Color               color.RGBA
	HoverColor          color.RGBA
	ActiveColor         color.RGBA
}

// NewButton creates a button with the configured colors.
func NewButton(x, y, width, height float32, label string, face font.Face) *Button {
	return &Button{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Text:        label,
		Face:        face,
		Color:       config.ButtonColor,
		HoverColor:  config.ButtonHoverColor,
		ActiveColor: config.ButtonActiveColor,
	}
}

// Contains reports whether the screen point is on the button.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx < b.X+b.Width && fy >= b.Y && fy < b.Y+b.Height
}

// Draw renders the button. active highlights it while its mode is on.
func (b *Button) Draw(screen *ebiten.Image, cursorX, cursorY int, active bool) {
	bg := b.Color
	switch {
	case active:
		bg = b.ActiveColor
	case b.Contains(cursorX, cursorY):
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bg, false)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 2, config.BuildingStrokeColor, false)

	if b.Face == nil {
		return
	}
	bounds := text.BoundString(b.Face, b.Text)
	textX := int(b.X) + (int(b.Width)-bounds.Dx())/2
	textY := int(b.Y) + (int(b.Height)+bounds.Dy())/2
	text.Draw(screen, b.Text, b.Face, textX, textY, config.TextLightColor)
}

// ButtonRL is the raylib version of Button.
type ButtonRL struct {
	Rect        rl.Rectangle
	Text        string
	TextColor   rl.Color
	BgColor     rl.Color
	HoverColor  rl.Color
	ActiveColor rl.Color
	FontSize    int32
}

// NewButtonRL creates a raylib button with the configured colors.
func NewButtonRL(rect rl.Rectangle, label string) *ButtonRL {
	return &ButtonRL{
		Rect:        rect,
		Text:        label,
		TextColor:   colorToRL(config.TextLightColor),
		BgColor:     colorToRL(config.ButtonColor),
		HoverColor:  colorToRL(config.ButtonHoverColor),
		ActiveColor: colorToRL(config.ButtonActiveColor),
		FontSize:    config.HUDFontSize,
	}
}

// IsClicked reports whether the left button was pressed over the button this frame.
func (b *ButtonRL) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointRec(mousePos, b.Rect) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// Contains reports whether mousePos is on the button.
func (b *ButtonRL) Contains(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointRec(mousePos, b.Rect)
}

// Draw renders the button.
func (b *ButtonRL) Draw(mousePos rl.Vector2, active bool) {
	bgColor := b.BgColor
	if active {
		bgColor = b.ActiveColor
	} else if rl.CheckCollisionPointRec(mousePos, b.Rect) {
		bgColor = b.HoverColor
	}

	rl.DrawRectangleRec(b.Rect, bgColor)
	rl.DrawRectangleLinesEx(b.Rect, 2, rl.RayWhite)

	textWidth := rl.MeasureText(b.Text, b.FontSize)
	textX := int32(b.Rect.X) + (int32(b.Rect.Width)-textWidth)/2
	textY := int32(b.Rect.Y) + (int32(b.Rect.Height)-b.FontSize)/2
	rl.DrawText(b.Text, textX, textY, b.FontSize, b.TextColor)
}

func colorToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
