// internal/ui/indicator.go
package ui

import (
	"math"
	"time"

	"go-city-builder/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TextSource supplies the text of an indicator, e.g. render.PowerCounter.
type TextSource interface {
	Text() string
}

// changeTracker remembers when a text last changed.
type changeTracker struct {
	LastChange time.Time
	lastText   string
}

func (c *changeTracker) observe(s string) string {
	if s != c.lastText {
		if c.lastText != "" {
			c.LastChange = time.Now()
		}
		c.lastText = s
	}
	return s
}

// PowerIndicator shows the running power total and pulses when it changes.
type PowerIndicator struct {
	changeTracker
	X, Y   float32
	Face   font.Face
	Source TextSource
}

// NewPowerIndicator creates an indicator at (x, y).
func NewPowerIndicator(x, y float32, face font.Face, source TextSource) *PowerIndicator {
	return &PowerIndicator{X: x, Y: y, Face: face, Source: source}
}

// pulse returns a radius factor that decays after a change.
func pulse(since time.Time) float32 {
	elapsed := time.Since(since).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

// Draw renders the indicator.
func (i *PowerIndicator) Draw(screen *ebiten.Image) {
	label := i.observe(i.Source.Text())
	r := 6 * pulse(i.LastChange)
	vector.DrawFilledCircle(screen, i.X-12, i.Y-6, r, config.ButtonActiveColor, true)
	if i.Face != nil {
		text.Draw(screen, label, i.Face, int(i.X), int(i.Y), config.TextLightColor)
	}
}

// PowerIndicatorRL is the raylib version of PowerIndicator.
type PowerIndicatorRL struct {
	changeTracker
	X, Y     float32
	FontSize int32
	Source   TextSource
}

// NewPowerIndicatorRL creates an indicator at (x, y).
func NewPowerIndicatorRL(x, y float32, source TextSource) *PowerIndicatorRL {
	return &PowerIndicatorRL{X: x, Y: y, FontSize: config.HUDFontSize, Source: source}
}

// Draw renders the indicator.
func (i *PowerIndicatorRL) Draw() {
	label := i.observe(i.Source.Text())
	r := 6 * pulse(i.LastChange)
	rl.DrawCircleV(rl.NewVector2(i.X-12, i.Y+float32(i.FontSize)/2), r, colorToRL(config.ButtonActiveColor))
	rl.DrawText(label, int32(i.X), int32(i.Y), i.FontSize, colorToRL(config.TextLightColor))
}
