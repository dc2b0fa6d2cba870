// pkg/render/color.go
package render

import (
	"image/color"

	"go-city-builder/internal/config"
	"go-city-builder/internal/interfaces"
)

// ModeColor returns the fill color for a display mode.
func ModeColor(mode interfaces.DisplayMode) color.RGBA {
	switch mode {
	case interfaces.DisplayPreviewValid:
		return config.PreviewValidColor
	case interfaces.DisplayPreviewInvalid:
		return config.PreviewInvalidColor
	default:
		return config.BuildingColor
	}
}

// BuildingFill returns the fill of a placed building. Buildings shown in a
// preview mode are drawn translucent so the grid stays visible.
func BuildingFill(mode interfaces.DisplayMode) color.RGBA {
	switch mode {
	case interfaces.DisplayPreviewValid:
		c := config.BuildingColor
		c.A = config.TranslucentAlpha
		return c
	case interfaces.DisplayPreviewInvalid:
		return config.PreviewInvalidColor
	default:
		return config.BuildingColor
	}
}

// GridColor returns the grid line color, green while building.
func GridColor(highlight bool) color.RGBA {
	if highlight {
		return config.GridBuildLineColor
	}
	return config.GridLineColor
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LabelColor picks dark or light text for readability on fill.
func LabelColor(fill color.RGBA) color.RGBA {
	if (int(fill.R)+int(fill.G)+int(fill.B))/3 > 128 {
		return config.TextDarkColor
	}
	return config.TextLightColor
}
