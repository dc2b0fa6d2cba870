// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// CellPixels is the on-screen size of one grid cell in the 2D view at zoom 1.
	CellPixels = 32.0

	CameraMoveSpeedX = 1.0 // world widths per viewport width dragged
	CameraMoveSpeedY = 1.0

	BuildButtonX      = 20
	BuildButtonY      = 20
	BuildButtonWidth  = 120
	BuildButtonHeight = 40
	PowerLabelX       = 160
	PowerLabelY       = 46

	HUDFontSize      = 18
	LabelFontSize    = 12
	StrokeWidth      = 1.0
	OverlayStroke    = 1.5
	PreviewAlpha     = 140
	TranslucentAlpha = 110
)

var (
	BackgroundColor     = color.RGBA{20, 20, 30, 255}
	GroundColor         = color.RGBA{45, 60, 50, 255}
	GridLineColor       = color.RGBA{240, 240, 240, 90}
	GridBuildLineColor  = color.RGBA{60, 220, 90, 160}
	BuildingColor       = color.RGBA{170, 170, 185, 255}
	BuildingStrokeColor = color.RGBA{255, 255, 255, 255}
	PreviewValidColor   = color.RGBA{120, 200, 255, PreviewAlpha}
	PreviewInvalidColor = color.RGBA{230, 60, 60, PreviewAlpha}
	ClearanceColor      = color.RGBA{255, 40, 40, 200}
	TextLightColor      = color.RGBA{240, 240, 240, 255}
	TextDarkColor       = color.RGBA{20, 20, 30, 255}
	ButtonColor         = color.RGBA{70, 130, 180, 230}
	ButtonHoverColor    = color.RGBA{90, 160, 210, 240}
	ButtonActiveColor   = color.RGBA{60, 180, 90, 230}
)
