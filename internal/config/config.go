package config

import "image/color"

const (
	WindowWidth  = 1280
	WindowHeight = 800

	// Canvas box used when the backdrop is not fullscreen. Zero means
	// "track the window".
	CanvasWidth  = 0
	CanvasHeight = 0

	// Site mark reveal timings, milliseconds.
	HeroFadeMs         = 500
	MarkDelayMs        = 400
	MarkFallbackMs     = 550
	MarkFadeMs         = 600
	HeroText           = "mizu"
	SiteMarkText       = "mizu / ripple"
	SiteMarkTagline    = "click anywhere to drop a ripple"
	SiteMarkMarginX    = 24
	SiteMarkMarginY    = 24
	StatusLineX        = 12
	StatusLineY        = 12
	StatusLineDuration = 3000

	// Drip sound
	DripSampleRate = 44100
	DripLengthMs   = 220
	DripStartHz    = 1400.0
	DripEndHz      = 520.0
	DripVolume     = 0.25
)

var (
	WaterBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	HeroColor       = color.RGBA{R: 240, G: 240, B: 245, A: 255}
	MarkColor       = color.RGBA{R: 255, G: 106, B: 167, A: 255}
	StatusColor     = color.RGBA{R: 200, G: 200, B: 210, A: 255}

	// Static theme gradients, top and bottom.
	StaticDarkTop     = color.RGBA{R: 18, G: 12, B: 28, A: 255}
	StaticDarkBottom  = color.RGBA{R: 60, G: 22, B: 48, A: 255}
	StaticLightTop    = color.RGBA{R: 255, G: 236, B: 244, A: 255}
	StaticLightBottom = color.RGBA{R: 255, G: 196, B: 221, A: 255}
)
