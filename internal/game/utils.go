package game

import (
	"image/color"
	"math"
)

// nrgba builds a non-premultiplied color from an RGB triple and an alpha
// in [0, 1].
func nrgba(rgb [3]uint8, alpha float64) color.NRGBA {
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: uint8(math.Round(clamp01(alpha) * 255))}
}

// lerpColor blends a toward b by t in [0, 1].
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
