package game

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	dark "github.com/thiagokokada/dark-mode-go"

	"github.com/iburimskiy/water-ripples/internal/config"
)

// RenderMode selects the page backdrop.
type RenderMode int

const (
	// ModeWater is a black backdrop under the ripple field.
	ModeWater RenderMode = iota
	// ModeStatic is a still gradient used when motion is reduced.
	ModeStatic
)

func (m RenderMode) String() string {
	if m == ModeStatic {
		return "static"
	}
	return "water"
}

// detectDarkMode is replaced in tests.
var detectDarkMode = dark.IsDarkMode

// theme paints the backdrop for a render mode.
type theme struct {
	mode        RenderMode
	top, bottom color.RGBA
}

func newTheme(mode RenderMode) theme {
	t := theme{mode: mode, top: config.WaterBackground, bottom: config.WaterBackground}
	if mode != ModeStatic {
		return t
	}
	isDark, err := detectDarkMode()
	if err != nil {
		slog.Debug("dark mode detection failed, using dark theme", "err", err)
		isDark = true
	}
	if isDark {
		t.top, t.bottom = config.StaticDarkTop, config.StaticDarkBottom
	} else {
		t.top, t.bottom = config.StaticLightTop, config.StaticLightBottom
	}
	return t
}

// textColor is the hero color readable on this backdrop.
func (t theme) textColor() color.RGBA {
	if t.mode == ModeStatic && t.top == config.StaticLightTop {
		return config.StaticDarkTop
	}
	return config.HeroColor
}

func (t theme) draw(screen *ebiten.Image) {
	if t.mode == ModeWater {
		screen.Fill(t.top)
		return
	}
	b := screen.Bounds()
	h := b.Dy()
	for y := 0; y < h; y++ {
		c := lerpColor(t.top, t.bottom, float64(y)/float64(h))
		vector.StrokeLine(screen, 0, float32(y)+0.5, float32(b.Dx()), float32(y)+0.5, 1, c, false)
	}
}
