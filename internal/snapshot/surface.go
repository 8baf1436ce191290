// Package snapshot renders a ripple field off screen with gg, for
// previews and golden images.
package snapshot

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/water-ripples/internal/ripple"
)

// glowPasses approximates a shadow blur with progressively wider,
// fainter strokes under the ring.
const glowPasses = 3

// Surface is a ripple.Surface backed by a gg software context.
type Surface struct {
	dc         *gg.Context
	dpr        float64
	background gg.RGBA
	strokeErrs int
}

// New allocates a surface for a logical width x height area at the given
// device pixel ratio.
func New(width, height int, dpr float64) *Surface {
	if dpr < 1 {
		dpr = 1
	}
	pw := int(float64(width) * dpr)
	ph := int(float64(height) * dpr)
	return &Surface{
		dc:         gg.NewContext(pw, ph),
		dpr:        dpr,
		background: gg.RGBA{A: 1},
	}
}

// SetBackground sets the color Clear fills with.
func (s *Surface) SetBackground(c gg.RGBA) {
	s.background = c
}

func (s *Surface) SetTransform(dpr float64) {
	s.dpr = dpr
	s.dc.Identity()
	s.dc.Scale(dpr, dpr)
}

func (s *Surface) Clear(width, height float64) {
	s.dc.ClearWithColor(s.background)
}

func (s *Surface) StrokeRing(r ripple.Ring) {
	red := float64(r.Color[0]) / 255
	green := float64(r.Color[1]) / 255
	blue := float64(r.Color[2]) / 255

	for i := glowPasses; i >= 1; i-- {
		spread := r.GlowBlur * float64(i) / glowPasses
		s.dc.SetRGBA(red, green, blue, r.GlowAlpha/glowPasses)
		s.dc.SetLineWidth(r.Width + spread)
		s.stroke(r.X, r.Y, r.Radius)
	}

	s.dc.SetRGBA(red, green, blue, r.Alpha)
	s.dc.SetLineWidth(r.Width)
	s.stroke(r.X, r.Y, r.Radius)
}

func (s *Surface) stroke(x, y, radius float64) {
	s.dc.DrawCircle(x, y, radius)
	if err := s.dc.Stroke(); err != nil {
		s.strokeErrs++
		ripple.Logger().Warn("snapshot stroke failed", "err", err)
	}
}

// Image returns the rendered pixels.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// SavePNG writes the rendered pixels to path.
func (s *Surface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

// Close releases the underlying context.
func (s *Surface) Close() error {
	return s.dc.Close()
}
