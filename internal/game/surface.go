package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/water-ripples/internal/ripple"
)

const glowPasses = 3

// canvas is the ripple backing store: an offscreen image in physical
// pixels that rings are stroked onto in logical pixels.
type canvas struct {
	img    *ebiten.Image
	dpr    float64
	pw, ph int
}

// resize reallocates the backing image when the physical size changes.
func (c *canvas) resize(pw, ph int) {
	if pw < 1 {
		pw = 1
	}
	if ph < 1 {
		ph = 1
	}
	if c.img != nil && c.pw == pw && c.ph == ph {
		return
	}
	if c.img != nil {
		c.img.Deallocate()
	}
	c.img = ebiten.NewImageWithOptions(image.Rect(0, 0, pw, ph), &ebiten.NewImageOptions{Unmanaged: true})
	c.pw, c.ph = pw, ph
}

func (c *canvas) SetTransform(dpr float64) {
	c.dpr = dpr
}

func (c *canvas) Clear(width, height float64) {
	if c.img == nil {
		return
	}
	c.img.Clear()
}

func (c *canvas) StrokeRing(r ripple.Ring) {
	if c.img == nil {
		return
	}
	s := float32(c.dpr)
	x, y, radius := float32(r.X)*s, float32(r.Y)*s, float32(r.Radius)*s

	for i := glowPasses; i >= 1; i-- {
		spread := r.GlowBlur * float64(i) / glowPasses
		w := float32(r.Width+spread) * s
		vector.StrokeCircle(c.img, x, y, radius, w, nrgba(r.Color, r.GlowAlpha/glowPasses), true)
	}
	vector.StrokeCircle(c.img, x, y, radius, float32(r.Width)*s, nrgba(r.Color, r.Alpha), true)
}

// drawTo composites the canvas onto dst with its top-left corner at
// (x, y) in physical pixels.
func (c *canvas) drawTo(dst *ebiten.Image, x, y float64) {
	if c.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(c.img, op)
}
