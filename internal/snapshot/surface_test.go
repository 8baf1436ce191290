package snapshot

import (
	"testing"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/water-ripples/internal/config"
	"github.com/iburimskiy/water-ripples/internal/ripple"
)

func TestStrokeRingMarksPixels(t *testing.T) {
	s := New(64, 64, 1)
	defer s.Close()
	s.SetTransform(1)
	s.Clear(64, 64)

	s.StrokeRing(ripple.Ring{
		X: 32, Y: 32, Radius: 20, Width: 6,
		Color: [3]uint8{255, 106, 167}, Alpha: 1, GlowAlpha: 0.3, GlowBlur: 6,
	})

	img := s.Image()
	r, _, _, _ := img.At(52, 32).RGBA()
	if r == 0 {
		t.Error("pixel on the ring is not painted")
	}
	cr, cg, cb, _ := img.At(32, 32).RGBA()
	if cr != 0 || cg != 0 || cb != 0 {
		t.Errorf("center pixel = (%d, %d, %d), want background", cr, cg, cb)
	}
	if s.strokeErrs != 0 {
		t.Errorf("%d stroke errors", s.strokeErrs)
	}
}

func TestRenderIsBounded(t *testing.T) {
	opts := config.Page()
	opts.Max = 8
	s := New(120, 80, 1)
	defer s.Close()

	f := Render(s, 120, 80, opts, 7, 3000)
	if f.Len() > opts.Max {
		t.Errorf("len = %d, exceeds max %d", f.Len(), opts.Max)
	}
	if f.Len() == 0 {
		t.Error("no ripples alive after 3s of simulated time")
	}
	for _, r := range f.Ripples() {
		if r.X < 0 || r.X > 120 || r.Y < 0 || r.Y > 80 {
			t.Errorf("ripple outside the surface: %+v", r)
		}
	}
}

func TestRenderKeepsDevicePixelRatio(t *testing.T) {
	s := New(100, 100, 2)
	defer s.Close()

	// Short enough that nothing spawns yet.
	Render(s, 100, 100, config.Page(), 7, 10)
	if s.dpr != 2 {
		t.Fatalf("dpr after Render = %v, want 2", s.dpr)
	}

	s.Clear(100, 100)
	s.StrokeRing(ripple.Ring{
		X: 75, Y: 75, Radius: 15, Width: 4,
		Color: [3]uint8{255, 106, 167}, Alpha: 1,
	})
	img := s.Image()
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("backing store = %v, want 200x200", b)
	}
	// (75+15, 75) in logical pixels lands at (180, 150) in the backing store.
	if r, _, _, _ := img.At(180, 150).RGBA(); r == 0 {
		t.Error("ring in the bottom-right quadrant is not painted")
	}
	// Unscaled it would have landed at (90, 75).
	if r, _, _, _ := img.At(90, 75).RGBA(); r != 0 {
		t.Error("ring drawn without the device pixel ratio")
	}
}

func TestSetBackground(t *testing.T) {
	s := New(8, 8, 1)
	defer s.Close()
	s.SetBackground(gg.RGB(1, 1, 1))
	s.Clear(8, 8)

	r, g, b, a := s.Image().At(4, 4).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("background = (%d, %d, %d, %d), want opaque white", r, g, b, a)
	}
}
