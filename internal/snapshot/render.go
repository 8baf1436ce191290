package snapshot

import (
	"github.com/iburimskiy/water-ripples/internal/config"
	"github.com/iburimskiy/water-ripples/internal/ripple"
)

// FrameMs is the simulated frame period used by Render.
const FrameMs = 1000.0 / 60

// ManualClock is a ripple.Clock advanced by hand.
type ManualClock struct {
	Ms float64
}

func (c *ManualClock) Now() float64 { return c.Ms }

// Render runs a field on s for durationMs of simulated time, ticking the
// spawn loop and drawing at 60 frames per second. It returns the field so
// callers can inspect what is left alive.
func Render(s *Surface, width, height int, opts config.Options, seed int64, durationMs float64) *ripple.Field {
	clock := &ManualClock{}
	dpr := s.dpr
	f := ripple.Start(s, opts, clock, ripple.NewRand(seed))
	f.Resize(float64(width), float64(height), dpr)
	for clock.Ms = 0; clock.Ms <= durationMs; clock.Ms += FrameMs {
		f.Tick(clock.Ms)
		f.Frame(clock.Ms)
	}
	return f
}
