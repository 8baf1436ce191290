package ripple

import "math"

const (
	// Rings start at 10% of their final radius.
	startRadiusFrac = 0.10

	glowAlphaFrac = 0.35
	glowBlur      = 6
)

// Ripple is one expanding ring. Times are in milliseconds.
type Ripple struct {
	X, Y      float64
	Start     float64
	Duration  float64
	MaxRadius float64
	LineWidth float64
}

// Ring is what a surface needs to stroke one ripple for a single frame.
type Ring struct {
	X, Y      float64
	Radius    float64
	Width     float64
	Color     [3]uint8
	Alpha     float64 // stroke alpha, already scaled by brightness and clamped
	GlowAlpha float64
	GlowBlur  float64
}

// Progress returns the elapsed fraction of the ripple's lifetime.
func (r Ripple) Progress(now float64) float64 {
	return (now - r.Start) / r.Duration
}

// Expired reports whether the ripple's lifetime has ended at now.
func (r Ripple) Expired(now float64) bool {
	return r.Progress(now) >= 1
}

// At computes the ring drawn for now. ok is false once the ripple is dead.
func (r Ripple) At(now float64, o Style) (Ring, bool) {
	p := r.Progress(now)
	if p < 0 || p >= 1 || math.IsNaN(p) {
		return Ring{}, false
	}
	alpha := (1 - p) * o.Alpha
	return Ring{
		X:         r.X,
		Y:         r.Y,
		Radius:    r.MaxRadius * (startRadiusFrac + (1-startRadiusFrac)*p),
		Width:     r.LineWidth * (1 + p),
		Color:     o.Color,
		Alpha:     math.Min(1, alpha*o.Bright),
		GlowAlpha: alpha * glowAlphaFrac,
		GlowBlur:  glowBlur,
	}, true
}

// Style holds the visual parameters shared by every ring of a field.
type Style struct {
	Alpha  float64
	Bright float64
	Color  [3]uint8
}
