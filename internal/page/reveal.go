// Package page sequences the foreground of the landing page: the hero
// title fades in and the site mark is revealed shortly after.
package page

import "github.com/iburimskiy/water-ripples/internal/config"

// Timings of the reveal sequence, in milliseconds.
type Timings struct {
	HeroFade     float64
	MarkDelay    float64
	MarkFallback float64
	MarkFade     float64
}

// DefaultTimings returns the page's reveal timings.
func DefaultTimings() Timings {
	return Timings{
		HeroFade:     config.HeroFadeMs,
		MarkDelay:    config.MarkDelayMs,
		MarkFallback: config.MarkFallbackMs,
		MarkFade:     config.MarkFadeMs,
	}
}

// Reveal shows the site mark MarkDelay after the hero animation ends.
// If the hero never reports completion, the MarkFallback timer shows it
// anyway, so a disabled animation can not keep the mark hidden.
type Reveal struct {
	t        Timings
	start    float64
	animated bool

	heroDone     bool
	fallbackDone bool

	markArmed bool
	markDue   float64
	markShown bool
	markAt    float64
}

// NewReveal starts the sequence at now. animated is false when motion is
// reduced; the hero is then shown at once and never reports completion.
func NewReveal(now float64, animated bool, t Timings) *Reveal {
	return &Reveal{t: t, start: now, animated: animated}
}

// HeroDone records the end of the hero animation. Only the first call
// has an effect.
func (r *Reveal) HeroDone(now float64) {
	if r.heroDone {
		return
	}
	r.heroDone = true
	r.showMark(now)
}

func (r *Reveal) showMark(now float64) {
	if r.markArmed {
		return
	}
	r.markArmed = true
	r.markDue = now + r.t.MarkDelay
}

// Tick advances the sequence to now.
func (r *Reveal) Tick(now float64) {
	elapsed := now - r.start
	if r.animated && !r.heroDone && elapsed >= r.t.HeroFade {
		r.HeroDone(r.start + r.t.HeroFade)
	}
	if !r.fallbackDone && elapsed >= r.t.MarkFallback {
		r.fallbackDone = true
		if !r.heroDone {
			r.showMark(r.start + r.t.MarkFallback)
		}
	}
	if r.markArmed && !r.markShown && now >= r.markDue {
		r.markShown = true
		r.markAt = r.markDue
	}
}

// HeroAlpha is the opacity of the hero title at now.
func (r *Reveal) HeroAlpha(now float64) float64 {
	if !r.animated || r.t.HeroFade <= 0 {
		return 1
	}
	return clamp01((now - r.start) / r.t.HeroFade)
}

// MarkVisible reports whether the site mark has been revealed.
func (r *Reveal) MarkVisible() bool {
	return r.markShown
}

// MarkAlpha is the opacity of the site mark at now.
func (r *Reveal) MarkAlpha(now float64) float64 {
	if !r.markShown {
		return 0
	}
	if !r.animated || r.t.MarkFade <= 0 {
		return 1
	}
	return clamp01((now - r.markAt) / r.t.MarkFade)
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
