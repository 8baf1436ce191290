// Package ripple implements the water ripple backdrop: a bounded set of
// expanding rings spawned at irregular intervals and redrawn every frame.
//
// A Field is single-threaded. Tick and Frame are expected to be called
// from the same loop (ebiten's Update and Draw) and never overlap.
package ripple

import (
	"github.com/iburimskiy/water-ripples/internal/config"
)

// Surface is the drawing target a Field renders onto. Coordinates passed
// to it are logical pixels; the surface maps them to its backing store
// using the scale given to SetTransform.
type Surface interface {
	SetTransform(dpr float64)
	Clear(width, height float64)
	StrokeRing(r Ring)
}

// Visibility is the Active/Suspended state of a field.
type Visibility int

const (
	Active Visibility = iota
	Suspended
)

func (v Visibility) String() string {
	if v == Suspended {
		return "suspended"
	}
	return "active"
}

// Field owns a surface and the ripples drawn onto it.
type Field struct {
	surface Surface
	opts    config.Options
	style   Style
	clock   Clock
	rng     Rand

	ripples []Ripple
	running bool

	// framePending is the single outstanding frame request.
	framePending bool
	spawn        timer

	width, height float64
	dpr           float64
	originX       float64
	originY       float64
}

// Start creates a field drawing onto surface and arms its spawn loop.
// It returns nil when surface is nil: a missing backdrop is not an error.
// A nil clock or rng selects the monotonic clock and a time-seeded source.
func Start(surface Surface, opts config.Options, clock Clock, rng Rand) *Field {
	if surface == nil {
		Logger().Debug("ripple field disabled: no surface")
		return nil
	}
	if clock == nil {
		clock = NewClock()
	}
	if rng == nil {
		rng = NewRand(0)
	}
	if opts.Max < 1 {
		opts.Max = config.Defaults().Max
	}
	f := &Field{
		surface: surface,
		opts:    opts,
		style:   Style{Alpha: opts.Alpha, Bright: opts.Bright, Color: opts.Color},
		clock:   clock,
		rng:     rng,
		ripples: make([]Ripple, 0, opts.Max+1),
		running: true,
		dpr:     1,
	}
	surface.SetTransform(f.dpr)
	f.spawn.arm(clock.Now(), opts.FirstDelay)
	f.framePending = true
	Logger().Debug("ripple field started", "max", opts.Max, "firstDelay", opts.FirstDelay)
	return f
}

// Resize records the logical size of the surface and re-establishes its
// device pixel ratio transform.
func (f *Field) Resize(width, height, dpr float64) {
	if dpr < 1 {
		dpr = 1
	}
	if width == f.width && height == f.height && dpr == f.dpr {
		return
	}
	f.width, f.height, f.dpr = width, height, dpr
	f.surface.SetTransform(dpr)
	Logger().Debug("ripple surface resized", "width", width, "height", height, "dpr", dpr)
}

// SetOrigin places the surface's top-left corner in viewport coordinates.
func (f *Field) SetOrigin(x, y float64) {
	f.originX, f.originY = x, y
}

// Size returns the logical size of the surface.
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

// Spawn adds a ripple at the surface-local point (x, y) now.
func (f *Field) Spawn(x, y float64) {
	f.spawnAt(x, y, f.clock.Now())
}

func (f *Field) spawnAt(x, y, now float64) {
	o := f.opts
	f.ripples = append(f.ripples, Ripple{
		X:         x,
		Y:         y,
		Start:     now,
		Duration:  uniform(f.rng, o.DurMin, o.DurVar),
		MaxRadius: uniform(f.rng, o.RMin, o.RVar),
		LineWidth: uniform(f.rng, o.LwMin, o.LwVar),
	})
	if len(f.ripples) > o.Max {
		f.ripples = append(f.ripples[:0], f.ripples[len(f.ripples)-o.Max:]...)
	}
}

// Tick advances the spawn scheduler. When the spawn timer is due it drops
// a batch of ripples at random points and, while the field is running,
// arms itself again after a random delay.
func (f *Field) Tick(now float64) {
	if !f.spawn.fire(now) {
		return
	}
	o := f.opts
	drops := o.BaseDrops
	if f.rng.Float64() < o.ExtraProb {
		drops += o.ExtraCount
	}
	for i := 0; i < drops; i++ {
		x := f.rng.Float64() * f.width
		y := f.rng.Float64() * f.height
		f.spawnAt(x, y, now)
	}
	if f.running {
		f.spawn.arm(now, uniform(f.rng, o.SpawnMin, o.SpawnVar))
	} else {
		Logger().Debug("ripple spawn loop idle")
	}
}

// Frame is the per-frame draw callback. It does nothing unless a frame
// was requested, and requests the next one only while the field runs.
// It reports whether it drew.
func (f *Field) Frame(now float64) bool {
	if !f.framePending {
		return false
	}
	f.framePending = false
	if !f.running {
		return false
	}

	f.surface.Clear(f.width, f.height)
	live := f.ripples[:0]
	for _, r := range f.ripples {
		ring, ok := r.At(now, f.style)
		if ok {
			f.surface.StrokeRing(ring)
		}
		if !r.Expired(now) {
			live = append(live, r)
		}
	}
	clear(f.ripples[len(live):])
	f.ripples = live

	f.framePending = f.running
	return true
}

// SetVisible drives the Active/Suspended transitions. Hiding drops the
// pending frame; showing requests exactly one and re-arms an idle spawn
// loop.
func (f *Field) SetVisible(visible bool) {
	if !visible {
		if f.running {
			Logger().Debug("ripple field suspended")
		}
		f.running = false
		f.framePending = false
		return
	}
	if !f.running {
		Logger().Debug("ripple field resumed")
	}
	f.running = true
	f.framePending = true
	if f.spawn.state == Idle {
		f.spawn.arm(f.clock.Now(), f.opts.FirstDelay)
	}
}

// PointerDown spawns a ripple under a pointer press given in viewport
// coordinates. It reports whether a ripple was dropped.
func (f *Field) PointerDown(clientX, clientY float64) bool {
	if !f.opts.Interactive {
		return false
	}
	f.Spawn(clientX-f.originX, clientY-f.originY)
	return true
}

// Visibility returns the current Active/Suspended state.
func (f *Field) Visibility() Visibility {
	if f.running {
		return Active
	}
	return Suspended
}

// FramePending reports whether a frame callback is outstanding.
func (f *Field) FramePending() bool {
	return f.framePending
}

// SpawnState returns the state of the spawn timer.
func (f *Field) SpawnState() TimerState {
	return f.spawn.state
}

// Len returns the number of ripples currently held.
func (f *Field) Len() int {
	return len(f.ripples)
}

// Ripples returns a copy of the active ripples in spawn order.
func (f *Field) Ripples() []Ripple {
	out := make([]Ripple, len(f.ripples))
	copy(out, f.ripples)
	return out
}
