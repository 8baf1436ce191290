package ripple

import (
	"math/rand"
	"time"
)

// Clock is a monotonic millisecond clock.
type Clock interface {
	Now() float64
}

// Rand yields uniform numbers in [0, 1).
type Rand interface {
	Float64() float64
}

type monotonicClock struct {
	origin time.Time
}

// NewClock returns a Clock measuring milliseconds since its creation.
func NewClock() Clock {
	return monotonicClock{origin: time.Now()}
}

func (c monotonicClock) Now() float64 {
	return float64(time.Since(c.origin)) / float64(time.Millisecond)
}

// NewRand returns a seeded Rand. A zero seed uses the current time.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func uniform(rng Rand, lo, spread float64) float64 {
	return lo + rng.Float64()*spread
}
