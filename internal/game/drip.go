package game

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/water-ripples/internal/config"
)

// drip synthesizes a short water drop: a sine gliding down in pitch under
// an exponential decay.
type drip struct {
	sampleRate beep.SampleRate
	length     int
	pos        int
	phase      float64
	volume     float64
}

func newDrip(sr beep.SampleRate, length time.Duration, volume float64) *drip {
	return &drip{
		sampleRate: sr,
		length:     sr.N(length),
		volume:     volume,
	}
}

func (d *drip) Stream(samples [][2]float64) (int, bool) {
	if d.pos >= d.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if d.pos >= d.length {
			break
		}
		t := float64(d.pos) / float64(d.length)
		freq := config.DripStartHz * math.Pow(config.DripEndHz/config.DripStartHz, t)
		d.phase += 2 * math.Pi * freq / float64(d.sampleRate)
		v := d.volume * math.Exp(-6*t) * math.Sin(d.phase)
		samples[i][0] = v
		samples[i][1] = v
		d.pos++
		n++
	}
	return n, true
}

func (d *drip) Err() error { return nil }

// dripPlayer plays drips on the default speaker. The speaker is opened on
// first use; if that fails sound stays off for the rest of the run.
type dripPlayer struct {
	sampleRate beep.SampleRate
	once       sync.Once
	ready      bool
}

func newDripPlayer() *dripPlayer {
	return &dripPlayer{sampleRate: beep.SampleRate(config.DripSampleRate)}
}

func (p *dripPlayer) play() {
	p.once.Do(func() {
		if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/20)); err != nil {
			slog.Warn("drip sound disabled", "err", err)
			return
		}
		p.ready = true
	})
	if !p.ready {
		return
	}
	speaker.Play(newDrip(p.sampleRate, config.DripLengthMs*time.Millisecond, config.DripVolume))
}
