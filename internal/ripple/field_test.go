package ripple

import (
	"testing"

	"github.com/iburimskiy/water-ripples/internal/config"
)

func testOptions() config.Options {
	o := config.Defaults()
	o.DurMin, o.DurVar = 1000, 500
	o.RMin, o.RVar = 100, 50
	o.LwMin, o.LwVar = 1, 1
	o.FirstDelay = 300
	o.SpawnMin, o.SpawnVar = 100, 200
	o.BaseDrops = 1
	o.ExtraProb = 0.7
	o.ExtraCount = 2
	o.Max = 50
	o.Alpha, o.Bright = 0.8, 1
	return o
}

func newTestField(t *testing.T, opts config.Options, rng Rand) (*Field, *fakeClock, *recordingSurface) {
	t.Helper()
	clock := &fakeClock{}
	surface := &recordingSurface{}
	f := Start(surface, opts, clock, rng)
	if f == nil {
		t.Fatal("Start returned nil for a valid surface")
	}
	f.Resize(800, 600, 2)
	return f, clock, surface
}

func TestStartWithoutSurface(t *testing.T) {
	if f := Start(nil, testOptions(), &fakeClock{}, &seqRand{}); f != nil {
		t.Fatalf("Start(nil) = %v, want nil", f)
	}
}

func TestStartArmsLoops(t *testing.T) {
	f, _, surface := newTestField(t, testOptions(), &seqRand{vals: []float64{0.5}})
	if f.SpawnState() != Scheduled {
		t.Errorf("spawn state = %v, want scheduled", f.SpawnState())
	}
	if !f.FramePending() {
		t.Error("first frame should be requested on start")
	}
	if f.Visibility() != Active {
		t.Errorf("visibility = %v, want active", f.Visibility())
	}
	if surface.dpr != 2 {
		t.Errorf("surface transform = %v, want 2", surface.dpr)
	}
}

func TestResizeClampsScale(t *testing.T) {
	f, _, surface := newTestField(t, testOptions(), &seqRand{})
	f.Resize(100, 50, 0.5)
	if surface.dpr != 1 {
		t.Errorf("surface transform = %v, want 1", surface.dpr)
	}
	if w, h := f.Size(); w != 100 || h != 50 {
		t.Errorf("Size() = %v x %v, want 100 x 50", w, h)
	}
}

func TestSpawnFIFOEviction(t *testing.T) {
	opts := testOptions()
	opts.Max = 2
	f, _, _ := newTestField(t, opts, &seqRand{})

	f.Spawn(1, 0) // A
	f.Spawn(2, 0) // B
	f.Spawn(3, 0) // C

	got := f.Ripples()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].X != 2 || got[1].X != 3 {
		t.Errorf("ripples = [%v %v], want [B C]", got[0].X, got[1].X)
	}
}

func TestSpawnNeverExceedsMax(t *testing.T) {
	opts := testOptions()
	opts.Max = 5
	f, _, _ := newTestField(t, opts, &seqRand{vals: []float64{0.3}})
	for i := 0; i < 100; i++ {
		f.Spawn(float64(i), 0)
		if f.Len() > opts.Max {
			t.Fatalf("after %d spawns len = %d exceeds max %d", i+1, f.Len(), opts.Max)
		}
	}
	got := f.Ripples()
	for i, r := range got {
		if want := float64(95 + i); r.X != want {
			t.Errorf("ripple %d X = %v, want %v", i, r.X, want)
		}
	}
}

func TestSpawnDrawsFromRanges(t *testing.T) {
	opts := testOptions()
	tests := []struct {
		name string
		u    float64
	}{
		{name: "Low", u: 0},
		{name: "Mid", u: 0.5},
		{name: "High", u: 0.999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _, _ := newTestField(t, opts, &seqRand{vals: []float64{tt.u}})
			f.Spawn(0, 0)
			r := f.Ripples()[0]
			if r.Duration < opts.DurMin || r.Duration >= opts.DurMin+opts.DurVar {
				t.Errorf("duration %v outside [%v, %v)", r.Duration, opts.DurMin, opts.DurMin+opts.DurVar)
			}
			if r.MaxRadius < opts.RMin || r.MaxRadius >= opts.RMin+opts.RVar {
				t.Errorf("radius %v outside [%v, %v)", r.MaxRadius, opts.RMin, opts.RMin+opts.RVar)
			}
			if r.LineWidth < opts.LwMin || r.LineWidth >= opts.LwMin+opts.LwVar {
				t.Errorf("line width %v outside [%v, %v)", r.LineWidth, opts.LwMin, opts.LwMin+opts.LwVar)
			}
			if r.Duration <= 0 || r.MaxRadius <= 0 || r.LineWidth <= 0 {
				t.Errorf("non-positive ripple %+v", r)
			}
		})
	}
}

func TestTickSchedule(t *testing.T) {
	f, _, _ := newTestField(t, testOptions(), &seqRand{vals: []float64{0.5}})

	f.Tick(299)
	if f.Len() != 0 {
		t.Fatalf("spawned %d ripples before the first delay", f.Len())
	}

	// 0.5 < extraProb, so base + extra drops.
	f.Tick(300)
	if f.Len() != 3 {
		t.Fatalf("len = %d after first batch, want 3", f.Len())
	}
	for _, r := range f.Ripples() {
		if r.X != 400 || r.Y != 300 {
			t.Errorf("ripple at (%v, %v), want (400, 300)", r.X, r.Y)
		}
		if r.Start != 300 {
			t.Errorf("start = %v, want 300", r.Start)
		}
	}
	if f.SpawnState() != Scheduled {
		t.Fatalf("spawn state = %v, want scheduled", f.SpawnState())
	}

	// next delay = 100 + 0.5*200
	f.Tick(499)
	if f.Len() != 3 {
		t.Fatalf("len = %d before second batch, want 3", f.Len())
	}
	f.Tick(500)
	if f.Len() != 6 {
		t.Fatalf("len = %d after second batch, want 6", f.Len())
	}
}

func TestTickWithoutExtraDrops(t *testing.T) {
	opts := testOptions()
	opts.ExtraProb = 0.5
	f, _, _ := newTestField(t, opts, &seqRand{vals: []float64{0.5}})
	f.Tick(300)
	if f.Len() != opts.BaseDrops {
		t.Errorf("len = %d, want %d", f.Len(), opts.BaseDrops)
	}
}

func TestTickStopsReschedulingWhenSuspended(t *testing.T) {
	f, clock, _ := newTestField(t, testOptions(), &seqRand{vals: []float64{0.5}})

	f.SetVisible(false)
	if f.SpawnState() != Scheduled {
		t.Fatal("suspending must not cancel the armed spawn timer")
	}
	f.Tick(300)
	if f.Len() != 3 {
		t.Errorf("pending batch should still drop, len = %d", f.Len())
	}
	if f.SpawnState() != Idle {
		t.Fatalf("spawn state = %v, want idle", f.SpawnState())
	}
	f.Tick(10_000)
	if f.Len() != 3 {
		t.Errorf("idle scheduler spawned, len = %d", f.Len())
	}

	clock.now = 20_000
	f.SetVisible(true)
	if f.SpawnState() != Scheduled {
		t.Fatalf("spawn state after resume = %v, want scheduled", f.SpawnState())
	}
	f.Tick(20_299)
	if f.Len() != 3 {
		t.Errorf("spawned before first delay after resume")
	}
	f.Tick(20_300)
	if f.Len() != 6 {
		t.Errorf("len = %d after resume batch, want 6", f.Len())
	}
}

func TestFrameDrawsAndPurges(t *testing.T) {
	f, clock, surface := newTestField(t, testOptions(), &seqRand{vals: []float64{0}})

	clock.now = 0
	f.Spawn(10, 10) // duration 1000, radius 100
	clock.now = 800
	f.Spawn(20, 20)

	if !f.Frame(500) {
		t.Fatal("requested frame did not draw")
	}
	if len(surface.rings) != 1 {
		t.Fatalf("drew %d rings at t=500, want 1 (second not started)", len(surface.rings))
	}
	if got := surface.rings[0].Radius; !near(got, 55) {
		t.Errorf("radius = %v, want 55", got)
	}
	if f.Len() != 2 {
		t.Errorf("len = %d, want 2", f.Len())
	}

	if !f.Frame(1000) {
		t.Fatal("frame was not re-requested")
	}
	if len(surface.rings) != 1 || surface.rings[0].X != 20 {
		t.Errorf("rings at t=1000 = %+v, want only the second ripple", surface.rings)
	}
	got := f.Ripples()
	if len(got) != 1 || got[0].X != 20 {
		t.Errorf("expired ripple not purged: %+v", got)
	}

	f.Frame(1800)
	if f.Len() != 0 || len(surface.rings) != 0 {
		t.Errorf("len = %d, rings = %d after all expired", f.Len(), len(surface.rings))
	}
	if surface.clears != 3 {
		t.Errorf("clears = %d, want 3", surface.clears)
	}
}

func TestFrameRequiresRequest(t *testing.T) {
	f, _, surface := newTestField(t, testOptions(), &seqRand{})
	f.Frame(0)
	f.Frame(16)
	if surface.clears != 2 {
		t.Fatalf("clears = %d, want 2", surface.clears)
	}
	if !f.FramePending() {
		t.Error("running field should keep a frame requested")
	}
}

func TestHiddenFieldSkipsFrames(t *testing.T) {
	f, _, surface := newTestField(t, testOptions(), &seqRand{})

	f.SetVisible(false)
	f.SetVisible(false)
	if f.Visibility() != Suspended {
		t.Fatalf("visibility = %v, want suspended", f.Visibility())
	}
	if f.FramePending() {
		t.Fatal("hidden field kept a frame request")
	}
	for i := 0; i < 5; i++ {
		if f.Frame(float64(i * 16)) {
			t.Fatal("frame callback fired while hidden")
		}
	}
	if surface.clears != 0 {
		t.Fatalf("surface cleared %d times while hidden", surface.clears)
	}

	f.SetVisible(true)
	f.SetVisible(true)
	if f.Visibility() != Active {
		t.Fatalf("visibility = %v, want active", f.Visibility())
	}
	if !f.Frame(100) {
		t.Fatal("resume did not request a frame")
	}
	if surface.clears != 1 {
		t.Errorf("clears = %d after resume, want exactly 1", surface.clears)
	}
}

func TestPointerDown(t *testing.T) {
	tests := []struct {
		name        string
		interactive bool
		wantLen     int
	}{
		{name: "Interactive", interactive: true, wantLen: 1},
		{name: "Passive", interactive: false, wantLen: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions()
			opts.Interactive = tt.interactive
			f, clock, _ := newTestField(t, opts, &seqRand{})
			clock.now = 42
			f.SetOrigin(100, 50)

			if got := f.PointerDown(130, 80); got != tt.interactive {
				t.Errorf("PointerDown = %v, want %v", got, tt.interactive)
			}
			if f.Len() != tt.wantLen {
				t.Fatalf("len = %d, want %d", f.Len(), tt.wantLen)
			}
			if tt.wantLen == 0 {
				return
			}
			r := f.Ripples()[0]
			if r.X != 30 || r.Y != 30 || r.Start != 42 {
				t.Errorf("ripple = %+v, want local (30, 30) at 42", r)
			}
		})
	}
}
