package ripple

type fakeClock struct{ now float64 }

func (c *fakeClock) Now() float64 { return c.now }

// seqRand returns its values in order, repeating the last one.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i]
	if r.i < len(r.vals)-1 {
		r.i++
	}
	return v
}

type recordingSurface struct {
	dpr    float64
	clears int
	rings  []Ring
}

func (s *recordingSurface) SetTransform(dpr float64) { s.dpr = dpr }

func (s *recordingSurface) Clear(width, height float64) {
	s.clears++
	s.rings = s.rings[:0]
}

func (s *recordingSurface) StrokeRing(r Ring) { s.rings = append(s.rings, r) }
