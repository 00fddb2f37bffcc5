package ink

// Sample is one timestamped input position. Samples are immutable values:
// they are created when an input event is accepted and never mutated.
// Within a single stroke, timestamps are expected to be non-decreasing.
type Sample struct {
	Point

	// T is the event timestamp in milliseconds.
	T int64
}

// NewSample creates a sample at position (x, y) with timestamp t.
func NewSample(x, y float64, t int64) Sample {
	return Sample{Point: Pt(x, y), T: t}
}

// VelocityFrom returns the speed of travel from prev to s in pixels per
// millisecond. When both samples carry the same timestamp the elapsed time
// is zero; the fixed fallback velocity 1 is returned so that callers never
// see an infinite or NaN speed.
func (s Sample) VelocityFrom(prev Sample) float64 {
	if s.T == prev.T {
		return 1
	}
	return s.Distance(prev.Point) / float64(s.T-prev.T)
}
