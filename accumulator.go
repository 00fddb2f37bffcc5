package ink

import "fmt"

// Accumulator owns the per-stroke sample window and the curve construction
// policy. It throttles noisy input, pads the window at stroke start so that
// short strokes still curve, and emits one Curve per accepted sample.
//
// An Accumulator holds state for exactly one stroke at a time; Begin resets
// it. It is not safe for concurrent use.
type Accumulator struct {
	order    int
	throttle float64 // squared pixels

	window []Sample
	first  Sample
	total  int
}

// NewAccumulator creates an accumulator that builds curves over a sliding
// window of order samples. order must be 2, 3 or 4; throttleSquared is the
// minimum squared distance between accepted samples and must be >= 0.
func NewAccumulator(order int, throttleSquared float64) (*Accumulator, error) {
	if order < 2 || order > 4 {
		return nil, fmt.Errorf("%w: curve order must be 2, 3 or 4, got %d", ErrInvalidConfig, order)
	}
	if throttleSquared < 0 {
		return nil, fmt.Errorf("%w: throttle distance must be >= 0, got %v", ErrInvalidConfig, throttleSquared)
	}
	return &Accumulator{
		order:    order,
		throttle: throttleSquared,
		window:   make([]Sample, 0, 4),
	}, nil
}

// Begin resets the accumulator for a new stroke and seeds the window with
// the stroke's first sample.
func (a *Accumulator) Begin(s Sample) {
	a.window = a.window[:0]
	a.window = append(a.window, s)
	a.first = s
	a.total = 1
}

// Update feeds one move sample. Samples closer than the throttle threshold
// to the last accepted sample are dropped without any state change; that is
// a noise filter, not an error. An accepted sample slides the window and
// yields the next curve segment. The second return value reports whether a
// curve was produced.
func (a *Accumulator) Update(s Sample) (Curve, bool) {
	if len(a.window) == 0 {
		// Update before Begin; nothing to measure against.
		return Curve{}, false
	}
	last := a.window[len(a.window)-1]
	if s.SquaredDistance(last.Point) < a.throttle {
		return Curve{}, false
	}

	a.window = append(a.window, s)
	a.total++

	// Pad the front with the first sample until the window is full. This
	// removes startup lag: the second accepted sample already yields a
	// (degenerate) curve instead of waiting for the window to fill.
	for len(a.window) < a.order {
		a.window = append(a.window, Sample{})
		copy(a.window[1:], a.window)
		a.window[0] = a.window[1]
	}

	c := a.buildCurve()

	// Slide: evict the oldest sample, keeping the window bounded.
	copy(a.window, a.window[1:])
	a.window = a.window[:len(a.window)-1]

	return c, true
}

// buildCurve constructs the next segment from the full window.
func (a *Accumulator) buildCurve() Curve {
	w := a.window
	switch a.order {
	case 2:
		return Curve{Kind: CurveLine, Start: w[0], End: w[1]}
	case 3:
		// Midpoint construction: the segment spans the two most recent
		// samples with the gap midpoints as controls.
		return Curve{
			Kind:     CurveCubic,
			Start:    w[1],
			End:      w[2],
			Control1: w[0].Midpoint(w[1].Point),
			Control2: w[1].Midpoint(w[2].Point),
		}
	default: // order 4
		// Catmull-Rom: estimate controls over the two overlapping triples
		// and keep the pair that flanks the emitted span w[1]→w[2].
		_, c1 := ControlPoints(w[0].Point, w[1].Point, w[2].Point)
		c2, _ := ControlPoints(w[1].Point, w[2].Point, w[3].Point)
		return Curve{
			Kind:     CurveCubic,
			Start:    w[1],
			End:      w[2],
			Control1: c1,
			Control2: c2,
		}
	}
}

// End finishes the stroke. A stroke that never accumulated more than two
// samples is too short for a spline; End then reports a dot placeholder
// centered on the first sample, which renderers draw as a filled disc.
func (a *Accumulator) End() (Curve, bool) {
	if a.total == 0 || a.total > 2 {
		return Curve{}, false
	}
	return Curve{Kind: CurveDot, Start: a.first, End: a.first}, true
}

// Last returns the most recently accepted sample of the current stroke.
func (a *Accumulator) Last() (Sample, bool) {
	if len(a.window) == 0 {
		return Sample{}, false
	}
	return a.window[len(a.window)-1], true
}

// Len reports the number of samples currently held in the window.
func (a *Accumulator) Len() int {
	return len(a.window)
}
