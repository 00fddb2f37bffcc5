package ink

// smoothingTension is the Catmull-Rom tension constant. 0.5 yields the
// centripetal-feeling curves familiar from signature capture widgets.
const smoothingTension = 0.5

// ControlPoints estimates the two cubic control points around mid, given
// three consecutive samples prev, mid, next in temporal order. Building a
// cubic segment from the controls of adjacent triples produces a
// C1-continuous path through all samples.
//
// The construction scales the chord prev→next by the relative lengths of
// the two gaps, so unevenly spaced samples do not overshoot:
//
//	fa = tension * d01 / (d01 + d12)
//	fb = tension * d12 / (d01 + d12)
//	c1 = mid - fa * (next - prev)
//	c2 = mid + fb * (next - prev)
//
// When all three samples coincide both gaps are zero; the division is
// guarded and both controls collapse to mid. This is a defined edge case,
// not an error.
func ControlPoints(prev, mid, next Point) (c1, c2 Point) {
	d01 := prev.Distance(mid)
	d12 := mid.Distance(next)
	sum := d01 + d12
	if sum == 0 {
		return mid, mid
	}

	chord := next.Sub(prev)
	fa := smoothingTension * d01 / sum
	fb := smoothingTension * d12 / sum

	c1 = mid.Sub(chord.Mul(fa))
	c2 = mid.Add(chord.Mul(fb))
	return c1, c2
}
