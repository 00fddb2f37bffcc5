package ink

// CurveKind identifies the geometric degree of a Curve.
type CurveKind int

const (
	// CurveLine is a straight segment with no control points.
	CurveLine CurveKind = iota
	// CurveQuadratic is a quadratic Bezier with one control point.
	CurveQuadratic
	// CurveCubic is a cubic Bezier with two control points.
	CurveCubic
	// CurveDot is a degenerate placeholder emitted for strokes too short
	// to form a segment. It is rendered as a filled disc, not a path.
	CurveDot
)

// String returns a human-readable name for the curve kind.
func (k CurveKind) String() string {
	switch k {
	case CurveLine:
		return "line"
	case CurveQuadratic:
		return "quadratic"
	case CurveCubic:
		return "cubic"
	case CurveDot:
		return "dot"
	default:
		return "unknown"
	}
}

// Curve is one renderable segment between two samples. It is a pure
// geometric value: control points carry no timestamps. A curve is built
// once per accepted accumulator step, handed to the renderer, and
// discarded; nothing in the core retains a stroke graph.
type Curve struct {
	Kind CurveKind

	Start, End Sample

	// Control1 is the first control point. Unset for CurveLine and CurveDot.
	Control1 Point

	// Control2 is the second control point. Only set for CurveCubic.
	Control2 Point
}

// Eval evaluates the curve at parameter t in [0, 1] using the Bernstein
// form. Dot curves evaluate to their (single) anchor point.
func (c Curve) Eval(t float64) Point {
	mt := 1 - t
	switch c.Kind {
	case CurveLine:
		return c.Start.Lerp(c.End.Point, t)
	case CurveQuadratic:
		// (1-t)^2 P0 + 2(1-t)t C1 + t^2 P1
		return Point{
			X: mt*mt*c.Start.X + 2*mt*t*c.Control1.X + t*t*c.End.X,
			Y: mt*mt*c.Start.Y + 2*mt*t*c.Control1.Y + t*t*c.End.Y,
		}
	case CurveCubic:
		// (1-t)^3 P0 + 3(1-t)^2 t C1 + 3(1-t) t^2 C2 + t^3 P1
		mt2 := mt * mt
		t2 := t * t
		return Point{
			X: mt2*mt*c.Start.X + 3*mt2*t*c.Control1.X + 3*mt*t2*c.Control2.X + t2*t*c.End.X,
			Y: mt2*mt*c.Start.Y + 3*mt2*t*c.Control1.Y + 3*mt*t2*c.Control2.Y + t2*t*c.End.Y,
		}
	default:
		return c.Start.Point
	}
}

// ApproxLength returns the length of the control polygon. It is an upper
// bound on the arc length and cheap to compute, which makes it a good step
// count for renderers that flatten the curve.
func (c Curve) ApproxLength() float64 {
	switch c.Kind {
	case CurveQuadratic:
		return c.Start.Distance(c.Control1) + c.Control1.Distance(c.End.Point)
	case CurveCubic:
		return c.Start.Distance(c.Control1) +
			c.Control1.Distance(c.Control2) +
			c.Control2.Distance(c.End.Point)
	default:
		return c.Start.Distance(c.End.Point)
	}
}
