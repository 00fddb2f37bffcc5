package ink

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCurveEvalEndpoints(t *testing.T) {
	start := NewSample(0, 0, 0)
	end := NewSample(10, 10, 10)

	curves := []Curve{
		{Kind: CurveLine, Start: start, End: end},
		{Kind: CurveQuadratic, Start: start, End: end, Control1: Pt(0, 10)},
		{Kind: CurveCubic, Start: start, End: end, Control1: Pt(0, 10), Control2: Pt(10, 0)},
	}

	for _, c := range curves {
		if diff := cmp.Diff(start.Point, c.Eval(0), approx); diff != "" {
			t.Errorf("%v Eval(0) (-want +got):\n%s", c.Kind, diff)
		}
		if diff := cmp.Diff(end.Point, c.Eval(1), approx); diff != "" {
			t.Errorf("%v Eval(1) (-want +got):\n%s", c.Kind, diff)
		}
	}
}

func TestCurveEvalMidpoints(t *testing.T) {
	start := NewSample(0, 0, 0)
	end := NewSample(10, 0, 10)

	line := Curve{Kind: CurveLine, Start: start, End: end}
	if diff := cmp.Diff(Pt(5, 0), line.Eval(0.5), approx); diff != "" {
		t.Errorf("line midpoint (-want +got):\n%s", diff)
	}

	// Symmetric quadratic: midpoint pulls halfway toward the control.
	quad := Curve{Kind: CurveQuadratic, Start: start, End: end, Control1: Pt(5, 10)}
	if diff := cmp.Diff(Pt(5, 5), quad.Eval(0.5), approx); diff != "" {
		t.Errorf("quadratic midpoint (-want +got):\n%s", diff)
	}

	// Cubic with both controls at the same height: midpoint y is 3/4 of it.
	cubic := Curve{Kind: CurveCubic, Start: start, End: end, Control1: Pt(0, 10), Control2: Pt(10, 10)}
	if diff := cmp.Diff(Pt(5, 7.5), cubic.Eval(0.5), approx); diff != "" {
		t.Errorf("cubic midpoint (-want +got):\n%s", diff)
	}
}

func TestCurveEvalDot(t *testing.T) {
	dot := Curve{Kind: CurveDot, Start: NewSample(3, 4, 0), End: NewSample(3, 4, 0)}
	require.Equal(t, Pt(3, 4), dot.Eval(0))
	require.Equal(t, Pt(3, 4), dot.Eval(0.5))
	require.Equal(t, Pt(3, 4), dot.Eval(1))
}

func TestCurveApproxLength(t *testing.T) {
	start := NewSample(0, 0, 0)
	end := NewSample(10, 0, 10)

	line := Curve{Kind: CurveLine, Start: start, End: end}
	require.Equal(t, 10.0, line.ApproxLength())

	// A straight control polygon is exactly the segment length.
	cubic := Curve{Kind: CurveCubic, Start: start, End: end, Control1: Pt(2.5, 0), Control2: Pt(7.5, 0)}
	require.Equal(t, 10.0, cubic.ApproxLength())

	// A bent control polygon over-estimates the arc length.
	bent := Curve{Kind: CurveQuadratic, Start: start, End: end, Control1: Pt(5, 5)}
	require.Greater(t, bent.ApproxLength(), 10.0)
}

func TestCurveKindString(t *testing.T) {
	require.Equal(t, "line", CurveLine.String())
	require.Equal(t, "quadratic", CurveQuadratic.String())
	require.Equal(t, "cubic", CurveCubic.String())
	require.Equal(t, "dot", CurveDot.String())
	require.Equal(t, "unknown", CurveKind(99).String())
}
