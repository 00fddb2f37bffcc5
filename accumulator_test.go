package ink

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewAccumulatorValidation(t *testing.T) {
	for _, order := range []int{2, 3, 4} {
		_, err := NewAccumulator(order, 16)
		require.NoError(t, err, "order %d", order)
	}
	for _, order := range []int{-1, 0, 1, 5} {
		_, err := NewAccumulator(order, 16)
		require.ErrorIs(t, err, ErrInvalidConfig, "order %d", order)
	}

	_, err := NewAccumulator(3, -1)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestAccumulatorThrottleIdempotence(t *testing.T) {
	acc, err := NewAccumulator(3, 16)
	require.NoError(t, err)

	acc.Begin(NewSample(0, 0, 0))

	// Samples within 4 px of the last accepted one are dropped, no matter
	// how many arrive: no curve, no state change.
	for i := 0; i < 50; i++ {
		_, ok := acc.Update(NewSample(1, 1, int64(i)))
		require.False(t, ok)
		require.Equal(t, 1, acc.Len())
	}
	last, ok := acc.Last()
	require.True(t, ok)
	require.Equal(t, NewSample(0, 0, 0), last)

	// A sample beyond the threshold is still accepted afterwards.
	_, ok = acc.Update(NewSample(10, 0, 100))
	require.True(t, ok)
}

func TestAccumulatorThrottleBoundary(t *testing.T) {
	acc, err := NewAccumulator(2, 16)
	require.NoError(t, err)

	acc.Begin(NewSample(0, 0, 0))

	// Exactly at the threshold (squared distance 16) passes; the drop
	// condition is strictly less-than.
	_, ok := acc.Update(NewSample(4, 0, 5))
	require.True(t, ok)
}

func TestAccumulatorOrder2EmitsLines(t *testing.T) {
	acc, err := NewAccumulator(2, 0)
	require.NoError(t, err)

	s0 := NewSample(0, 0, 0)
	s1 := NewSample(10, 0, 10)
	s2 := NewSample(20, 5, 20)

	acc.Begin(s0)

	c, ok := acc.Update(s1)
	require.True(t, ok)
	require.Equal(t, Curve{Kind: CurveLine, Start: s0, End: s1}, c)

	c, ok = acc.Update(s2)
	require.True(t, ok)
	require.Equal(t, Curve{Kind: CurveLine, Start: s1, End: s2}, c)
}

func TestAccumulatorOrder3MidpointControls(t *testing.T) {
	acc, err := NewAccumulator(3, 0)
	require.NoError(t, err)

	s0 := NewSample(0, 0, 0)
	s1 := NewSample(10, 0, 10)
	s2 := NewSample(20, 10, 20)

	acc.Begin(s0)

	// First accepted move: the window is padded with the first sample, so
	// the emitted curve degenerates to the s0→s1 span.
	c, ok := acc.Update(s1)
	require.True(t, ok)
	want := Curve{
		Kind:     CurveCubic,
		Start:    s0,
		End:      s1,
		Control1: s0.Point,
		Control2: s0.Midpoint(s1.Point),
	}
	if diff := cmp.Diff(want, c, approx); diff != "" {
		t.Fatalf("first curve mismatch (-want +got):\n%s", diff)
	}

	// Steady state: span w[1]→w[2] with the gap midpoints as controls.
	c, ok = acc.Update(s2)
	require.True(t, ok)
	want = Curve{
		Kind:     CurveCubic,
		Start:    s1,
		End:      s2,
		Control1: s0.Midpoint(s1.Point),
		Control2: s1.Midpoint(s2.Point),
	}
	if diff := cmp.Diff(want, c, approx); diff != "" {
		t.Fatalf("second curve mismatch (-want +got):\n%s", diff)
	}
}

func TestAccumulatorOrder4CatmullRomControls(t *testing.T) {
	acc, err := NewAccumulator(4, 0)
	require.NoError(t, err)

	s0 := NewSample(0, 0, 0)
	s1 := NewSample(10, 0, 10)
	s2 := NewSample(20, 10, 20)
	s3 := NewSample(30, 30, 30)

	acc.Begin(s0)
	_, _ = acc.Update(s1)
	_, _ = acc.Update(s2)

	// Third accepted move works on the full window [s0 s1 s2 s3]: the
	// segment spans s1→s2, flanked by the trailing control of the
	// (s0,s1,s2) triple and the leading control of the (s1,s2,s3) triple.
	c, ok := acc.Update(s3)
	require.True(t, ok)

	_, wantC1 := ControlPoints(s0.Point, s1.Point, s2.Point)
	wantC2, _ := ControlPoints(s1.Point, s2.Point, s3.Point)
	want := Curve{
		Kind:     CurveCubic,
		Start:    s1,
		End:      s2,
		Control1: wantC1,
		Control2: wantC2,
	}
	if diff := cmp.Diff(want, c, approx); diff != "" {
		t.Fatalf("curve mismatch (-want +got):\n%s", diff)
	}

	// The window stays bounded at the curve order.
	require.LessOrEqual(t, acc.Len(), 4)
}

func TestAccumulatorEndDotFallback(t *testing.T) {
	acc, err := NewAccumulator(3, 16)
	require.NoError(t, err)

	first := NewSample(5, 5, 0)

	// One sample total: dot at the first sample.
	acc.Begin(first)
	c, ok := acc.End()
	require.True(t, ok)
	require.Equal(t, CurveDot, c.Kind)
	require.Equal(t, first, c.Start)

	// Two samples total: still a dot.
	acc.Begin(first)
	_, _ = acc.Update(NewSample(15, 5, 10))
	c, ok = acc.End()
	require.True(t, ok)
	require.Equal(t, CurveDot, c.Kind)

	// Three samples: a real stroke, no dot.
	acc.Begin(first)
	_, _ = acc.Update(NewSample(15, 5, 10))
	_, _ = acc.Update(NewSample(25, 5, 20))
	_, ok = acc.End()
	require.False(t, ok)
}

func TestAccumulatorBeginResets(t *testing.T) {
	acc, err := NewAccumulator(3, 0)
	require.NoError(t, err)

	acc.Begin(NewSample(0, 0, 0))
	_, _ = acc.Update(NewSample(10, 0, 10))
	_, _ = acc.Update(NewSample(20, 0, 20))

	// A fresh Begin discards the old window entirely.
	acc.Begin(NewSample(100, 100, 0))
	require.Equal(t, 1, acc.Len())

	c, ok := acc.End()
	require.True(t, ok, "new stroke has one sample, so End is a dot")
	require.Equal(t, NewSample(100, 100, 0), c.Start)
}

func TestAccumulatorUpdateBeforeBegin(t *testing.T) {
	acc, err := NewAccumulator(3, 16)
	require.NoError(t, err)

	_, ok := acc.Update(NewSample(10, 10, 0))
	require.False(t, ok)

	_, ok = acc.End()
	require.False(t, ok)
}
