package ink

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidConfig is wrapped by every construction-time validation error.
// Runtime drawing never surfaces errors; rejecting bad configuration up
// front is the only failure mode at the package boundary.
var ErrInvalidConfig = errors.New("ink: invalid configuration")

// Options holds the resolved configuration of a Pad. The zero value is not
// usable; obtain Options through NewPad, which applies defaults and
// validates. Options are immutable for the lifetime of a Pad.
type Options struct {
	// VelocityFilterWeight is the exponential smoothing weight applied to
	// the raw per-segment velocity, in (0, 1]. Higher values react faster
	// to speed changes. Default 0.7.
	VelocityFilterWeight float64

	// MinWidth and MaxWidth bound the stroke width in pixels.
	// Defaults 0.5 and 2.5.
	MinWidth, MaxWidth float64

	// CurveOrder is the sample window length used for curve construction:
	// 2 emits straight segments, 3 midpoint-smoothed cubics, 4 full
	// Catmull-Rom cubics. Default 3.
	CurveOrder int

	// ThrottleSquaredDistance is the minimum squared distance in pixels
	// between accepted samples; closer samples are dropped as noise.
	// Default 16 (4 pixels).
	ThrottleSquaredDistance float64

	// Dot determines the diameter of the disc drawn for strokes too short
	// to form a segment. The zero value means (MinWidth+MaxWidth)/2.
	Dot DotDiameter

	// Background is the color the surface is cleared to.
	// Default color.Transparent.
	Background color.Color

	// StrokeBegun and StrokeEnded, when non-nil, are invoked synchronously
	// at the corresponding state transition.
	StrokeBegun, StrokeEnded func(Sample)
}

// DotDiameter selects how the diameter of a dot stroke is determined:
// either a fixed pixel value or a function computed from the resolved
// options at draw time.
type DotDiameter struct {
	fixed float64
	fn    func(Options) float64
}

// FixedDot returns a DotDiameter with a constant pixel value.
func FixedDot(d float64) DotDiameter {
	return DotDiameter{fixed: d}
}

// ComputedDot returns a DotDiameter evaluated against the pad's options
// once per dot draw.
func ComputedDot(fn func(Options) float64) DotDiameter {
	return DotDiameter{fn: fn}
}

// resolve returns the effective diameter for the given options.
func (d DotDiameter) resolve(o Options) float64 {
	switch {
	case d.fn != nil:
		return d.fn(o)
	case d.fixed > 0:
		return d.fixed
	default:
		return (o.MinWidth + o.MaxWidth) / 2
	}
}

// Option configures a Pad during creation.
type Option func(*Options)

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		VelocityFilterWeight:    0.7,
		MinWidth:                0.5,
		MaxWidth:                2.5,
		CurveOrder:              3,
		ThrottleSquaredDistance: 16,
		Background:              color.Transparent,
	}
}

// WithVelocityFilterWeight sets the velocity smoothing weight, in (0, 1].
func WithVelocityFilterWeight(w float64) Option {
	return func(o *Options) { o.VelocityFilterWeight = w }
}

// WithMinWidth sets the minimum stroke width in pixels.
func WithMinWidth(w float64) Option {
	return func(o *Options) { o.MinWidth = w }
}

// WithMaxWidth sets the maximum stroke width in pixels.
func WithMaxWidth(w float64) Option {
	return func(o *Options) { o.MaxWidth = w }
}

// WithCurveOrder sets the curve construction window length (2, 3 or 4).
func WithCurveOrder(order int) Option {
	return func(o *Options) { o.CurveOrder = order }
}

// WithThrottleSquaredDistance sets the squared-distance noise threshold.
func WithThrottleSquaredDistance(d float64) Option {
	return func(o *Options) { o.ThrottleSquaredDistance = d }
}

// WithDotDiameter sets how dot strokes are sized.
func WithDotDiameter(d DotDiameter) Option {
	return func(o *Options) { o.Dot = d }
}

// WithBackground sets the color used by Clear.
func WithBackground(c color.Color) Option {
	return func(o *Options) { o.Background = c }
}

// WithStrokeBegun registers a callback fired when a stroke starts.
func WithStrokeBegun(fn func(Sample)) Option {
	return func(o *Options) { o.StrokeBegun = fn }
}

// WithStrokeEnded registers a callback fired when a stroke ends.
func WithStrokeEnded(fn func(Sample)) Option {
	return func(o *Options) { o.StrokeEnded = fn }
}

// validate checks the invariants the rest of the package relies on.
func (o *Options) validate() error {
	if o.VelocityFilterWeight <= 0 || o.VelocityFilterWeight > 1 {
		return fmt.Errorf("%w: velocity filter weight must be in (0, 1], got %v",
			ErrInvalidConfig, o.VelocityFilterWeight)
	}
	if o.MinWidth <= 0 {
		return fmt.Errorf("%w: min width must be > 0, got %v", ErrInvalidConfig, o.MinWidth)
	}
	if o.MaxWidth < o.MinWidth {
		return fmt.Errorf("%w: max width %v must be >= min width %v",
			ErrInvalidConfig, o.MaxWidth, o.MinWidth)
	}
	if o.CurveOrder < 2 || o.CurveOrder > 4 {
		return fmt.Errorf("%w: curve order must be 2, 3 or 4, got %d",
			ErrInvalidConfig, o.CurveOrder)
	}
	if o.ThrottleSquaredDistance < 0 {
		return fmt.Errorf("%w: throttle distance must be >= 0, got %v",
			ErrInvalidConfig, o.ThrottleSquaredDistance)
	}
	if o.Dot.fixed < 0 {
		return fmt.Errorf("%w: dot diameter must be > 0, got %v",
			ErrInvalidConfig, o.Dot.fixed)
	}
	if o.Background == nil {
		return fmt.Errorf("%w: background color must not be nil", ErrInvalidConfig)
	}
	return nil
}
