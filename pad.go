package ink

import (
	"errors"
	"log/slog"
)

// padState tracks the single-stroke lifecycle.
type padState int

const (
	padIdle padState = iota
	padActive
)

// Pad coordinates the stroke lifecycle: it owns the accumulator and width
// filter, drives the renderer, and fires the lifecycle callbacks. One Pad
// handles one pointer; hosts with concurrent pointers (multi-touch) must
// run one Pad per pointer and serialize access to a shared surface.
type Pad struct {
	opts     Options
	renderer Renderer

	acc    *Accumulator
	widths widthFilter

	state padState
	empty bool
	last  Sample
}

// NewPad creates a pad drawing through the given renderer. The renderer is
// required; configuration is supplied through functional options and
// validated here. The surface starts out empty but is not cleared; call
// Clear to paint the background.
func NewPad(r Renderer, opts ...Option) (*Pad, error) {
	if r == nil {
		return nil, errors.New("ink: renderer must not be nil")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	acc, err := NewAccumulator(o.CurveOrder, o.ThrottleSquaredDistance)
	if err != nil {
		return nil, err
	}

	return &Pad{
		opts:     o,
		renderer: r,
		acc:      acc,
		widths:   newWidthFilter(o.VelocityFilterWeight, o.MinWidth, o.MaxWidth),
		state:    padIdle,
		empty:    true,
	}, nil
}

// Options returns the pad's resolved configuration.
func (p *Pad) Options() Options {
	return p.opts
}

// IsEmpty reports whether any ink has been committed since the last Clear
// (or since creation).
func (p *Pad) IsEmpty() bool {
	return p.empty
}

// Begin starts a new stroke at the given sample. All per-stroke state is
// reset, so nothing leaks from a previous stroke.
func (p *Pad) Begin(s Sample) {
	p.state = padActive
	p.acc.Begin(s)
	p.widths.reset()
	p.last = s

	Logger().Debug("ink: stroke begun", slog.Float64("x", s.X), slog.Float64("y", s.Y))
	if p.opts.StrokeBegun != nil {
		p.opts.StrokeBegun(s)
	}
}

// Move feeds one move sample into the active stroke. Calls while no stroke
// is active are ignored; late move events after End are expected from most
// input sources and must be harmless.
func (p *Pad) Move(s Sample) {
	if p.state != padActive {
		return
	}

	c, ok := p.acc.Update(s)
	if !ok {
		return
	}
	p.last = s

	start, end := p.widths.widths(c)
	p.renderer.StrokeSegment(c, start, end)
	p.empty = false
}

// End finishes the active stroke. Strokes too short to form a segment are
// committed as a single filled dot so that a tap still leaves ink. Calls
// while no stroke is active are ignored, which tolerates duplicate "up"
// events.
func (p *Pad) End() {
	if p.state != padActive {
		return
	}
	p.state = padIdle

	if c, ok := p.acc.End(); ok {
		d := p.opts.Dot.resolve(p.opts)
		p.renderer.FillDot(c.Start.Point, d)
		p.empty = false
	}

	Logger().Debug("ink: stroke ended")
	if p.opts.StrokeEnded != nil {
		p.opts.StrokeEnded(p.last)
	}
}

// Clear abandons any active stroke, repaints the surface with the
// configured background, and marks the pad empty. Ink already committed is
// not rolled back anywhere else; Clear is the only undo the surface has.
func (p *Pad) Clear() {
	p.state = padIdle
	p.renderer.Clear(p.opts.Background)
	p.empty = true
	Logger().Debug("ink: surface cleared")
}
