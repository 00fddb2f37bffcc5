package ink

// widthFilter tracks a low-pass-filtered drawing velocity and derives the
// start and end width of each emitted curve. Fast motion thins the line
// toward minWidth, slow motion thickens it toward maxWidth, and carrying
// the previous end width forward as the next start width keeps the taper
// continuous across segment joins.
type widthFilter struct {
	weight   float64
	minWidth float64
	maxWidth float64

	lastVelocity float64
	lastWidth    float64
}

func newWidthFilter(weight, minWidth, maxWidth float64) widthFilter {
	f := widthFilter{weight: weight, minWidth: minWidth, maxWidth: maxWidth}
	f.reset()
	return f
}

// reset clears the carried velocity and width at the start of a stroke.
func (f *widthFilter) reset() {
	f.lastVelocity = 0
	f.lastWidth = (f.minWidth + f.maxWidth) / 2
}

// widths returns the start and end width for one curve and advances the
// filter state.
func (f *widthFilter) widths(c Curve) (start, end float64) {
	if f.minWidth == f.maxWidth {
		// Fixed-width pen: skip the velocity computation entirely.
		return f.minWidth, f.maxWidth
	}

	raw := c.End.VelocityFrom(c.Start)
	velocity := f.weight*raw + (1-f.weight)*f.lastVelocity

	// velocity >= 0 already bounds this at maxWidth; only the lower end
	// needs clamping.
	newWidth := f.maxWidth / (velocity + 1)
	if newWidth < f.minWidth {
		newWidth = f.minWidth
	}

	start = f.lastWidth
	end = newWidth

	f.lastVelocity = velocity
	f.lastWidth = newWidth
	return start, end
}
