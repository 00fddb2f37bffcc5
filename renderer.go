package ink

import "image/color"

// Renderer is the drawing boundary of the core. The pad pushes finished
// geometry into it and never reads anything back; whether the target is a
// software pixel buffer, a GPU surface, or a recording is invisible here.
//
// Implementations should paint segments with round caps and joins so that
// the width taper looks continuous where consecutive curves meet. All calls
// are made synchronously from the pad's input-processing path.
type Renderer interface {
	// StrokeSegment paints one curve, tapering the width from startWidth
	// at the start anchor to endWidth at the end anchor.
	StrokeSegment(c Curve, startWidth, endWidth float64)

	// FillDot paints a filled disc, used for strokes too short to curve.
	FillDot(center Point, diameter float64)

	// Clear resets the whole surface to the background color.
	Clear(background color.Color)
}
