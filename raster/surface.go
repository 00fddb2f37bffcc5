// Package raster implements a software drawing surface for ink strokes.
//
// Surface is an RGBA pixel buffer that satisfies ink.Renderer: curve
// segments are flattened and stamped as anti-aliased discs whose radius is
// interpolated along the segment, which yields round caps and joins and a
// visually continuous taper for free. The package also handles PNG export
// and importing an existing image onto the surface.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/gopad/ink"
)

// Surface is a rectangular RGBA pixel buffer that ink strokes are
// committed to. It implements ink.Renderer, image.Image, and (through Set)
// the draw.Image interface used for image import.
//
// A Surface is a single mutable shared resource; the core assumes
// exclusive, serialized access to it.
type Surface struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel

	pen RGBA
}

// compile-time interface checks
var (
	_ ink.Renderer = (*Surface)(nil)
	_ image.Image  = (*Surface)(nil)
)

// SurfaceOption configures a Surface during creation.
type SurfaceOption func(*Surface)

// WithPen sets the ink color used for strokes and dots. Default Black.
func WithPen(c RGBA) SurfaceOption {
	return func(s *Surface) { s.pen = c }
}

// NewSurface creates a transparent surface with the given dimensions.
func NewSurface(width, height int, opts ...SurfaceOption) *Surface {
	s := &Surface{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
		pen:    Black,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Width returns the width of the surface in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface in pixels.
func (s *Surface) Height() int {
	return s.height
}

// SetPen changes the ink color for subsequent strokes and dots.
func (s *Surface) SetPen(c RGBA) {
	s.pen = c
}

// Pen returns the current ink color.
func (s *Surface) Pen() RGBA {
	return s.pen
}

// SetPixel sets a single pixel, replacing whatever was there.
func (s *Surface) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := (y*s.width + x) * 4
	s.data[i+0] = uint8(clamp255(c.R * 255))
	s.data[i+1] = uint8(clamp255(c.G * 255))
	s.data[i+2] = uint8(clamp255(c.B * 255))
	s.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel.
func (s *Surface) GetPixel(x, y int) RGBA {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	i := (y*s.width + x) * 4
	return RGBA{
		R: float64(s.data[i+0]) / 255,
		G: float64(s.data[i+1]) / 255,
		B: float64(s.data[i+2]) / 255,
		A: float64(s.data[i+3]) / 255,
	}
}

// Clear fills the entire surface with the background color.
// Implements ink.Renderer.
func (s *Surface) Clear(background color.Color) {
	c := FromColor(background)
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(s.data); i += 4 {
		s.data[i+0] = r
		s.data[i+1] = g
		s.data[i+2] = b
		s.data[i+3] = a
	}
}

// StrokeSegment paints one curve segment. The curve is flattened by
// stepping the parameter and stamping anti-aliased discs; the disc radius
// follows a cubic ease from startWidth to endWidth, which keeps tapering
// smooth where the velocity changed between segments.
// Implements ink.Renderer.
func (s *Surface) StrokeSegment(c ink.Curve, startWidth, endWidth float64) {
	if c.Kind == ink.CurveDot {
		s.FillDot(c.Start.Point, startWidth)
		return
	}

	// Two stamps per pixel of control-polygon length keeps adjacent discs
	// overlapping at every width this package draws.
	steps := int(math.Ceil(c.ApproxLength() * 2))
	if steps < 1 {
		steps = 1
	}

	delta := endWidth - startWidth
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		width := startWidth + delta*t*t*t
		p := c.Eval(t)
		s.stampDisc(p.X, p.Y, width/2)
	}
}

// FillDot paints a single filled disc. Implements ink.Renderer.
func (s *Surface) FillDot(center ink.Point, diameter float64) {
	s.stampDisc(center.X, center.Y, diameter/2)
}

// stampDisc blends an anti-aliased disc of the pen color onto the buffer.
func (s *Surface) stampDisc(cx, cy, radius float64) {
	if radius <= 0 {
		return
	}

	pad := radius + antialiasWidth
	x0 := int(math.Floor(cx - pad))
	x1 := int(math.Ceil(cx + pad))
	y0 := int(math.Floor(cy - pad))
	y1 := int(math.Ceil(cy + pad))

	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, s.width-1)
	y1 = min(y1, s.height-1)

	for y := y0; y <= y1; y++ {
		py := float64(y) + 0.5
		for x := x0; x <= x1; x++ {
			px := float64(x) + 0.5
			cov := discCoverage(px, py, cx, cy, radius)
			if cov > 0 {
				s.blendPixel(x, y, cov)
			}
		}
	}
}

// blendPixel composites the pen color over the existing pixel using
// source-over with the given coverage as an extra alpha factor.
func (s *Surface) blendPixel(x, y int, coverage float64) {
	srcA := s.pen.A * coverage
	if srcA <= 0 {
		return
	}

	dst := s.GetPixel(x, y)
	outA := srcA + dst.A*(1-srcA)
	if outA <= 0 {
		s.SetPixel(x, y, Transparent)
		return
	}

	// Composite in premultiplied space, store unpremultiplied.
	out := RGBA{
		R: (s.pen.R*srcA + dst.R*dst.A*(1-srcA)) / outA,
		G: (s.pen.G*srcA + dst.G*dst.A*(1-srcA)) / outA,
		B: (s.pen.B*srcA + dst.B*dst.A*(1-srcA)) / outA,
		A: outA,
	}
	s.SetPixel(x, y, out)
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.GetPixel(x, y).Color()
}

// Set implements the draw.Image interface.
func (s *Surface) Set(x, y int, c color.Color) {
	s.SetPixel(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}
