package raster

import "math"

// antialiasWidth controls the smoothstep transition width in pixels.
// A value of 0.7 produces smooth anti-aliasing at standard DPI.
const antialiasWidth = 0.7

// discCoverage computes anti-aliased coverage for a filled disc using a
// signed distance field: the distance of the pixel center (px, py) from the
// disc edge is pushed through a Hermite smoothstep. Returns a value in
// [0, 1] where 1 means fully inside.
func discCoverage(px, py, cx, cy, radius float64) float64 {
	dist := math.Hypot(px-cx, py-cy)
	return smoothstepCoverage(dist - radius)
}

// smoothstepCoverage converts a signed distance to an anti-aliased
// coverage value.
//
//	sdf < -antialiasWidth => 1.0 (fully inside)
//	sdf > +antialiasWidth => 0.0 (fully outside)
//	otherwise             => smooth transition
func smoothstepCoverage(sdf float64) float64 {
	if sdf >= antialiasWidth {
		return 0
	}
	if sdf <= -antialiasWidth {
		return 1
	}
	t := (sdf + antialiasWidth) / (2 * antialiasWidth)
	// Hermite smoothstep: 3t^2 - 2t^3
	return 1 - (t * t * (3 - 2*t))
}
