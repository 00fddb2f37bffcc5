// Package ink turns a raw stream of timestamped pointer samples into a
// smooth, variable-width stroke, the way signature-capture widgets do.
//
// # Overview
//
// ink is the device-independent core of a handwriting/signature pad. It
// accepts already-normalized surface-space samples tagged as begin/move/end,
// smooths them with Catmull-Rom style control-point estimation, derives a
// stroke width from a low-pass-filtered drawing velocity, and hands finished
// curve segments to a Renderer. The raster subpackage provides a software
// Renderer; any backend that can paint cubic and quadratic segments with
// round caps can be plugged in instead.
//
// # Quick Start
//
//	import (
//		"github.com/gopad/ink"
//		"github.com/gopad/ink/raster"
//	)
//
//	surface := raster.NewSurface(400, 200)
//	pad, err := ink.NewPad(surface)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	pad.Begin(ink.NewSample(10, 50, 0))
//	pad.Move(ink.NewSample(40, 60, 16))
//	pad.Move(ink.NewSample(90, 55, 32))
//	pad.End()
//
//	surface.SavePNG("signature.png")
//
// # Pipeline
//
// Raw samples flow through the pad in a fixed order:
//
//   - throttling drops samples too close to the last accepted one
//   - a sliding window of recent samples feeds curve construction
//   - control points are estimated from adjacent sample triples
//   - velocity drives the start and end width of each emitted segment
//   - the Renderer paints the segment and the pad moves on
//
// Each input is processed to completion before the next one is accepted.
// A Pad is not safe for concurrent use; hosts multiplexing several pointers
// must run one Pad per concurrent stroke and serialize surface access.
//
// # Coordinate System
//
// Samples are expected in surface space: origin at the top-left, X to the
// right, Y down, timestamps in milliseconds. Mapping device events into
// surface space is the caller's responsibility.
package ink

// Version is the current version of the library.
const Version = "0.2.0"
