// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

// Allocator provisions the scratch buffers a [PolygonScanner] reuses
// across every scanline, so a caller scanning many polygons of a known
// maximum size can amortize allocation across them. The two concerns —
// raw per-edge crossings (x values plus their non-zero classification)
// and the filtered crossing output (float32 x values) — are separate
// slices, since their sizes grow from different inputs (edge count vs.
// max simultaneous crossings).
type Allocator interface {
	// Scratch returns buffers sized for a multipolygon with the given
	// edge count and max simultaneous crossing count.
	Scratch(edgeCount, maxCrossings int) *Scratch
}

// Scratch holds the reusable buffers for one [PolygonScanner] run.
type Scratch struct {
	raw  []rawCrossing
	outX []float32
}

// DefaultAllocator allocates fresh slices on every call to Scratch. It is
// the zero-configuration [Allocator] used when a caller has no reuse
// strategy of its own.
type DefaultAllocator struct{}

// Scratch implements [Allocator].
func (DefaultAllocator) Scratch(edgeCount, maxCrossings int) *Scratch {
	return &Scratch{
		raw:  make([]rawCrossing, 0, edgeCount),
		outX: make([]float32, 0, maxCrossings),
	}
}
