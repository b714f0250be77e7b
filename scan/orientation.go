// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan is the scanline intersection engine: it turns a path
// ([ppath.IPath]) into per-scanline sorted x-crossing lists, the core a
// fill algorithm consumes to rasterize a polygon.
package scan

// OrientationHandling selects how ring orientation is normalized when
// building a [TessellatedMultipolygon].
type OrientationHandling int

const (
	// FirstRingIsContourFollowedByHoles forces the first ring to positive
	// (outer) orientation and every subsequent ring to negative (hole)
	// orientation. This is the default.
	FirstRingIsContourFollowedByHoles OrientationHandling = iota

	// KeepOriginal leaves ring orientation exactly as authored.
	KeepOriginal
)
