// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"cogentcore.org/scanline/math32"
)

var (
	// Tolerance is the maximum deviation from the original curve, in path
	// units, permitted when flattening a Bézier or elliptical arc segment.
	Tolerance = float32(0.25)

	// PixelTolerance is the maximum deviation of the rasterized path from
	// the original, in pixels, used by callers that flatten for on-screen
	// rendering rather than geometric analysis.
	PixelTolerance = float32(0.1)

	// In C, FLT_EPSILON = 1.19209e-07

	// Epsilon is the smallest number below which we assume the value to be zero.
	// This is to avoid numerical floating point issues.
	Epsilon = float32(1e-7)

	// Origin is the coordinate system's origin.
	Origin = math32.Vector2{X: 0.0, Y: 0.0}
)

// Equal returns true if a and b are equal within an absolute
// tolerance of Epsilon.
func Equal(a, b float32) bool {
	// avoid math32.Abs
	if a < b {
		return b-a <= Epsilon
	}
	return a-b <= Epsilon
}

// EqualPoint returns true if a and b are equal within Epsilon on both axes.
func EqualPoint(a, b math32.Vector2) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// AngleNorm returns the angle theta in the range [0,2PI).
func AngleNorm(theta float32) float32 {
	theta = math32.Mod(theta, 2.0*math32.Pi)
	if theta < 0.0 {
		theta += 2.0 * math32.Pi
	}
	return theta
}

// Angle returns the angle in radians [0,2PI) between the x-axis and OP.
func Angle(p math32.Vector2) float32 {
	return AngleNorm(math32.Atan2(p.Y, p.X))
}
