// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import "golang.org/x/image/math/fixed"

// ToFixedSpans converts a sorted crossing list, as returned by
// [PolygonScanner.ScanCurrentLine], to 26.6 fixed-point, the format
// golang.org/x/image/vector and golang.org/x/image/font/sfnt rasterizers
// consume directly.
func ToFixedSpans(crossings []float32) []fixed.Int26_6 {
	out := make([]fixed.Int26_6, len(crossings))
	for i, x := range crossings {
		out[i] = fixed.Int26_6(x * 64)
	}
	return out
}
