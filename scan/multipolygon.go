// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"cogentcore.org/scanline/errs"
	"cogentcore.org/scanline/logx"
	"cogentcore.org/scanline/math32"
	"cogentcore.org/scanline/ppath"
	"cogentcore.org/scanline/ppath/intersect"
)

// Ring is a single flattened, closed contour of a [TessellatedMultipolygon].
// Points never repeat the closing vertex; Area is the signed shoelace area
// in the path's own coordinate space, positive for a ring that is
// counter-clockwise in y-down space.
type Ring struct {
	Points []ppath.Point
	Area   float32
}

// TessellatedMultipolygon is a flattened, orientation-normalized set of
// rings ready for edge compilation.
type TessellatedMultipolygon struct {
	Rings            []Ring
	TotalVertexCount int
}

// signedArea returns the ring's signed shoelace area (half the shoelace
// sum). Coordinates are taken relative to the first vertex so that a ring
// far from the origin does not lose its area to float32 cancellation.
func signedArea(pts []ppath.Point) float32 {
	n := len(pts)
	if n == 0 {
		return 0
	}
	var sum float32
	o := pts[0]
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a, b := pts[i].Sub(o), pts[j].Sub(o)
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum * 0.5
}

// distinctVertexCount returns the number of vertices in pts that are not
// within [ppath.Epsilon] of their predecessor, to catch rings flattened
// down to a degenerate point or sliver.
func distinctVertexCount(pts []ppath.Point) int {
	if len(pts) == 0 {
		return 0
	}
	count := 1
	prev := pts[0]
	for _, p := range pts[1:] {
		if !ppath.EqualPoint(p, prev) {
			count++
			prev = p
		}
	}
	if count > 1 && ppath.EqualPoint(pts[len(pts)-1], pts[0]) {
		count--
	}
	return count
}

// BuildMultipolygon flattens every closed figure of path into a ring,
// drops degenerate rings (fewer than 3 distinct vertices, or zero area),
// and normalizes orientation per the requested policy. Open figures are
// ignored: they exist for stroking, not filling.
func BuildMultipolygon(path ppath.IPath, tolerance float32, orientation OrientationHandling) (*TessellatedMultipolygon, error) {
	if path == nil {
		return nil, errs.New(errs.InvalidInput, "scan: BuildMultipolygon: nil path")
	}
	if tolerance <= 0 {
		return nil, errs.New(errs.InvalidInput, "scan: BuildMultipolygon: tolerance must be positive")
	}

	mp := &TessellatedMultipolygon{}
	for _, fig := range path.Figures() {
		for _, seg := range fig.Segments {
			for _, pt := range [2]ppath.Point{seg.StartPoint(), seg.EndPoint()} {
				if math32.IsNaN(pt.X) || math32.IsNaN(pt.Y) || math32.IsInf(pt.X, 0) || math32.IsInf(pt.Y, 0) {
					return nil, errs.New(errs.InvalidInput, "scan: BuildMultipolygon: non-finite segment endpoint")
				}
			}
		}
		if !fig.Closed || fig.Empty() {
			continue
		}
		pts := intersect.FlattenFigure(fig, tolerance)
		if distinctVertexCount(pts) < 3 {
			logx.Default.Debug("scan: dropping degenerate ring", "vertices", len(pts))
			continue
		}
		area := signedArea(pts)
		// A self-intersecting ring such as an hourglass can have a net
		// signed area of zero while still enclosing area, so the drop test
		// sums the magnitudes of the triangles fanned out from the first
		// vertex; that sum is zero only for a ring that encloses no area.
		var enclosed float32
		for i := 1; i+1 < len(pts); i++ {
			enclosed += math32.Abs(pts[i].Sub(pts[0]).Cross(pts[i+1].Sub(pts[0])))
		}
		if enclosed*0.5 < ppath.Epsilon {
			logx.Default.Debug("scan: dropping zero-area ring")
			continue
		}
		mp.Rings = append(mp.Rings, Ring{Points: pts, Area: area})
	}

	normalizeOrientation(mp, orientation)

	for _, r := range mp.Rings {
		mp.TotalVertexCount += len(r.Points)
	}
	return mp, nil
}

func normalizeOrientation(mp *TessellatedMultipolygon, orientation OrientationHandling) {
	if orientation != FirstRingIsContourFollowedByHoles {
		return
	}
	for i := range mp.Rings {
		r := &mp.Rings[i]
		wantPositive := i == 0
		if wantPositive == (r.Area < 0) {
			reverseRing(r)
		}
	}
}

func reverseRing(r *Ring) {
	for i, j := 0, len(r.Points)-1; i < j; i, j = i+1, j-1 {
		r.Points[i], r.Points[j] = r.Points[j], r.Points[i]
	}
	r.Area = -r.Area
}
