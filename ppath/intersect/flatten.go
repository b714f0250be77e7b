// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package intersect flattens curved [ppath.LineSegment]s into polylines
// for the scanline engine's multipolygon builder.
package intersect

import (
	"cogentcore.org/scanline/math32"
	"cogentcore.org/scanline/ppath"
)

// maxSubdivisionDepth bounds the recursive subdivision in FlattenCubicBezier
// so a too-small tolerance cannot spin forever; a subcurve at this depth is
// emitted unconditionally.
const maxSubdivisionDepth = 32

// Flatten converts segment into a polyline within tolerance, returning its
// points including both endpoints.
func Flatten(segment ppath.LineSegment, tolerance float32) []ppath.Point {
	switch segment.Kind {
	case ppath.Linear:
		return segment.Points
	case ppath.CubicBezier:
		return FlattenCubicBezier(segment.Start, segment.C1, segment.C2, segment.End, tolerance)
	case ppath.EllipticalArc:
		return FlattenEllipticalArc(segment, tolerance)
	}
	return nil
}

// FlattenCubicBezier recursively subdivides p0,c1,c2,p3 by De Casteljau
// midpoint subdivision until the control polygon is within tolerance of its
// chord, per the one-third/two-thirds deviation test.
func FlattenCubicBezier(p0, c1, c2, p3 ppath.Point, tolerance float32) []ppath.Point {
	pts := []ppath.Point{p0}
	subdivideCubic(p0, c1, c2, p3, tolerance, 0, &pts)
	return pts
}

func subdivideCubic(p0, c1, c2, p3 ppath.Point, tolerance float32, depth int, out *[]ppath.Point) {
	third := p0.Add(p3.Sub(p0).MulScalar(1.0 / 3.0))
	twoThirds := p0.Add(p3.Sub(p0).MulScalar(2.0 / 3.0))
	dev := math32.Max(c1.Sub(third).Length(), c2.Sub(twoThirds).Length())
	if dev < tolerance || depth >= maxSubdivisionDepth {
		*out = append(*out, p3)
		return
	}

	p01 := p0.Add(c1).MulScalar(0.5)
	p12 := c1.Add(c2).MulScalar(0.5)
	p23 := c2.Add(p3).MulScalar(0.5)
	p012 := p01.Add(p12).MulScalar(0.5)
	p123 := p12.Add(p23).MulScalar(0.5)
	mid := p012.Add(p123).MulScalar(0.5)

	subdivideCubic(p0, p01, p012, mid, tolerance, depth+1, out)
	subdivideCubic(mid, p123, p23, p3, tolerance, depth+1, out)
}

// FlattenQuadraticBezier flattens a quadratic curve by raising it to a
// cubic per the standard 2/3 control-point rule, then flattening that.
func FlattenQuadraticBezier(p0, c, p3 ppath.Point, tolerance float32) []ppath.Point {
	c1 := p0.Add(c.Sub(p0).MulScalar(2.0 / 3.0))
	c2 := p3.Add(c.Sub(p3).MulScalar(2.0 / 3.0))
	return FlattenCubicBezier(p0, c1, c2, p3, tolerance)
}

// FlattenEllipticalArc steps theta across the arc's sweep with a step size
// chosen so chord error stays under tolerance for the larger radius, then
// applies the segment's transform to each sampled point.
func FlattenEllipticalArc(segment ppath.LineSegment, tolerance float32) []ppath.Point {
	r := math32.Max(segment.RX, segment.RY)
	if r <= 0 {
		return []ppath.Point{segment.StartPoint(), segment.EndPoint()}
	}
	// Chord error for a step of thetaStep on a circle of radius r is
	// approximately r*(1-cos(thetaStep/2)); solve for thetaStep bounding
	// that error by tolerance.
	cosHalf := 1 - tolerance/r
	cosHalf = math32.Clamp(cosHalf, -1, 1)
	thetaStep := 2 * math32.Acos(cosHalf)
	if thetaStep <= 0 || math32.IsNaN(thetaStep) {
		thetaStep = math32.Pi / 180 // 1 degree fallback
	}
	thetaStepDeg := math32.RadToDeg(thetaStep)

	sweep := segment.SweepAngle
	n := int(math32.Ceil(math32.Abs(sweep) / thetaStepDeg))
	if n < 1 {
		n = 1
	}

	rot := math32.DegToRad(segment.Rotation)
	sinR, cosR := math32.Sincos(rot)

	points := make([]ppath.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := segment.StartAngle + sweep*float32(i)/float32(n)
		rad := math32.DegToRad(t)
		sin, cos := math32.Sincos(rad)
		local := ppath.Point{X: segment.RX * cos, Y: segment.RY * sin}
		rotated := ppath.Point{
			X: local.X*cosR - local.Y*sinR,
			Y: local.X*sinR + local.Y*cosR,
		}
		p := segment.Center.Add(rotated)
		points = append(points, segment.Transform.MulVector2AsPoint(p))
	}
	return points
}

// FlattenFigure flattens every segment of fig into a single ring of
// points, dropping consecutive duplicates across segment joins.
func FlattenFigure(fig ppath.Figure, tolerance float32) []ppath.Point {
	var ring []ppath.Point
	for _, seg := range fig.Segments {
		pts := Flatten(seg, tolerance)
		for _, pt := range pts {
			if n := len(ring); n > 0 && ppath.EqualPoint(ring[n-1], pt) {
				continue
			}
			ring = append(ring, pt)
		}
	}
	if fig.Closed && len(ring) > 1 && ppath.EqualPoint(ring[0], ring[len(ring)-1]) {
		ring = ring[:len(ring)-1]
	}
	return ring
}
