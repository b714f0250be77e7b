// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ppath provides the path data model consumed by the scanline
// engine: points, tagged line segments, figures, and the path builder
// that assembles them.
package ppath

import "cogentcore.org/scanline/math32"

// Point is a location in path space.
type Point = math32.Vector2

// SegmentKind tags the variant held by a [LineSegment].
type SegmentKind uint8

const (
	// Linear is a polyline segment: an ordered run of two or more points,
	// each consecutive pair forming a straight line.
	Linear SegmentKind = iota

	// CubicBezier is a cubic Bézier curve from Start to End via two
	// control points.
	CubicBezier

	// EllipticalArc is an elliptical arc described in center-parameterized
	// form.
	EllipticalArc
)

// LineSegment is a tagged variant covering every curve kind a [Figure] can
// hold. Only the fields relevant to Kind are meaningful; no dynamic
// dispatch is used past flattening (see Flatten in package
// cogentcore.org/scanline/ppath/intersect).
type LineSegment struct {
	Kind SegmentKind

	// Linear: Points holds every vertex of the polyline, including its
	// start and end (length >= 2).
	Points []Point

	// CubicBezier: Start, C1, C2, End are the four control points.
	Start, C1, C2, End Point

	// EllipticalArc fields, in degrees for Rotation/StartAngle/SweepAngle.
	Center             Point
	RX, RY             float32
	Rotation           float32
	StartAngle         float32
	SweepAngle         float32
	Transform          math32.Matrix2
}

// NewLinear returns a Linear segment over the given points.
func NewLinear(points ...Point) LineSegment {
	return LineSegment{Kind: Linear, Points: points}
}

// NewCubicBezier returns a CubicBezier segment.
func NewCubicBezier(start, c1, c2, end Point) LineSegment {
	return LineSegment{Kind: CubicBezier, Start: start, C1: c1, C2: c2, End: end}
}

// NewEllipticalArc returns an EllipticalArc segment with the given
// transform applied at flatten time.
func NewEllipticalArc(center Point, rx, ry, rotationDeg, startDeg, sweepDeg float32, transform math32.Matrix2) LineSegment {
	return LineSegment{
		Kind: EllipticalArc, Center: center, RX: rx, RY: ry,
		Rotation: rotationDeg, StartAngle: startDeg, SweepAngle: sweepDeg,
		Transform: transform,
	}
}

// StartPoint returns the segment's first point.
func (s LineSegment) StartPoint() Point {
	switch s.Kind {
	case Linear:
		if len(s.Points) == 0 {
			return Point{}
		}
		return s.Points[0]
	case CubicBezier:
		return s.Start
	case EllipticalArc:
		return arcPointAt(s, s.StartAngle)
	}
	return Point{}
}

// EndPoint returns the segment's last point.
func (s LineSegment) EndPoint() Point {
	switch s.Kind {
	case Linear:
		if len(s.Points) == 0 {
			return Point{}
		}
		return s.Points[len(s.Points)-1]
	case CubicBezier:
		return s.End
	case EllipticalArc:
		return arcPointAt(s, s.StartAngle+s.SweepAngle)
	}
	return Point{}
}

func arcPointAt(s LineSegment, angleDeg float32) Point {
	rad := math32.DegToRad(angleDeg)
	rot := math32.DegToRad(s.Rotation)
	sin, cos := math32.Sincos(rad)
	local := Point{X: s.RX * cos, Y: s.RY * sin}
	sinR, cosR := math32.Sincos(rot)
	rotated := Point{
		X: local.X*cosR - local.Y*sinR,
		Y: local.X*sinR + local.Y*cosR,
	}
	p := s.Center.Add(rotated)
	return s.Transform.MulVector2AsPoint(p)
}

// Figure is an ordered list of segments plus whether the figure is closed
// (its last point implicitly joins back to its first).
type Figure struct {
	Segments []LineSegment
	Closed   bool
}

// Empty returns true if the figure has zero segments.
func (f Figure) Empty() bool {
	return len(f.Segments) == 0
}

// IPath is the external path interface the scanline engine consumes: a
// read-only set of figures. [*Path] implements it.
type IPath interface {
	Figures() []Figure
}
