// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import "cogentcore.org/scanline/math32"

// Path is the path builder: the producing side of [IPath]. It exposes the
// add_line / add_bezier / add_elliptical_arc / start_figure / ...
// operations external callers use to construct a path before handing it to
// the scanline engine.
type Path struct {
	figures   []Figure
	transform math32.Matrix2
	origin    Point
	current   Point
	hasFigure bool
}

// NewPath returns an empty path with an identity transform and zero origin.
func NewPath() *Path {
	return &Path{transform: math32.Identity2()}
}

// Figures returns the path's figures, satisfying [IPath]. Empty figures
// are not returned.
func (p *Path) Figures() []Figure {
	out := make([]Figure, 0, len(p.figures))
	for _, f := range p.figures {
		if !f.Empty() {
			out = append(out, f)
		}
	}
	return out
}

// apply maps a point through the builder's current transform and origin.
func (p *Path) apply(pt Point) Point {
	return p.transform.MulVector2AsPoint(pt).Add(p.origin)
}

// StartFigure begins a new, initially open figure at start.
func (p *Path) StartFigure(start Point) {
	p.figures = append(p.figures, Figure{})
	p.current = p.apply(start)
	p.hasFigure = true
}

func (p *Path) ensureFigure() {
	if !p.hasFigure {
		p.StartFigure(Origin)
	}
}

func (p *Path) curFigure() *Figure {
	return &p.figures[len(p.figures)-1]
}

// AddLine appends a line from the current point to to.
func (p *Path) AddLine(to Point) {
	p.ensureFigure()
	end := p.apply(to)
	f := p.curFigure()
	f.Segments = append(f.Segments, NewLinear(p.current, end))
	p.current = end
}

// AddLines appends a connected run of lines through pts.
func (p *Path) AddLines(pts ...Point) {
	for _, pt := range pts {
		p.AddLine(pt)
	}
}

// AddCubicBezier appends a cubic Bézier curve from the current point to
// end, via control points c1 and c2.
func (p *Path) AddCubicBezier(c1, c2, end Point) {
	p.ensureFigure()
	c1t, c2t, endt := p.apply(c1), p.apply(c2), p.apply(end)
	f := p.curFigure()
	f.Segments = append(f.Segments, NewCubicBezier(p.current, c1t, c2t, endt))
	p.current = endt
}

// AddQuadraticBezier appends a quadratic Bézier curve from the current
// point to end via control point c, raised to a cubic per the standard
// 2/3 rule.
func (p *Path) AddQuadraticBezier(c, end Point) {
	p.ensureFigure()
	start := p.current
	ct, endt := p.apply(c), p.apply(end)
	c1 := start.Add(ct.Sub(start).MulScalar(2.0 / 3.0))
	c2 := endt.Add(ct.Sub(endt).MulScalar(2.0 / 3.0))
	f := p.curFigure()
	f.Segments = append(f.Segments, NewCubicBezier(start, c1, c2, endt))
	p.current = endt
}

// AddEllipticalArc appends an elliptical arc centered at (cx, cy) with
// radii (rx, ry), rotated rotationDeg degrees, sweeping from startDeg
// through sweepDeg degrees, under the builder's current transform.
func (p *Path) AddEllipticalArc(cx, cy, rx, ry, rotationDeg, startDeg, sweepDeg float32) {
	p.ensureFigure()
	seg := NewEllipticalArc(Point{X: cx, Y: cy}, rx, ry, rotationDeg, startDeg, sweepDeg, p.transform)
	seg.Transform.X0 += p.origin.X
	seg.Transform.Y0 += p.origin.Y
	f := p.curFigure()
	f.Segments = append(f.Segments, seg)
	p.current = seg.EndPoint()
}

// CloseFigure marks the current figure closed.
func (p *Path) CloseFigure() {
	if p.hasFigure {
		p.curFigure().Closed = true
	}
}

// CloseAllFigures marks every figure closed.
func (p *Path) CloseAllFigures() {
	for i := range p.figures {
		p.figures[i].Closed = true
	}
}

// SetTransform sets the builder's current transform, applied to points
// added after this call.
func (p *Path) SetTransform(m math32.Matrix2) {
	p.transform = m
}

// ResetTransform resets the builder's transform to identity.
func (p *Path) ResetTransform() {
	p.transform = math32.Identity2()
}

// SetOrigin sets the builder's current origin, added to points (after
// transform) added after this call.
func (p *Path) SetOrigin(o Point) {
	p.origin = o
}

// ResetOrigin resets the builder's origin to zero.
func (p *Path) ResetOrigin() {
	p.origin = Point{}
}

// Clear drops all figures, keeping the current transform and origin.
func (p *Path) Clear() {
	p.figures = nil
	p.hasFigure = false
	p.current = Point{}
}

// Reset drops all figures and resets transform and origin.
func (p *Path) Reset() {
	p.Clear()
	p.transform = math32.Identity2()
	p.origin = Point{}
}

// Build strips empty figures and returns the path as an [IPath]. A path
// with exactly one non-empty figure and one with several are both
// represented uniformly here; the multipolygon builder is what collapses
// a single-figure path into a simple polygon.
func (p *Path) Build() IPath {
	return p
}
