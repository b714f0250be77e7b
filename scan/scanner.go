// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"cogentcore.org/scanline/errs"
	"cogentcore.org/scanline/ppath"
)

// PolygonScanner drives a subsampled sweep of a path's filled interior,
// line by line, reusing one [Scratch] buffer set for the whole scan.
//
// Usage:
//
//	for scanner.MoveToNextPixelLine() {
//	    for scanner.MoveToNextSubpixelScanLine() {
//	        xs := scanner.ScanCurrentLine()
//	        // xs holds an even number of x values: alternating
//	        // inside/outside boundaries at scanner.SubPixelY().
//	    }
//	}
type PolygonScanner struct {
	edges *ScanEdgeCollection
	rule  FillRule

	minY, maxY  int32
	subsampling int32

	active  *ActiveEdgeList
	scratch *Scratch

	nextEnter int
	nextLeave int

	pixelY  int32
	subStep int32

	state driveState
	err   error
}

// driveState tracks where a [PolygonScanner] sits in its mandated
// move_to_next_pixel_line -> move_to_next_subpixel_scan_line ->
// scan_current_line sequence, so an out-of-order call can be caught
// instead of silently reading stale sweep state.
type driveState int

const (
	needPixelLine driveState = iota
	needSubpixelLine
	needScan
)

// Create builds a [PolygonScanner] over path, restricted to pixel rows
// [minY, maxY). tolerance bounds the curve-flattening error (see
// [ppath.Tolerance] if zero or negative is passed, the package default
// is used). subsampling is the number of sub-scanlines evaluated per
// pixel row.
func Create(path ppath.IPath, minY, maxY int32, subsampling int32, tolerance float32, rule FillRule, allocator Allocator, orientation OrientationHandling) (*PolygonScanner, error) {
	if minY >= maxY {
		return nil, errs.New(errs.InvalidInput, "scan: Create: min_y must be < max_y")
	}
	if subsampling < 1 {
		return nil, errs.New(errs.InvalidInput, "scan: Create: subsampling must be >= 1")
	}
	if tolerance <= 0 {
		tolerance = ppath.Tolerance
	}
	if allocator == nil {
		allocator = DefaultAllocator{}
	}

	mp, err := BuildMultipolygon(path, tolerance, orientation)
	if err != nil {
		return nil, err
	}
	edges := CompileEdges(mp, int(subsampling))
	scratch := allocator.Scratch(len(edges.Edges), edges.MaxCrossings)

	ps := &PolygonScanner{
		edges:       edges,
		rule:        rule,
		minY:        minY,
		maxY:        maxY,
		subsampling: subsampling,
		active:      NewActiveEdgeList(len(edges.Edges)),
		scratch:     scratch,
		pixelY:      minY - 1,
		subStep:     subsampling,
	}
	ps.warmUp()
	return ps, nil
}

// warmUp enters every edge that starts before min_y and immediately
// retires every edge that also ends before min_y, so the active list is
// correct the instant the first real scanline is processed without ever
// running [ComputeCrossings] on a line outside [minY, maxY).
func (ps *PolygonScanner) warmUp() {
	minYf := float32(ps.minY)
	for ps.nextEnter < len(ps.edges.SortedByY0) {
		idx := ps.edges.SortedByY0[ps.nextEnter]
		if ps.edges.Edges[idx].Y0 >= minYf {
			break
		}
		ps.active.Enter(idx)
		ps.nextEnter++
	}
	for ps.nextLeave < len(ps.edges.SortedByY1) {
		idx := ps.edges.SortedByY1[ps.nextLeave]
		if ps.edges.Edges[idx].Y1 >= minYf {
			break
		}
		ps.active.LeaveMark(idx)
		ps.nextLeave++
	}
	ps.active.Compact()
}

// MoveToNextPixelLine advances to the next pixel row and resets the
// subpixel cursor. It returns false once the scan has passed maxY.
//
// Calling it except at the start of a scan or after the previous pixel
// row's subpixel loop has run to completion is a precondition violation:
// it panics in non-release builds, and in release builds it records the
// error (retrievable via [PolygonScanner.Err]) and returns false.
func (ps *PolygonScanner) MoveToNextPixelLine() bool {
	if err := checkPrecondition(ps.state == needPixelLine, "MoveToNextPixelLine called out of order"); err != nil {
		ps.err = err
		return false
	}
	ps.pixelY++
	ps.subStep = -1
	if ps.pixelY >= ps.maxY {
		return false
	}
	ps.state = needSubpixelLine
	return true
}

// MoveToNextSubpixelScanLine advances to the next subpixel scanline
// within the current pixel row, entering and leaving edges as the sweep
// crosses them. It returns false once every subsample of the current row
// has been visited.
//
// Calling it except right after [PolygonScanner.MoveToNextPixelLine] or
// after consuming the previous subline with [PolygonScanner.ScanCurrentLine]
// is a precondition violation (see [PolygonScanner.MoveToNextPixelLine]).
func (ps *PolygonScanner) MoveToNextSubpixelScanLine() bool {
	if err := checkPrecondition(ps.state == needSubpixelLine, "MoveToNextSubpixelScanLine called out of order"); err != nil {
		ps.err = err
		return false
	}
	ps.subStep++
	if ps.subStep >= ps.subsampling {
		ps.state = needPixelLine
		return false
	}
	ps.active.Compact()

	y := ps.SubPixelY()
	for ps.nextEnter < len(ps.edges.SortedByY0) {
		idx := ps.edges.SortedByY0[ps.nextEnter]
		if ps.edges.Edges[idx].Y0 > y {
			break
		}
		ps.active.Enter(idx)
		ps.nextEnter++
	}
	for ps.nextLeave < len(ps.edges.SortedByY1) {
		idx := ps.edges.SortedByY1[ps.nextLeave]
		if ps.edges.Edges[idx].Y1 > y {
			break
		}
		ps.active.LeaveMark(idx)
		ps.nextLeave++
	}
	ps.state = needScan
	return true
}

// ScanCurrentLine returns the sorted x crossings at the scanner's
// current subpixel position.
//
// Calling it except right after a [PolygonScanner.MoveToNextSubpixelScanLine]
// call that returned true is a precondition violation (see
// [PolygonScanner.MoveToNextPixelLine]); it returns nil in that case.
func (ps *PolygonScanner) ScanCurrentLine() []float32 {
	if err := checkPrecondition(ps.state == needScan, "ScanCurrentLine called out of order"); err != nil {
		ps.err = err
		return nil
	}
	ps.state = needSubpixelLine
	return ComputeCrossings(ps.SubPixelY(), ps.active.Active(), ps.edges.Edges, ps.rule, ps.scratch)
}

// Err returns the first precondition violation recorded in a release
// build. In a non-release build the same violation panics instead, so
// Err is always nil there.
func (ps *PolygonScanner) Err() error {
	return ps.err
}

// PixelLineY is the integer pixel row the scanner is currently on.
func (ps *PolygonScanner) PixelLineY() int32 {
	return ps.pixelY
}

// SubPixelY is the exact y coordinate of the current subpixel scanline.
func (ps *PolygonScanner) SubPixelY() float32 {
	return float32(ps.pixelY) + float32(ps.subStep)/float32(ps.subsampling)
}

// SubpixelFraction is the distance between consecutive subpixel
// scanlines: 1/subsampling.
func (ps *PolygonScanner) SubpixelFraction() float32 {
	return 1 / float32(ps.subsampling)
}

// Dispose releases the scanner's scratch buffers. The scanner must not
// be used afterward.
func (ps *PolygonScanner) Dispose() {
	ps.active = nil
	ps.scratch = nil
	ps.edges = nil
}
