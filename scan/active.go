// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import "sort"

// ActiveEdgeList is the set of edge indices the sweep is currently
// passing through. Leaving an edge only marks it; the removal is
// deferred to [ActiveEdgeList.Compact] so that an edge ending exactly at
// the sweep's current y is still visible to [ComputeCrossings] for that
// one line.
type ActiveEdgeList struct {
	active  []int32
	leaving []int32
}

// NewActiveEdgeList returns an empty list with room for capacity edges.
func NewActiveEdgeList(capacity int) *ActiveEdgeList {
	return &ActiveEdgeList{
		active: make([]int32, 0, capacity),
	}
}

// Enter adds edgeIndex to the active set.
func (a *ActiveEdgeList) Enter(edgeIndex int32) {
	a.active = append(a.active, edgeIndex)
}

// LeaveMark schedules edgeIndex for removal at the next [Compact].
func (a *ActiveEdgeList) LeaveMark(edgeIndex int32) {
	a.leaving = append(a.leaving, edgeIndex)
}

// Compact removes every edge marked by [LeaveMark] since the last call.
func (a *ActiveEdgeList) Compact() {
	if len(a.leaving) == 0 {
		return
	}
	kept := a.active[:0]
outer:
	for _, idx := range a.active {
		for _, l := range a.leaving {
			if idx == l {
				continue outer
			}
		}
		kept = append(kept, idx)
	}
	a.active = kept
	a.leaving = a.leaving[:0]
}

// Active returns the current active edge indices, including any marked
// for leaving but not yet compacted.
func (a *ActiveEdgeList) Active() []int32 {
	return a.active
}

// Len reports the number of currently active edges, including entries
// marked for leaving but not yet compacted.
func (a *ActiveEdgeList) Len() int {
	return len(a.active)
}

type rawCrossing struct {
	x    float32
	kind NonZeroIntersectionType
}

// ComputeCrossings evaluates every edge in active at sweep position y and
// returns the sorted list of x crossings for rule, using scratch as
// backing storage to avoid an allocation per scanline.
func ComputeCrossings(y float32, active []int32, edges []ScanEdge, rule FillRule, scratch *Scratch) []float32 {
	raw := scratch.raw[:0]
	for _, idx := range active {
		e := edges[idx]
		var count uint8
		switch y {
		case e.Y0:
			count = e.Emit0
		case e.Y1:
			count = e.Emit1
		default:
			count = 1
		}
		if count == 0 {
			continue
		}
		x := e.XAt(y)
		if count == 2 {
			raw = append(raw, rawCrossing{x, Corner}, rawCrossing{x, Corner})
			continue
		}
		kind := Up
		if e.EdgeUp {
			kind = Down
		}
		raw = append(raw, rawCrossing{x, kind})
	}
	scratch.raw = raw

	sort.SliceStable(raw, func(i, j int) bool { return raw[i].x < raw[j].x })

	out := scratch.outX[:0]
	switch rule {
	case OddEven:
		for _, c := range raw {
			out = append(out, c.x)
		}
	case NonZero:
		out = nonZeroBoundaries(raw, out)
	}
	scratch.outX = out
	return out
}

// nonZeroBoundaries walks raw (sorted by x) accumulating a winding
// count, grouping entries that share an x so a touching vertex's two
// Corner entries are applied atomically, and emits x once per state
// transition the group causes.
func nonZeroBoundaries(raw []rawCrossing, out []float32) []float32 {
	winding := 0
	inside := false
	i := 0
	for i < len(raw) {
		j := i
		x := raw[i].x
		for j < len(raw) && raw[j].x == x {
			switch raw[j].kind {
			case Up:
				winding++
			case Down:
				winding--
			}
			j++
		}
		nowInside := winding != 0
		if nowInside != inside {
			out = append(out, x)
			inside = nowInside
		}
		i = j
	}
	return out
}
