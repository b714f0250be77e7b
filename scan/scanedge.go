// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"sort"

	"cogentcore.org/scanline/math32"
)

// ScanEdge is one non-horizontal edge of a compiled multipolygon, snapped
// to the subpixel grid. Y0 is always <= Y1; EdgeUp records whether the
// edge ran from larger y to smaller y in the original ring, which
// non-zero fill needs to classify a crossing as Up or Down.
//
// Emit0 and Emit1 are normally 1: a sweep line strictly between Y0 and
// Y1 emits exactly one crossing. When the sweep line lands exactly on
// Y0 or Y1, it emits Emit0 or Emit1 copies instead, so that a vertex
// shared by two edges nets the correct total: 1 for a vertex the
// boundary passes through monotonically ("piercing"), 2 for a vertex
// where both edges lie on the same side ("touching", a local
// min/max — needed so odd-even sees it as a matched in/out pair).
type ScanEdge struct {
	Y0, Y1   float32
	X0       float32
	SlopeInv float32
	EdgeUp   bool
	Emit0    uint8
	Emit1    uint8
}

// XAtY1 is the edge's x coordinate at y1.
func (e ScanEdge) XAtY1() float32 {
	return e.X0 + e.SlopeInv*(e.Y1-e.Y0)
}

// XAt returns the edge's x coordinate at an arbitrary y within [Y0, Y1].
func (e ScanEdge) XAt(y float32) float32 {
	return e.X0 + e.SlopeInv*(y-e.Y0)
}

// ScanEdgeCollection is the output of [CompileEdges]: the flat edge list
// plus two index permutations sorted by each edge's Y0 and Y1, which the
// scanner uses to enter and leave edges as the sweep advances.
type ScanEdgeCollection struct {
	Edges      []ScanEdge
	SortedByY0 []int32
	SortedByY1 []int32

	// MaxCrossings bounds the number of crossings any single scanline
	// can produce: twice the multipolygon's total vertex count.
	MaxCrossings int
}

// CompileEdges snaps every ring vertex of mp to the subsampling grid,
// drops the resulting horizontal edges, and classifies every remaining
// vertex as piercing or touching so the dropped and retained edges still
// emit the correct total crossing count at that y.
func CompileEdges(mp *TessellatedMultipolygon, subsampling int) *ScanEdgeCollection {
	s := float32(subsampling)
	snap := func(y float32) float32 {
		return math32.Round(y*s) / s
	}

	var edges []ScanEdge

	for _, ring := range mp.Rings {
		n := len(ring.Points)
		if n < 3 {
			continue
		}
		ys := make([]float32, n)
		for i, p := range ring.Points {
			ys[i] = snap(p.Y)
		}

		allSame := true
		for i := 1; i < n; i++ {
			if ys[i] != ys[0] {
				allSame = false
				break
			}
		}
		if allSame {
			continue
		}

		edgeOfPair := make([]int, n)
		for i := range edgeOfPair {
			edgeOfPair[i] = -1
		}

		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if ys[i] == ys[j] {
				continue // horizontal: no ScanEdge
			}
			a, b := ring.Points[i], ring.Points[j]
			ya, yb := ys[i], ys[j]
			var y0, y1, x0, x1 float32
			var edgeUp bool
			if ya < yb {
				y0, y1, x0, x1 = ya, yb, a.X, b.X
				edgeUp = false
			} else {
				y0, y1, x0, x1 = yb, ya, b.X, a.X
				edgeUp = true
			}
			edges = append(edges, ScanEdge{
				Y0:       y0,
				Y1:       y1,
				X0:       x0,
				SlopeInv: (x1 - x0) / (y1 - y0),
				EdgeUp:   edgeUp,
				Emit0:    1,
				Emit1:    1,
			})
			edgeOfPair[i] = len(edges) - 1
		}

		classifyVertices(edges, edgeOfPair, ys, n)
	}

	byY0 := make([]int32, len(edges))
	byY1 := make([]int32, len(edges))
	for i := range edges {
		byY0[i] = int32(i)
		byY1[i] = int32(i)
	}
	sort.Slice(byY0, func(i, j int) bool { return edges[byY0[i]].Y0 < edges[byY0[j]].Y0 })
	sort.Slice(byY1, func(i, j int) bool { return edges[byY1[i]].Y1 < edges[byY1[j]].Y1 })

	return &ScanEdgeCollection{
		Edges:        edges,
		SortedByY0:   byY0,
		SortedByY1:   byY1,
		MaxCrossings: 2 * mp.TotalVertexCount,
	}
}

// classifyVertices walks the maximal runs of equal-y vertices in a ring
// (a run of length 1 is an ordinary vertex, a longer run is a horizontal
// edge stub) and sets the Emit0/Emit1 of the two non-horizontal edges
// bordering each run so their shared endpoint nets the right total.
//
// A run of length 1 has edgeIn and edgeOut meeting at one exact point, so
// the zero-width formula below applies directly. A longer run is a
// genuine horizontal bridge between two different x positions: the
// vertex-sharing that lets one side suppress to 0 no longer holds, since
// edgeIn and edgeOut no longer share a point. Every 0 in the zero-width
// formula becomes a 2 in that case — edgeIn always closes out its own x
// with a full pinch, since there is no longer a coincident edgeOut
// crossing to cancel it against.
func classifyVertices(edges []ScanEdge, edgeOfPair []int, ys []float32, n int) {
	var groupStarts []int
	for i := 0; i < n; i++ {
		prev := (i - 1 + n) % n
		if ys[i] != ys[prev] {
			groupStarts = append(groupStarts, i)
		}
	}
	if len(groupStarts) == 0 {
		return
	}

	for gi, start := range groupStarts {
		var end int
		if gi+1 < len(groupStarts) {
			end = (groupStarts[gi+1] - 1 + n) % n
		} else {
			end = (groupStarts[0] - 1 + n) % n
		}
		bridged := ((end-start+n)%n)+1 > 1

		vy := ys[start]
		prevIdx := (start - 1 + n) % n
		nextIdx := (end + 1) % n
		py := ys[prevIdx]
		ny := ys[nextIdx]

		inIdx := edgeOfPair[prevIdx]
		outIdx := edgeOfPair[end]
		if inIdx < 0 || outIdx < 0 {
			continue
		}
		edgeIn := &edges[inIdx]
		edgeOut := &edges[outIdx]

		piercing := (py < vy && vy < ny) || (py > vy && vy > ny)
		if piercing {
			in := uint8(0)
			if bridged {
				in = 2
			}
			setEmitAt(edgeIn, vy, in)
			setEmitAt(edgeOut, vy, 1)
		} else {
			out := uint8(0)
			if bridged {
				out = 2
			}
			setEmitAt(edgeIn, vy, 2)
			setEmitAt(edgeOut, vy, out)
		}
	}
}

func setEmitAt(e *ScanEdge, y float32, val uint8) {
	switch y {
	case e.Y0:
		e.Emit0 = val
	case e.Y1:
		e.Emit1 = val
	}
}
