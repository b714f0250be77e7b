// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActiveEdgeListEnterLeaveCompact(t *testing.T) {
	a := NewActiveEdgeList(4)
	a.Enter(0)
	a.Enter(1)
	a.Enter(2)
	assert.Equal(t, 3, a.Len())

	a.LeaveMark(1)
	// Still visible until Compact, per the deferred-leave contract.
	assert.Equal(t, 3, a.Len())

	a.Compact()
	assert.ElementsMatch(t, []int32{0, 2}, a.Active())
}

func TestComputeCrossingsOddEvenSimpleSquare(t *testing.T) {
	edges := []ScanEdge{
		{Y0: 0, Y1: 10, X0: 0, SlopeInv: 0, Emit0: 1, Emit1: 1},  // left
		{Y0: 0, Y1: 10, X0: 10, SlopeInv: 0, Emit0: 1, Emit1: 1}, // right
	}
	scratch := DefaultAllocator{}.Scratch(len(edges), 4)
	xs := ComputeCrossings(5, []int32{0, 1}, edges, OddEven, scratch)
	assert.Equal(t, []float32{0, 10}, xs)
}

func TestComputeCrossingsNonZeroOppositeWindingCancels(t *testing.T) {
	// Two coincident-direction edges (both Up) at the same x would double
	// the winding; here one Up and one Down at different x model a simple
	// CCW then CW pair, leaving a single inside span between them.
	edges := []ScanEdge{
		{Y0: 0, Y1: 10, X0: 0, SlopeInv: 0, EdgeUp: false, Emit0: 1, Emit1: 1},
		{Y0: 0, Y1: 10, X0: 10, SlopeInv: 0, EdgeUp: true, Emit0: 1, Emit1: 1},
	}
	scratch := DefaultAllocator{}.Scratch(len(edges), 4)
	xs := ComputeCrossings(5, []int32{0, 1}, edges, NonZero, scratch)
	assert.Equal(t, []float32{0, 10}, xs)
}
