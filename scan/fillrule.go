// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

// FillRule selects how a sorted crossing list is turned into "inside"
// spans.
type FillRule int

const (
	// OddEven alternates inside/outside at every crossing.
	OddEven FillRule = iota

	// NonZero accumulates a signed winding count per crossing (+1 for an
	// [Up] crossing, -1 for a [Down] crossing) and treats any nonzero count
	// as inside.
	NonZero
)

// NonZeroIntersectionType classifies a single crossing for the non-zero
// rule. Corner marks one of a pair of crossings an edge emits at an
// endpoint (a touching vertex, or the end of a horizontal run), which
// does not change the winding count. Up is emitted by an edge whose
// [ScanEdge.EdgeUp] is false, Down by one whose EdgeUp is true.
type NonZeroIntersectionType byte

const (
	Corner NonZeroIntersectionType = iota
	Up
	Down
)
