// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/scanline/math32"
	"cogentcore.org/scanline/ppath"
)

func square(x0, y0, x1, y1 float32) *ppath.Path {
	p := ppath.NewPath()
	p.StartFigure(math32.Vec2(x0, y0))
	p.AddLine(math32.Vec2(x1, y0))
	p.AddLine(math32.Vec2(x1, y1))
	p.AddLine(math32.Vec2(x0, y1))
	p.CloseFigure()
	return p
}

func TestBuildMultipolygonSingleRing(t *testing.T) {
	mp, err := BuildMultipolygon(square(0, 0, 10, 10).Build(), ppath.Tolerance, FirstRingIsContourFollowedByHoles)
	require.NoError(t, err)
	require.Len(t, mp.Rings, 1)
	assert.Equal(t, 4, mp.TotalVertexCount)
	assert.Greater(t, mp.Rings[0].Area, float32(0))
}

func TestBuildMultipolygonForcesHoleOrientation(t *testing.T) {
	outer := ppath.NewPath()
	outer.StartFigure(math32.Vec2(0, 0))
	outer.AddLine(math32.Vec2(10, 0))
	outer.AddLine(math32.Vec2(10, 10))
	outer.AddLine(math32.Vec2(0, 10))
	outer.CloseFigure()
	// Hole authored with the same winding as outer; the default
	// orientation policy must flip it to negative.
	outer.StartFigure(math32.Vec2(3, 3))
	outer.AddLine(math32.Vec2(7, 3))
	outer.AddLine(math32.Vec2(7, 7))
	outer.AddLine(math32.Vec2(3, 7))
	outer.CloseFigure()

	mp, err := BuildMultipolygon(outer.Build(), ppath.Tolerance, FirstRingIsContourFollowedByHoles)
	require.NoError(t, err)
	require.Len(t, mp.Rings, 2)
	assert.Greater(t, mp.Rings[0].Area, float32(0))
	assert.Less(t, mp.Rings[1].Area, float32(0))
}

func TestBuildMultipolygonKeepOriginal(t *testing.T) {
	p := square(0, 0, 10, 10)
	mpDefault, err := BuildMultipolygon(p.Build(), ppath.Tolerance, FirstRingIsContourFollowedByHoles)
	require.NoError(t, err)
	mpKept, err := BuildMultipolygon(p.Build(), ppath.Tolerance, KeepOriginal)
	require.NoError(t, err)
	assert.Equal(t, mpDefault.Rings[0].Area, mpKept.Rings[0].Area)
}

func TestBuildMultipolygonDropsDegenerateRing(t *testing.T) {
	p := ppath.NewPath()
	p.StartFigure(math32.Vec2(0, 0))
	p.AddLine(math32.Vec2(0, 0))
	p.CloseFigure()

	mp, err := BuildMultipolygon(p.Build(), ppath.Tolerance, FirstRingIsContourFollowedByHoles)
	require.NoError(t, err)
	assert.Empty(t, mp.Rings)
}

func TestBuildMultipolygonIgnoresOpenFigures(t *testing.T) {
	p := ppath.NewPath()
	p.StartFigure(math32.Vec2(0, 0))
	p.AddLine(math32.Vec2(10, 10))

	mp, err := BuildMultipolygon(p.Build(), ppath.Tolerance, FirstRingIsContourFollowedByHoles)
	require.NoError(t, err)
	assert.Empty(t, mp.Rings)
}

func TestBuildMultipolygonRejectsNilPath(t *testing.T) {
	_, err := BuildMultipolygon(nil, ppath.Tolerance, FirstRingIsContourFollowedByHoles)
	assert.Error(t, err)
}
