// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))
	assert.Equal(t, Vector2{15, -5}, Vector2FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vector2{8, 3}, Vector2FromFixed(fixed.P(8, 3)))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.12)
	assert.Equal(t, Vector2{8.12, 8.12}, v)

	v.SetFromVector2i(Vector2i{8, 9})
	assert.Equal(t, Vector2{8, 9}, v)
}

func TestVector2Ops(t *testing.T) {
	a := Vec2(1, 2)
	b := Vec2(3, 4)
	assert.Equal(t, Vec2(4, 6), a.Add(b))
	assert.Equal(t, Vec2(-2, -2), a.Sub(b))
	assert.Equal(t, Vec2(2, 4), a.MulScalar(2))
	assert.Equal(t, Vec2(-1, -2), a.Negate())
	assert.Equal(t, float32(11), a.Dot(b))
	assert.Equal(t, float32(1*4-2*3), a.Cross(b))
	assert.Equal(t, float32(5), Vec2(3, 4).Length())

	n := Vec2(1, 1).Normal()
	assertTolVector(t, 1e-6, Vec2(0.70710678, 0.70710678), n)
	assert.Equal(t, Vector2{}, Vector2{}.Normal())
}
