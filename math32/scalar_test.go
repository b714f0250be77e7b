// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalar(t *testing.T) {
	assert.Equal(t, float32(3), Abs(-3))
	assert.Equal(t, float32(-1), Sign(-5))
	assert.Equal(t, float32(1), Sign(0))
	assert.Equal(t, float32(5), Max(5, 2))
	assert.Equal(t, float32(2), Min(5, 2))
	assert.Equal(t, float32(3), Ceil(2.1))
	assert.Equal(t, float32(2), Floor(2.9))
	assert.Equal(t, float32(3), Round(2.6))
	assert.Equal(t, float32(5), Hypot(3, 4))
	assert.Equal(t, float32(2), Sqrt(4))
	assert.True(t, IsNaN(Sqrt(-1)))

	assertTol(t, Pi, DegToRad(180), 1e-6)
	assertTol(t, 180, RadToDeg(Pi), 1e-4)

	assert.Equal(t, float32(5), Clamp(10, 0, 5))
	assert.Equal(t, float32(0), Clamp(-10, 0, 5))
	assert.Equal(t, float32(3), Clamp(3, 0, 5))

	assert.Equal(t, float32(5), Lerp(0, 10, 0.5))
}
