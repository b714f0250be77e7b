// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "testing"

// assertTol fails the test unless got is within tol of want.
func assertTol(t *testing.T, want, got, tol float32, msgAndArgs ...any) {
	t.Helper()
	if Abs(want-got) > tol {
		t.Errorf("values not within tolerance %v: want %v, got %v (%v)", tol, want, got, msgAndArgs)
	}
}

func assertTolVector(t *testing.T, tol float32, want, got Vector2) {
	t.Helper()
	assertTol(t, want.X, got.X, tol)
	assertTol(t, want.Y, got.Y, tol)
}
