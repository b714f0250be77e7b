// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorWrapping(t *testing.T) {
	err := New(InvalidInput, "min_y >= max_y")
	assert.Equal(t, "min_y >= max_y", err.Error())

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, InvalidInput, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestErrorfAndUnwrap(t *testing.T) {
	base := errors.New("scratch buffer exhausted")
	err := Errorf(Allocation, "allocate scratch: %w", base)
	assert.ErrorIs(t, err, base)

	var e *Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, Allocation, e.Kind)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "InvalidInput", InvalidInput.String())
	assert.Equal(t, "Allocation", Allocation.String())
	assert.Equal(t, "Precondition", Precondition.String())
}
