// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build release

package scan

import "cogentcore.org/scanline/errs"

// checkPrecondition returns an [errs.Precondition]-kind error when ok is
// false, rather than panicking, since a release build must not crash the
// host process over a caller bug.
func checkPrecondition(ok bool, msg string) error {
	if !ok {
		return errs.New(errs.Precondition, "scan: precondition violated: "+msg)
	}
	return nil
}
