// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !release

package scan

// checkPrecondition panics when ok is false. Non-release builds treat an
// out-of-order drive-API call as a caller bug to surface immediately,
// mirroring logx's debug-build default.
func checkPrecondition(ok bool, msg string) error {
	if !ok {
		panic("scan: precondition violated: " + msg)
	}
	return nil
}
