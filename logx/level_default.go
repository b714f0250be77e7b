// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !release

package logx

import "log/slog"

// defaultLevel is the level used by [New] when no build tag overrides it.
// Non-release builds default to Debug so degenerate-input drops are
// visible during development.
var defaultLevel = slog.LevelDebug
