// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx wires a default [slog.Logger] for the scanline engine,
// leveled by build tag the way the wider ecosystem splits its default
// logger level between debug and release builds.
package logx

import (
	"log/slog"
	"os"
)

// Default is the engine's package-level logger. Callers embedding the
// engine may replace it entirely.
var Default = New()

// New returns a text-handler [slog.Logger] at [defaultLevel].
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: defaultLevel}))
}
