// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbfgs

import (
	"fmt"
	"io"
)

// LogLevel controls how much the Solver reports about its own
// progress, mirroring the leveled, io.Writer-backed logger the
// reference driver carries for diagnostics.
type LogLevel int

const (
	// LogNone emits nothing. The zero value.
	LogNone LogLevel = iota
	// LogSummary emits one line when Solve returns.
	LogSummary
	// LogIteration emits one line per outer iteration.
	LogIteration
)

// Logger is an optional, off-by-default diagnostic sink. A nil
// *Logger (the default in SolverOptions) disables all output.
type Logger struct {
	Level LogLevel
	Out   io.Writer
}

func (l *Logger) enabled(level LogLevel) bool {
	return l != nil && l.Out != nil && l.Level >= level
}

func (l *Logger) logf(format string, args ...any) {
	_, _ = fmt.Fprintf(l.Out, format, args...)
}
