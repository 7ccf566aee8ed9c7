// AnimeCRC - CRC32 generator and checker
// Copyright (C) 2026 AnimeCRC contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ui

import (
	"fmt"
	"io"
	"os"
)

// Level selects which log lines are emitted.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

var threshold = LevelInfo

// Out is where log lines are written. File entries go to stdout so the
// report can be piped; progress output uses stderr (see Reporter).
var Out io.Writer = os.Stdout

// SetLevel sets the minimum level that is printed.
func SetLevel(l Level) {
	threshold = l
}

func logf(l Level, label, color, format string, a ...any) {
	if l < threshold {
		return
	}
	fmt.Fprintf(Out, "%s%-8s%s %s\n", color, label, NC, fmt.Sprintf(format, a...))
}

// Debugf prints a debug message.
func Debugf(format string, a ...any) {
	logf(LevelDebug, "DEBUG", Dim, format, a...)
}

// Infof prints an informational message.
func Infof(format string, a ...any) {
	logf(LevelInfo, "INFO", Cyan, format, a...)
}

// Warnf prints a warning message.
func Warnf(format string, a ...any) {
	logf(LevelWarning, "WARNING", Yellow, format, a...)
}

// Errorf prints an error message. It does not exit; per-file errors are
// recovered by the caller.
func Errorf(format string, a ...any) {
	logf(LevelError, "ERROR", Red, format, a...)
}
