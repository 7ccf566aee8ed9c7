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
	"os"

	"golang.org/x/term"
)

var (
	Red    = "\033[31;01m"
	Green  = "\033[32;01m"
	Yellow = "\033[0;33m"
	Cyan   = "\033[0;36m"
	Dim    = "\033[2m"
	NC     = "\033[00;00m" // No Color / Reset
)

// StdoutIsTTY and StderrIsTTY are detected once at startup. Progress
// reporting needs both: the percentage goes to stderr but must not smear
// report lines written to stdout.
var (
	StdoutIsTTY = term.IsTerminal(int(os.Stdout.Fd()))
	StderrIsTTY = term.IsTerminal(int(os.Stderr.Fd()))
)

func init() {
	if !StdoutIsTTY {
		Red = ""
		Green = ""
		Yellow = ""
		Cyan = ""
		Dim = ""
		NC = ""
	}
}

// Tone is an opaque formatting token describing how a CRC value relates to
// the file content. Tag stores use it when rendering report lines so they
// stay decoupled from the actual escape codes.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneMatch
	ToneMismatch
)

// Paint wraps text in the color assigned to the tone. With colors disabled
// (stdout not a terminal) it returns the text unchanged.
func Paint(tone Tone, text string) string {
	var color string
	switch tone {
	case ToneMatch:
		color = Green
	case ToneMismatch:
		color = Red
	}
	if color == "" {
		return text
	}
	return color + text + NC
}
