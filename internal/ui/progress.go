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
	"strings"
)

// progressWidth is the number of terminal cells the percentage occupies
// ("%7d" plus the percent sign).
const progressWidth = 8

var backspaces = strings.Repeat("\b", progressWidth)

// Reporter prints per-file checksum progress as a percentage that
// overwrites itself in place. A nil Reporter is valid and reports nothing.
type Reporter struct {
	out io.Writer
}

// NewReporter returns a Reporter writing to out, typically os.Stderr.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Report prints the completion percentage for done bytes out of total.
// The cursor is moved back over the text so the next call overwrites it.
func (r *Reporter) Report(done, total int64) {
	if r == nil || total <= 0 {
		return
	}
	fmt.Fprintf(r.out, "%7d%%%s", done*100/total, backspaces)
}

// Clear blanks out any progress text left on the terminal. Called once
// before exit so the final log line is not intermixed with a stale
// percentage.
func (r *Reporter) Clear() {
	if r == nil {
		return
	}
	fmt.Fprint(r.out, strings.Repeat(" ", progressWidth)+backspaces)
}
