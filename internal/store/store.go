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

// Package store persists declared CRC tags in one of several locations:
// a bracketed token in the file name or a named extended attribute.
package store

import (
	"fmt"

	"github.com/animecrc/animecrc/internal/ui"
)

// TagStore reads, writes and removes a declared CRC from one storage
// medium. Stores may rename the file; callers must always continue with
// the returned path.
type TagStore interface {
	// Name identifies the store in diagnostics and store-list flags.
	Name() string

	// DeclaredCRC returns the CRC recorded for the file, uppercased,
	// or ok=false when the store holds no tag for it.
	DeclaredCRC(path string) (crc string, ok bool)

	// SetDeclaredCRC records the CRC and returns the file's path
	// afterwards, which differs from the input if the store renames.
	SetDeclaredCRC(path, crc string) (newPath string, err error)

	// UnsetDeclaredCRC removes any recorded CRC. It reports whether a
	// tag was actually removed and returns the resulting path.
	UnsetDeclaredCRC(path string) (removed bool, newPath string, err error)

	// FileRepr renders the file for a report line, highlighting the
	// declared CRC with the given tone.
	FileRepr(path string, tone ui.Tone, crc string) string
}

// ConfigError reports an unusable store configuration, such as an unknown
// store name or a store the platform cannot support. It is fatal before
// any file is processed.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return e.msg
}

func configErrorf(format string, a ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, a...)}
}
