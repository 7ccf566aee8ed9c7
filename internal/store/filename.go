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

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/animecrc/animecrc/internal/ui"
)

var (
	// A declared CRC is a single bracketed run of exactly 8 hex digits,
	// e.g. "Show - 01 [A1B2C3D4].mkv". The leftmost token wins when a
	// name carries more than one.
	crcToken = regexp.MustCompile(`\[([0-9A-Fa-f]{8})\]`)

	// Strip variant that also eats the conventional space before the
	// bracket so removal restores the original name.
	crcTokenSpaced = regexp.MustCompile(` ?\[[0-9A-Fa-f]{8}\]`)

	// Report-line split: everything up to the CRC digits, the digits,
	// and the rest.
	crcTokenRepr = regexp.MustCompile(`^(.*\[)([0-9A-Fa-f]{8})(\].*)$`)
)

// longExtensions are multi-part extensions kept as one unit when the name
// is split for tag insertion.
var longExtensions = []string{".tar.gz", ".tar.bz", ".tar.xz"}

// SplitExtension splits a base name into (stem, extension). The extension
// either starts with a dot or is empty. A name with only a leading dot is
// a hidden file, not an extension.
func SplitExtension(name string) (string, string) {
	for _, ext := range longExtensions {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext), ext
		}
	}
	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return name, ""
	}
	return name[:i], name[i:]
}

// Filename stores the declared CRC as a bracketed token in the file's
// base name, renaming the file to write or remove it.
type Filename struct{}

// NewFilename returns the filename tag store.
func NewFilename() *Filename {
	return &Filename{}
}

func (*Filename) Name() string {
	return "filename"
}

func (*Filename) DeclaredCRC(path string) (string, bool) {
	m := crcToken.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return "", false
	}
	return strings.ToUpper(m[1]), true
}

func (s *Filename) SetDeclaredCRC(path, crc string) (string, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	stem, ext := SplitExtension(stripToken(base))
	newPath := filepath.Join(dir, fmt.Sprintf("%s [%s]%s", stem, crc, ext))

	if err := rename(path, newPath); err != nil {
		return path, err
	}
	return newPath, nil
}

func (s *Filename) UnsetDeclaredCRC(path string) (bool, string, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	stripped := stripToken(base)
	if stripped == base {
		return false, path, nil
	}
	newPath := filepath.Join(dir, stripped)
	if err := rename(path, newPath); err != nil {
		return false, path, err
	}
	return true, newPath, nil
}

func (*Filename) FileRepr(path string, tone ui.Tone, crc string) string {
	m := crcTokenRepr.FindStringSubmatch(path)
	if m == nil {
		return path
	}
	return m[1] + ui.Paint(tone, m[2]) + m[3]
}

// stripToken removes every bracketed CRC token (and its leading space)
// from a base name.
func stripToken(base string) string {
	return crcTokenSpaced.ReplaceAllString(base, "")
}

func rename(oldPath, newPath string) error {
	ui.Infof("%s -> %s", oldPath, newPath)
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("rename %s: %w", oldPath, err)
	}
	return nil
}
