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
	"strings"

	"github.com/pkg/xattr"

	"github.com/animecrc/animecrc/internal/ui"
)

// xattrKey is the extended attribute holding the declared CRC. The name
// is inherited from the nekcrc lineage of this tool and kept for
// compatibility with existing tagged collections.
const xattrKey = "user.nekcrc"

// XattrSupported reports whether the platform can store tags in extended
// attributes at all.
func XattrSupported() bool {
	return xattr.XATTR_SUPPORTED
}

// Xattr stores the declared CRC in the user.nekcrc extended attribute.
// The file is never renamed.
type Xattr struct{}

// NewXattr returns the xattr tag store, or a ConfigError on platforms
// without extended attribute support.
func NewXattr() (*Xattr, error) {
	if !XattrSupported() {
		return nil, configErrorf("the 'xattr' store is not supported on this platform")
	}
	return &Xattr{}, nil
}

func (*Xattr) Name() string {
	return "xattr"
}

func (*Xattr) DeclaredCRC(path string) (string, bool) {
	// Any read failure (attribute absent, filesystem without xattr
	// support) means no tag, not an error.
	value, err := xattr.Get(path, xattrKey)
	if err != nil || len(value) == 0 {
		return "", false
	}
	return strings.ToUpper(strings.TrimSpace(string(value))), true
}

func (s *Xattr) SetDeclaredCRC(path, crc string) (string, error) {
	if err := xattr.Set(path, xattrKey, []byte(crc)); err != nil {
		return path, fmt.Errorf("set xattr on %s: %w", path, err)
	}
	ui.Infof("%s (%s)", path, crc)
	return path, nil
}

func (s *Xattr) UnsetDeclaredCRC(path string) (bool, string, error) {
	if err := xattr.Remove(path, xattrKey); err != nil {
		// Attribute was not there; nothing removed.
		return false, path, nil
	}
	ui.Infof("%s (removed CRC xattr)", path)
	return true, path, nil
}

func (*Xattr) FileRepr(path string, tone ui.Tone, crc string) string {
	return fmt.Sprintf("%s (%s)", path, ui.Paint(tone, crc))
}
