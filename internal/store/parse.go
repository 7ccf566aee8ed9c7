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

import "strings"

// Parse turns a comma-separated store-name list ("filename,xattr") into
// the corresponding chain of stores, preserving order. Unknown names and
// stores the platform cannot provide yield a ConfigError.
func Parse(list string) (*Chain, error) {
	var stores []TagStore
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		switch name {
		case "filename":
			stores = append(stores, NewFilename())
		case "xattr":
			s, err := NewXattr()
			if err != nil {
				return nil, err
			}
			stores = append(stores, s)
		default:
			return nil, configErrorf("unknown tag store %q (available: filename, xattr)", name)
		}
	}
	return NewChain(stores...), nil
}
