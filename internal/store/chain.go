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

// Chain composes an ordered list of tag stores. Reads take the first
// store that has a tag; writes and removals are applied to every store
// in order, threading the possibly-renamed path from one store to the
// next.
type Chain struct {
	stores []TagStore
}

// NewChain builds a chain over the given stores. Order is significant.
func NewChain(stores ...TagStore) *Chain {
	return &Chain{stores: stores}
}

// DeclaredCRC probes the stores in order and returns the first declared
// CRC together with the store it came from. Later stores are not probed.
func (c *Chain) DeclaredCRC(path string) (string, TagStore, bool) {
	for _, s := range c.stores {
		if crc, ok := s.DeclaredCRC(path); ok {
			return crc, s, true
		}
	}
	return "", nil, false
}

// SetDeclaredCRC writes the CRC through every store. A renaming store
// hands the new path to the stores after it, so an attribute written
// later lands on the renamed file.
func (c *Chain) SetDeclaredCRC(path, crc string) (string, error) {
	for _, s := range c.stores {
		newPath, err := s.SetDeclaredCRC(path, crc)
		if err != nil {
			return newPath, err
		}
		path = newPath
	}
	return path, nil
}

// UnsetDeclaredCRC removes the tag from every store, reporting whether
// any store actually removed one.
func (c *Chain) UnsetDeclaredCRC(path string) (bool, string, error) {
	removedAny := false
	for _, s := range c.stores {
		removed, newPath, err := s.UnsetDeclaredCRC(path)
		if err != nil {
			return removedAny, newPath, err
		}
		removedAny = removedAny || removed
		path = newPath
	}
	return removedAny, path, nil
}
