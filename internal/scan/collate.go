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

package scan

import (
	"os"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NewCollator returns a collator for the locale named by the environment
// (LC_ALL, LC_COLLATE, LANG, first non-empty). Numeric ordering is always
// enabled so "Episode 10" sorts after "Episode 9".
func NewCollator() *collate.Collator {
	return collate.New(localeTag(), collate.Numeric)
}

func localeTag() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		value := os.Getenv(key)
		if value == "" {
			continue
		}
		if value == "C" || value == "POSIX" {
			return language.Und
		}
		// "en_US.UTF-8" -> "en-US"
		if i := strings.IndexByte(value, '.'); i >= 0 {
			value = value[:i]
		}
		if tag, err := language.Parse(strings.ReplaceAll(value, "_", "-")); err == nil {
			return tag
		}
		return language.Und
	}
	return language.Und
}
