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
	"errors"
	"testing"
)

func TestParseFilename(t *testing.T) {
	chain, err := Parse("filename")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(chain.stores) != 1 || chain.stores[0].Name() != "filename" {
		t.Errorf("Parse(filename) = %v stores", len(chain.stores))
	}
}

func TestParseOrderPreserved(t *testing.T) {
	if !XattrSupported() {
		t.Skip("platform has no xattr support")
	}
	chain, err := Parse("xattr,filename")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(chain.stores) != 2 {
		t.Fatalf("Parse = %d stores, want 2", len(chain.stores))
	}
	if chain.stores[0].Name() != "xattr" || chain.stores[1].Name() != "filename" {
		t.Errorf("Parse order = [%s, %s], want [xattr, filename]",
			chain.stores[0].Name(), chain.stores[1].Name())
	}
}

func TestParseUnknownStore(t *testing.T) {
	_, err := Parse("filename,sqlite")
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("Parse(unknown) error = %v, want ConfigError", err)
	}
}
