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

package checksum

import (
	"bytes"
	"errors"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"
	"testing"

	"github.com/animecrc/animecrc/internal/ui"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestComputeKnownValue(t *testing.T) {
	// CRC32 of "123456789" is the classic check value CBF43926.
	path := writeFile(t, "check.bin", []byte("123456789"))

	got, err := Compute(path, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got != "CBF43926" {
		t.Errorf("Compute = %q, want %q", got, "CBF43926")
	}
}

func TestComputeMultiChunk(t *testing.T) {
	// Larger than two chunks so the streaming accumulation is exercised.
	data := make([]byte, 3*chunkSize+17)
	for i := range data {
		data[i] = byte(i % 251)
	}
	path := writeFile(t, "big.bin", data)

	got, err := Compute(path, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	want := fmt.Sprintf("%08X", crc32.ChecksumIEEE(data))
	if got != want {
		t.Errorf("Compute = %q, want %q", got, want)
	}
}

func TestComputeZeroPadded(t *testing.T) {
	// Whatever the value, formatting must always yield eight digits.
	data := []byte("\x9b\xe8\x81\x4d")
	path := writeFile(t, "pad.bin", data)

	got, err := Compute(path, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(got) != 8 {
		t.Errorf("Compute = %q, want 8 hex digits", got)
	}
	want := fmt.Sprintf("%08X", crc32.ChecksumIEEE(data))
	if got != want {
		t.Errorf("Compute = %q, want %q", got, want)
	}
}

func TestComputeEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.bin", nil)

	_, err := Compute(path, nil)
	if !errors.Is(err, ErrEmptyFile) {
		t.Errorf("Compute(empty) error = %v, want ErrEmptyFile", err)
	}
}

func TestComputeMissingFile(t *testing.T) {
	_, err := Compute(filepath.Join(t.TempDir(), "nope.bin"), nil)
	if err == nil {
		t.Fatal("Compute(missing) expected error")
	}
	if errors.Is(err, ErrEmptyFile) {
		t.Error("Compute(missing) should not report ErrEmptyFile")
	}
}

func TestComputeReportsProgress(t *testing.T) {
	data := make([]byte, chunkSize+chunkSize/2)
	path := writeFile(t, "prog.bin", data)

	var buf bytes.Buffer
	if _, err := Compute(path, ui.NewReporter(&buf)); err != nil {
		t.Fatalf("Compute: %v", err)
	}
	out := buf.String()
	if !bytes.Contains([]byte(out), []byte("100%")) {
		t.Errorf("progress output %q does not reach 100%%", out)
	}
	if !bytes.Contains([]byte(out), []byte("\b")) {
		t.Errorf("progress output %q does not rewind the cursor", out)
	}
}
