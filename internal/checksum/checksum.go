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

// Package checksum computes streaming CRC32 values over file contents.
package checksum

import (
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"os"

	"github.com/animecrc/animecrc/internal/ui"
)

// chunkSize bounds memory usage while keeping read syscalls amortized.
const chunkSize = 64 * 1024

// ErrEmptyFile is returned for zero-byte files, which have no meaningful
// CRC tag. Callers log it and skip the file.
var ErrEmptyFile = errors.New("file is empty")

// Compute reads the file sequentially and returns its CRC32 as eight
// uppercase hex digits. Progress, if non-nil, receives the byte count
// after every chunk.
func Compute(path string, progress *ui.Reporter) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	size := info.Size()
	if size == 0 {
		return "", fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}

	var crc uint32
	var done int64
	buf := make([]byte, chunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			crc = crc32.Update(crc, crc32.IEEETable, buf[:n])
			done += int64(n)
			progress.Report(done, size)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
	}

	return fmt.Sprintf("%08X", crc), nil
}
