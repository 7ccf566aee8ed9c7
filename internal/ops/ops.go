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

// Package ops implements the three top-level operations: checking files
// against their declared CRCs, tagging untagged files, and removing tags.
// Files are processed one at a time; every per-file error is logged and
// the batch continues.
package ops

import (
	"context"
	"errors"
	"strings"

	"github.com/animecrc/animecrc/internal/checksum"
	"github.com/animecrc/animecrc/internal/store"
	"github.com/animecrc/animecrc/internal/ui"
)

// ErrInterrupted is returned when the user cancels a batch. The process
// exits nonzero, like a mismatch.
var ErrInterrupted = errors.New("interrupted")

// Options carries the per-invocation settings shared by the operations.
type Options struct {
	// WarnNoCRC raises the "no CRC tag" line from info to warning.
	WarnNoCRC bool

	// Progress receives byte counts while checksumming; nil disables
	// progress reporting.
	Progress *ui.Reporter
}

// Check verifies each file against its declared CRC. It returns whether
// any mismatch was found; the flag is sticky across the batch.
func Check(ctx context.Context, files []string, readChain *store.Chain, opt Options) (bool, error) {
	mismatchFound := false

	for _, path := range files {
		if ctx.Err() != nil {
			return mismatchFound, ErrInterrupted
		}

		declared, src, ok := readChain.DeclaredCRC(path)
		if !ok {
			if opt.WarnNoCRC {
				ui.Warnf("%s does not have a CRC tag", path)
			} else {
				ui.Infof("%s does not have a CRC tag", path)
			}
			continue
		}

		computed, err := checksum.Compute(path, opt.Progress)
		if err != nil {
			ui.Errorf("%v", err)
			continue
		}

		if strings.EqualFold(computed, declared) {
			ui.Infof("%s  %s",
				ui.Paint(ui.ToneMatch, computed),
				src.FileRepr(path, ui.ToneMatch, declared))
		} else {
			mismatchFound = true
			ui.Warnf("%s  %s",
				ui.Paint(ui.ToneMismatch, computed),
				src.FileRepr(path, ui.ToneMismatch, declared))
		}
	}

	return mismatchFound, nil
}

// Tag computes and writes a CRC tag for each file that has none yet.
func Tag(ctx context.Context, files []string, readChain, writeChain *store.Chain, opt Options) error {
	for _, path := range files {
		if ctx.Err() != nil {
			return ErrInterrupted
		}

		if _, src, ok := readChain.DeclaredCRC(path); ok {
			ui.Debugf("%s already has a CRC declared with the %q store", path, src.Name())
			continue
		}

		computed, err := checksum.Compute(path, opt.Progress)
		if err != nil {
			ui.Errorf("%v", err)
			continue
		}

		if _, err := writeChain.SetDeclaredCRC(path, computed); err != nil {
			ui.Errorf("%v", err)
		}
	}
	return nil
}

// Untag removes CRC tags from each file via the write chain.
func Untag(ctx context.Context, files []string, writeChain *store.Chain) error {
	for _, path := range files {
		if ctx.Err() != nil {
			return ErrInterrupted
		}

		removed, newPath, err := writeChain.UnsetDeclaredCRC(path)
		if err != nil {
			ui.Errorf("%v", err)
			continue
		}
		if !removed {
			ui.Infof("%s has no CRC tags to remove", newPath)
		}
	}
	return nil
}
