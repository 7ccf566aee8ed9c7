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

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/animecrc/animecrc/internal/config"
	"github.com/animecrc/animecrc/internal/scan"
	"github.com/animecrc/animecrc/internal/store"
	"github.com/animecrc/animecrc/internal/ui"
)

// session holds everything a command invocation needs, assembled once
// before any file is touched so configuration errors abort early.
type session struct {
	cfg        *config.Config
	files      []string
	readChain  *store.Chain
	writeChain *store.Chain
	progress   *ui.Reporter
}

func newSession(args []string) (*session, error) {
	cfg, err := config.Load(flagConfig, store.XattrSupported())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errConfiguration, err)
	}

	if !store.XattrSupported() && !flagQuietXattr && !cfg.QuietXattr {
		ui.Warnf("extended attributes are not supported here, no 'xattr' store support")
	}

	readChain, err := store.Parse(resolveSpec(flagReadFrom, cfg.ReadFrom))
	if err != nil {
		return nil, err
	}
	writeChain, err := store.Parse(resolveSpec(flagWriteTo, cfg.WriteTo))
	if err != nil {
		return nil, err
	}

	filter, err := scan.NewFilter(cfg.IgnoreDirs, cfg.IgnoreFiles)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errConfiguration, err)
	}

	s := &session{
		cfg:        cfg,
		files:      scan.Expand(args, flagRecursive, filter, scan.NewCollator()),
		readChain:  readChain,
		writeChain: writeChain,
	}
	if progressEnabled(cfg) {
		s.progress = ui.NewReporter(os.Stderr)
	}
	return s, nil
}

// resolveSpec prefers the flag value over the configured default list.
func resolveSpec(flagValue string, fallback []string) string {
	if flagValue != "" {
		return flagValue
	}
	return strings.Join(fallback, ",")
}

// progressEnabled decides whether the percentage indicator is shown.
// In auto mode it requires both stdout and stderr to be terminals, so
// redirecting either stream never pollutes it with control characters.
func progressEnabled(cfg *config.Config) bool {
	if flagNoProgress {
		return false
	}
	switch cfg.Progress {
	case "always":
		return true
	case "never":
		return false
	}
	return ui.StdoutIsTTY && ui.StderrIsTTY
}
