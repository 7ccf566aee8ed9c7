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

// Package scan expands the command line's path arguments into the flat,
// ordered file list the operations iterate.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"golang.org/x/text/collate"

	"github.com/animecrc/animecrc/internal/ui"
)

// Noise entries produced by desktop environments and NAS appliances.
// Matched directories are pruned from the walk entirely.
var (
	defaultIgnoreDirs = []*regexp.Regexp{
		regexp.MustCompile(`^@eaDir$`),
		regexp.MustCompile(`^\.Trash-[0-9]+$`),
		regexp.MustCompile(`^#recycle$`),
		regexp.MustCompile(`^__MACOSX$`),
	}
	defaultIgnoreFiles = []*regexp.Regexp{
		regexp.MustCompile(`^desktop\.ini$`),
		regexp.MustCompile(`^Thumbs\.db$`),
		regexp.MustCompile(`^\.DS_Store$`),
		regexp.MustCompile(`^\.directory$`),
	}
)

// Filter decides which directory entries recursion skips.
type Filter struct {
	dirs  []*regexp.Regexp
	files []*regexp.Regexp
}

// NewFilter builds a filter from the built-in noise patterns plus any
// extra patterns from the configuration file.
func NewFilter(extraDirs, extraFiles []string) (*Filter, error) {
	f := &Filter{
		dirs:  slices.Clone(defaultIgnoreDirs),
		files: slices.Clone(defaultIgnoreFiles),
	}
	for _, p := range extraDirs {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("bad ignore_dirs pattern %q: %w", p, err)
		}
		f.dirs = append(f.dirs, re)
	}
	for _, p := range extraFiles {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("bad ignore_files pattern %q: %w", p, err)
		}
		f.files = append(f.files, re)
	}
	return f, nil
}

func (f *Filter) ignoreDir(name string) bool {
	return matchAny(f.dirs, name)
}

func (f *Filter) ignoreFile(name string) bool {
	return matchAny(f.files, name)
}

func matchAny(patterns []*regexp.Regexp, name string) bool {
	for _, re := range patterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// Expand partitions the input paths into direct files and directories.
// Direct files come first, in their original order. With recursion
// enabled each directory is walked depth-first; without it directories
// are silently dropped. Entries at each level are sorted with the
// collator so output order matches user expectations regardless of the
// filesystem's native ordering.
func Expand(paths []string, recursive bool, f *Filter, coll *collate.Collator) []string {
	var files, dirs []string
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			dirs = append(dirs, p)
		} else {
			// Nonexistent paths stay in the list; the per-file
			// open error is reported later.
			files = append(files, p)
		}
	}

	if !recursive {
		return files
	}

	for _, dir := range dirs {
		files = walk(dir, f, coll, files)
	}
	return files
}

func walk(root string, f *Filter, coll *collate.Collator, out []string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		ui.Debugf("cannot read directory %s: %v", root, err)
		return out
	}

	var names, subdirs []string
	for _, e := range entries {
		if e.IsDir() {
			if !f.ignoreDir(e.Name()) {
				subdirs = append(subdirs, e.Name())
			}
		} else if !f.ignoreFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	slices.SortFunc(names, coll.CompareString)
	slices.SortFunc(subdirs, coll.CompareString)

	for _, name := range names {
		out = append(out, filepath.Join(root, name))
	}
	for _, sub := range subdirs {
		out = walk(filepath.Join(root, sub), f, coll, out)
	}
	return out
}
