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
	"path/filepath"
	"slices"
	"testing"
)

func defaultFilter(t *testing.T) *Filter {
	t.Helper()
	f, err := NewFilter(nil, nil)
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}
	return f
}

func mkTree(t *testing.T, root string, dirs, files []string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
	}
	for _, f := range files {
		path := filepath.Join(root, f)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
}

func TestExpandNonRecursiveDropsDirectories(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, []string{"season1"}, []string{"a.mkv", "season1/b.mkv"})

	direct := filepath.Join(root, "a.mkv")
	got := Expand([]string{direct, filepath.Join(root, "season1")}, false,
		defaultFilter(t), NewCollator())

	if !slices.Equal(got, []string{direct}) {
		t.Errorf("Expand = %v, want only the direct file", got)
	}
}

func TestExpandFiltersNoiseEntries(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root,
		[]string{"@eaDir", ".Trash-1000", "#recycle", "__MACOSX"},
		[]string{
			"show.mkv",
			"Thumbs.db",
			"desktop.ini",
			".DS_Store",
			".directory",
			"@eaDir/thumb.mkv",
			".Trash-1000/deleted.mkv",
			"#recycle/old.mkv",
			"__MACOSX/._junk.mkv",
		})

	got := Expand([]string{root}, true, defaultFilter(t), NewCollator())

	want := []string{filepath.Join(root, "show.mkv")}
	if !slices.Equal(got, want) {
		t.Errorf("Expand = %v, want %v", got, want)
	}
}

func TestExpandDirectFilesKeepInputOrder(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, []string{"sub"}, []string{"z.mkv", "a.mkv", "sub/inner.mkv"})

	z := filepath.Join(root, "z.mkv")
	a := filepath.Join(root, "a.mkv")
	got := Expand([]string{z, a, filepath.Join(root, "sub")}, true,
		defaultFilter(t), NewCollator())

	want := []string{z, a, filepath.Join(root, "sub", "inner.mkv")}
	if !slices.Equal(got, want) {
		t.Errorf("Expand = %v, want direct files first in input order: %v", got, want)
	}
}

func TestExpandNumericOrdering(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, nil, []string{
		"Episode 10.mkv",
		"Episode 9.mkv",
		"Episode 1.mkv",
	})

	got := Expand([]string{root}, true, defaultFilter(t), NewCollator())

	want := []string{
		filepath.Join(root, "Episode 1.mkv"),
		filepath.Join(root, "Episode 9.mkv"),
		filepath.Join(root, "Episode 10.mkv"),
	}
	if !slices.Equal(got, want) {
		t.Errorf("Expand = %v, want numeric order %v", got, want)
	}
}

func TestExpandWalksDepthFirst(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, nil, []string{
		"top.mkv",
		"a/one.mkv",
		"a/deep/two.mkv",
		"b/three.mkv",
	})

	got := Expand([]string{root}, true, defaultFilter(t), NewCollator())

	want := []string{
		filepath.Join(root, "top.mkv"),
		filepath.Join(root, "a", "one.mkv"),
		filepath.Join(root, "a", "deep", "two.mkv"),
		filepath.Join(root, "b", "three.mkv"),
	}
	if !slices.Equal(got, want) {
		t.Errorf("Expand = %v, want %v", got, want)
	}
}

func TestExpandKeepsMissingPaths(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "ghost.mkv")

	got := Expand([]string{missing}, true, defaultFilter(t), NewCollator())

	if !slices.Equal(got, []string{missing}) {
		t.Errorf("Expand = %v, want the missing path kept for later reporting", got)
	}
}

func TestNewFilterExtraPatterns(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, []string{"cache"}, []string{"show.mkv", "notes.txt", "cache/c.mkv"})

	f, err := NewFilter([]string{`^cache$`}, []string{`\.txt$`})
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}

	got := Expand([]string{root}, true, f, NewCollator())
	want := []string{filepath.Join(root, "show.mkv")}
	if !slices.Equal(got, want) {
		t.Errorf("Expand = %v, want %v", got, want)
	}
}

func TestNewFilterBadPattern(t *testing.T) {
	if _, err := NewFilter([]string{"("}, nil); err == nil {
		t.Error("NewFilter with invalid pattern expected error")
	}
}
