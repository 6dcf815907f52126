// Package testutil provides test utilities for nest-responses-generator,
// including a fully in-memory virtual filesystem for driving the scanners
// from inline TypeScript source.
package testutil

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/microsoft/typescript-go/shim/tspath"
	"github.com/microsoft/typescript-go/shim/vfs"
)

// MemFS is an in-memory vfs.FS. Unlike an overlay it is writable, so tests
// can observe generated output and mutate mtimes for staleness checks.
type MemFS struct {
	files  map[string]*memFile
	now    time.Time
	writes []string
}

type memFile struct {
	data    string
	modTime time.Time
}

var _ vfs.FS = (*MemFS)(nil)

// NewMemFS creates a MemFS seeded with the given files. All seeded files
// share one initial mtime.
func NewMemFS(files map[string]string) *MemFS {
	m := &MemFS{
		files: make(map[string]*memFile, len(files)),
		now:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for path, data := range files {
		m.files[tspath.NormalizePath(path)] = &memFile{data: data, modTime: m.now}
	}
	return m
}

// Writes returns the paths written through WriteFile, in call order.
func (m *MemFS) Writes() []string {
	return m.writes
}

// Tick advances the filesystem clock so later writes get newer mtimes.
func (m *MemFS) Tick() {
	m.now = m.now.Add(time.Second)
}

func (m *MemFS) UseCaseSensitiveFileNames() bool {
	return true
}

func (m *MemFS) FileExists(path string) bool {
	_, ok := m.files[tspath.NormalizePath(path)]
	return ok
}

func (m *MemFS) ReadFile(path string) (contents string, ok bool) {
	f, ok := m.files[tspath.NormalizePath(path)]
	if !ok {
		return "", false
	}
	return f.data, true
}

func (m *MemFS) DirectoryExists(path string) bool {
	prefix := dirPrefix(path)
	for p := range m.files {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

func (m *MemFS) GetAccessibleEntries(path string) (result vfs.Entries) {
	prefix := dirPrefix(path)
	dirs := map[string]bool{}
	for p := range m.files {
		rest, found := strings.CutPrefix(p, prefix)
		if !found {
			continue
		}
		if before, _, nested := strings.Cut(rest, "/"); nested {
			dirs[before] = true
		} else {
			result.Files = append(result.Files, rest)
		}
	}
	for d := range dirs {
		result.Directories = append(result.Directories, d)
	}
	sort.Strings(result.Files)
	sort.Strings(result.Directories)
	return result
}

type memFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

var (
	_ fs.FileInfo = (*memFileInfo)(nil)
	_ fs.DirEntry = (*memFileInfo)(nil)
)

func (fi *memFileInfo) IsDir() bool                { return fi.mode.IsDir() }
func (fi *memFileInfo) ModTime() time.Time         { return fi.modTime }
func (fi *memFileInfo) Mode() fs.FileMode          { return fi.mode }
func (fi *memFileInfo) Name() string               { return fi.name }
func (fi *memFileInfo) Size() int64                { return fi.size }
func (fi *memFileInfo) Sys() any                   { return nil }
func (fi *memFileInfo) Info() (fs.FileInfo, error) { return fi, nil }
func (fi *memFileInfo) Type() fs.FileMode          { return fi.mode.Type() }

func (m *MemFS) Stat(path string) vfs.FileInfo {
	normalized := tspath.NormalizePath(path)
	if f, ok := m.files[normalized]; ok {
		return &memFileInfo{
			name:    baseName(normalized),
			size:    int64(len(f.data)),
			modTime: f.modTime,
		}
	}
	if m.DirectoryExists(path) {
		return &memFileInfo{name: baseName(normalized), mode: fs.ModeDir}
	}
	return nil
}

func (m *MemFS) WalkDir(root string, walkFn vfs.WalkDirFunc) error {
	normalized := tspath.NormalizePath(root)
	if err := walkFn(normalized, &memFileInfo{name: baseName(normalized), mode: fs.ModeDir}, nil); err != nil {
		if err == fs.SkipDir {
			return nil
		}
		return err
	}

	prefix := dirPrefix(root)
	var paths []string
	for p := range m.files {
		if strings.HasPrefix(p, prefix) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)

	var skipped []string
	visitedDirs := map[string]bool{}
	for _, p := range paths {
		if underSkippedDir(p, skipped) {
			continue
		}

		// Emit intermediate directories before their files so walkers can
		// prune subtrees with fs.SkipDir.
		rel := strings.TrimPrefix(p, prefix)
		parts := strings.Split(rel, "/")
		dir := strings.TrimSuffix(prefix, "/")
		pruned := false
		for _, part := range parts[:len(parts)-1] {
			dir = dir + "/" + part
			if visitedDirs[dir] {
				continue
			}
			visitedDirs[dir] = true
			err := walkFn(dir, &memFileInfo{name: part, mode: fs.ModeDir}, nil)
			if err == fs.SkipDir {
				skipped = append(skipped, dir+"/")
				pruned = true
				break
			}
			if err != nil {
				return err
			}
		}
		if pruned {
			continue
		}

		f := m.files[p]
		entry := &memFileInfo{name: baseName(p), size: int64(len(f.data)), modTime: f.modTime}
		if err := walkFn(p, entry, nil); err != nil {
			if err == fs.SkipDir {
				skipped = append(skipped, parentDir(p)+"/")
				continue
			}
			return err
		}
	}
	return nil
}

func (m *MemFS) Realpath(path string) string {
	return tspath.NormalizePath(path)
}

func (m *MemFS) WriteFile(path string, data string, writeByteOrderMark bool) error {
	if writeByteOrderMark {
		data = "\uFEFF" + data
	}
	normalized := tspath.NormalizePath(path)
	m.files[normalized] = &memFile{data: data, modTime: m.now}
	m.writes = append(m.writes, normalized)
	return nil
}

func (m *MemFS) Remove(path string) error {
	normalized := tspath.NormalizePath(path)
	if _, ok := m.files[normalized]; !ok {
		return fmt.Errorf("remove %s: file does not exist", path)
	}
	delete(m.files, normalized)
	return nil
}

func (m *MemFS) Chtimes(path string, aTime time.Time, mTime time.Time) error {
	normalized := tspath.NormalizePath(path)
	f, ok := m.files[normalized]
	if !ok {
		return fmt.Errorf("chtimes %s: file does not exist", path)
	}
	f.modTime = mTime
	return nil
}

func dirPrefix(path string) string {
	normalized := tspath.NormalizePath(path)
	if !strings.HasSuffix(normalized, "/") {
		normalized += "/"
	}
	return normalized
}

func baseName(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

func parentDir(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		return path[:idx]
	}
	return ""
}

func underSkippedDir(path string, skipped []string) bool {
	for _, s := range skipped {
		if strings.HasPrefix(path, s) {
			return true
		}
	}
	return false
}
