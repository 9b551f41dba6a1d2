// Package scan walks a target repository and turns its files into the
// inputs the generation pipeline needs: line-numbered text, a bounded
// project tree, and manifest dependency lists.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SupportedExts lists the source file extensions the pipeline samples from.
var SupportedExts = map[string]bool{
	".py": true, ".js": true, ".ts": true, ".java": true, ".kt": true,
	".go": true, ".cpp": true, ".c": true, ".cs": true, ".rs": true,
	".swift": true, ".php": true, ".rb": true, ".h": true,
}

// skipDirs are build/VCS directories excluded from every walk.
var skipDirs = map[string]bool{
	".git": true, ".idea": true, ".vscode": true,
	"node_modules": true, "build": true, "dist": true,
	"target": true, "__pycache__": true,
}

// FileVisit carries per-file metadata to walk callbacks.
type FileVisit struct {
	// Repo-relative path using forward slashes (e.g. "src/app.go").
	Path string
	// Absolute filesystem path.
	AbsPath string
	// Lowercased extension including the dot (e.g. ".go").
	Ext string
	// File size in bytes; 0 when stat fails.
	Size int64
}

// Walk visits every supported source file under root in lexical order,
// skipping build and VCS directories. A non-nil error from visit stops the
// walk and is returned as-is.
func Walk(root string, visit func(FileVisit) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !SupportedExts[ext] {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		size := int64(0)
		if fi, e := os.Stat(path); e == nil {
			size = fi.Size()
		}
		return visit(FileVisit{
			Path:    filepath.ToSlash(rel),
			AbsPath: path,
			Ext:     ext,
			Size:    size,
		})
	})
}

// ListFiles returns the sorted unique relative paths of every supported
// source file under root.
func ListFiles(root string) ([]string, error) {
	seen := map[string]bool{}
	err := Walk(root, func(f FileVisit) error {
		seen[f.Path] = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths, nil
}
