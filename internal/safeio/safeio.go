// Package safeio restricts filesystem reads to a fixed repository root so a
// scan can never follow a path outside the tree it was pointed at.
package safeio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// RepoFS provides read-only helpers that resolve paths relative to a fixed
// root. The root is resolved to an absolute, symlink-free directory once at
// construction time.
type RepoFS struct {
	absRoot string
}

// New locks all future operations to the given root directory.
func New(root string) (*RepoFS, error) {
	if root == "" {
		return nil, errors.New("safeio: empty root")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.New("safeio: root is not a directory")
	}
	return &RepoFS{absRoot: abs}, nil
}

// Root returns the absolute root directory bound to this filesystem.
func (r *RepoFS) Root() string {
	if r == nil {
		return ""
	}
	return r.absRoot
}

// ReadFile reads a file relative to the root.
func (r *RepoFS) ReadFile(userPath string) ([]byte, error) {
	p, err := r.resolve(userPath)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, errors.New("safeio: path is a directory")
	}
	return os.ReadFile(p)
}

// Stat returns metadata for a file or directory under the root.
func (r *RepoFS) Stat(userPath string) (fs.FileInfo, error) {
	p, err := r.resolve(userPath)
	if err != nil {
		return nil, err
	}
	return os.Stat(p)
}

// ReadDir lists entries for a directory relative to the root.
func (r *RepoFS) ReadDir(userPath string) ([]fs.DirEntry, error) {
	p, err := r.resolve(userPath)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.New("safeio: path is not a directory")
	}
	return os.ReadDir(p)
}

func (r *RepoFS) resolve(userPath string) (string, error) {
	if r == nil {
		return "", errors.New("safeio: filesystem not configured")
	}
	if userPath == "" {
		return "", errors.New("safeio: empty path")
	}
	clean := filepath.Clean(userPath)
	if clean == "." {
		return r.absRoot, nil
	}
	if !filepath.IsAbs(clean) {
		if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return "", errors.New("safeio: path traversal not allowed")
		}
		clean = filepath.Join(r.absRoot, clean)
	}
	resolved, err := filepath.EvalSymlinks(clean)
	if err != nil {
		return "", err
	}
	if !withinRoot(resolved, r.absRoot) {
		return "", fmt.Errorf("safeio: resolved outside root (root=%s, path=%s)", r.absRoot, resolved)
	}
	return resolved, nil
}

func withinRoot(path, root string) bool {
	path = filepath.Clean(path)
	root = filepath.Clean(root)
	if path == root {
		return true
	}
	sep := string(os.PathSeparator)
	if !strings.HasSuffix(root, sep) {
		root += sep
	}
	return strings.HasPrefix(path, root)
}
