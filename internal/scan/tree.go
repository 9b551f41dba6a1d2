package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// DefaultTreeDepth bounds how deep the rendered project tree goes.
	DefaultTreeDepth = 5
	// DefaultTreeEntries bounds how many lines the rendered tree may hold.
	DefaultTreeEntries = 400
)

// treeSkipDirs are pruned from the tree listing in addition to any hidden
// directory. Looser than the walk skip list: the tree is context for the
// design scene, not a chunking source.
var treeSkipDirs = map[string]bool{
	"node_modules": true, "build": true, "dist": true,
	"target": true, "__pycache__": true,
}

// BuildProjectTree renders an indented textual tree of the repository:
// directories with a trailing slash, supported source files beneath them.
// The listing stops after maxEntries lines with a truncation marker and
// never descends past maxDepth.
func BuildProjectTree(root string, maxDepth, maxEntries int) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	lines := []string{filepath.Base(abs) + "/"}
	truncated := walkTree(abs, 1, maxDepth, maxEntries, &lines)
	if truncated {
		lines = append(lines, "  ... (truncated)")
	}
	return strings.Join(lines, "\n")
}

// walkTree appends one directory level to lines and reports whether the
// entry budget ran out.
func walkTree(dir string, depth, maxDepth, maxEntries int, lines *[]string) bool {
	if depth > maxDepth {
		return false
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}

	var subdirs, files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			if strings.HasPrefix(name, ".") || treeSkipDirs[name] {
				continue
			}
			subdirs = append(subdirs, name)
			continue
		}
		if SupportedExts[strings.ToLower(filepath.Ext(name))] {
			files = append(files, name)
		}
	}
	sort.Strings(subdirs)
	sort.Strings(files)

	indent := strings.Repeat("  ", depth)
	for _, f := range files {
		if len(*lines) >= maxEntries {
			return true
		}
		*lines = append(*lines, indent+f)
	}
	for _, d := range subdirs {
		if len(*lines) >= maxEntries {
			return true
		}
		*lines = append(*lines, indent+d+"/")
		if walkTree(filepath.Join(dir, d), depth+1, maxDepth, maxEntries, lines) {
			return true
		}
	}
	return false
}
