package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"codefactory/internal/safeio"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestWalkSkipsBuildAndVCSDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/main.go", "package main\n")
	writeFile(t, root, ".git/objects/hook.go", "package hook\n")
	writeFile(t, root, "node_modules/pkg/index.js", "module.exports = {}\n")
	writeFile(t, root, "docs/readme.txt", "not code\n")

	var visited []string
	require.NoError(t, Walk(root, func(f FileVisit) error {
		visited = append(visited, f.Path)
		return nil
	}))
	require.Equal(t, []string{"src/main.go"}, visited)
}

func TestListFilesSortedUnique(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.py", "pass\n")
	writeFile(t, root, "a/a.go", "package a\n")
	writeFile(t, root, "a/z.rs", "fn main() {}\n")

	paths, err := ListFiles(root)
	require.NoError(t, err)
	require.Equal(t, []string{"a/a.go", "a/z.rs", "b.py"}, paths)
}

func newReader(t *testing.T, root string) *Reader {
	t.Helper()
	fsys, err := safeio.New(root)
	require.NoError(t, err)
	r, err := NewReader(fsys, 16)
	require.NoError(t, err)
	return r
}

func TestNumberedFormat(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.go", "package a\n\nfunc A() {}\n")

	r := newReader(t, root)
	got, err := r.Numbered("a.go")
	require.NoError(t, err)
	require.Equal(t, "1 | package a\n2 | \n3 | func A() {}", got)
}

func TestNumberedEmptyFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "empty.go", "")

	r := newReader(t, root)
	got, err := r.Numbered("empty.go")
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestRawFallsBackOnInvalidUTF8(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "weird.c", string([]byte{'i', 'n', 't', ' ', 0xff, ';', '\n'}))

	r := newReader(t, root)
	got, err := r.Raw("weird.c")
	require.NoError(t, err)
	require.Contains(t, got, "int")
	require.Contains(t, got, "ÿ")
}

func TestRawIsCached(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.go", "original\n")

	r := newReader(t, root)
	first, err := r.Raw("a.go")
	require.NoError(t, err)

	writeFile(t, root, "a.go", "rewritten\n")
	second, err := r.Raw("a.go")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestLanguageDetection(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.go", "package a\n")

	r := newReader(t, root)
	require.Equal(t, "Go", r.Language("a.go"))
}

func TestBuildProjectTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", "package main\n")
	writeFile(t, root, "pkg/util.go", "package pkg\n")
	writeFile(t, root, "node_modules/x/index.js", "x\n")
	writeFile(t, root, ".hidden/secret.go", "package secret\n")

	tree := BuildProjectTree(root, DefaultTreeDepth, DefaultTreeEntries)
	require.Contains(t, tree, filepath.Base(root)+"/")
	require.Contains(t, tree, "main.go")
	require.Contains(t, tree, "pkg/")
	require.Contains(t, tree, "util.go")
	require.NotContains(t, tree, "node_modules")
	require.NotContains(t, tree, ".hidden")
}

func TestBuildProjectTreeTruncates(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.go", "b.go", "c.go", "d.go", "e.go"} {
		writeFile(t, root, name, "package x\n")
	}
	tree := BuildProjectTree(root, DefaultTreeDepth, 3)
	require.Contains(t, tree, "... (truncated)")
}

func TestExtractManifestDeps(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "pom.xml", `<?xml version="1.0"?>
<project>
  <dependencies>
    <dependency><groupId>org.demo</groupId><artifactId>core</artifactId></dependency>
    <dependency><groupId>org.demo</groupId><artifactId>web</artifactId></dependency>
  </dependencies>
</project>`)
	writeFile(t, root, "build.gradle", `dependencies {
    implementation "com.example:lib:1.0"
    api 'com.example:api:2.0'
}`)
	writeFile(t, root, "package.json", `{"dependencies":{"react":"^18.0.0"},"devDependencies":{"jest":"^29.0.0"}}`)
	writeFile(t, root, "requirements.txt", "requests==2.31.0\n# comment\n\nflask\n")

	fsys, err := safeio.New(root)
	require.NoError(t, err)
	deps := ExtractManifestDeps(fsys)

	require.Equal(t, []string{"org.demo:core", "org.demo:web"}, deps["maven"])
	require.Equal(t, []string{"com.example:lib:1.0", "com.example:api:2.0"}, deps["gradle"])
	require.Equal(t, []string{"react@^18.0.0", "jest@^29.0.0"}, deps["npm"])
	require.Equal(t, []string{"requests==2.31.0", "flask"}, deps["pip"])
}

func TestExtractManifestDepsEmptyRepo(t *testing.T) {
	fsys, err := safeio.New(t.TempDir())
	require.NoError(t, err)
	deps := ExtractManifestDeps(fsys)
	for _, key := range []string{"maven", "gradle", "npm", "pip"} {
		require.NotNil(t, deps[key])
		require.Empty(t, deps[key])
	}
}
