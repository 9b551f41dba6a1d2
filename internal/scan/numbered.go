package scan

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/src-d/enry/v2"

	"codefactory/internal/safeio"
)

const defaultCacheSize = 512

// Reader reads repository files through a root-locked filesystem with a
// small LRU cache, so the analyze phase can hit the same file for
// numbering and language detection without re-reading it from disk.
type Reader struct {
	fs    *safeio.RepoFS
	cache *lru.Cache[string, string]
}

// NewReader wraps fs with a content cache of at most cacheSize entries.
func NewReader(fs *safeio.RepoFS, cacheSize int) (*Reader, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Reader{fs: fs, cache: cache}, nil
}

// Raw returns the decoded text of a file relative to the repo root.
// Invalid UTF-8 falls back to a permissive Latin-1 decode so one odd file
// never aborts a scan.
func (r *Reader) Raw(rel string) (string, error) {
	if text, ok := r.cache.Get(rel); ok {
		return text, nil
	}
	b, err := r.fs.ReadFile(rel)
	if err != nil {
		return "", err
	}
	text := decodeText(b)
	r.cache.Add(rel, text)
	return text, nil
}

// Numbered returns the file content with "<n> | <line>" prefixes,
// 1-based, newline-joined. Blank lines keep their (empty) slot.
func (r *Reader) Numbered(rel string) (string, error) {
	text, err := r.Raw(rel)
	if err != nil {
		return "", err
	}
	lines := splitLines(text)
	numbered := make([]string, len(lines))
	for i, line := range lines {
		numbered[i] = fmt.Sprintf("%d | %s", i+1, line)
	}
	return strings.Join(numbered, "\n"), nil
}

// Language detects the programming language of a file by name and content.
func (r *Reader) Language(rel string) string {
	text, err := r.Raw(rel)
	if err != nil {
		return ""
	}
	return enry.GetLanguage(filepath.Base(rel), []byte(text))
}

// decodeText interprets b as UTF-8 when valid, otherwise as Latin-1.
func decodeText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}

// splitLines splits on line terminators without keeping them, and without
// producing a trailing empty element for a trailing newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
