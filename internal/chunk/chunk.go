// Package chunk splits line-numbered source text into size-bounded pieces
// suitable for a single generation request.
package chunk

import "strings"

// Chunk is one bounded slice of one source file. Metadata is an opaque
// payload produced by the scanner (e.g. manifest dependency lists); the
// chunker never inspects it.
type Chunk struct {
	FilePath         string         `json:"file_path"`
	ClassName        string         `json:"class_name"`
	ContentWithLines string         `json:"content_with_lines"`
	Language         string         `json:"language"`
	Metadata         map[string]any `json:"metadata"`
}

// Split cuts numbered text into pieces of at most maxChars characters,
// never breaking inside a line. A single line longer than maxChars becomes
// an oversized chunk of its own. Empty input yields one empty chunk.
//
// Joining the returned pieces with "\n" reproduces the input exactly.
func Split(numberedText string, maxChars int) []string {
	if len(numberedText) <= maxChars {
		return []string{numberedText}
	}

	lines := strings.Split(numberedText, "\n")
	var chunks []string
	var cur []string
	curLen := 0

	for _, line := range lines {
		l := len(line) + 1 // +1 for the joining newline
		if len(cur) > 0 && curLen+l > maxChars {
			chunks = append(chunks, strings.Join(cur, "\n"))
			cur, curLen = nil, 0
		}
		cur = append(cur, line)
		curLen += l
	}
	if len(cur) > 0 {
		chunks = append(chunks, strings.Join(cur, "\n"))
	}
	return chunks
}
