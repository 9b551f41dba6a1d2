package dataset

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"

	"codefactory/internal/util/jsonutil"
)

// DecodeFile reads a newline-delimited JSON file into typed records.
// A missing file yields an empty slice; blank and malformed lines are
// skipped so one corrupt line never invalidates the rest of the file.
func DecodeFile[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var out []T
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var rec T
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteFile writes records one JSON object per line, truncating any
// previous content. Writing zero records still produces the (empty) file.
func WriteFile[T any](path string, records []T) error {
	w, err := NewWriter(path)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Append(rec); err != nil {
			_ = w.Close()
			return err
		}
	}
	return w.Close()
}

// Writer appends records to a newline-delimited JSON log. The file is
// opened once per run in truncate mode and written sequentially; no
// concurrent writers are permitted against the same file.
type Writer struct {
	f  *os.File
	bw *bufio.Writer
}

// NewWriter opens (and truncates) the log at path.
func NewWriter(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Writer{f: f, bw: bufio.NewWriter(f)}, nil
}

// Append writes one record as a single JSON line.
func (w *Writer) Append(v any) error {
	b, err := jsonutil.MarshalNoEscape(v)
	if err != nil {
		return err
	}
	if _, err := w.bw.Write(b); err != nil {
		return err
	}
	return w.bw.WriteByte('\n')
}

// Close flushes buffered lines and closes the underlying file.
func (w *Writer) Close() error {
	if err := w.bw.Flush(); err != nil {
		_ = w.f.Close()
		return err
	}
	return w.f.Close()
}
