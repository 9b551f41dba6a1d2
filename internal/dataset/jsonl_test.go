package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeFileMissingYieldsEmpty(t *testing.T) {
	recs, err := DecodeFile[QARaw](filepath.Join(t.TempDir(), "absent.jsonl"))
	require.NoError(t, err)
	require.Empty(t, recs)
}

func TestDecodeFileSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.jsonl")
	content := `{"question":"Q1","answer":"A1","thinking_trace":"t"}
not json at all
{"question":"Q2","answer":"A2","thinking_trace":"t"}

{broken
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	recs, err := DecodeFile[QARaw](path)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Equal(t, "Q1", recs[0].Question)
	require.Equal(t, "Q2", recs[1].Question)
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	in := []SFTRecord{
		{Instruction: "i1", Output: "o1 <tag> & raw", Meta: map[string]string{}},
		{Instruction: "i2", Output: "o2", Meta: map[string]string{"file_path": "a.go"}},
	}
	require.NoError(t, WriteFile(path, in))

	out, err := DecodeFile[SFTRecord](path)
	require.NoError(t, err)
	require.Equal(t, in, out)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "<tag> & raw")
	require.NotContains(t, string(b), `<`)
}

func TestWriteFileEmptyStillCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.jsonl")
	require.NoError(t, WriteFile(path, []SFTRecord{}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Empty(t, b)
}

func TestWriterTruncatesPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("stale line\n"), 0o644))

	w, err := NewWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Append(map[string]string{"k": "v"}))
	require.NoError(t, w.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "{\"k\":\"v\"}\n", string(b))
}
