package jsonutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshalNoEscapeKeepsAngleBrackets(t *testing.T) {
	b, err := MarshalNoEscape(map[string]string{"code": "a < b && c > d"})
	require.NoError(t, err)
	require.Equal(t, `{"code":"a < b && c > d"}`, string(b))
}

func TestMarshalNoEscapeNoTrailingNewline(t *testing.T) {
	b, err := MarshalNoEscape([]int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, "[1,2,3]", string(b))
}

func TestMarshalNoEscapeIndent(t *testing.T) {
	b, err := MarshalNoEscapeIndent(map[string]any{"k": "<v>"}, "", "  ")
	require.NoError(t, err)
	require.Equal(t, "{\n  \"k\": \"<v>\"\n}", string(b))
}
