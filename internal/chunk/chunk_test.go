package chunk

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func numbered(lines ...string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = fmt.Sprintf("%d | %s", i+1, l)
	}
	return strings.Join(out, "\n")
}

func TestSplitSingleChunkWhenUnderBudget(t *testing.T) {
	text := numbered("package main", "", "func main() {}")
	got := Split(text, 4000)
	require.Equal(t, []string{text}, got)
}

func TestSplitEmptyInput(t *testing.T) {
	require.Equal(t, []string{""}, Split("", 4000))
}

func TestSplitReassemblesExactly(t *testing.T) {
	var lines []string
	for i := 0; i < 200; i++ {
		lines = append(lines, fmt.Sprintf("line %d with some padding text", i))
	}
	text := numbered(lines...)

	for _, budget := range []int{16, 64, 80, 256, 1000} {
		got := Split(text, budget)
		require.Equal(t, text, strings.Join(got, "\n"), "budget %d", budget)
	}
}

func TestSplitRespectsBudget(t *testing.T) {
	var lines []string
	for i := 0; i < 100; i++ {
		lines = append(lines, strings.Repeat("x", 20))
	}
	text := numbered(lines...)

	budget := 100
	for _, c := range Split(text, budget) {
		require.LessOrEqual(t, len(c), budget)
	}
}

func TestSplitOversizedLineStandsAlone(t *testing.T) {
	long := strings.Repeat("y", 500)
	text := numbered("short", long, "short again")

	got := Split(text, 50)
	require.Len(t, got, 3)
	require.Contains(t, got[1], long)
	require.Greater(t, len(got[1]), 50)
	require.Equal(t, text, strings.Join(got, "\n"))
}

func TestSplitPreservesBlankLines(t *testing.T) {
	text := numbered("a", "", "", "b")
	got := Split(text, 8)
	require.Equal(t, text, strings.Join(got, "\n"))
}

func TestSplitDeterministic(t *testing.T) {
	text := numbered("alpha", "beta", "gamma", "delta")
	first := Split(text, 14)
	second := Split(text, 14)
	require.Equal(t, first, second)
}
