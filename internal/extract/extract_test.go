package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractPlainJSON(t *testing.T) {
	raw := `{"samples":[{"question":"Q","thinking_trace":"one two three four five six","answer":"A"}]}`
	got := ParseQA(raw)
	require.Len(t, got, 1)
	require.Equal(t, "Q", got[0].Question)
	require.Equal(t, "A", got[0].Answer)
}

func TestExtractFencedJSON(t *testing.T) {
	raw := "```json\n{\"samples\":[{\"question\":\"Q\",\"thinking_trace\":\"one two three four five six\",\"answer\":\"A\"}]}\n```"
	got := ParseQA(raw)
	require.Len(t, got, 1)
	require.Equal(t, "Q", got[0].Question)
}

func TestExtractSurroundingProse(t *testing.T) {
	raw := "Here you go:\n```json\n{\"samples\":[{\"question\":\"Q\",\"thinking_trace\":\"one two three four five six\",\"answer\":\"A\"}]}\n```\nThanks!"
	got := ParseQA(raw)
	require.Len(t, got, 1)
	require.Equal(t, "Q", got[0].Question)
	require.Equal(t, "A", got[0].Answer)
}

func TestExtractBareArray(t *testing.T) {
	raw := `[{"question":"Q","thinking_trace":"one two three four five six","answer":"A"}]`
	got := ParseQA(raw)
	require.Len(t, got, 1)
}

func TestExtractRejectsShortReasoning(t *testing.T) {
	raw := `{"samples":[{"question":"Q","thinking_trace":"too short","answer":"A"}]}`
	require.Empty(t, ParseQA(raw))
}

func TestExtractKeepsGoodDropsBad(t *testing.T) {
	raw := `{"samples":[
		{"question":"bad","thinking_trace":"too short","answer":"A"},
		{"question":"good","thinking_trace":"one two three four five six","answer":"B"},
		{"question":"","thinking_trace":"one two three four five six","answer":"C"},
		"not a mapping"
	]}`
	got := ParseQA(raw)
	require.Len(t, got, 1)
	require.Equal(t, "good", got[0].Question)
}

func TestExtractAcceptsExactlyFiveTokens(t *testing.T) {
	raw := `{"samples":[{"question":"Q","thinking_trace":"one two three four five","answer":"A"}]}`
	require.Len(t, ParseQA(raw), 1)
}

func TestExtractTrimsFields(t *testing.T) {
	raw := `{"samples":[{"question":"  Q  ","thinking_trace":" one two three four five ","answer":"\tA\n"}]}`
	got := ParseQA(raw)
	require.Len(t, got, 1)
	require.Equal(t, "Q", got[0].Question)
	require.Equal(t, "A", got[0].Answer)
}

func TestExtractDropsNonStringFields(t *testing.T) {
	raw := `{"samples":[{"question":42,"thinking_trace":"one two three four five","answer":"A"}]}`
	require.Empty(t, ParseQA(raw))
}

func TestExtractUnparseableReturnsEmpty(t *testing.T) {
	require.Empty(t, ParseQA("total garbage, no json here"))
	require.Empty(t, ParseQA(""))
	require.Empty(t, ParseQA("{truncated"))
}

func TestExtractWrongKeyReturnsEmpty(t *testing.T) {
	raw := `{"answers":[{"question":"Q","thinking_trace":"one two three four five","answer":"A"}]}`
	require.Empty(t, ParseQA(raw))
}

func TestExtractFirstAcceptableShapeWins(t *testing.T) {
	// The whole text parses as a mapping with an empty samples array; the
	// chain must stop there rather than hunt for a brace substring.
	raw := `{"samples":[]}`
	require.Empty(t, ParseQA(raw))
}

func TestExtractPreservesOrder(t *testing.T) {
	raw := `{"samples":[
		{"question":"first","thinking_trace":"one two three four five","answer":"A"},
		{"question":"second","thinking_trace":"one two three four five","answer":"B"}
	]}`
	got := ParseQA(raw)
	require.Len(t, got, 2)
	require.Equal(t, "first", got[0].Question)
	require.Equal(t, "second", got[1].Question)
}

func TestParseDesign(t *testing.T) {
	raw := "Sure!\n{\"plans\":[{\"feature_title\":\"Webhooks\",\"thinking_trace\":\"one two three four five six seven\",\"design_spec\":\"Add a webhook dispatcher.\"}]}"
	got := ParseDesign(raw)
	require.Len(t, got, 1)
	require.Equal(t, "Webhooks", got[0].FeatureTitle)
	require.Equal(t, "Add a webhook dispatcher.", got[0].DesignSpec)
}

func TestParseDesignFencedWithLanguageTag(t *testing.T) {
	raw := "```json\n{\"plans\":[{\"feature_title\":\"F\",\"thinking_trace\":\"a b c d e f\",\"design_spec\":\"S\"}]}\n```"
	require.Len(t, ParseDesign(raw), 1)
}

func TestStripFence(t *testing.T) {
	// A trailing newline may survive the strip; json.Unmarshal tolerates it.
	require.Equal(t, "{\"a\":1}\n", stripFence("```json\n{\"a\":1}\n```"))
	require.Equal(t, "{\"a\":1}\n", stripFence("```\n{\"a\":1}\n```"))
	require.Equal(t, `{"a":1}`, stripFence(`{"a":1}`))
}

func TestWordCount(t *testing.T) {
	require.Equal(t, 0, WordCount(""))
	require.Equal(t, 0, WordCount("   \t\n"))
	require.Equal(t, 3, WordCount("a  b\tc"))
}
