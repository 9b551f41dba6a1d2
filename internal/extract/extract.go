// Package extract turns free-form backend output into structured candidate
// records. Backend text is unreliable by nature (surrounding prose, code
// fences, truncation), so parsing is an ordered fallback chain that trades
// strictness for recall without ever fabricating data: a record survives
// only if every required field is literally present in the source text.
package extract

import (
	"encoding/json"
	"strings"
)

// MinReasoningTokens is the extraction-time floor on the reasoning field.
// The postprocess filter applies a stricter one.
const MinReasoningTokens = 5

// Schema names the array key and the three record fields for one scene.
type Schema struct {
	ArrayKey  string
	Primary   string
	Reasoning string
	Payload   string
}

// Triple is the generic view of one extracted record.
type Triple struct {
	Primary   string
	Reasoning string
	Payload   string
}

// QASchema matches scene-1 output: {"samples":[{question, thinking_trace, answer}]}.
var QASchema = Schema{
	ArrayKey:  "samples",
	Primary:   "question",
	Reasoning: "thinking_trace",
	Payload:   "answer",
}

// DesignSchema matches scene-2 output: {"plans":[{feature_title, thinking_trace, design_spec}]}.
var DesignSchema = Schema{
	ArrayKey:  "plans",
	Primary:   "feature_title",
	Reasoning: "thinking_trace",
	Payload:   "design_spec",
}

// Extract parses raw backend text into clean triples. It never fails: a
// parse miss is an empty result. The chain is fence strip, direct parse,
// then first-"{"-to-last-"}" substring parse; the first candidate that
// yields an acceptable shape wins, even when its cleaned record list turns
// out empty.
func Extract(raw string, schema Schema) []Triple {
	for _, c := range candidates(raw) {
		var obj any
		if err := json.Unmarshal([]byte(c), &obj); err != nil {
			continue
		}

		var items []any
		switch v := obj.(type) {
		case map[string]any:
			arr, ok := v[schema.ArrayKey]
			if !ok {
				continue
			}
			items, ok = arr.([]any)
			if !ok {
				continue
			}
		case []any:
			items = v
		default:
			continue
		}

		return clean(items, schema)
	}
	return nil
}

// candidates lists the texts worth a parse attempt, in priority order.
func candidates(raw string) []string {
	stripped := stripFence(raw)
	out := []string{stripped}
	if start := strings.Index(stripped, "{"); start >= 0 {
		if end := strings.LastIndex(stripped, "}"); end > start {
			out = append(out, stripped[start:end+1])
		}
	}
	return out
}

// stripFence removes an enclosing ``` fence and a leading language tag.
func stripFence(s string) string {
	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "```") {
		t = strings.Trim(t, "`")
		t = strings.TrimLeft(t, "json")
		t = strings.TrimLeft(t, " \t\r\n")
	}
	return t
}

// clean keeps only elements that are mappings whose three required fields
// are non-empty strings with enough reasoning tokens. Bad elements are
// dropped silently; order is preserved.
func clean(items []any, schema Schema) []Triple {
	var out []Triple
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		primary := stringField(m, schema.Primary)
		reasoning := stringField(m, schema.Reasoning)
		payload := stringField(m, schema.Payload)
		if primary == "" || payload == "" {
			continue
		}
		if WordCount(reasoning) < MinReasoningTokens {
			continue
		}
		out = append(out, Triple{Primary: primary, Reasoning: reasoning, Payload: payload})
	}
	return out
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

// WordCount counts whitespace-delimited tokens.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
