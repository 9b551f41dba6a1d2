package dataset

import (
	"encoding/json"
	"strings"

	"codefactory/internal/extract"
)

// MinReasoningTokens is the postprocess-stage floor on reasoning length.
// Strictly above the extractor's own floor: extraction is a parser, this
// is a policy, and the raw log may have been produced by an older
// extractor or edited by hand.
const MinReasoningTokens = 10

// AcceptQA reports whether a scene-1 record is good enough to keep.
func AcceptQA(r QARaw) bool {
	if strings.TrimSpace(r.Question) == "" || strings.TrimSpace(r.Answer) == "" {
		return false
	}
	return extract.WordCount(r.ThinkingTrace) >= MinReasoningTokens
}

// AcceptDesign reports whether a scene-2 record is good enough to keep.
// An empty structured design payload counts as absent, exactly like a
// missing one; do not tighten this.
func AcceptDesign(r DesignRaw) bool {
	if strings.TrimSpace(r.FeatureTitle) == "" {
		return false
	}
	if extract.WordCount(r.ThinkingTrace) < MinReasoningTokens {
		return false
	}
	spec := strings.TrimSpace(r.DesignSpec)
	if spec == "" {
		return false
	}
	return !falsyJSON(spec)
}

// falsyJSON reports whether s parses as a JSON value that is empty in the
// falsy sense: null, "", 0, false, {}, []. Text that is not JSON at all is
// a real payload and is never falsy.
func falsyJSON(s string) bool {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return false
	}
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case float64:
		return val == 0
	case string:
		return strings.TrimSpace(val) == ""
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	}
	return false
}
