package dataset

import (
	"encoding/json"
	"fmt"
	"strings"

	"codefactory/internal/util/jsonutil"
)

// Section headers in the rendered output field. Kept byte-for-byte stable:
// downstream training setups key on them.
const (
	qaReasoningHeader     = "### 思考过程"
	qaAnswerHeader        = "### 回答"
	designReasoningHeader = "### 架构分析"
	designSpecHeader      = "### 设计方案"
)

// ReshapeQA turns an accepted scene-1 record into the output schema.
// Input stays empty for QA records; provenance goes into meta.
func ReshapeQA(r QARaw) SFTRecord {
	return SFTRecord{
		Instruction: strings.TrimSpace(r.Question),
		Input:       "",
		Output: fmt.Sprintf("%s\n%s\n\n%s\n%s",
			qaReasoningHeader, strings.TrimSpace(r.ThinkingTrace),
			qaAnswerHeader, strings.TrimSpace(r.Answer)),
		Meta: map[string]string{
			"file_path":  r.FilePath,
			"class_name": r.ClassName,
		},
	}
}

// ReshapeDesign turns an accepted scene-2 record into the output schema.
// The design payload is pretty-printed inside a fenced block when it is
// structured JSON, and embedded as-is otherwise. Meta stays empty for
// design records.
func ReshapeDesign(r DesignRaw) SFTRecord {
	return SFTRecord{
		Instruction: strings.TrimSpace(r.FeatureTitle),
		Input:       "Project structure:\n" + strings.Join(r.ProjectFiles, "\n"),
		Output: fmt.Sprintf("%s\n%s\n\n%s\n```json\n%s\n```",
			designReasoningHeader, strings.TrimSpace(r.ThinkingTrace),
			designSpecHeader, renderDesignSpec(r.DesignSpec)),
		Meta: map[string]string{},
	}
}

func renderDesignSpec(spec string) string {
	spec = strings.TrimSpace(spec)
	var v any
	if err := json.Unmarshal([]byte(spec), &v); err != nil {
		return spec
	}
	b, err := jsonutil.MarshalNoEscapeIndent(v, "", "  ")
	if err != nil {
		return spec
	}
	return string(b)
}

// Merge concatenates the reshaped scene-1 records followed by the
// scene-2 records, preserving emission order. No deduplication.
func Merge(qa, design []SFTRecord) []SFTRecord {
	out := make([]SFTRecord, 0, len(qa)+len(design))
	out = append(out, qa...)
	out = append(out, design...)
	return out
}
