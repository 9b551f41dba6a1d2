package extract

// QARecord is one scene-1 candidate: a developer question about a code
// chunk, the reasoning behind the answer, and the answer itself.
type QARecord struct {
	Question      string `json:"question"`
	ThinkingTrace string `json:"thinking_trace"`
	Answer        string `json:"answer"`
}

// DesignRecord is one scene-2 candidate: a proposed feature, the reasoning
// for it, and its design specification.
type DesignRecord struct {
	FeatureTitle  string `json:"feature_title"`
	ThinkingTrace string `json:"thinking_trace"`
	DesignSpec    string `json:"design_spec"`
}

// ParseQA extracts scene-1 records from raw backend text.
func ParseQA(raw string) []QARecord {
	triples := Extract(raw, QASchema)
	out := make([]QARecord, 0, len(triples))
	for _, t := range triples {
		out = append(out, QARecord{
			Question:      t.Primary,
			ThinkingTrace: t.Reasoning,
			Answer:        t.Payload,
		})
	}
	return out
}

// ParseDesign extracts scene-2 records from raw backend text.
func ParseDesign(raw string) []DesignRecord {
	triples := Extract(raw, DesignSchema)
	out := make([]DesignRecord, 0, len(triples))
	for _, t := range triples {
		out = append(out, DesignRecord{
			FeatureTitle:  t.Primary,
			ThinkingTrace: t.Reasoning,
			DesignSpec:    t.Payload,
		})
	}
	return out
}
