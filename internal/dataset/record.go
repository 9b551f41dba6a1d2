// Package dataset owns the persisted record shapes, the quality filter,
// and the reshaping of raw scene records into the final SFT dataset.
package dataset

// QARaw is one scene-1 line in the raw intermediate log: the candidate
// record plus its provenance.
type QARaw struct {
	FilePath      string `json:"file_path"`
	ClassName     string `json:"class_name"`
	Code          string `json:"code"`
	Question      string `json:"question"`
	ThinkingTrace string `json:"thinking_trace"`
	Answer        string `json:"answer"`
}

// DesignRaw is one scene-2 line in the raw intermediate log.
type DesignRaw struct {
	ProjectFiles  []string `json:"project_files"`
	SampleFiles   []string `json:"sample_files"`
	FeatureTitle  string   `json:"feature_title"`
	ThinkingTrace string   `json:"thinking_trace"`
	DesignSpec    string   `json:"design_spec"`
}

// SFTRecord is the uniform output record for supervised fine-tuning.
// Meta is always a non-nil map so it serializes as an object.
type SFTRecord struct {
	Instruction string            `json:"instruction"`
	Input       string            `json:"input"`
	Output      string            `json:"output"`
	Meta        map[string]string `json:"meta"`
}
