package llmclient

import "context"

// Canned payloads returned in dry-run mode. Both are valid strict-JSON
// bodies in the shape the extractor expects, so the whole pipeline can be
// exercised without a live backend.
const (
	DryRunQAPayload = `{
  "samples": [
    {
      "question": "Dummy question?",
      "thinking_trace": "This is a dummy thinking trace for debugging.",
      "answer": "Dummy answer."
    }
  ]
}`

	DryRunDesignPayload = `{
  "plans": [
    {
      "feature_title": "Dummy feature",
      "thinking_trace": "This is a dummy thinking trace for debugging.",
      "design_spec": "Dummy design spec describing the proposed change."
    }
  ]
}`
)

// DryRun returns a fixed payload instead of calling a model.
type DryRun struct {
	Payload string
}

func (d *DryRun) Name() string { return "DryRun" }

func (d *DryRun) Complete(ctx context.Context, _ []Message, _ Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return d.Payload, nil
}
