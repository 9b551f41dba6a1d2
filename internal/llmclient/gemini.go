package llmclient

import (
	"context"

	genai "google.golang.org/genai"
)

// Gemini is a thin wrapper around the official genai client. It only
// focuses on the API call itself; retries and rate limiting are an
// external concern.
type Gemini struct {
	cli   *genai.Client
	model string
}

// NewGemini builds a Gemini-backed client. The genai SDK reads the API key
// from the environment when apiKey is empty.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	cfg := &genai.ClientConfig{Backend: genai.BackendGeminiAPI}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	cli, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Gemini{cli: cli, model: model}, nil
}

func (g *Gemini) Name() string { return "Gemini:" + g.model }

// Complete sends the message sequence as one generation request. The first
// system message becomes the system instruction; everything else is user
// content.
func (g *Gemini) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	if opts.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(opts.MaxTokens)
	}
	if opts.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(opts.Temperature))
	}

	var contents []*genai.Content
	for _, m := range messages {
		if m.Role == "system" && cfg.SystemInstruction == nil {
			cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: m.Content}}}
			continue
		}
		contents = append(contents, &genai.Content{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
