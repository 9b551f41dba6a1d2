package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"codefactory/internal/chunk"
	"codefactory/internal/config"
	"codefactory/internal/dataset"
	"codefactory/internal/extract"
	"codefactory/internal/llmclient"
	"codefactory/internal/prompt"
)

// Scene1 generates code Q&A records from the chunk manifest. One chunk is
// fully handled (prompt, backend call, parse, write) before the next; a
// failing chunk is logged and skipped, never aborting the batch.
type Scene1 struct {
	Cfg *config.Config
	LLM llmclient.Client
	Log *slog.Logger
}

// Run processes up to limit chunks, asking for qaCount records per chunk.
// It returns the number of raw records written.
func (s *Scene1) Run(ctx context.Context, limit, qaCount int) (int, error) {
	log := logger(s.Log)
	paths := Paths{OutputDir: s.Cfg.OutputDir}

	chunks, err := loadChunks(paths.Chunks(), limit)
	if err != nil {
		return 0, err
	}

	w, err := dataset.NewWriter(paths.Scene1Raw())
	if err != nil {
		return 0, fmt.Errorf("scene1: open raw log: %w", err)
	}
	defer w.Close()

	opts := llmclient.Options{
		MaxTokens:   s.Cfg.LLM.MaxTokens,
		Temperature: s.Cfg.LLM.Temperature,
	}

	total := 0
	for i, c := range chunks {
		log.Info("processing chunk", "index", i+1, "total", len(chunks), "file", c.FilePath)

		req := prompt.ForChunk(c, qaCount)
		text, err := s.LLM.Complete(ctx, req.Messages, opts)
		if err != nil {
			log.Warn("backend call failed", "file", c.FilePath, "err", err)
			continue
		}

		records := extract.ParseQA(text)
		if len(records) == 0 {
			log.Warn("could not parse response", "file", c.FilePath)
			continue
		}

		for _, r := range records {
			raw := dataset.QARaw{
				FilePath:      c.FilePath,
				ClassName:     c.ClassName,
				Code:          c.ContentWithLines,
				Question:      r.Question,
				ThinkingTrace: r.ThinkingTrace,
				Answer:        r.Answer,
			}
			if err := w.Append(raw); err != nil {
				return total, fmt.Errorf("scene1: write raw record: %w", err)
			}
			total++
		}
	}

	log.Info("scene1 done", "samples", total, "path", paths.Scene1Raw())
	return total, nil
}

// loadChunks reads the chunk manifest written by the analyze phase.
// A missing manifest is a configuration error.
func loadChunks(path string, limit int) ([]chunk.Chunk, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("scene1: chunk manifest not found at %s (run analyze first)", path)
		}
		return nil, fmt.Errorf("scene1: read chunk manifest: %w", err)
	}
	var chunks []chunk.Chunk
	if err := json.Unmarshal(b, &chunks); err != nil {
		return nil, fmt.Errorf("scene1: decode chunk manifest %s: %w", path, err)
	}
	if limit > 0 && len(chunks) > limit {
		chunks = chunks[:limit]
	}
	return chunks, nil
}
