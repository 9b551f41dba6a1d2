package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"codefactory/internal/config"
	"codefactory/internal/dataset"
	"codefactory/internal/extract"
	"codefactory/internal/llmclient"
	"codefactory/internal/prompt"
)

// Scene2 generates feature-design records from the project skeleton. Each
// batch samples a fresh subset of files as prompt context.
type Scene2 struct {
	Cfg  *config.Config
	LLM  llmclient.Client
	Log  *slog.Logger
	Rand *rand.Rand
}

// Run generates count design batches, sampling sampleFileCount files per
// prompt. It returns the number of raw records written.
func (s *Scene2) Run(ctx context.Context, count, sampleFileCount int) (int, error) {
	log := logger(s.Log)
	paths := Paths{OutputDir: s.Cfg.OutputDir}

	skel, err := loadSkeleton(paths.SkeletonJSON())
	if err != nil {
		return 0, err
	}
	if len(skel.Paths) == 0 {
		log.Info("no project files found in skeleton, nothing to do")
		return 0, nil
	}

	rng := s.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	w, err := dataset.NewWriter(paths.Scene2Raw())
	if err != nil {
		return 0, fmt.Errorf("scene2: open raw log: %w", err)
	}
	defer w.Close()

	opts := llmclient.Options{
		MaxTokens:   s.Cfg.LLM.MaxTokens,
		Temperature: s.Cfg.LLM.Temperature,
	}

	total := 0
	for i := 0; i < count; i++ {
		log.Info("generating design batch", "index", i+1, "total", count)

		sample := sampleFiles(rng, skel.Paths, sampleFileCount)
		req := prompt.ForDesign(skel.Paths, sample, 1)
		text, err := s.LLM.Complete(ctx, req.Messages, opts)
		if err != nil {
			log.Warn("backend call failed", "batch", i+1, "err", err)
			continue
		}

		plans := extract.ParseDesign(text)
		if len(plans) == 0 {
			log.Warn("could not parse response", "batch", i+1)
			continue
		}

		for _, p := range plans {
			raw := dataset.DesignRaw{
				ProjectFiles:  skel.Paths,
				SampleFiles:   sample,
				FeatureTitle:  p.FeatureTitle,
				ThinkingTrace: p.ThinkingTrace,
				DesignSpec:    p.DesignSpec,
			}
			if err := w.Append(raw); err != nil {
				return total, fmt.Errorf("scene2: write raw record: %w", err)
			}
			total++
		}
	}

	log.Info("scene2 done", "plans", total, "path", paths.Scene2Raw())
	return total, nil
}

// loadSkeleton reads the project listing written by the analyze phase.
// A missing listing is a configuration error.
func loadSkeleton(path string) (Skeleton, error) {
	var skel Skeleton
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return skel, fmt.Errorf("scene2: project skeleton not found at %s (run analyze first)", path)
		}
		return skel, fmt.Errorf("scene2: read project skeleton: %w", err)
	}
	if err := json.Unmarshal(b, &skel); err != nil {
		return skel, fmt.Errorf("scene2: decode project skeleton %s: %w", path, err)
	}
	return skel, nil
}

// sampleFiles picks k distinct files without replacement.
func sampleFiles(rng *rand.Rand, files []string, k int) []string {
	if k > len(files) {
		k = len(files)
	}
	out := make([]string, 0, k)
	for _, idx := range rng.Perm(len(files))[:k] {
		out = append(out, files[idx])
	}
	return out
}
