package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"codefactory/internal/config"
	"codefactory/internal/dataset"
	"codefactory/internal/export"
)

// Postprocess filters the raw scene logs, reshapes survivors into the SFT
// schema, and merges both scenes into the combined dataset. Re-running on
// unchanged raw logs produces byte-identical output.
type Postprocess struct {
	Cfg   *config.Config
	Log   *slog.Logger
	Store *export.S3Store // optional; nil disables upload
}

// Run executes all postprocessing steps. Raw logs with only malformed
// lines yield empty but successfully written SFT files.
func (p *Postprocess) Run(ctx context.Context) error {
	log := logger(p.Log)
	paths := Paths{OutputDir: p.Cfg.OutputDir}
	if err := os.MkdirAll(p.Cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("postprocess: create output dir: %w", err)
	}

	if err := p.scene1(paths, log); err != nil {
		return err
	}
	if err := p.scene2(paths, log); err != nil {
		return err
	}
	if err := p.merge(paths, log); err != nil {
		return err
	}
	if p.Store != nil {
		return p.upload(ctx, paths, log)
	}
	return nil
}

func (p *Postprocess) scene1(paths Paths, log *slog.Logger) error {
	raws, err := dataset.DecodeFile[dataset.QARaw](paths.Scene1Raw())
	if err != nil {
		return fmt.Errorf("postprocess: read scene1 raw log: %w", err)
	}
	records := make([]dataset.SFTRecord, 0, len(raws))
	for _, r := range raws {
		if dataset.AcceptQA(r) {
			records = append(records, dataset.ReshapeQA(r))
		}
	}
	if err := dataset.WriteFile(paths.Scene1SFT(), records); err != nil {
		return fmt.Errorf("postprocess: write scene1 sft: %w", err)
	}
	log.Info("scene1 sft saved", "path", paths.Scene1SFT(), "total", len(records))
	return nil
}

func (p *Postprocess) scene2(paths Paths, log *slog.Logger) error {
	raws, err := dataset.DecodeFile[dataset.DesignRaw](paths.Scene2Raw())
	if err != nil {
		return fmt.Errorf("postprocess: read scene2 raw log: %w", err)
	}
	records := make([]dataset.SFTRecord, 0, len(raws))
	for _, r := range raws {
		if dataset.AcceptDesign(r) {
			records = append(records, dataset.ReshapeDesign(r))
		}
	}
	if err := dataset.WriteFile(paths.Scene2SFT(), records); err != nil {
		return fmt.Errorf("postprocess: write scene2 sft: %w", err)
	}
	log.Info("scene2 sft saved", "path", paths.Scene2SFT(), "total", len(records))
	return nil
}

func (p *Postprocess) merge(paths Paths, log *slog.Logger) error {
	qa, err := dataset.DecodeFile[dataset.SFTRecord](paths.Scene1SFT())
	if err != nil {
		return fmt.Errorf("postprocess: re-read scene1 sft: %w", err)
	}
	design, err := dataset.DecodeFile[dataset.SFTRecord](paths.Scene2SFT())
	if err != nil {
		return fmt.Errorf("postprocess: re-read scene2 sft: %w", err)
	}
	merged := dataset.Merge(qa, design)
	if err := dataset.WriteFile(paths.CombinedSFT(), merged); err != nil {
		return fmt.Errorf("postprocess: write combined sft: %w", err)
	}
	log.Info("combined sft saved", "path", paths.CombinedSFT(), "total", len(merged))
	return nil
}

func (p *Postprocess) upload(ctx context.Context, paths Paths, log *slog.Logger) error {
	for _, path := range []string{paths.Scene1SFT(), paths.Scene2SFT(), paths.CombinedSFT()} {
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("postprocess: read %s for upload: %w", path, err)
		}
		name := filepath.Base(path)
		if err := p.Store.Put(ctx, "sft", name, b); err != nil {
			return err
		}
		log.Info("uploaded dataset", "object", name, "bytes", len(b))
	}
	return nil
}
