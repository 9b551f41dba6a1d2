// Package pipeline wires the scan, prompt, backend, extract and dataset
// stages into the four runnable phases of the data factory.
package pipeline

import (
	"log/slog"
	"path/filepath"
)

// Paths names every on-disk artifact of a run, all under one output dir.
type Paths struct {
	OutputDir string
}

func (p Paths) SkeletonText() string { return filepath.Join(p.OutputDir, "project_skeleton.txt") }
func (p Paths) SkeletonJSON() string { return filepath.Join(p.OutputDir, "project_skeleton.json") }
func (p Paths) Chunks() string       { return filepath.Join(p.OutputDir, "chunks.json") }
func (p Paths) Scene1Raw() string    { return filepath.Join(p.OutputDir, "scene1_raw.jsonl") }
func (p Paths) Scene2Raw() string    { return filepath.Join(p.OutputDir, "scene2_raw.jsonl") }
func (p Paths) Scene1SFT() string    { return filepath.Join(p.OutputDir, "scene1_sft.jsonl") }
func (p Paths) Scene2SFT() string    { return filepath.Join(p.OutputDir, "scene2_sft.jsonl") }
func (p Paths) CombinedSFT() string  { return filepath.Join(p.OutputDir, "combined_sft.jsonl") }

// Skeleton is the persisted project listing consumed by the design scene.
type Skeleton struct {
	Root         string              `json:"root"`
	Paths        []string            `json:"paths"`
	Dependencies map[string][]string `json:"dependencies"`
	Languages    map[string]int      `json:"languages,omitempty"`
}

func logger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
