package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"codefactory/internal/chunk"
	"codefactory/internal/config"
	"codefactory/internal/safeio"
	"codefactory/internal/scan"
	"codefactory/internal/util/jsonutil"
)

// Analyzer runs the scan phase: project tree, manifest dependencies, and
// the chunk manifest every later phase feeds from.
type Analyzer struct {
	Cfg *config.Config
	Log *slog.Logger
}

// Run scans the target repository and writes the analyze artifacts.
// A missing repository root is a configuration error and aborts the run.
func (a *Analyzer) Run() error {
	log := logger(a.Log)
	if strings.TrimSpace(a.Cfg.RepoPath) == "" {
		return fmt.Errorf("analyze: TARGET_REPO_PATH is not set")
	}
	fsys, err := safeio.New(a.Cfg.RepoPath)
	if err != nil {
		return fmt.Errorf("analyze: open repo root: %w", err)
	}
	if err := os.MkdirAll(a.Cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("analyze: create output dir: %w", err)
	}
	paths := Paths{OutputDir: a.Cfg.OutputDir}
	root := fsys.Root()
	log.Info("scanning repo", "root", root)

	tree := scan.BuildProjectTree(root, scan.DefaultTreeDepth, scan.DefaultTreeEntries)
	if err := os.WriteFile(paths.SkeletonText(), []byte(tree), 0o644); err != nil {
		return fmt.Errorf("analyze: write project tree: %w", err)
	}
	log.Info("project tree saved", "path", paths.SkeletonText())

	deps := scan.ExtractManifestDeps(fsys)

	reader, err := scan.NewReader(fsys, 0)
	if err != nil {
		return fmt.Errorf("analyze: init reader: %w", err)
	}
	files, err := scan.ListFiles(root)
	if err != nil {
		return fmt.Errorf("analyze: list files: %w", err)
	}

	chunks := make([]chunk.Chunk, 0, len(files))
	languages := map[string]int{}
	for _, rel := range files {
		numbered, err := reader.Numbered(rel)
		if err != nil {
			log.Warn("skipping unreadable file", "path", rel, "err", err)
			continue
		}
		if lang := reader.Language(rel); lang != "" {
			languages[lang]++
		}
		stem := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(rel)), ".")
		for _, piece := range chunk.Split(numbered, a.Cfg.MaxChunkChars) {
			chunks = append(chunks, chunk.Chunk{
				FilePath:         rel,
				ClassName:        stem,
				ContentWithLines: piece,
				Language:         ext,
				Metadata:         map[string]any{"deps": deps},
			})
		}
	}

	chunksJSON, err := jsonutil.MarshalNoEscapeIndent(chunks, "", "  ")
	if err != nil {
		return fmt.Errorf("analyze: encode chunks: %w", err)
	}
	if err := os.WriteFile(paths.Chunks(), chunksJSON, 0o644); err != nil {
		return fmt.Errorf("analyze: write chunks: %w", err)
	}
	log.Info("code chunks saved", "path", paths.Chunks(), "total", len(chunks))

	skeleton := Skeleton{
		Root:         root,
		Paths:        files,
		Dependencies: deps,
		Languages:    languages,
	}
	skeletonJSON, err := jsonutil.MarshalNoEscapeIndent(skeleton, "", "  ")
	if err != nil {
		return fmt.Errorf("analyze: encode skeleton: %w", err)
	}
	if err := os.WriteFile(paths.SkeletonJSON(), skeletonJSON, 0o644); err != nil {
		return fmt.Errorf("analyze: write skeleton: %w", err)
	}
	log.Info("path list saved", "path", paths.SkeletonJSON(), "files", len(files))
	return nil
}
