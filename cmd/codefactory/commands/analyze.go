package commands

import (
	"github.com/spf13/cobra"

	"codefactory/internal/config"
	"codefactory/internal/pipeline"
)

// AnalyzeCommand holds the flags for the analyze command.
type AnalyzeCommand struct {
	repo   string
	output string
}

// NewAnalyzeCommand creates and configures the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	cmd := &AnalyzeCommand{}

	cobraCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Scan the target repository into chunks and a project skeleton",
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.repo, "repo", "r", "", "target repository path (default: TARGET_REPO_PATH)")
	cobraCmd.Flags().StringVarP(&cmd.output, "output", "o", "", "output directory (default: OUTPUT_DIR)")

	return cobraCmd
}

// Run executes the analyze command.
func (c *AnalyzeCommand) Run(cobraCmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if c.repo != "" {
		cfg.RepoPath = c.repo
	}
	if c.output != "" {
		cfg.OutputDir = c.output
	}

	a := &pipeline.Analyzer{Cfg: cfg, Log: newLogger()}
	return a.Run()
}
