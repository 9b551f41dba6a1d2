package commands

import (
	"github.com/spf13/cobra"

	"codefactory/internal/config"
	"codefactory/internal/llmclient"
	"codefactory/internal/pipeline"
)

// Scene2Command holds the flags for the scene2 command.
type Scene2Command struct {
	output          string
	count           int
	sampleFileCount int
	dryRun          bool
}

// NewScene2Command creates and configures the scene2 command.
func NewScene2Command() *cobra.Command {
	cmd := &Scene2Command{}

	cobraCmd := &cobra.Command{
		Use:   "scene2",
		Short: "Generate feature-design records from the project skeleton",
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.output, "output", "o", "", "output directory (default: OUTPUT_DIR)")
	cobraCmd.Flags().IntVar(&cmd.count, "count", 10, "number of design batches to generate")
	cobraCmd.Flags().IntVar(&cmd.sampleFileCount, "sample-file-count", 20, "files sampled as context per batch")
	cobraCmd.Flags().BoolVar(&cmd.dryRun, "dry-run", false, "use the canned backend instead of a live model")

	return cobraCmd
}

// Run executes the scene2 command.
func (c *Scene2Command) Run(cobraCmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if c.output != "" {
		cfg.OutputDir = c.output
	}

	client, err := newClient(cobraCmd.Context(), cfg, c.dryRun, llmclient.DryRunDesignPayload)
	if err != nil {
		return err
	}

	s := &pipeline.Scene2{Cfg: cfg, LLM: client, Log: newLogger()}
	_, err = s.Run(cobraCmd.Context(), c.count, c.sampleFileCount)
	return err
}
