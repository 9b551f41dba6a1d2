package commands

import (
	"github.com/spf13/cobra"

	"codefactory/internal/config"
	"codefactory/internal/llmclient"
	"codefactory/internal/pipeline"
)

// Scene1Command holds the flags for the scene1 command.
type Scene1Command struct {
	output  string
	limit   int
	qaCount int
	dryRun  bool
}

// NewScene1Command creates and configures the scene1 command.
func NewScene1Command() *cobra.Command {
	cmd := &Scene1Command{}

	cobraCmd := &cobra.Command{
		Use:   "scene1",
		Short: "Generate code Q&A records from the chunk manifest",
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.output, "output", "o", "", "output directory (default: OUTPUT_DIR)")
	cobraCmd.Flags().IntVar(&cmd.limit, "limit", 50, "maximum number of chunks to process (0 = all)")
	cobraCmd.Flags().IntVar(&cmd.qaCount, "qa-count", 3, "Q&A records requested per chunk")
	cobraCmd.Flags().BoolVar(&cmd.dryRun, "dry-run", false, "use the canned backend instead of a live model")

	return cobraCmd
}

// Run executes the scene1 command.
func (c *Scene1Command) Run(cobraCmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if c.output != "" {
		cfg.OutputDir = c.output
	}

	client, err := newClient(cobraCmd.Context(), cfg, c.dryRun, llmclient.DryRunQAPayload)
	if err != nil {
		return err
	}

	s := &pipeline.Scene1{Cfg: cfg, LLM: client, Log: newLogger()}
	_, err = s.Run(cobraCmd.Context(), c.limit, c.qaCount)
	return err
}
