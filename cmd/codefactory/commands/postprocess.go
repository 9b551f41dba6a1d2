package commands

import (
	"github.com/spf13/cobra"

	"codefactory/internal/config"
	"codefactory/internal/export"
	"codefactory/internal/pipeline"
)

// PostprocessCommand holds the flags for the postprocess command.
type PostprocessCommand struct {
	output string
	upload bool
}

// NewPostprocessCommand creates and configures the postprocess command.
func NewPostprocessCommand() *cobra.Command {
	cmd := &PostprocessCommand{}

	cobraCmd := &cobra.Command{
		Use:   "postprocess",
		Short: "Filter, reshape and merge raw records into SFT datasets",
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.output, "output", "o", "", "output directory (default: OUTPUT_DIR)")
	cobraCmd.Flags().BoolVar(&cmd.upload, "upload", false, "upload the SFT files to the configured object store")

	return cobraCmd
}

// Run executes the postprocess command.
func (c *PostprocessCommand) Run(cobraCmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if c.output != "" {
		cfg.OutputDir = c.output
	}

	p := &pipeline.Postprocess{Cfg: cfg, Log: newLogger()}
	if c.upload {
		store, err := export.NewS3Store(cfg.S3)
		if err != nil {
			return err
		}
		p.Store = store
	}
	return p.Run(cobraCmd.Context())
}
