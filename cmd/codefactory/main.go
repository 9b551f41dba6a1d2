// Package main provides the entry point for the codefactory CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"codefactory/cmd/codefactory/commands"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

func main() {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "codefactory",
		Short: "Codefactory - SFT dataset generation from source repositories",
		Long: `Codefactory turns a source repository into supervised fine-tuning data.

Commands:
  analyze      Scan the target repo into chunks and a project skeleton
  scene1       Generate code Q&A records from the chunks
  scene2       Generate feature-design records from the skeleton
  postprocess  Filter, reshape and merge the raw records into SFT files`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewScene1Command())
	rootCmd.AddCommand(commands.NewScene2Command())
	rootCmd.AddCommand(commands.NewPostprocessCommand())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "codefactory %s\n", Version)
		},
	}
}
