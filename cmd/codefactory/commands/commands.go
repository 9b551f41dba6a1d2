// Package commands implements the codefactory subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"codefactory/internal/config"
	"codefactory/internal/llmclient"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// newClient selects the backend for a scene. dryRunFlag forces the canned
// payload even when the environment requests a live provider; the
// environment's DRY_RUN default keeps accidental live calls from happening.
func newClient(ctx context.Context, cfg *config.Config, dryRunFlag bool, payload string) (llmclient.Client, error) {
	if dryRunFlag || cfg.LLM.DryRun {
		return &llmclient.DryRun{Payload: payload}, nil
	}
	switch cfg.LLM.Provider {
	case "gemini":
		if cfg.LLM.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
		return llmclient.NewGemini(ctx, cfg.LLM.GeminiAPIKey, cfg.LLM.Model)
	case "openai":
		return llmclient.NewOpenAI(cfg.LLM.OpenAIBaseURL, cfg.LLM.OpenAIAPIKey, cfg.LLM.Model)
	case "dryrun":
		return &llmclient.DryRun{Payload: payload}, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}
}
