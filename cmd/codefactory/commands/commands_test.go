package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codefactory/internal/config"
	"codefactory/internal/llmclient"
)

func TestNewClientDryRunFlagWinsOverProvider(t *testing.T) {
	cfg := &config.Config{LLM: config.LLMConfig{Provider: "openai"}}
	client, err := newClient(context.Background(), cfg, true, llmclient.DryRunQAPayload)
	require.NoError(t, err)
	assert.Equal(t, "DryRun", client.Name())
}

func TestNewClientEnvDryRunDefault(t *testing.T) {
	cfg := &config.Config{LLM: config.LLMConfig{Provider: "gemini", DryRun: true}}
	client, err := newClient(context.Background(), cfg, false, llmclient.DryRunDesignPayload)
	require.NoError(t, err)
	assert.Equal(t, "DryRun", client.Name())
}

func TestNewClientOpenAI(t *testing.T) {
	cfg := &config.Config{LLM: config.LLMConfig{
		Provider:      "openai",
		Model:         "gpt-4.1-mini",
		OpenAIBaseURL: "https://api.openai.com/v1",
		OpenAIAPIKey:  "sk-test",
	}}
	client, err := newClient(context.Background(), cfg, false, llmclient.DryRunQAPayload)
	require.NoError(t, err)
	assert.Equal(t, "OpenAI:gpt-4.1-mini", client.Name())
}

func TestNewClientMissingGeminiKey(t *testing.T) {
	cfg := &config.Config{LLM: config.LLMConfig{Provider: "gemini"}}
	_, err := newClient(context.Background(), cfg, false, llmclient.DryRunQAPayload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestNewClientUnknownProvider(t *testing.T) {
	cfg := &config.Config{LLM: config.LLMConfig{Provider: "llama"}}
	_, err := newClient(context.Background(), cfg, false, llmclient.DryRunQAPayload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown LLM provider")
}
