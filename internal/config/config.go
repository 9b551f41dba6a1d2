package config

import (
	"os"
	"strconv"
	"strings"
)

// Config carries every knob the pipeline reads. All values come from the
// environment (a .env file is loaded once by the CLI before Load runs).
type Config struct {
	RepoPath  string
	OutputDir string

	MaxChunkChars int

	LLM LLMConfig
	S3  S3Config
}

type LLMConfig struct {
	// Provider selects the backend: "gemini", "openai" or "dryrun".
	Provider    string
	Model       string
	MaxTokens   int
	Temperature float64
	DryRun      bool

	GeminiAPIKey string

	OpenAIBaseURL string
	OpenAIAPIKey  string
}

type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether an object-store endpoint has been configured.
func (c S3Config) Enabled() bool { return c.Endpoint != "" }

// Load resolves the pipeline configuration from the environment.
func Load() *Config {
	return &Config{
		RepoPath:      strings.TrimSpace(os.Getenv("TARGET_REPO_PATH")),
		OutputDir:     firstNonEmpty(strings.TrimSpace(os.Getenv("OUTPUT_DIR")), "./data"),
		MaxChunkChars: envInt("MAX_CHUNK_CHARS", 4000),
		LLM:           loadLLMConfig(),
		S3:            loadS3Config(),
	}
}

func loadLLMConfig() LLMConfig {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER")))
	if provider == "" {
		provider = "gemini"
	}
	model := strings.TrimSpace(os.Getenv("LLM_MODEL"))
	if model == "" {
		switch provider {
		case "openai":
			model = "gpt-4.1-mini"
		default:
			model = "gemini-2.5-flash"
		}
	}
	return LLMConfig{
		Provider:      provider,
		Model:         model,
		MaxTokens:     envInt("MAX_NEW_TOKENS", 768),
		Temperature:   envFloat("TEMPERATURE", 0.35),
		DryRun:        envBool("DRY_RUN", true),
		GeminiAPIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		OpenAIBaseURL: firstNonEmpty(strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")), "https://api.openai.com/v1"),
		OpenAIAPIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
	}
}

func loadS3Config() S3Config {
	return S3Config{
		Endpoint:  strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("S3_REGION")), "us-east-1"),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("S3_BUCKET")), "codefactory-datasets"),
		UseSSL:    envBool("S3_USE_SSL", false),
	}
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func envFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
