package infra

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv          string
	Port            string
	TogetherAPIKey  string
	TogetherBaseURL string
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	GenerationModel string
	VisionModel     string
	AllowedOrigins  []string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	// ProviderTimeout caps a single upstream call (analysis or generation).
	ProviderTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
// Provider API keys may be absent at startup; every remix entry point re-checks
// them before committing to a remote call.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		TogetherAPIKey:   os.Getenv("TOGETHER_API_KEY"),
		TogetherBaseURL:  getEnv("TOGETHER_BASE_URL", "https://api.together.xyz/v1"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:    getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		GenerationModel:  getEnv("GENERATION_MODEL", "black-forest-labs/FLUX.1-kontext-dev"),
		VisionModel:      getEnv("VISION_MODEL", "gpt-4o"),
		AllowedOrigins:   splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		ProviderTimeout:  time.Second * time.Duration(getEnvInt("PROVIDER_TIMEOUT_SECONDS", 90)),
	}

	return cfg, nil
}

// HasProviderKeys reports whether both upstream credentials are configured.
func (c *Config) HasProviderKeys() bool {
	return strings.TrimSpace(c.TogetherAPIKey) != "" && strings.TrimSpace(c.OpenAIAPIKey) != ""
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
