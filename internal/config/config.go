package config

import (
	"os"
	"strconv"
	"time"

	"github.com/boddenberg/startup-bot-go/internal/domain"
)

// Config holds all application configuration.
// Values are loaded from environment variables with sensible defaults.
type Config struct {
	// Discord
	DiscordToken  string
	CommandPrefix string

	// AI advisor
	AnthropicAPIKey string
	AnthropicAPIURL string
	AnthropicModel  string

	// HTTP client (0 = no client-side timeout)
	HTTPTimeout time.Duration

	// Ops server (0 = disabled)
	OpsPort int

	// Observability
	LogLevel     string
	OTLPEndpoint string
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		DiscordToken:  getEnv("DISCORD_TOKEN", ""),
		CommandPrefix: getEnv("COMMAND_PREFIX", "!"),

		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicAPIURL: getEnv("ANTHROPIC_API_URL", "https://api.anthropic.com"),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),

		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 0),

		OpsPort: getEnvInt("OPS_PORT", 8080),

		LogLevel:     getEnv("LOG_LEVEL", "info"),
		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}
}

// Validate reports the first missing required setting.
func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return &domain.ErrNotConfigured{Setting: "DISCORD_TOKEN"}
	}
	return nil
}

// AdvisorEnabled reports whether the AI advisor credential is present.
func (c *Config) AdvisorEnabled() bool {
	return c.AnthropicAPIKey != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
