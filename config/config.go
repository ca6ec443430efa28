package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	TelegramTokenEnv  = "TELEGRAM_BOT_TOKEN"
	GeminiAPIKeyEnv   = "GEMINI_API_KEY"
	MaxContextSizeEnv = "MAX_CONTEXT_SIZE"
	ExportDirEnv      = "EXPORT_DIR"
	LogLevelEnv       = "LOG_LEVEL"
	LogFormatEnv      = "LOG_FORMAT"
	MetricsPortEnv    = "METRICS_PORT"
	MaxUploadMBEnv    = "MAX_UPLOAD_MB"
)

// ErrMissingToken is returned by ValidateBot when no Telegram token is configured.
var ErrMissingToken = errors.New(TelegramTokenEnv + " environment variable is empty")

// Config application configuration
type Config struct {
	TelegramToken  string
	GeminiAPIKey   string
	MaxContextSize int
	ExportDir      string
	LogLevel       string
	LogFormat      string
	MetricsPort    string
	MaxUploadMB    int
}

// Load reads configuration from the environment (and .env when present)
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	config := &Config{
		TelegramToken:  os.Getenv(TelegramTokenEnv),
		GeminiAPIKey:   os.Getenv(GeminiAPIKeyEnv),
		MaxContextSize: 20,
		ExportDir:      "exports",
		LogLevel:       "info",
		LogFormat:      "text",
		MetricsPort:    os.Getenv(MetricsPortEnv),
		MaxUploadMB:    5,
	}

	if dir := os.Getenv(ExportDirEnv); dir != "" {
		config.ExportDir = dir
	}
	if level := os.Getenv(LogLevelEnv); level != "" {
		config.LogLevel = level
	}
	if format := os.Getenv(LogFormatEnv); format != "" {
		config.LogFormat = format
	}

	var err error
	if config.MaxContextSize, err = intFromEnv(MaxContextSizeEnv, config.MaxContextSize); err != nil {
		return nil, err
	}
	if config.MaxUploadMB, err = intFromEnv(MaxUploadMBEnv, config.MaxUploadMB); err != nil {
		return nil, err
	}

	if config.MetricsPort != "" {
		if _, err := strconv.Atoi(config.MetricsPort); err != nil {
			return nil, fmt.Errorf("%s has invalid format: %w", MetricsPortEnv, err)
		}
	}

	return config, nil
}

// ValidateBot checks the settings the Telegram bot cannot run without
func (c *Config) ValidateBot() error {
	if c.TelegramToken == "" {
		return ErrMissingToken
	}
	return nil
}

// AssistantEnabled reports whether the Gemini catalog assistant should be started
func (c *Config) AssistantEnabled() bool {
	return c.GeminiAPIKey != ""
}

func intFromEnv(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s has invalid format: %w", name, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, parsed)
	}
	return parsed, nil
}
