package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Output formats understood by the CLI.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputFull = "full"
)

// Config holds CLI configuration loaded from the environment.
type Config struct {
	LogLevel  string
	LogFormat string
	Output    string
	CartPath  string
	ItemsPath string
	RulesPath string
}

// Load reads PRICER_* variables from the environment and an optional .env file.
// Flags given on the command line take precedence over these values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("PRICER_", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		LogLevel:  valueOrDefault(k.String("PRICER_LOG_LEVEL"), "info"),
		LogFormat: valueOrDefault(k.String("PRICER_LOG_FORMAT"), "json"),
		Output:    strings.ToLower(valueOrDefault(k.String("PRICER_OUTPUT"), OutputText)),
		CartPath:  strings.TrimSpace(k.String("PRICER_CART")),
		ItemsPath: strings.TrimSpace(k.String("PRICER_ITEMS")),
		RulesPath: strings.TrimSpace(k.String("PRICER_RULES")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports a configuration the CLI cannot run with.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputFull:
		return nil
	default:
		return fmt.Errorf("PRICER_OUTPUT must be one of %s, %s or %s, got %q", OutputText, OutputJSON, OutputFull, c.Output)
	}
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
