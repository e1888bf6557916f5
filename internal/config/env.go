package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds defaults taken from environment variables. Command-line
// flags win over these.
type EnvConfig struct {
	Format   string `env:"PROCSNAP_FORMAT" envDefault:"text"`
	NoColor  bool   `env:"NO_COLOR" envDefault:"false"`
	LogLevel string `env:"PROCSNAP_LOG_LEVEL" envDefault:"info"`
}

// ParseEnvConfig parses configuration from environment variables
func ParseEnvConfig() (*EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}
	if cfg.Format != "text" && cfg.Format != "json" {
		return nil, fmt.Errorf("PROCSNAP_FORMAT must be text or json, got %q", cfg.Format)
	}
	return &cfg, nil
}
