// Package config loads the gateway configuration from an optional YAML
// file with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ProviderConfig describes one OpenAI-compatible backend. The API key is
// never stored in the file; APIKeyEnv names the environment variable
// holding it.
type ProviderConfig struct {
	BaseURL   string `yaml:"base_url"`
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`
}

// APIKey resolves the key from the environment.
func (p ProviderConfig) APIKey() string {
	return os.Getenv(p.APIKeyEnv)
}

// Config is the full gateway configuration.
type Config struct {
	ListenAddr            string         `yaml:"listen_addr"`
	Primary               ProviderConfig `yaml:"primary"`
	Secondary             ProviderConfig `yaml:"secondary"`
	FallbackRetryInterval time.Duration  `yaml:"fallback_retry_interval"`
	SessionTTL            time.Duration  `yaml:"session_ttl"`
	ReaperInterval        time.Duration  `yaml:"reaper_interval"`
	EventLogPath          string         `yaml:"event_log_path"`
}

// Default returns the configuration mirroring the reference deployment:
// Cerebras primary, Algion secondary, five-minute fallback retry.
func Default() Config {
	return Config{
		ListenAddr: ":8080",
		Primary: ProviderConfig{
			BaseURL:   "https://api.cerebras.ai/v1",
			Model:     "qwen-3-32b",
			APIKeyEnv: "CEREBRAS_API_KEY",
		},
		Secondary: ProviderConfig{
			BaseURL:   "https://api.algion.dev/v1",
			Model:     "gpt-4o",
			APIKeyEnv: "ALGION_API_KEY",
		},
		FallbackRetryInterval: 5 * time.Minute,
		SessionTTL:            time.Hour,
		ReaperInterval:        time.Minute,
	}
}

// Load reads the config file at path into the defaults. A missing file
// is not an error when path is empty; env overrides apply last.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MPT_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("MPT_PRIMARY_BASE_URL"); v != "" {
		cfg.Primary.BaseURL = v
	}
	if v := os.Getenv("MPT_PRIMARY_MODEL"); v != "" {
		cfg.Primary.Model = v
	}
	if v := os.Getenv("MPT_SECONDARY_BASE_URL"); v != "" {
		cfg.Secondary.BaseURL = v
	}
	if v := os.Getenv("MPT_SECONDARY_MODEL"); v != "" {
		cfg.Secondary.Model = v
	}
	if v := os.Getenv("MPT_EVENT_LOG"); v != "" {
		cfg.EventLogPath = v
	}
}

func (c Config) validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr must not be empty")
	}
	if c.Primary.Model == "" {
		return fmt.Errorf("primary provider model must not be empty")
	}
	if c.FallbackRetryInterval <= 0 {
		return fmt.Errorf("fallback_retry_interval must be positive")
	}
	return nil
}

// SecondaryConfigured reports whether the fallback provider has a key
// available; without one, fallback mode is never entered.
func (c Config) SecondaryConfigured() bool {
	return c.Secondary.Model != "" && c.Secondary.APIKey() != ""
}
