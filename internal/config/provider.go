package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variable names for generation provider configuration.
const (
	EnvProviderAPIKey      = "OPENAI_API_KEY"
	EnvProviderBaseURL     = "OPENAI_BASE_URL"
	EnvProviderModel       = "PROVIDER_MODEL"
	EnvProviderMaxTokens   = "PROVIDER_MAX_TOKENS"
	EnvProviderTemperature = "PROVIDER_TEMPERATURE"
	EnvProviderTimeout     = "PROVIDER_TIMEOUT"
)

// ProviderConfig contains text-generation provider configuration.
// Model and sampling parameters are runtime settings with usable defaults.
type ProviderConfig struct {
	APIKey      string  `toml:"api_key"`
	BaseURL     string  `toml:"base_url"`
	Model       string  `toml:"model"`
	MaxTokens   int     `toml:"max_tokens"`
	Temperature float64 `toml:"temperature"`
	Timeout     string  `toml:"timeout"`
}

// TimeoutDuration parses and returns the per-call timeout as a time.Duration.
func (c *ProviderConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the provider configuration.
func (c *ProviderConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *ProviderConfig) Merge(overlay *ProviderConfig) {
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.MaxTokens != 0 {
		c.MaxTokens = overlay.MaxTokens
	}
	if overlay.Temperature != 0 {
		c.Temperature = overlay.Temperature
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *ProviderConfig) loadDefaults() {
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 300
	}
	if c.Temperature == 0 {
		c.Temperature = 0.7
	}
	if c.Timeout == "" {
		c.Timeout = "30s"
	}
}

func (c *ProviderConfig) loadEnv() {
	if v := os.Getenv(EnvProviderAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvProviderBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvProviderModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvProviderMaxTokens); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxTokens = n
		}
	}
	if v := os.Getenv(EnvProviderTemperature); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			c.Temperature = t
		}
	}
	if v := os.Getenv(EnvProviderTimeout); v != "" {
		c.Timeout = v
	}
}

func (c *ProviderConfig) validate() error {
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("invalid temperature: %g (must be in [0, 2])", c.Temperature)
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
