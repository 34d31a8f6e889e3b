package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default returns the baseline configuration used when no config file
// exists yet.
func Default() Config {
	return Config{
		LLM: LLMConfig{
			Provider:  "openai",
			MaxTokens: 256,
		},
		Images: ImageConfig{
			FetchRetries: 3,
		},
		Persona:      "business",
		CacheResults: true,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".deckgenie", "config.json"), nil
}

// Load reads the config file at path. A missing file is not an error: the
// defaults come back so first runs work without setup.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyFallbacks()
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg = Default()
		cfg.applyFallbacks()
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyFallbacks()
	return cfg, nil
}

// Save writes the config as indented JSON, creating the directory as
// needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// applyFallbacks fills gaps from the environment (secrets stay out of the
// config file when the caller prefers) and restores required defaults.
func (c *Config) applyFallbacks() {
	if c.Images.UnsplashAccessKey == "" {
		c.Images.UnsplashAccessKey = os.Getenv("UNSPLASH_ACCESS_KEY")
	}
	if c.LLM.APIKey == "" {
		c.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.Images.FetchRetries <= 0 {
		c.Images.FetchRetries = 3
	}
	if c.LLM.MaxTokens <= 0 {
		c.LLM.MaxTokens = 256
	}
	if c.Persona == "" {
		c.Persona = "business"
	}
}
