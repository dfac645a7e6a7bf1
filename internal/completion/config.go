package completion

import (
	"fmt"
	"net/url"
	"os"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-1.5-flash"

// Config holds the Gemini connection parameters. An empty APIKey is valid and
// yields an unavailable client.
type Config struct {
	APIKey  string `toml:"api_key"`
	Model   string `toml:"model"`
	BaseURL string `toml:"base_url"`
}

// Env maps config fields to environment variable names for override injection.
// Each field may list several variables; the first one set wins.
type Env struct {
	APIKey  []string
	Model   []string
	BaseURL []string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
}

func (c *Config) loadDefaults() {
	if c.Model == "" {
		c.Model = DefaultModel
	}
}

func (c *Config) loadEnv(env *Env) {
	if v := firstEnv(env.APIKey); v != "" {
		c.APIKey = v
	}
	if v := firstEnv(env.Model); v != "" {
		c.Model = v
	}
	if v := firstEnv(env.BaseURL); v != "" {
		c.BaseURL = v
	}
}

func (c *Config) validate() error {
	if c.BaseURL != "" {
		if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
			return fmt.Errorf("invalid base_url: %w", err)
		}
	}
	return nil
}

func firstEnv(names []string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
