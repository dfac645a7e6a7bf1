package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/pagegen/internal/completion"
	"github.com/JaimeStill/pagegen/pkg/database"
	"github.com/JaimeStill/pagegen/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"
	DotEnvFile           = ".env"

	EnvPagegenEnv             = "PAGEGEN_ENV"
	EnvPagegenShutdownTimeout = "PAGEGEN_SHUTDOWN_TIMEOUT"
	EnvPagegenVersion         = "PAGEGEN_VERSION"
)

var databaseEnv = &database.Env{
	Host:            "PAGEGEN_DB_HOST",
	Port:            "PAGEGEN_DB_PORT",
	Name:            "PAGEGEN_DB_NAME",
	User:            "PAGEGEN_DB_USER",
	Password:        "PAGEGEN_DB_PASSWORD",
	SSLMode:         "PAGEGEN_DB_SSL_MODE",
	MaxOpenConns:    "PAGEGEN_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "PAGEGEN_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "PAGEGEN_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "PAGEGEN_DB_CONN_TIMEOUT",
}

var storageEnv = &storage.Env{
	ContainerName:    "PAGEGEN_STORAGE_CONTAINER_NAME",
	ConnectionString: "PAGEGEN_STORAGE_CONNECTION_STRING",
}

// Config is the root configuration for the pagegen service.
type Config struct {
	Server          ServerConfig      `toml:"server"`
	API             APIConfig         `toml:"api"`
	Completion      completion.Config `toml:"completion"`
	Persistence     PersistenceConfig `toml:"persistence"`
	Database        database.Config   `toml:"database"`
	Storage         storage.Config    `toml:"storage"`
	ShutdownTimeout string            `toml:"shutdown_timeout"`
	Version         string            `toml:"version"`
}

// Env returns the PAGEGEN_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvPagegenEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	return duration(c.ShutdownTimeout)
}

// Load populates the environment from .env (if present), reads the base
// config (if present), applies any environment overlay, and finalizes all
// values. Variables already set in the process environment take precedence
// over .env entries.
func Load() (*Config, error) {
	if _, err := os.Stat(DotEnvFile); err == nil {
		if err := godotenv.Load(DotEnvFile); err != nil {
			return nil, fmt.Errorf("load %s: %w", DotEnvFile, err)
		}
	}

	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.API.Merge(&overlay.API)
	c.Completion.Merge(&overlay.Completion)
	c.Persistence.Merge(&overlay.Persistence)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
}

// Finalize applies defaults, environment overrides, and validation across
// all sub-configs. Database and storage settings are only finalized when
// the persistence backend needs them.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Completion.Finalize(completionEnv); err != nil {
		return fmt.Errorf("completion: %w", err)
	}
	if err := c.Persistence.Finalize(); err != nil {
		return fmt.Errorf("persistence: %w", err)
	}

	switch c.Persistence.Backend {
	case BackendPostgres:
		if err := c.Database.Finalize(databaseEnv); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	case BackendBlob:
		if err := c.Storage.Finalize(storageEnv); err != nil {
			return fmt.Errorf("storage: %w", err)
		}
	}
	return nil
}

// FinalizeDatabase finalizes only the database section. The migrate command
// uses it regardless of the configured persistence backend.
func (c *Config) FinalizeDatabase() error {
	return c.Database.Finalize(databaseEnv)
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvPagegenShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvPagegenVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

// LoadFile reads and parses a single TOML config file without finalizing it.
func LoadFile(path string) (*Config, error) {
	return load(path)
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvPagegenEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
