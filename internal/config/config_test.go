package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/pagegen/internal/completion"
	"github.com/JaimeStill/pagegen/internal/config"
)

const baseConfig = `
shutdown_timeout = "30s"
version = "0.1.0"

[server]
host = "0.0.0.0"
port = 8080
read_timeout = "1m"
write_timeout = "2m"

[api]
base_path = "/api"
max_body_size = "512KB"

[api.cors]
enabled = true
origins = ["http://localhost:5173"]

[completion]
model = "gemini-1.5-pro"

[persistence]
backend = "memory"

[database]
name = "pagegen"
user = "pagegen"
`

const overlayConfig = `
[server]
port = 9090

[persistence]
backend = "postgres"

[database]
host = "db.staging"
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// unsetenv clears a variable for the duration of the test.
func unsetenv(t *testing.T, name string) {
	t.Helper()
	t.Setenv(name, "")
	os.Unsetenv(name)
}

func isolate(t *testing.T) string {
	t.Helper()
	for _, name := range []string{
		config.EnvPagegenEnv,
		config.EnvPersistenceBackend,
		"GEMINI_API_KEY",
		"PAGEGEN_COMPLETION_API_KEY",
		"PAGEGEN_COMPLETION_MODEL",
	} {
		unsetenv(t, name)
	}
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, config.BaseConfigFile, baseConfig)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8080 || cfg.Server.WriteTimeoutDuration() != 2*time.Minute {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.API.MaxBodySizeBytes() != 512*1024 {
		t.Errorf("max body size = %d", cfg.API.MaxBodySizeBytes())
	}
	if !cfg.API.CORS.Enabled || len(cfg.API.CORS.Origins) != 1 {
		t.Errorf("cors = %+v", cfg.API.CORS)
	}
	if cfg.Completion.Model != "gemini-1.5-pro" || cfg.Completion.APIKey != "" {
		t.Errorf("completion = %+v", cfg.Completion)
	}
	if cfg.Persistence.Backend != config.BackendMemory {
		t.Errorf("backend = %s", cfg.Persistence.Backend)
	}
	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("shutdown timeout = %v", cfg.ShutdownTimeoutDuration())
	}
}

func TestLoadWithOverlay(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, config.BaseConfigFile, baseConfig)
	writeFile(t, dir, "config.staging.toml", overlayConfig)
	t.Setenv(config.EnvPagegenEnv, "staging")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Env() != "staging" {
		t.Errorf("env = %s", cfg.Env())
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server port: got %d, want 9090 (from overlay)", cfg.Server.Port)
	}
	if cfg.Persistence.Backend != config.BackendPostgres {
		t.Errorf("backend: got %s, want postgres (from overlay)", cfg.Persistence.Backend)
	}
	if cfg.Database.Host != "db.staging" || cfg.Database.Name != "pagegen" {
		t.Errorf("database = %+v", cfg.Database)
	}
	if cfg.Database.MaxOpenConns != 25 {
		t.Errorf("database defaults not applied: %+v", cfg.Database)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, config.BaseConfigFile, baseConfig)

	t.Setenv("PAGEGEN_VERSION", "2.0.0")
	t.Setenv("PAGEGEN_SERVER_PORT", "3000")
	t.Setenv("PAGEGEN_API_MAX_BODY_SIZE", "2MB")
	t.Setenv("PAGEGEN_COMPLETION_MODEL", "gemini-2.0-flash")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Version != "2.0.0" || cfg.Server.Port != 3000 {
		t.Errorf("version/port = %s/%d", cfg.Version, cfg.Server.Port)
	}
	if cfg.API.MaxBodySizeBytes() != 2*1024*1024 {
		t.Errorf("max body size = %d", cfg.API.MaxBodySizeBytes())
	}
	if cfg.Completion.Model != "gemini-2.0-flash" {
		t.Errorf("model = %s", cfg.Completion.Model)
	}
}

func TestLoadNoConfigFile(t *testing.T) {
	isolate(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load without config.toml failed: %v", err)
	}

	if cfg.Server.Port != 8080 || cfg.API.BasePath != "/api" {
		t.Errorf("defaults not applied: port=%d base=%s", cfg.Server.Port, cfg.API.BasePath)
	}
	if cfg.Persistence.Backend != config.BackendMemory {
		t.Errorf("backend = %s, want memory", cfg.Persistence.Backend)
	}
	if cfg.Completion.Model != completion.DefaultModel {
		t.Errorf("model = %s", cfg.Completion.Model)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, config.DotEnvFile, "GEMINI_API_KEY=from-dotenv\n")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Completion.APIKey != "from-dotenv" {
		t.Errorf("api key = %q, want from-dotenv", cfg.Completion.APIKey)
	}

	t.Run("prefixed variable wins", func(t *testing.T) {
		t.Setenv("PAGEGEN_COMPLETION_API_KEY", "prefixed")
		cfg, err := config.Load()
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Completion.APIKey != "prefixed" {
			t.Errorf("api key = %q, want prefixed", cfg.Completion.APIKey)
		}
	})
}

func TestFinalizeBackendSections(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr string
	}{
		{
			name: "memory ignores database",
			cfg:  config.Config{Persistence: config.PersistenceConfig{Backend: config.BackendMemory}},
		},
		{
			name:    "postgres requires database name",
			cfg:     config.Config{Persistence: config.PersistenceConfig{Backend: config.BackendPostgres}},
			wantErr: "database: name required",
		},
		{
			name:    "blob requires connection string",
			cfg:     config.Config{Persistence: config.PersistenceConfig{Backend: config.BackendBlob}},
			wantErr: "storage: connection_string required",
		},
		{
			name:    "unknown backend",
			cfg:     config.Config{Persistence: config.PersistenceConfig{Backend: "redis"}},
			wantErr: "invalid backend",
		},
		{
			name:    "invalid shutdown timeout",
			cfg:     config.Config{ShutdownTimeout: "soon"},
			wantErr: "invalid shutdown_timeout",
		},
		{
			name:    "invalid body size",
			cfg:     config.Config{API: config.APIConfig{MaxBodySize: "lots"}},
			wantErr: "invalid max_body_size",
		},
		{
			name:    "invalid completion base url",
			cfg:     config.Config{Completion: completion.Config{BaseURL: "not a url"}},
			wantErr: "invalid base_url",
		},
	}

	isolate(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Finalize()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Finalize error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	base := config.Config{
		Version:     "0.1.0",
		Server:      config.ServerConfig{Host: "0.0.0.0", Port: 8080},
		Persistence: config.PersistenceConfig{Backend: config.BackendMemory},
	}

	base.Merge(&config.Config{
		Server:     config.ServerConfig{Port: 9090},
		Completion: completion.Config{Model: "gemini-2.0-flash"},
	})

	if base.Server.Port != 9090 || base.Server.Host != "0.0.0.0" {
		t.Errorf("server = %+v", base.Server)
	}
	if base.Persistence.Backend != config.BackendMemory || base.Version != "0.1.0" {
		t.Errorf("zero overlay fields overwrote base: %+v", base)
	}
	if base.Completion.Model != "gemini-2.0-flash" {
		t.Errorf("completion model = %s", base.Completion.Model)
	}
}

func TestServerValidation(t *testing.T) {
	isolate(t)

	tests := []struct {
		name    string
		cfg     config.ServerConfig
		wantErr string
	}{
		{"port out of range", config.ServerConfig{Port: 70000}, "invalid port"},
		{"bad idle timeout", config.ServerConfig{IdleTimeout: "soon"}, "invalid idle_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(); err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want %s", err, tt.wantErr)
			}
		})
	}
}

func TestServerTimeouts(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvServerWriteTimeout, "5m")

	cfg := config.ServerConfig{Host: "127.0.0.1", ReadHeaderTimeout: "3s"}
	cfg.Merge(&config.ServerConfig{IdleTimeout: "90s"})
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if got := cfg.WriteTimeoutDuration(); got != 5*time.Minute {
		t.Errorf("write timeout = %v, want 5m", got)
	}
	if got := cfg.ReadHeaderTimeoutDuration(); got != 3*time.Second {
		t.Errorf("read header timeout = %v, want 3s", got)
	}
	if got := cfg.IdleTimeoutDuration(); got != 90*time.Second {
		t.Errorf("idle timeout = %v, want 90s", got)
	}
	if got := cfg.ShutdownTimeoutDuration(); got != 30*time.Second {
		t.Errorf("shutdown timeout = %v, want 30s", got)
	}
	if cfg.Addr() != "127.0.0.1:8080" {
		t.Errorf("addr = %s", cfg.Addr())
	}
}
