package config_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/ferdiebergado/fundlist/internal/config"
)

const validConfig = `{
  "app": {"env": "development", "log_level": "info"},
  "server": {
    "port": 8888,
    "read_timeout": "5s",
    "write_timeout": "10s",
    "idle_timeout": "60s",
    "shutdown_timeout": "10s",
    "allowed_origins": ["http://localhost:3000"]
  },
  "db": {"driver": "pgx", "max_open_conns": 10, "max_idle_conns": 5, "ping_timeout": "5s"},
  "store": {"kind": "memory", "seed_file": "testdata/funds.json"},
  "query": {"timeout": "3s"}
}`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("config.Load() error = %v, want: nil", err)
	}

	if cfg.Server.Port != 8888 {
		t.Errorf("cfg.Server.Port = %d, want: %d", cfg.Server.Port, 8888)
	}
	if cfg.Server.WriteTimeout.Duration != 10*time.Second {
		t.Errorf("cfg.Server.WriteTimeout = %v, want: %v", cfg.Server.WriteTimeout.Duration, 10*time.Second)
	}
	if cfg.Query.Timeout.Duration != 3*time.Second {
		t.Errorf("cfg.Query.Timeout = %v, want: %v", cfg.Query.Timeout.Duration, 3*time.Second)
	}
	if cfg.Store.Kind != config.StoreMemory {
		t.Errorf("cfg.Store.Kind = %q, want: %q", cfg.Store.Kind, config.StoreMemory)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed json", `{"app":`, "decode json config"},
		{"bad duration", strings.Replace(validConfig, `"3s"`, `"soon"`, 1), "decode json config"},
		{"unknown store", strings.Replace(validConfig, `"memory"`, `"mongo"`, 1), "kind"},
		{"zero timeout", strings.Replace(validConfig, `"3s"`, `"0s"`, 1), "timeout"},
		{"port out of range", strings.Replace(validConfig, `8888`, `70000`, 1), "port"},
		{"postgres needs db", strings.Replace(
			strings.Replace(validConfig, `"memory"`, `"postgres"`, 1),
			`"db": {"driver": "pgx", "max_open_conns": 10, "max_idle_conns": 5, "ping_timeout": "5s"},`, "", 1),
			"db"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(writeConfig(t, tc.content))
			if err == nil {
				t.Fatal("config.Load() error = nil, want: error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("config.Load() error = %v, want it to mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("config.Load() error = nil, want: error")
	}
}

//nolint:paralleltest //Sets environment variables.
func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE", config.StorePostgres)
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("QUERY_TIMEOUT", "750ms")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := config.Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("config.Load() error = %v, want: nil", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("cfg.Server.Port = %d, want: %d", cfg.Server.Port, 9090)
	}
	if cfg.Store.Kind != config.StorePostgres {
		t.Errorf("cfg.Store.Kind = %q, want: %q", cfg.Store.Kind, config.StorePostgres)
	}
	if cfg.App.LogLevel != "debug" {
		t.Errorf("cfg.App.LogLevel = %q, want: %q", cfg.App.LogLevel, "debug")
	}
	if cfg.Query.Timeout.Duration != 750*time.Millisecond {
		t.Errorf("cfg.Query.Timeout = %v, want: %v", cfg.Query.Timeout.Duration, 750*time.Millisecond)
	}
	wantOrigins := []string{"https://a.example", "https://b.example"}
	if !slices.Equal(cfg.Server.AllowedOrigins, wantOrigins) {
		t.Errorf("cfg.Server.AllowedOrigins = %v, want: %v", cfg.Server.AllowedOrigins, wantOrigins)
	}
}

//nolint:paralleltest //Sets environment variables.
func TestLoad_BadPortEnv(t *testing.T) {
	t.Setenv("PORT", "eighty")

	if _, err := config.Load(writeConfig(t, validConfig)); err == nil {
		t.Error("config.Load() error = nil, want: error")
	}
}
