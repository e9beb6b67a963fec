package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	timex "github.com/ferdiebergado/fundlist/internal/pkg/time"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"

	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type App struct {
	Env      string `json:"env,omitempty"`
	LogLevel string `json:"log_level,omitempty"`
}

func (a *App) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Env, validation.Required, validation.In(EnvDevelopment, EnvTesting, EnvProduction)),
		validation.Field(&a.LogLevel, validation.In("debug", "info", "warn", "warning", "error")),
	)
}

type Server struct {
	Port            int            `json:"port,omitempty"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
	AllowedOrigins  []string       `json:"allowed_origins,omitempty"`
}

func (s *Server) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&s.ReadTimeout, validation.By(positiveDuration)),
		validation.Field(&s.WriteTimeout, validation.By(positiveDuration)),
		validation.Field(&s.IdleTimeout, validation.By(positiveDuration)),
		validation.Field(&s.ShutdownTimeout, validation.By(positiveDuration)),
		validation.Field(&s.AllowedOrigins, validation.Each(validation.Required)),
	)
}

type DB struct {
	Driver          string         `json:"driver,omitempty"`
	MaxOpenConns    int            `json:"max_open_conns,omitempty"`
	MaxIdleConns    int            `json:"max_idle_conns,omitempty"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time,omitempty"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime,omitempty"`
	PingTimeout     timex.Duration `json:"ping_timeout,omitempty"`
}

func (d *DB) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Driver, validation.Required),
		validation.Field(&d.MaxOpenConns, validation.Min(0)),
		validation.Field(&d.MaxIdleConns, validation.Min(0)),
		validation.Field(&d.PingTimeout, validation.By(positiveDuration)),
	)
}

// Store selects the fund store backend. SeedFile, when set, is loaded into
// the memory store at startup.
type Store struct {
	Kind     string `json:"kind,omitempty"`
	SeedFile string `json:"seed_file,omitempty"`
}

func (s *Store) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Kind, validation.Required, validation.In(StorePostgres, StoreMemory)),
	)
}

type Query struct {
	Timeout timex.Duration `json:"timeout,omitempty"`
}

func (q *Query) Validate() error {
	return validation.ValidateStruct(q,
		validation.Field(&q.Timeout, validation.By(positiveDuration)),
	)
}

type Config struct {
	App    *App    `json:"app,omitempty"`
	Server *Server `json:"server,omitempty"`
	DB     *DB     `json:"db,omitempty"`
	Store  *Store  `json:"store,omitempty"`
	Query  *Query  `json:"query,omitempty"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("app", c.App),
		slog.Any("server", c.Server),
		slog.Any("db", c.DB),
		slog.Any("store", c.Store),
		slog.Any("query", c.Query),
	)
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.App, validation.Required),
		validation.Field(&c.Server, validation.Required),
		validation.Field(&c.DB, validation.When(c.Store != nil && c.Store.Kind == StorePostgres, validation.Required)),
		validation.Field(&c.Store, validation.Required),
		validation.Field(&c.Query, validation.Required),
	)
}

func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfg, err := parseCfgFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := overrideWithEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", cfgFile, err)
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseCfgFile(cfgFile string) (*Config, error) {
	cfgFile = filepath.Clean(cfgFile)
	configFile, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := json.Unmarshal(configFile, &cfg); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return &cfg, nil
}

func overrideWithEnv(cfg *Config) error {
	if cfg.App == nil {
		cfg.App = &App{}
	}
	if cfg.Server == nil {
		cfg.Server = &Server{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Query == nil {
		cfg.Query = &Query{}
	}

	if env, ok := os.LookupEnv("ENV"); ok {
		cfg.App.Env = env
	}

	if level, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.App.LogLevel = strings.ToLower(level)
	}

	if portStr, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("parse PORT %q: %w", portStr, err)
		}
		cfg.Server.Port = port
	}

	if origins, ok := os.LookupEnv("ALLOWED_ORIGINS"); ok {
		cfg.Server.AllowedOrigins = splitCSV(origins)
	}

	if kind, ok := os.LookupEnv("STORE"); ok {
		cfg.Store.Kind = kind
	}

	if seed, ok := os.LookupEnv("SEED_FILE"); ok {
		cfg.Store.SeedFile = seed
	}

	if timeout, ok := os.LookupEnv("QUERY_TIMEOUT"); ok {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("parse QUERY_TIMEOUT %q: %w", timeout, err)
		}
		cfg.Query.Timeout = timex.Duration{Duration: d}
	}

	return nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var errNotDuration = errors.New("must be a duration")

func positiveDuration(value any) error {
	d, ok := value.(timex.Duration)
	if !ok {
		return errNotDuration
	}
	if d.Duration <= 0 {
		return errors.New("must be greater than zero")
	}
	return nil
}
