package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings for calc-suite.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Cache     CacheConfig     `yaml:"cache"`
	History   HistoryConfig   `yaml:"history"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
}

// RateLimitConfig bounds requests per client IP in a fixed window.
type RateLimitConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Requests int           `yaml:"requests"`
	Window   time.Duration `yaml:"window"`
}

// CacheConfig selects the memoization backend.
type CacheConfig struct {
	Backend   string        `yaml:"backend"` // none, lru, redis
	Size      int           `yaml:"size"`
	RedisAddr string        `yaml:"redis_addr"`
	TTL       time.Duration `yaml:"ttl"`
}

// HistoryConfig selects where calculations are recorded.
type HistoryConfig struct {
	Backend     string `yaml:"backend"` // none, memory, sql
	DatabaseURL string `yaml:"database_url"`
	Capacity    int    `yaml:"capacity"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

const (
	CacheNone  = "none"
	CacheLRU   = "lru"
	CacheRedis = "redis"

	HistoryNone   = "none"
	HistoryMemory = "memory"
	HistorySQL    = "sql"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		RateLimit: RateLimitConfig{
			Enabled:  true,
			Requests: 60,
			Window:   time.Minute,
		},
		Cache: CacheConfig{
			Backend: CacheLRU,
			Size:    1024,
			TTL:     24 * time.Hour,
		},
		History: HistoryConfig{
			Backend:  HistoryMemory,
			Capacity: 10_000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if addr := os.Getenv("CALC_SUITE_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if level := os.Getenv("CALC_SUITE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if limit := os.Getenv("CALC_SUITE_RATE_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			c.RateLimit.Requests = n
			c.RateLimit.Enabled = n > 0
		}
	}
	// Setting a backend address implies that backend.
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		c.Cache.RedisAddr = addr
		c.Cache.Backend = CacheRedis
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		c.History.DatabaseURL = url
		c.History.Backend = HistorySQL
	}
}

// Validate checks the configuration for inconsistent settings.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server addr must not be empty")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server max_body_bytes must be > 0")
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.Requests < 1 {
			return fmt.Errorf("rate_limit requests must be >= 1")
		}
		if c.RateLimit.Window <= 0 {
			return fmt.Errorf("rate_limit window must be > 0")
		}
	}

	switch c.Cache.Backend {
	case CacheNone, CacheLRU:
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("cache redis_addr required for redis backend (set REDIS_ADDR)")
		}
	default:
		return fmt.Errorf("invalid cache backend: %s (valid: none, lru, redis)", c.Cache.Backend)
	}

	switch c.History.Backend {
	case HistoryNone, HistoryMemory:
	case HistorySQL:
		if c.History.DatabaseURL == "" {
			return fmt.Errorf("history database_url required for sql backend (set DATABASE_URL)")
		}
	default:
		return fmt.Errorf("invalid history backend: %s (valid: none, memory, sql)", c.History.Backend)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging format: %s", c.Logging.Format)
	}
	return nil
}
