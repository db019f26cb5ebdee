// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting for the server and CLI.
type Config struct {
	// Host and Port form the HTTP listen address.
	Host string
	Port int

	// RateLimitPerMinute and RateLimitPerHour cap requests per client IP.
	// Zero disables the corresponding window.
	RateLimitPerMinute int
	RateLimitPerHour   int

	// HistorySize bounds the in-memory assessment history ring.
	HistorySize int

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string

	// MetricsEnabled exposes /metrics when true.
	MetricsEnabled bool

	// AllowedOrigins lists CORS origins. "*" allows any.
	AllowedOrigins []string

	// TrustedProxies are the proxy CIDRs gin should trust for client IP
	// resolution. Empty means trust none.
	TrustedProxies []string
}

// Defaults mirror a reasonable single-instance deployment.
func defaults() *Config {
	return &Config{
		Host:               "0.0.0.0",
		Port:               8000,
		RateLimitPerMinute: 30,
		RateLimitPerHour:   500,
		HistorySize:        1000,
		LogLevel:           "info",
		MetricsEnabled:     true,
		AllowedOrigins:     []string{"*"},
	}
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment
// variables take precedence over it.
func Load() (*Config, error) {
	// Missing .env is the normal production case, not an error.
	_ = godotenv.Load()

	cfg := defaults()

	if v := os.Getenv("JOBGUARD_HOST"); v != "" {
		cfg.Host = v
	}
	if err := intVar("JOBGUARD_PORT", &cfg.Port); err != nil {
		return nil, err
	}
	if err := intVar("JOBGUARD_RATE_LIMIT_PER_MINUTE", &cfg.RateLimitPerMinute); err != nil {
		return nil, err
	}
	if err := intVar("JOBGUARD_RATE_LIMIT_PER_HOUR", &cfg.RateLimitPerHour); err != nil {
		return nil, err
	}
	if err := intVar("JOBGUARD_HISTORY_SIZE", &cfg.HistorySize); err != nil {
		return nil, err
	}
	if v := os.Getenv("JOBGUARD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if err := boolVar("JOBGUARD_METRICS_ENABLED", &cfg.MetricsEnabled); err != nil {
		return nil, err
	}
	if v := os.Getenv("JOBGUARD_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitCSV(v)
	}
	if v := os.Getenv("JOBGUARD_TRUSTED_PROXIES"); v != "" {
		cfg.TrustedProxies = splitCSV(v)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	if c.RateLimitPerMinute < 0 || c.RateLimitPerHour < 0 {
		return fmt.Errorf("config: rate limits must not be negative")
	}
	if c.HistorySize < 1 {
		return fmt.Errorf("config: history size must be at least 1")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	return nil
}

func intVar(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = n
	return nil
}

func boolVar(key string, dst *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = b
	return nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
