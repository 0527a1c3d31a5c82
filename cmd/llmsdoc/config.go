package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the runtime configuration.
// Sources are applied in order: defaults, TOML file, environment.
type Config struct {
	BaseURL         string  `toml:"base_url"`
	LLMSPath        string  `toml:"llms_path"`
	CacheTTLMinutes int     `toml:"cache_ttl_minutes"`
	HTTPTimeoutSecs float64 `toml:"http_timeout"`
	HTTPMaxRetries  int     `toml:"http_max_retries"`
	HTTPRetrySecs   float64 `toml:"http_retry_delay"`
	HTTPRateLimit   float64 `toml:"http_rate_limit"`
	LogLevel        string  `toml:"log_level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:         "https://jeongil.dev",
		LLMSPath:        "/ko/llms.txt",
		CacheTTLMinutes: 60,
		HTTPTimeoutSecs: 30,
		HTTPMaxRetries:  3,
		HTTPRetrySecs:   1,
		HTTPRateLimit:   0,
		LogLevel:        "info",
	}
}

// LLMSURL returns the absolute URL of the llms.txt document.
func (c *Config) LLMSURL() string {
	return strings.TrimSuffix(c.BaseURL, "/") + c.LLMSPath
}

// HTTPTimeout returns the per-request timeout.
func (c *Config) HTTPTimeout() time.Duration {
	return seconds(c.HTTPTimeoutSecs)
}

// HTTPRetryDelay returns the base backoff delay.
func (c *Config) HTTPRetryDelay() time.Duration {
	return seconds(c.HTTPRetrySecs)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Warning records a configuration value that was replaced by its default.
type Warning struct {
	Key     string
	Value   string
	Default any
}

// LoadConfig builds the configuration from an optional TOML file at path
// and the environment read through getenv. Invalid numeric values are
// replaced by their defaults and reported as warnings.
func LoadConfig(path string, getenv func(string) string) (*Config, []Warning, error) {
	cfg := DefaultConfig()
	var warnings []Warning

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("read config %q: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, nil, fmt.Errorf("parse config %q: %w", path, err)
		}
		warnings = cfg.sanitize()
	}

	env := envReader{getenv: getenv}
	cfg.BaseURL = env.str("BLOG_BASE_URL", cfg.BaseURL)
	cfg.LLMSPath = env.str("BLOG_LLMS_PATH", cfg.LLMSPath)
	cfg.CacheTTLMinutes = env.positiveInt("BLOG_CACHE_TTL_MINUTES", cfg.CacheTTLMinutes, DefaultConfig().CacheTTLMinutes)
	cfg.HTTPTimeoutSecs = env.positiveFloat("BLOG_HTTP_TIMEOUT", cfg.HTTPTimeoutSecs, DefaultConfig().HTTPTimeoutSecs)
	cfg.HTTPMaxRetries = env.positiveInt("BLOG_HTTP_MAX_RETRIES", cfg.HTTPMaxRetries, DefaultConfig().HTTPMaxRetries)
	cfg.HTTPRetrySecs = env.positiveFloat("BLOG_HTTP_RETRY_DELAY", cfg.HTTPRetrySecs, DefaultConfig().HTTPRetrySecs)
	cfg.HTTPRateLimit = env.rate("BLOG_HTTP_RATE_LIMIT", cfg.HTTPRateLimit)
	cfg.LogLevel = env.str("LOG_LEVEL", cfg.LogLevel)
	warnings = append(warnings, env.warnings...)

	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	return cfg, warnings, nil
}

// sanitize resets non-positive numeric values read from a file.
func (c *Config) sanitize() []Warning {
	def := DefaultConfig()
	var warnings []Warning

	if c.CacheTTLMinutes <= 0 {
		warnings = append(warnings, Warning{"cache_ttl_minutes", strconv.Itoa(c.CacheTTLMinutes), def.CacheTTLMinutes})
		c.CacheTTLMinutes = def.CacheTTLMinutes
	}
	if c.HTTPTimeoutSecs <= 0 {
		warnings = append(warnings, Warning{"http_timeout", formatFloat(c.HTTPTimeoutSecs), def.HTTPTimeoutSecs})
		c.HTTPTimeoutSecs = def.HTTPTimeoutSecs
	}
	if c.HTTPMaxRetries <= 0 {
		warnings = append(warnings, Warning{"http_max_retries", strconv.Itoa(c.HTTPMaxRetries), def.HTTPMaxRetries})
		c.HTTPMaxRetries = def.HTTPMaxRetries
	}
	if c.HTTPRetrySecs <= 0 {
		warnings = append(warnings, Warning{"http_retry_delay", formatFloat(c.HTTPRetrySecs), def.HTTPRetrySecs})
		c.HTTPRetrySecs = def.HTTPRetrySecs
	}
	if c.HTTPRateLimit < 0 {
		warnings = append(warnings, Warning{"http_rate_limit", formatFloat(c.HTTPRateLimit), def.HTTPRateLimit})
		c.HTTPRateLimit = def.HTTPRateLimit
	}
	return warnings
}

type envReader struct {
	getenv   func(string) string
	warnings []Warning
}

func (r *envReader) str(key, fallback string) string {
	if v := strings.TrimSpace(r.getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (r *envReader) positiveInt(key string, fallback, def int) int {
	v := strings.TrimSpace(r.getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed <= 0 {
		r.warnings = append(r.warnings, Warning{Key: key, Value: v, Default: def})
		return def
	}
	return parsed
}

func (r *envReader) positiveFloat(key string, fallback, def float64) float64 {
	v := strings.TrimSpace(r.getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil || parsed <= 0 {
		r.warnings = append(r.warnings, Warning{Key: key, Value: v, Default: def})
		return def
	}
	return parsed
}

// rate accepts zero, which disables rate limiting.
func (r *envReader) rate(key string, fallback float64) float64 {
	v := strings.TrimSpace(r.getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil || parsed < 0 {
		r.warnings = append(r.warnings, Warning{Key: key, Value: v, Default: 0.0})
		return 0
	}
	return parsed
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
