// Package config loads client settings from defaults, an optional YAML file
// and GMAPS_* environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/ambiyansyah-risyal/gmaps"
)

// EnvPrefix marks the environment variables that are read. A double
// underscore separates nesting levels, so GMAPS_RETRY__MAX_ATTEMPTS sets
// retry.max_attempts.
const EnvPrefix = "GMAPS_"

// PathEnvVar names a config file when none is passed explicitly.
const PathEnvVar = "GMAPS_CONFIG"

// Config is the file and environment representation of a client.
type Config struct {
	Key            string                     `koanf:"key" validate:"required"`
	Timeout        time.Duration              `koanf:"timeout" validate:"gt=0"`
	UserAgent      string                     `koanf:"user_agent"`
	Retry          RetryConfig                `koanf:"retry"`
	RateLimits     map[string]RateLimitConfig `koanf:"rate_limits,omitempty" validate:"dive"`
	CircuitBreaker BreakerConfig              `koanf:"circuit_breaker"`
	Cache          CacheConfig                `koanf:"cache"`
	Deduplication  bool                       `koanf:"deduplication"`
	Metrics        bool                       `koanf:"metrics"`
	Log            LogConfig                  `koanf:"log"`
}

// RetryConfig mirrors gmaps.RetryPolicy.
type RetryConfig struct {
	MaxAttempts int           `koanf:"max_attempts" validate:"gte=1,lte=100"`
	BaseDelay   time.Duration `koanf:"base_delay" validate:"gt=0"`
	MaxDelay    time.Duration `koanf:"max_delay" validate:"gtefield=BaseDelay"`
	Jitter      float64       `koanf:"jitter" validate:"gte=0,lte=1"`
}

// RateLimitConfig allows Requests calls every Per.
type RateLimitConfig struct {
	Requests int           `koanf:"requests" validate:"gt=0"`
	Per      time.Duration `koanf:"per" validate:"gt=0"`
}

// BreakerConfig mirrors gmaps.CircuitBreakerConfig.
type BreakerConfig struct {
	Enabled             bool          `koanf:"enabled"`
	ConsecutiveFailures uint32        `koanf:"consecutive_failures" validate:"gt=0"`
	MaxRequests         uint32        `koanf:"max_requests" validate:"gt=0"`
	Interval            time.Duration `koanf:"interval" validate:"gte=0"`
	Timeout             time.Duration `koanf:"timeout" validate:"gt=0"`
}

type CacheConfig struct {
	Enabled bool          `koanf:"enabled"`
	TTL     time.Duration `koanf:"ttl" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=console json"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	retry := gmaps.DefaultRetryPolicy()
	breaker := gmaps.DefaultCircuitBreakerConfig()
	return &Config{
		Timeout:   30 * time.Second,
		UserAgent: "gmaps-go/" + gmaps.Version,
		Retry: RetryConfig{
			MaxAttempts: retry.MaxAttempts,
			BaseDelay:   retry.BaseDelay,
			MaxDelay:    retry.MaxDelay,
			Jitter:      retry.Jitter,
		},
		CircuitBreaker: BreakerConfig{
			ConsecutiveFailures: breaker.ConsecutiveFailures,
			MaxRequests:         breaker.MaxRequests,
			Interval:            breaker.Interval,
			Timeout:             breaker.Timeout,
		},
		Cache: CacheConfig{TTL: 5 * time.Minute},
		Log:   LogConfig{Level: "warn", Format: "console"},
	}
}

// Load layers defaults, the YAML file at path, the environment and finally
// overrides, keyed by koanf path such as "log.level". An empty path falls
// back to $GMAPS_CONFIG; no file at all is not an error.
func Load(path string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = os.Getenv(PathEnvVar)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	for key, val := range overrides {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// envTransformFunc maps GMAPS_RATE_LIMITS__GEOCODING__REQUESTS to
// rate_limits.geocoding.requests. Variables that name nothing are dropped.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if key == "config" {
		return ""
	}
	return strings.ReplaceAll(key, "__", ".")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field ranges and that every rate limit names a known
// API group.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	var unknown []string
	for name := range c.RateLimits {
		if _, ok := gmaps.ParseAPI(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("rate_limits: unknown API group(s) %s", strings.Join(unknown, ", "))
	}
	return nil
}

// Options converts c into client options. The caller supplies the logger
// so the output stream stays under its control.
func (c *Config) Options(logger zerolog.Logger) []gmaps.Option {
	opts := []gmaps.Option{
		gmaps.WithTimeout(c.Timeout),
		gmaps.WithRetryPolicy(gmaps.RetryPolicy{
			MaxAttempts: c.Retry.MaxAttempts,
			BaseDelay:   c.Retry.BaseDelay,
			MaxDelay:    c.Retry.MaxDelay,
			Jitter:      c.Retry.Jitter,
		}),
		gmaps.WithZerolog(logger),
	}
	if c.UserAgent != "" {
		opts = append(opts, gmaps.WithUserAgent(c.UserAgent))
	}

	names := make([]string, 0, len(c.RateLimits))
	for name := range c.RateLimits {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		api, ok := gmaps.ParseAPI(name)
		if !ok {
			continue
		}
		rl := c.RateLimits[name]
		opts = append(opts, gmaps.WithRateLimit(api, rl.Requests, rl.Per))
	}

	if c.CircuitBreaker.Enabled {
		opts = append(opts, gmaps.WithCircuitBreaker(gmaps.CircuitBreakerConfig{
			ConsecutiveFailures: c.CircuitBreaker.ConsecutiveFailures,
			MaxRequests:         c.CircuitBreaker.MaxRequests,
			Interval:            c.CircuitBreaker.Interval,
			Timeout:             c.CircuitBreaker.Timeout,
		}))
	}
	if c.Cache.Enabled {
		opts = append(opts, gmaps.WithCache(c.Cache.TTL))
	}
	if c.Deduplication {
		opts = append(opts, gmaps.WithDeduplication())
	}
	if c.Metrics {
		opts = append(opts, gmaps.WithMetrics())
	}
	return opts
}

// Logger builds the zerolog logger described by c.Log, writing to w.
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		level = zerolog.WarnLevel
	}
	if c.Log.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
