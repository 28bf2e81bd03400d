package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// http throttling, per client ip and route group
	HttpRateLimitAllowedPerMin int `toml:"http_rate_limit_allowed_per_min"`
	// caches
	ExerciseCacheSizeMB       int `toml:"exercise_cache_size_mb"`
	ExerciseCacheTTLSeconds   int `toml:"exercise_cache_ttl_seconds"`
	BucketStatsCacheTTLSecond int `toml:"bucket_stats_cache_ttl_seconds"`
	// llm
	OpenAIModel string `toml:"openai_model"`
	// per action overrides of the llm rate limits, keyed by action name
	RateLimits map[string]RateLimitConfig `toml:"rate_limits"`
}

type RateLimitConfig struct {
	MaxCalls      int `toml:"max_calls"`
	WindowMinutes int `toml:"window_minutes"`
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not set", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the config section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	cfg.setDefaults()

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.HttpRateLimitAllowedPerMin == 0 {
		c.HttpRateLimitAllowedPerMin = 120
	}
	if c.ExerciseCacheSizeMB == 0 {
		c.ExerciseCacheSizeMB = 16
	}
	if c.ExerciseCacheTTLSeconds == 0 {
		c.ExerciseCacheTTLSeconds = 300
	}
	if c.BucketStatsCacheTTLSecond == 0 {
		c.BucketStatsCacheTTLSecond = 60
	}
	if c.OpenAIModel == "" {
		c.OpenAIModel = "gpt-4o-mini"
	}
}
