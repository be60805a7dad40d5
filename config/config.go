// Package config loads runtime configuration from an optional yaml file and
// the environment, with sane defaults for local development.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Ollama    OllamaConfig    `mapstructure:"ollama"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Sentry    SentryConfig    `mapstructure:"sentry"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Addr        string `mapstructure:"addr"`
	Mode        string `mapstructure:"mode"` // debug | release
	SeedOnStart bool   `mapstructure:"seed_on_start"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type OllamaConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RedisConfig enables the reply cache; an empty addr disables it.
type RedisConfig struct {
	Addr          string        `mapstructure:"addr"`
	ReplyCacheTTL time.Duration `mapstructure:"reply_cache_ttl"`
}

type SentryConfig struct {
	DSN string `mapstructure:"dsn"`
}

type TelemetryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
}

// RateLimitConfig throttles the LLM-backed ask endpoint.
type RateLimitConfig struct {
	AskPerSecond float64 `mapstructure:"ask_per_second"`
	AskBurst     int     `mapstructure:"ask_burst"`
}

// Load reads config.yaml (when present) and AGENTMATCH_* env overrides.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.seed_on_start", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("ollama.base_url", "http://127.0.0.1:11434")
	v.SetDefault("ollama.model", "llama3.2:1b")
	v.SetDefault("ollama.timeout", 30*time.Second)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.reply_cache_ttl", 10*time.Minute)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "localhost:4318")
	v.SetDefault("rate_limit.ask_per_second", 2.0)
	v.SetDefault("rate_limit.ask_burst", 5)

	v.SetEnvPrefix("AGENTMATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
