package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "configs/config.yaml"

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP          HTTPConfig          `yaml:"http"`
	LLM           LLMConfig           `yaml:"llm"`
	Guidance      GuidanceConfig      `yaml:"guidance"`
	Auth          AuthConfig          `yaml:"auth"`
	Postgres      PostgresConfig      `yaml:"postgres"`
	Valkey        ValkeyConfig        `yaml:"valkey"`
	ObjectStorage ObjectStorageConfig `yaml:"objectStorage"`
	Scheduler     SchedulerConfig     `yaml:"scheduler"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address         string          `yaml:"address"`
	ReadTimeout     time.Duration   `yaml:"readTimeout"`
	WriteTimeout    time.Duration   `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration   `yaml:"shutdownTimeout"`
	RateLimit       RateLimitConfig `yaml:"rateLimit"`
	AllowedOrigins  []string        `yaml:"allowedOrigins"`
}

// RateLimitConfig drives the per-IP limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// LLMConfig contains OpenAI compatible chat settings.
type LLMConfig struct {
	APIKey              string        `yaml:"apiKey"`
	BaseURL             string        `yaml:"baseUrl"`
	Model               string        `yaml:"model"`
	Temperature         float32       `yaml:"temperature"`
	MaxCompletionTokens int           `yaml:"maxCompletionTokens"`
	Timeout             time.Duration `yaml:"timeout"`
}

// GuidanceConfig controls the guidance chat proxy.
type GuidanceConfig struct {
	Prompt         string        `yaml:"prompt"`
	DefaultMessage string        `yaml:"defaultMessage"`
	RequirePremium bool          `yaml:"requirePremium"`
	MaxRequests    int           `yaml:"maxRequests"`
	Window         time.Duration `yaml:"window"`
}

// AuthConfig verifies access tokens minted by the hosted identity provider.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwtSecret"`
	Audience  string        `yaml:"audience"`
	Leeway    time.Duration `yaml:"leeway"`
}

// PostgresConfig contains DSN and pooling settings. An empty DSN selects memory storage.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// ValkeyConfig contains connection information for the rate window store.
type ValkeyConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Addr      string `yaml:"addr"`
	KeyPrefix string `yaml:"keyPrefix"`
}

// ObjectStorageConfig addresses the S3 compatible bucket for snapshot exports.
type ObjectStorageConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
}

// SchedulerConfig controls background jobs.
type SchedulerConfig struct {
	Enabled            bool   `yaml:"enabled"`
	CosmicSnapshotSpec string `yaml:"cosmicSnapshotSpec"`
	Timezone           string `yaml:"timezone"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat(defaultConfigPath); err == nil {
		if err := hydrateFromFile(cfg, defaultConfigPath); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	setString(&cfg.HTTP.Address, "HTTP_ADDRESS")
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	setBool(&cfg.HTTP.RateLimit.Enabled, "HTTP_RATE_LIMIT_ENABLED")
	setInt(&cfg.HTTP.RateLimit.RequestsPerMinute, "HTTP_RATE_LIMIT_RPM")
	setInt(&cfg.HTTP.RateLimit.Burst, "HTTP_RATE_LIMIT_BURST")

	setString(&cfg.LLM.APIKey, "OPENAI_API_KEY")
	setString(&cfg.LLM.APIKey, "LLM_API_KEY")
	setString(&cfg.LLM.BaseURL, "LLM_BASE_URL")
	setString(&cfg.LLM.Model, "LLM_MODEL")
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	setInt(&cfg.LLM.MaxCompletionTokens, "LLM_MAX_COMPLETION_TOKENS")
	setDuration(&cfg.LLM.Timeout, "LLM_TIMEOUT")

	setString(&cfg.Guidance.Prompt, "GUIDANCE_PROMPT")
	setString(&cfg.Guidance.DefaultMessage, "GUIDANCE_DEFAULT_MESSAGE")
	setBool(&cfg.Guidance.RequirePremium, "GUIDANCE_REQUIRE_PREMIUM")
	setInt(&cfg.Guidance.MaxRequests, "GUIDANCE_MAX_REQUESTS")
	setDuration(&cfg.Guidance.Window, "GUIDANCE_WINDOW")

	setString(&cfg.Auth.JWTSecret, "SUPABASE_JWT_SECRET")
	setString(&cfg.Auth.JWTSecret, "AUTH_JWT_SECRET")
	setString(&cfg.Auth.Audience, "AUTH_AUDIENCE")
	setDuration(&cfg.Auth.Leeway, "AUTH_LEEWAY")

	setString(&cfg.Postgres.DSN, "DATABASE_URL")
	setString(&cfg.Postgres.DSN, "POSTGRES_DSN")
	setInt32(&cfg.Postgres.MaxConns, "POSTGRES_MAX_CONNS")
	setInt32(&cfg.Postgres.MinConns, "POSTGRES_MIN_CONNS")

	setBool(&cfg.Valkey.Enabled, "VALKEY_ENABLED")
	setString(&cfg.Valkey.Addr, "VALKEY_ADDR")
	setString(&cfg.Valkey.KeyPrefix, "VALKEY_KEY_PREFIX")

	setBool(&cfg.ObjectStorage.Enabled, "OBJECT_STORAGE_ENABLED")
	setString(&cfg.ObjectStorage.Endpoint, "OBJECT_STORAGE_ENDPOINT")
	setString(&cfg.ObjectStorage.AccessKey, "OBJECT_STORAGE_ACCESS_KEY")
	setString(&cfg.ObjectStorage.SecretKey, "OBJECT_STORAGE_SECRET_KEY")
	setString(&cfg.ObjectStorage.Bucket, "OBJECT_STORAGE_BUCKET")
	setString(&cfg.ObjectStorage.Region, "OBJECT_STORAGE_REGION")

	setBool(&cfg.Scheduler.Enabled, "SCHEDULER_ENABLED")
	setString(&cfg.Scheduler.CosmicSnapshotSpec, "SCHEDULER_COSMIC_SNAPSHOT_SPEC")
	setString(&cfg.Scheduler.Timezone, "SCHEDULER_TIMEZONE")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v == "1" || strings.EqualFold(v, "true")
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func setInt32(dst *int32, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 32); err == nil {
			*dst = int32(parsed)
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			*dst = parsed
		}
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:         ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    75 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
			AllowedOrigins: []string{"*"},
		},
		LLM: LLMConfig{
			Model:               "gpt-4o-mini",
			Temperature:         0.8,
			MaxCompletionTokens: 500,
			Timeout:             60 * time.Second,
		},
		Guidance: GuidanceConfig{
			DefaultMessage: "What guidance do the stars have for me today?",
			MaxRequests:    10,
			Window:         time.Minute,
		},
		Postgres: PostgresConfig{
			MaxConns: 4,
		},
		Valkey: ValkeyConfig{
			KeyPrefix: "cosmos:ratelimit:",
		},
		ObjectStorage: ObjectStorageConfig{
			Bucket: "cosmic-snapshots",
			Region: "auto",
		},
		Scheduler: SchedulerConfig{
			Enabled:            true,
			CosmicSnapshotSpec: "5 0 * * *",
			Timezone:           "UTC",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.HTTP.Address) == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model cannot be empty")
	}
	if c.LLM.MaxCompletionTokens <= 0 {
		return errors.New("llm.maxCompletionTokens must be positive")
	}
	if c.Guidance.MaxRequests <= 0 {
		return errors.New("guidance.maxRequests must be positive")
	}
	if c.Guidance.Window <= 0 {
		return errors.New("guidance.window must be positive")
	}
	if c.Auth.Leeway < 0 {
		return errors.New("auth.leeway cannot be negative")
	}
	if c.Postgres.MinConns < 0 || (c.Postgres.MaxConns > 0 && c.Postgres.MinConns > c.Postgres.MaxConns) {
		return errors.New("postgres.minConns must be between 0 and postgres.maxConns")
	}
	if c.Valkey.Enabled && strings.TrimSpace(c.Valkey.Addr) == "" {
		return errors.New("valkey.addr cannot be empty when valkey is enabled")
	}
	if c.ObjectStorage.Enabled {
		if strings.TrimSpace(c.ObjectStorage.Endpoint) == "" || strings.TrimSpace(c.ObjectStorage.Bucket) == "" {
			return errors.New("objectStorage.endpoint and objectStorage.bucket are required when object storage is enabled")
		}
	}
	if c.Scheduler.Enabled {
		if _, err := cron.ParseStandard(c.Scheduler.CosmicSnapshotSpec); err != nil {
			return fmt.Errorf("scheduler.cosmicSnapshotSpec: %w", err)
		}
		if _, err := time.LoadLocation(c.Scheduler.Timezone); err != nil {
			return fmt.Errorf("scheduler.timezone: %w", err)
		}
	}
	return nil
}
