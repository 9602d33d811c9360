package config

import (
	"fmt"
	"os"
	"strings"
	"time"

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
	PostgresUser   string `toml:"postgres_user"`
	RunMigrations  bool   `toml:"run_migrations"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// auth
	SessionTTL                 time.Duration `toml:"session_ttl"`
	AuthRateLimitAllowedPerMin int           `toml:"auth_rate_limit_allowed_per_min"`
	AllowedOrigins             []string      `toml:"allowed_origins"`

	// inference
	InferenceBaseURL          string        `toml:"inference_base_url"`
	InferenceModel            string        `toml:"inference_model"`
	InferenceTimeout          time.Duration `toml:"inference_timeout"`
	InferenceCacheSizeMB      int           `toml:"inference_cache_size_mb"`
	InferenceCacheExpireHours int           `toml:"inference_cache_expire_hours"`

	// avatars (s3 compatible storage)
	S3Region        string `toml:"s3_region"`
	S3Bucket        string `toml:"s3_bucket"`
	S3BaseEndpoint  string `toml:"s3_base_endpoint"`
	S3PublicBaseURL string `toml:"s3_public_base_url"`

	MCPEnabled bool `toml:"mcp_enabled"`
}

type Toml struct {
	Development *Config
	Production  *Config
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
		return nil, fmt.Errorf("config section for env [%s] missing", env)
	}
	cfg.setDefaults()
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	tomlBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(env, string(tomlBytes))
}

func Parse(env, tomlData string) (*Config, error) {
	var cfgToml Toml
	if _, err := toml.Decode(tomlData, &cfgToml); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	return cfgToml.Get(env)
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.SessionTTL == 0 {
		c.SessionTTL = 24 * 7 * time.Hour
	}
	if c.AuthRateLimitAllowedPerMin == 0 {
		c.AuthRateLimitAllowedPerMin = 15
	}
	if c.InferenceBaseURL == "" {
		c.InferenceBaseURL = "https://api.openai.com/v1"
	}
	if c.InferenceModel == "" {
		c.InferenceModel = "gpt-4o-mini"
	}
	if c.InferenceTimeout == 0 {
		c.InferenceTimeout = 30 * time.Second
	}
	if c.InferenceCacheSizeMB == 0 {
		c.InferenceCacheSizeMB = 20
	}
	if c.InferenceCacheExpireHours == 0 {
		c.InferenceCacheExpireHours = 24
	}
	if c.S3Region == "" {
		c.S3Region = "us-east-1"
	}
	if c.S3Bucket == "" {
		c.S3Bucket = "profile_picture"
	}
}
