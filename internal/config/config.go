package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	pkglogger "github.com/tourvista/tourism-backend/pkg/logger"
	"gopkg.in/yaml.v3"
)

// Config is the root application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Search    SearchConfig    `yaml:"search"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port            int           `yaml:"port" validate:"min=1,max=65535"`
	Mode            string        `yaml:"mode" validate:"oneof=debug release test"`
	Env             string        `yaml:"env"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"min=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"min=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"min=0"`
}

// DatabaseConfig MySQL connection settings
type DatabaseConfig struct {
	Host            string        `yaml:"host" validate:"required"`
	Port            int           `yaml:"port" validate:"min=1,max=65535"`
	User            string        `yaml:"user" validate:"required"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name" validate:"required"`
	MaxIdleConns    int           `yaml:"max_idle_conns" validate:"min=0"`
	MaxOpenConns    int           `yaml:"max_open_conns" validate:"min=0"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" validate:"min=0"`
}

// GetDSN builds the go-sql-driver/mysql DSN
func (d DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// RedisConfig Redis connection settings
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host" validate:"required_if=Enabled true"`
	Port     int    `yaml:"port" validate:"min=0,max=65535"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" validate:"min=0"`
	PoolSize int    `yaml:"pool_size" validate:"min=0"`
}

// CORSConfig allowed origins, comma separated
type CORSConfig struct {
	AllowOrigins string `yaml:"allow_origins"`
}

// RateLimitConfig per-IP request budget for public endpoints
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requests_per_minute" validate:"min=0"`
}

// SearchConfig federated search tuning
type SearchConfig struct {
	// PerSourceLimit caps the results each content source contributes.
	PerSourceLimit int `yaml:"per_source_limit" validate:"min=1,max=50"`
	// SourceTimeout bounds a single source query.
	SourceTimeout time.Duration `yaml:"source_timeout" validate:"min=1ms"`
	// MaxResults caps the merged list; 0 means unlimited.
	MaxResults int `yaml:"max_results" validate:"min=0"`
}

// LogConfig logger settings
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
}

// Default returns the configuration used when a field is absent from the file
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8081,
			Mode:            "release",
			Env:             "local",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            3306,
			User:            "tourism",
			Name:            "tourism",
			MaxIdleConns:    10,
			MaxOpenConns:    50,
			ConnMaxLifetime: time.Hour,
		},
		Redis: RedisConfig{
			Host:     "localhost",
			Port:     6379,
			PoolSize: 10,
		},
		CORS: CORSConfig{AllowOrigins: "http://localhost:3000"},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 120,
		},
		Search: SearchConfig{
			PerSourceLimit: 5,
			SourceTimeout:  2 * time.Second,
			MaxResults:     0,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the YAML file at path on top of Default(), applies environment
// overrides and validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		pkglogger.Warn("config file %s not found, using defaults and environment", path)
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// IsDevelopment reports whether the app runs in a local/dev environment
func (c *Config) IsDevelopment() bool {
	return IsDevelopmentEnv(c.Server.Env)
}

// IsDevelopmentEnv reports whether env names a local/dev environment.
// Usable before the config file is loaded.
func IsDevelopmentEnv(env string) bool {
	switch env {
	case "", "local", "dev", "development":
		return true
	}
	return false
}

// applyEnv overrides file values with environment variables.
// Secrets should only ever come from here.
func applyEnv(cfg *Config) {
	setString(&cfg.Server.Env, "APP_ENV")
	setInt(&cfg.Server.Port, "PORT")
	setString(&cfg.Server.Mode, "GIN_MODE")

	setString(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")

	setBool(&cfg.Redis.Enabled, "REDIS_ENABLED")
	setString(&cfg.Redis.Host, "REDIS_HOST")
	setInt(&cfg.Redis.Port, "REDIS_PORT")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")

	setString(&cfg.CORS.AllowOrigins, "CORS_ALLOW_ORIGINS")
	setBool(&cfg.RateLimit.Enabled, "RATE_LIMIT_ENABLED")

	setInt(&cfg.Search.PerSourceLimit, "SEARCH_PER_SOURCE_LIMIT")
	setDuration(&cfg.Search.SourceTimeout, "SEARCH_SOURCE_TIMEOUT")
	setInt(&cfg.Search.MaxResults, "SEARCH_MAX_RESULTS")

	setString(&cfg.Log.Level, "LOG_LEVEL")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			*dst = d
		}
	}
}

// LogResolved prints the effective configuration without secrets
func LogResolved(cfg *Config) {
	pkglogger.GetLogger().Info().
		Str("env", cfg.Server.Env).
		Int("port", cfg.Server.Port).
		Str("db_host", cfg.Database.Host).
		Str("db_name", cfg.Database.Name).
		Bool("redis_enabled", cfg.Redis.Enabled).
		Bool("rate_limit", cfg.RateLimit.Enabled).
		Int("search_per_source_limit", cfg.Search.PerSourceLimit).
		Dur("search_source_timeout", cfg.Search.SourceTimeout).
		Int("search_max_results", cfg.Search.MaxResults).
		Msg("config resolved")
}
