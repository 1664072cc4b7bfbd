// Package config assembles and validates application configuration from
// YAML plus APP_* environment overrides.
package config

import (
	"github.com/maxviazov/futbol-stats-service/internal/logger"
)

type Config struct {
	App      AppConfig           `mapstructure:"app"`
	// Logger is validated by logger.New after defaults are applied.
	Logger   logger.LoggerConfig `mapstructure:"logger" validate:"-"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
	Auth     AuthConfig          `mapstructure:"auth"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env" validate:"oneof=dev staging prod test"`
	Port    int    `mapstructure:"port" validate:"gt=0,lte=65535"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     int    `mapstructure:"port" validate:"gt=0,lte=65535"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname" validate:"required"`
	SSLMode  string `mapstructure:"sslmode"`

	// Pool tuning, durations in seconds.
	MaxConns          int32 `mapstructure:"max_conns"`
	MinConns          int32 `mapstructure:"min_conns"`
	MaxConnLifetime   int   `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   int   `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod int   `mapstructure:"health_check_period"`
}

// AuthConfig holds the shared login password and token signing material.
// Both secrets are expected to arrive via APP_AUTH_* env vars, never YAML.
type AuthConfig struct {
	Password        string `mapstructure:"password" validate:"required"`
	TokenSecret     string `mapstructure:"token_secret" validate:"required"`
	TokenTTLMinutes int    `mapstructure:"token_ttl_minutes" validate:"gt=0"`
}
