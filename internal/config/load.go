package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the service reads,
// e.g. USERAPI_SERVER_PORT for server.port.
const EnvPrefix = "USERAPI"

// Default values applied before any file or environment source.
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultRequestTimeout  = "5s"
	DefaultShutdownTimeout = "10s"
	DefaultMaxConns        = 5
	DefaultMinConns        = 0
	DefaultMaxConnLifetime = "5m"
)

// Load reads configuration from the current working directory and the
// environment. See LoadFrom.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom reads configuration with the following precedence, highest first:
//
//  1. environment variables (USERAPI_ prefix, "." replaced by "_");
//     database.url additionally falls back to DATABASE_URL
//  2. variables from dir/.env, which never override the real environment
//  3. dir/config.yaml
//  4. defaults
//
// Both files are optional. The result is validated before it is returned.
func LoadFrom(dir string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("database.url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind database url: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.request_timeout", DefaultRequestTimeout)
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)

	v.SetDefault("database.max_conns", DefaultMaxConns)
	v.SetDefault("database.min_conns", DefaultMinConns)
	v.SetDefault("database.max_conn_lifetime", DefaultMaxConnLifetime)
	v.SetDefault("database.auto_migrate", true)
}
