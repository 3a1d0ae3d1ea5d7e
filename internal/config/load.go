package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "KITCHEN"

// keys lists every configuration key so that environment overrides are
// visible to Unmarshal even when no config file defines them.
var keys = []string{
	"server.port",
	"server.log_level",
	"server.environment",
	"database.url",
	"auth.jwt_secret",
	"auth.token_lifetime_minutes",
	"auth.bcrypt_cost",
	"rate_limit.requests",
	"rate_limit.window_minutes",
	"cors.allowed_origins",
	"metrics.enabled",
	"seed.vendor_passwords",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 4000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.environment", EnvDevelopment)
	v.SetDefault("auth.token_lifetime_minutes", 24*60)
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("rate_limit.requests", 100)
	v.SetDefault("rate_limit.window_minutes", 15)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("metrics.enabled", true)
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// A .env file in the working directory is loaded first when present.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
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
