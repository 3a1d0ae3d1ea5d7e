package config

// Environment names accepted by ServerConfig.Environment.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth" validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" validate:"required"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Seed      SeedConfig      `mapstructure:"seed"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// Environment controls how much error detail reaches API clients.
	Environment string `mapstructure:"environment" validate:"required,oneof=development production test"`
}

// IsProduction reports whether the server runs in production mode.
func (c ServerConfig) IsProduction() bool {
	return c.Environment == EnvProduction
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	BcryptCost           int    `mapstructure:"bcrypt_cost" validate:"required,gte=4,lte=31"`
}

// RateLimitConfig bounds how many requests one client address may issue per window.
type RateLimitConfig struct {
	Requests      int `mapstructure:"requests" validate:"required,gt=0"`
	WindowMinutes int `mapstructure:"window_minutes" validate:"required,gt=0"`
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// SeedConfig holds credentials used only by the seed command.
type SeedConfig struct {
	VendorPasswords []string `mapstructure:"vendor_passwords"`
}
