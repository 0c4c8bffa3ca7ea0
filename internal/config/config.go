package config

import (
	"errors"
	"fmt"

	apperrors "lead-crm-backend/internal/errors"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Bearer tokens
	JWTSecret string `mapstructure:"JWT_SECRET"`
	JWTIssuer string `mapstructure:"JWT_ISSUER"`

	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Public lead intake
	IntakeFallbackCompanyPath string `mapstructure:"INTAKE_FALLBACK_COMPANY_PATH"` // empty disables the fallback
	IntakeTeamType            string `mapstructure:"INTAKE_TEAM_TYPE"`
	IntakeRateLimit           int    `mapstructure:"INTAKE_RATE_LIMIT"` // submissions per IP per minute, 0 disables

	// Redis backs the intake rate limiter only
	RedisEnabled  bool   `mapstructure:"REDIS_ENABLED"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	SentryDSN string `mapstructure:"SENTRY_DSN"`
}

// defaults lists every key Load knows about. viper only maps environment
// variables onto keys it has seen, so each key needs an entry here.
var defaults = map[string]interface{}{
	"ENVIRONMENT": "development",
	"PORT":        "7008",
	"LOG_LEVEL":   "info",

	"DATABASE_URL": "",
	"DB_HOST":      "localhost",
	"DB_PORT":      "5432",
	"DB_USER":      "postgres",
	"DB_PASSWORD":  "postgres",
	"DB_NAME":      "lead_crm",
	"DB_SSL_MODE":  "disable",

	"JWT_SECRET": defaultJWTSecret,
	"JWT_ISSUER": "lead-crm-backend",

	"ALLOWED_ORIGINS": []string{"http://localhost:3000", "http://localhost:8080"},

	"INTAKE_FALLBACK_COMPANY_PATH": "/test/",
	"INTAKE_TEAM_TYPE":             "support",
	"INTAKE_RATE_LIMIT":            10,

	"REDIS_ENABLED":  false,
	"REDIS_ADDR":     "localhost:6379",
	"REDIS_PASSWORD": "",
	"REDIS_DB":       0,

	"SENTRY_DSN": "",
}

// Load reads config.yaml (from . or ./config) when present, then lets
// environment variables override it.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	// An empty INTAKE_FALLBACK_COMPANY_PATH must be able to switch the fallback off
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			cfg.DatabaseUser, cfg.DatabasePassword,
			cfg.DatabaseHost, cfg.DatabasePort,
			cfg.DatabaseName, cfg.DatabaseSSLMode,
		)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.IsProduction() && cfg.JWTSecret == defaultJWTSecret {
		return apperrors.ErrJWTSecretNotSet
	}
	if cfg.DatabaseName == "" && cfg.DatabaseURL == "" {
		return &apperrors.ConfigurationError{Message: "DATABASE_URL or DB_NAME is required"}
	}
	switch cfg.IntakeTeamType {
	case "sales", "support":
	default:
		return &apperrors.ConfigurationError{Message: fmt.Sprintf("INTAKE_TEAM_TYPE must be sales or support, got %q", cfg.IntakeTeamType)}
	}
	if cfg.IntakeRateLimit < 0 {
		return &apperrors.ConfigurationError{Message: "INTAKE_RATE_LIMIT must not be negative"}
	}
	return nil
}

// IsProduction reports whether ENVIRONMENT is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
