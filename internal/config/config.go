package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Session SessionConfig
	Pricing PricingConfig
	Catalog CatalogConfig
	Weather WeatherConfig
	SMTP    SMTPConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// SessionConfig holds session store configuration. When RedisAddr is empty
// the in-memory store is used.
type SessionConfig struct {
	RedisAddr     string
	RedisPassword string
	TTLMinutes    int
	CookieSecure  bool
}

// PricingConfig holds the site-wide pricing rules. The tax rate and currency
// differ between deployments, so both are injected rather than hard-coded.
type PricingConfig struct {
	TaxRate  float64 // e.g. 0.08 for 8%
	Currency string  // ISO 4217 code, e.g. "USD"
}

// CatalogConfig holds the product catalogue source configuration.
type CatalogConfig struct {
	Path string // local JSON file, also the fallback when S3 fails
	S3   S3Config
}

// S3Config holds AWS S3 configuration for the catalogue file.
type S3Config struct {
	Enabled bool
	Bucket  string
	Region  string
	Key     string // object key within the bucket
}

// WeatherConfig holds the upstream weather provider configuration.
type WeatherConfig struct {
	ForecastURL     string
	AirQualityURL   string
	GeocodeURL      string
	CacheTTLSeconds int
	TimeoutSeconds  int
}

// SMTPConfig holds the contact-form mail configuration.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	To       string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Session: SessionConfig{
			RedisAddr:     getEnv("REDIS_ADDR", ""),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			TTLMinutes:    getEnvAsInt("SESSION_TTL_MINUTES", 1440),
			CookieSecure:  getEnvAsBool("SESSION_COOKIE_SECURE", false),
		},
		Pricing: PricingConfig{
			TaxRate:  getEnvAsFloat("TAX_RATE", 0.08),
			Currency: getEnv("CURRENCY", "USD"),
		},
		Catalog: CatalogConfig{
			Path: getEnv("CATALOG_PATH", "data/products.json"),
			S3: S3Config{
				Enabled: getEnvAsBool("S3_ENABLED", false),
				Bucket:  getEnv("S3_BUCKET", ""),
				Region:  getEnv("S3_REGION", "us-east-1"),
				Key:     getEnv("S3_KEY", "catalog/products.json"),
			},
		},
		Weather: WeatherConfig{
			ForecastURL:     getEnv("WEATHER_FORECAST_URL", "https://api.open-meteo.com/v1/forecast"),
			AirQualityURL:   getEnv("WEATHER_AIR_QUALITY_URL", "https://air-quality-api.open-meteo.com/v1/air-quality"),
			GeocodeURL:      getEnv("WEATHER_GEOCODE_URL", "https://geocoding-api.open-meteo.com/v1/search"),
			CacheTTLSeconds: getEnvAsInt("WEATHER_CACHE_TTL_SECONDS", 600),
			TimeoutSeconds:  getEnvAsInt("WEATHER_TIMEOUT_SECONDS", 10),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASS", ""),
			To:       getEnv("CONTACT_TO_EMAIL", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Session.TTLMinutes < 1 {
		return fmt.Errorf("session TTL must be at least 1 minute")
	}

	if c.Pricing.TaxRate < 0 || c.Pricing.TaxRate >= 1 {
		return fmt.Errorf("invalid tax rate: %v (must be in [0, 1))", c.Pricing.TaxRate)
	}

	if c.Pricing.Currency == "" {
		return fmt.Errorf("currency is required")
	}

	if c.Catalog.Path == "" {
		return fmt.Errorf("catalogue path is required")
	}

	if c.Catalog.S3.Enabled {
		if c.Catalog.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when S3 is enabled")
		}
		if c.Catalog.S3.Region == "" {
			return fmt.Errorf("S3 region is required when S3 is enabled")
		}
		if c.Catalog.S3.Key == "" {
			return fmt.Errorf("S3 key is required when S3 is enabled")
		}
	}

	if c.Weather.ForecastURL == "" || c.Weather.AirQualityURL == "" || c.Weather.GeocodeURL == "" {
		return fmt.Errorf("weather provider URLs are required")
	}

	if c.Weather.CacheTTLSeconds < 0 {
		return fmt.Errorf("weather cache TTL cannot be negative")
	}

	if c.Weather.TimeoutSeconds < 1 {
		return fmt.Errorf("weather timeout must be at least 1 second")
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float or returns a default value.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
