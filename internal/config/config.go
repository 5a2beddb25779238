package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Geocoder GeocoderConfig
	JWT      JWTConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// UpstreamConfig points at the HR backend REST API the console fronts.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// GeocoderConfig holds the reverse-geocoding service settings. The API key is
// optional; without it every capture falls back to a coordinate string.
type GeocoderConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

func Load() (*Config, error) {
	// A missing .env is fine; real environment variables win either way.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	upstreamTimeout, err := time.ParseDuration(getEnv("HR_API_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HR_API_TIMEOUT: %w", err)
	}

	config.Upstream = UpstreamConfig{
		BaseURL: getEnv("HR_API_BASE_URL", ""),
		Timeout: upstreamTimeout,
	}

	geocoderTimeout, err := time.ParseDuration(getEnv("GEOCODER_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid GEOCODER_TIMEOUT: %w", err)
	}

	config.Geocoder = GeocoderConfig{
		BaseURL: getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		APIKey:  getEnv("GEOCODER_API_KEY", ""),
		Timeout: geocoderTimeout,
	}

	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("HR_API_BASE_URL is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
