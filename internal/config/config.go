package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Config carries everything main needs to wire the server.
type Config struct {
	Port      string
	JWTSecret string

	// AI provider
	Provider        string
	ProviderTimeout time.Duration

	// Postgres connection pieces
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	// CORS
	AllowedOrigins []string

	// Janitor job for abandoned interviews
	JanitorEnabled  bool
	JanitorSchedule string
	JanitorMaxAge   time.Duration
}

// loads configuration from environment variables
func LoadConfig() (*Config, error) {
	providerTimeout, err := time.ParseDuration(getEnvOrDefault("AI_CALL_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid AI_CALL_TIMEOUT: %w", err)
	}
	janitorMaxAge, err := time.ParseDuration(getEnvOrDefault("JANITOR_MAX_AGE", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JANITOR_MAX_AGE: %w", err)
	}

	config := &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		JWTSecret:       getEnvOrDefault("JWT_SECRET", "dev"),
		Provider:        getEnvOrDefault("AI_PROVIDER", "gemini"),
		ProviderTimeout: providerTimeout,
		DBHost:          getEnvOrDefault("POSTGRES_HOST", "localhost"),
		DBUser:          getEnvOrDefault("POSTGRES_USER", "postgres"),
		DBPassword:      getEnvOrDefault("POSTGRES_PASSWORD", "postgres"),
		DBName:          getEnvOrDefault("POSTGRES_DB", "prepmate"),
		DBPort:          getEnvOrDefault("POSTGRES_PORT", "5432"),
		DBSSLMode:       getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
		AllowedOrigins:  splitOrigins(getEnvOrDefault("CORS_ORIGINS", "http://localhost:5173")),
		JanitorEnabled:  getEnvOrDefault("JANITOR_ENABLED", "false") == "true",
		JanitorSchedule: getEnvOrDefault("JANITOR_SCHEDULE", "0 3 * * *"),
		JanitorMaxAge:   janitorMaxAge,
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// DSN assembles the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func validateConfig(config *Config) error {
	if config.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: gemini")
	}
	if config.ProviderTimeout <= 0 {
		return errors.New("AI_CALL_TIMEOUT must be positive")
	}
	if config.JanitorMaxAge <= 0 {
		return errors.New("JANITOR_MAX_AGE must be positive")
	}
	return nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
