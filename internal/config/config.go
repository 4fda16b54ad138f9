package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Store     StoreConfig
	RecordAPI RecordAPIConfig
	Database  DatabaseConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// StoreConfig selects the record-store backend.
type StoreConfig struct {
	// Backend is one of "remote", "mock", "postgres".
	Backend string
}

// RecordAPIConfig addresses the hosted record API. ProjectID and PublicKey
// are the only two values the remote backend needs.
type RecordAPIConfig struct {
	BaseURL   string
	ProjectID string
	PublicKey string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

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

	config.Store = StoreConfig{
		Backend: getEnv("STORE_BACKEND", "mock"),
	}

	config.RecordAPI = RecordAPIConfig{
		BaseURL:   getEnv("RECORD_API_BASE_URL", "https://api.apper.io/v1"),
		ProjectID: getEnv("RECORD_API_PROJECT_ID", ""),
		PublicKey: getEnv("RECORD_API_PUBLIC_KEY", ""),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "staffhub"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate enforces the backend-specific required values.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case "mock":
	case "remote":
		if c.RecordAPI.ProjectID == "" {
			return fmt.Errorf("RECORD_API_PROJECT_ID is required for the remote backend")
		}
		if c.RecordAPI.PublicKey == "" {
			return fmt.Errorf("RECORD_API_PUBLIC_KEY is required for the remote backend")
		}
	case "postgres":
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unsupported STORE_BACKEND: %s", c.Store.Backend)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
