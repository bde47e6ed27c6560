package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Session SessionConfig
	App     AppConfig
}

type ServerConfig struct {
	Port string
}

type StorageConfig struct {
	CredentialsPath string
	PortfolioPath   string
	UploadDir       string
	StaticDir       string
}

type SessionConfig struct {
	RedisAddr string
	TTL       time.Duration
}

type AppConfig struct {
	Environment string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Storage: StorageConfig{
			CredentialsPath: getEnv("CONFIG_PATH", "config.json"),
			PortfolioPath:   getEnv("PORTFOLIO_PATH", "portfolio.json"),
			UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
			StaticDir:       getEnv("STATIC_DIR", "public"),
		},
		Session: SessionConfig{
			RedisAddr: getEnv("REDIS_ADDR", ""),
			TTL:       time.Duration(getEnvAsInt("SESSION_TTL_HOURS", 8)) * time.Hour,
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Storage.CredentialsPath == "" {
		return fmt.Errorf("CONFIG_PATH is required")
	}

	if c.Storage.PortfolioPath == "" {
		return fmt.Errorf("PORTFOLIO_PATH is required")
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
