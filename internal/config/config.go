package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration of the service.
type Config struct {
	DatabaseURL string
	HTTPPort    string
	LogLevel    string

	JWTSecret string
	TokenTTL  time.Duration

	RedisAddr string
	RedisPass string
	RedisDB   int

	UploadDir string

	// Points credited to the reporter when a report is verified / resolved.
	VerifyRewardPoints  int
	ResolveRewardPoints int
}

// Load reads configuration from the environment, with an optional .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		HTTPPort:            getEnv("PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		TokenTTL:            getEnvAsDuration("TOKEN_TTL", 24*time.Hour),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		UploadDir:           getEnv("UPLOAD_DIR", "uploads"),
		VerifyRewardPoints:  getEnvAsInt("VERIFY_REWARD_POINTS", 10),
		ResolveRewardPoints: getEnvAsInt("RESOLVE_REWARD_POINTS", 5),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
