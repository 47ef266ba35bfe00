package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	Env           string // "development" or "production"
	ServerPort    int
	DatabasePath  string
	JWTSecret     string
	TokenTTLHours int // expiry attached to newly issued bearer tokens
	BcryptCost    int
}

// Load loads configuration from the environment, reading a .env file first if
// one is present. JWT_SECRET is required; everything else has a default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "3001"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	ttl, err := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "24"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL_HOURS: %w", err)
	}
	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	return &Config{
		Env:           getEnv("APP_ENV", "development"),
		ServerPort:    port,
		DatabasePath:  getEnv("DATABASE_PATH", "./wardrobe.db"),
		JWTSecret:     secret,
		TokenTTLHours: ttl,
		BcryptCost:    cost,
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
