package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort  int
	MongoURL    string
	DBName      string
	JWTSecret   string
	CORSOrigins []string
	BcryptCost  int
}

// Load reads configuration from a .env file (if present) and the
// environment. JWT_SECRET has no default: startup must fail when it is
// unset rather than fall back to a baked-in secret.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	costStr := getEnv("BCRYPT_COST", "0")
	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:  port,
		MongoURL:    getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:      getEnv("DB_NAME", "pixelblog"),
		JWTSecret:   secret,
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		BcryptCost:  cost,
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
