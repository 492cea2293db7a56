package config

import (
	"fmt"
	"os"
	"strings"
)

// DefaultMongoHost is the workshop's shared Atlas cluster. Override with
// MONGODB_HOST when pointing at your own cluster or a local mongod.
const DefaultMongoHost = "comssa-workshop.mongodb.net"

type Config struct {
	Port        string
	Environment string

	// MongoDB
	MongoUsername string
	MongoPassword string
	MongoHost     string
	MongoDatabase string

	// Logging
	LogLevel string

	// CORS
	AllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),

		MongoUsername: getEnv("MONGODB_USERNAME", ""),
		MongoPassword: getEnv("MONGODB_PASSWORD", ""),
		MongoHost:     getEnv("MONGODB_HOST", DefaultMongoHost),
		MongoDatabase: getEnv("MONGODB_DATABASE", "workshop"),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails fast on configuration that would yield an unusable
// database handle at startup.
func (c *Config) Validate() error {
	if c.MongoUsername == "" {
		return fmt.Errorf("MONGODB_USERNAME is required")
	}
	if c.MongoPassword == "" {
		return fmt.Errorf("MONGODB_PASSWORD is required")
	}
	if c.MongoHost == "" {
		return fmt.Errorf("MONGODB_HOST must not be empty")
	}
	if c.MongoDatabase == "" {
		return fmt.Errorf("MONGODB_DATABASE must not be empty")
	}
	return nil
}

// MongoURI builds the connection string from the credential parts.
func (c *Config) MongoURI() string {
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", c.MongoUsername, c.MongoPassword, c.MongoHost)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
