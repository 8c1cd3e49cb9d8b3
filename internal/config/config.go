package config

import (
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3/log"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Host            string
	Port            string
	AppEnv          string
	SeedSampleData  bool
	ShutdownTimeout time.Duration
}

// Addr returns the listen address in host:port form
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// IsDevelopment reports whether the app runs in the development environment
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// LoadConfig loads variables from .env, falling back to the process environment
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info(".env file not found, using environment variables")
	}

	return &Config{
		Host:            getEnv("HOST", "0.0.0.0"),
		Port:            getEnv("PORT", "5002"),
		AppEnv:          getEnv("APP_ENV", "development"),
		SeedSampleData:  getEnvBool("SEED_SAMPLE_DATA", true),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}
}

// getEnv returns the environment variable or the default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Warnf("invalid %s=%q, using %t", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		log.Warnf("invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
