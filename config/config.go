package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when no env file is named explicitly
const DefaultEnvFile = ".env"

// Config holds application configuration
type Config struct {
	// Server Configuration
	Port    string
	GinMode string

	// HTTP Timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Shutdown Configuration
	ShutdownTimeout time.Duration // Max time to wait for graceful shutdown

	// Observability
	AccessLog      bool // Emit gin access log lines
	MetricsEnabled bool // Serve Prometheus metrics on /metrics
}

// LoadEnvFile loads variables from a dotenv file into the process environment.
// Variables already set in the environment win. A missing file is only an
// error when required is set.
func LoadEnvFile(path string, required bool) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return err
	}
	return nil
}

// LoadConfig loads configuration from environment variables with defaults
func LoadConfig() *Config {
	return &Config{
		// Server
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "release"),

		// HTTP Timeouts
		ReadTimeout:  getEnvDuration("READ_TIMEOUT_SEC", 15) * time.Second,
		WriteTimeout: getEnvDuration("WRITE_TIMEOUT_SEC", 15) * time.Second,
		IdleTimeout:  getEnvDuration("IDLE_TIMEOUT_SEC", 60) * time.Second,

		// Shutdown
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT_SEC", 10) * time.Second,

		// Observability
		AccessLog:      getEnvBool("ACCESS_LOG", true),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
	}
}

// Validate checks values that would otherwise fail later at startup
func (c *Config) Validate() error {
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("invalid gin mode %q (want %s, %s or %s)",
			c.GinMode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
	if c.Port == "" {
		return errors.New("port must not be empty")
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}

// getEnv retrieves string environment variable or returns default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves integer environment variable or returns default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration retrieves duration (in seconds) environment variable or returns default
func getEnvDuration(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvInt(key, defaultSeconds))
}

// getEnvBool retrieves boolean environment variable or returns default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
