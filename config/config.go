package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultEnvironment is reported when ENVIRONMENT is unset.
const DefaultEnvironment = "development"

const defaultPort = "8000"

// Config holds startup configuration. The deployment environment is
// deliberately absent: it is re-read from the process environment on every
// request through Environment.
type Config struct {
	Port        string
	LogLevel    string
	LogFormat   string
	LogOutput   string
	LogFilePath string
}

// Load reads configuration from environment variables, honoring a .env file
// when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", defaultPort),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "console"),
		LogOutput:   getEnv("LOG_OUTPUT", "stdout"),
		LogFilePath: getEnv("LOG_FILE_PATH", ""),
	}
}

// Environment returns the current deployment environment. It reads the
// process environment on every call, so a changed ENVIRONMENT is visible
// without a restart.
func Environment() string {
	value := strings.TrimSpace(os.Getenv("ENVIRONMENT"))
	if value == "" {
		return DefaultEnvironment
	}
	return value
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
