package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	LogFormat      string
	RequestTimeout time.Duration

	// DataDir is where the entity stores (places.json, bookings.json,
	// ratings.json) live.
	DataDir string

	// StaticDir, when set, is served as the browser client. Empty disables
	// the static mount.
	StaticDir string

	// ManagersFile optionally overrides the built-in manager roster. The
	// file is read at startup and never written.
	ManagersFile string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is consulted first; missing is fine.
func Load() *Config {
	_ = godotenv.Load()

	dataDir := getEnv("DATA_DIR", "./data")

	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SEC", 30)) * time.Second,
		DataDir:        dataDir,
		StaticDir:      getEnv("STATIC_DIR", ""),
		ManagersFile:   getEnv("MANAGERS_FILE", filepath.Join(dataDir, "managers.json")),
	}
}

// getEnv returns the environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable value or a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
