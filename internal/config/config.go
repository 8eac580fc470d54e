package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Trip sources
const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// Config holds all configuration for the bikeshare tools
type Config struct {
	// City files
	DataDir string
	Source  string // SourceCSV or SourceSQLite

	// Database
	DatabasePath string

	// Session history
	HistoryEnabled   bool
	HistoryRetention time.Duration

	// Output
	LogLevel  string
	ReportDir string
}

// Load reads configuration from a .env file in the working directory, if
// present, and environment variables, with defaults that need no setup.
func Load() *Config {
	// A missing .env is the normal case
	_ = godotenv.Load()

	return &Config{
		DataDir: getEnv("BIKESHARE_DATA_DIR", "."),
		Source:  strings.ToLower(getEnv("BIKESHARE_SOURCE", SourceCSV)),

		DatabasePath: getEnv("SQLITE_DATABASE", "bikeshare.db"),

		HistoryEnabled:   getEnvBool("BIKESHARE_HISTORY", false),
		HistoryRetention: time.Duration(getEnvInt("HISTORY_RETENTION_DAYS", 30)) * 24 * time.Hour,

		LogLevel:  getEnv("LOG_LEVEL", "warn"),
		ReportDir: getEnv("REPORT_DIR", "reports"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
