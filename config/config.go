package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	DataDir     string
	ArchiveFile string
	Port        int
	LogLevel    string
	WindowHours int
}

// Load initializes configuration from environment variables
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, relying on actual environment variables")
	}

	return &Config{
		DataDir:     getEnvWithDefault("DATA_DIR", "./data/scans"),
		ArchiveFile: getEnvWithDefault("ARCHIVE_FILE", "./data/archive.json"),
		Port:        getEnvIntWithDefault("PORT", 8090),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
		WindowHours: getEnvIntWithDefault("BRIEF_WINDOW_HOURS", 24),
	}
}

func getEnvWithDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntWithDefault(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid integer in environment, using default")
		return fallback
	}
	return n
}
