package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	DefaultAPIURL = "http://localhost:3000/api/image/bulk-generate"
	DefaultUserID = "test-user-123"
)

type Config struct {
	APIURL    string
	UserID    string
	OutputDir string
	LogLevel  string
	LogFormat string
}

// Load reads an optional .env file and then the BULKGEN_* environment variables
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	return &Config{
		APIURL:    getEnv("BULKGEN_API_URL", DefaultAPIURL),
		UserID:    getEnv("BULKGEN_USER_ID", DefaultUserID),
		OutputDir: getEnv("BULKGEN_OUTPUT_DIR", "."),
		LogLevel:  getEnv("BULKGEN_LOG_LEVEL", "info"),
		LogFormat: getEnv("BULKGEN_LOG_FORMAT", "console"),
	}
}

// ConfigureLogger sets the global zerolog level and writer
func (cfg *Config) ConfigureLogger() {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFormat != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
