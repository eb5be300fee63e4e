package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all server configuration values.
type Config struct {
	// HTTP
	Addr           string
	AllowedOrigins []string
	StaticDir      string
	UploadDir      string

	// Database
	DBDriver string
	DBSource string

	// Auth
	JWTSecret string
	TokenTTL  time.Duration

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Addr:           getEnv("QUESTIFY_ADDR", ":8080"),
		AllowedOrigins: strings.Split(getEnv("QUESTIFY_ALLOWED_ORIGINS", "*"), ","),
		StaticDir:      getEnv("QUESTIFY_STATIC_DIR", "static"),
		UploadDir:      getEnv("QUESTIFY_UPLOAD_DIR", "uploads"),

		DBDriver: getEnv("QUESTIFY_DB_DRIVER", "sqlite3"),
		DBSource: getEnv("QUESTIFY_DB_SOURCE", "questify.db"),

		JWTSecret: getEnv("QUESTIFY_JWT_SECRET", "super-secret-key-change-me-in-production"),
		TokenTTL:  getDuration("QUESTIFY_TOKEN_TTL", 24*time.Hour),

		LogLevel: getEnv("QUESTIFY_LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if hours, err := strconv.Atoi(val); err == nil {
		return time.Duration(hours) * time.Hour
	}
	return defaultVal
}
