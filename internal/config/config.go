package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port          string
	GeneratorPort string
	Env           string

	// Generation service (as seen by the relay)
	GeneratorURL     string
	GeneratorTimeout time.Duration

	// Uploads
	MaxUploadBytes int64

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// Logging
	LogLevel string
	LogFile  string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:             getEnvOrDefault("PORT", "8000"),
		GeneratorPort:    getEnvOrDefault("GENERATOR_PORT", "3001"),
		Env:              getEnvOrDefault("ENV", "development"),
		GeneratorURL:     getEnvOrDefault("GENERATOR_URL", "http://localhost:3001"),
		GeneratorTimeout: getEnvAsDurationOrDefault("GENERATOR_TIMEOUT", 60*time.Second),
		MaxUploadBytes:   int64(getEnvAsIntOrDefault("MAX_UPLOAD_BYTES", 50*1024*1024)),
		GeminiAPIKey:     getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:      getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-pro"),
		LogLevel:         getEnvOrDefault("LOG_LEVEL", "info"),
		LogFile:          getEnvOrDefault("LOG_FILE", ""),
		FrontendURL:      getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
	}

	return cfg
}

// IsDevelopment reports whether the process runs with ENV=development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate rejects settings the relay cannot start with.
func (c *Config) Validate() error {
	if c.GeneratorURL == "" {
		return fmt.Errorf("GENERATOR_URL must not be empty")
	}
	if c.GeneratorTimeout <= 0 {
		return fmt.Errorf("GENERATOR_TIMEOUT must be positive, got %s", c.GeneratorTimeout)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

// getEnvAsDurationOrDefault accepts Go duration strings ("90s") or a bare
// number of seconds ("90").
func getEnvAsDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if n, err := strconv.Atoi(val); err == nil {
		return time.Duration(n) * time.Second
	}
	return defaultVal
}
