package config

import (
	"os"
	"testing"
	"time"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsDurationOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal time.Duration
		expected   time.Duration
	}{
		{"parses duration string", "TEST_DUR_1", "90s", time.Minute, 90 * time.Second},
		{"parses bare seconds", "TEST_DUR_2", "15", time.Minute, 15 * time.Second},
		{"uses default for empty", "TEST_DUR_3", "", time.Minute, time.Minute},
		{"uses default for garbage", "TEST_DUR_4", "soon", time.Minute, time.Minute},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				t.Setenv(tc.key, tc.envValue)
			}

			result := getEnvAsDurationOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, result)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "GENERATOR_URL", "GENERATOR_TIMEOUT", "FRONTEND_URL", "MAX_UPLOAD_BYTES", "GEMINI_MODEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8000" {
		t.Errorf("Expected port 8000, got %q", cfg.Port)
	}
	if cfg.GeneratorURL != "http://localhost:3001" {
		t.Errorf("Expected default generator URL, got %q", cfg.GeneratorURL)
	}
	if cfg.GeneratorTimeout != 60*time.Second {
		t.Errorf("Expected 60s timeout, got %s", cfg.GeneratorTimeout)
	}
	if cfg.FrontendURL != "http://localhost:3000" {
		t.Errorf("Expected default frontend URL, got %q", cfg.FrontendURL)
	}
	if cfg.MaxUploadBytes != 50*1024*1024 {
		t.Errorf("Expected 50MiB upload limit, got %d", cfg.MaxUploadBytes)
	}
	if cfg.GeminiModel != "gemini-1.5-pro" {
		t.Errorf("Expected default model, got %q", cfg.GeminiModel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"empty generator url", Config{GeneratorTimeout: time.Second, MaxUploadBytes: 1}},
		{"zero timeout", Config{GeneratorURL: "http://x", MaxUploadBytes: 1}},
		{"zero upload limit", Config{GeneratorURL: "http://x", GeneratorTimeout: time.Second}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
