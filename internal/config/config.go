package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the server configuration.
type Config struct {
	// Server
	Port string `json:"port"`

	// Uploads
	UploadDir       string `json:"upload_dir"`
	MaxUploadSizeMB int64  `json:"max_upload_size_mb"`

	// Conversion results
	ResultTTL      time.Duration `json:"result_ttl"`
	PreviewRowsMax int           `json:"preview_rows_max"`

	// Logging
	LogLevel string `json:"log_level"`
}

// LoadConfig loads the configuration from environment variables, falling
// back to defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("SERVER_PORT", "8080"),
		UploadDir:       getEnv("UPLOAD_DIR", "data/uploads"),
		MaxUploadSizeMB: getEnvInt64("MAX_UPLOAD_SIZE_MB", 50),
		ResultTTL:       getEnvDuration("RESULT_TTL", 30*time.Minute),
		PreviewRowsMax:  getEnvInt("PREVIEW_ROWS_MAX", 200),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid server port %q: %w", c.Port, err)
	}
	if c.UploadDir == "" {
		return fmt.Errorf("upload directory must not be empty")
	}
	if c.MaxUploadSizeMB <= 0 {
		return fmt.Errorf("max upload size must be positive, got %d", c.MaxUploadSizeMB)
	}
	if c.ResultTTL <= 0 {
		return fmt.Errorf("result TTL must be positive, got %s", c.ResultTTL)
	}
	if c.PreviewRowsMax <= 0 {
		return fmt.Errorf("preview rows max must be positive, got %d", c.PreviewRowsMax)
	}
	return nil
}

// MaxUploadSizeBytes returns the upload limit in bytes.
func (c *Config) MaxUploadSizeBytes() int64 {
	return c.MaxUploadSizeMB << 20
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
