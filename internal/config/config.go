package config

import (
	"os"
	"strconv"
	"strings"

	"godraft/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `validate:"required"`
	Upload   UploadConfig   `validate:"required"`
	Generate GenerateConfig `validate:"required"`
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string `validate:"required"`
	GinMode string
}

// UploadConfig holds upload handling limits
type UploadConfig struct {
	MaxUploadMB int64
}

// GenerateConfig holds document generation settings
type GenerateConfig struct {
	DateColumns []string
	IDColumn    string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:   loadServerConfig(),
		Upload:   loadUploadConfig(),
		Generate: loadGenerateConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnvOrDefault("SERVER_PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadUploadConfig() UploadConfig {
	return UploadConfig{
		MaxUploadMB: int64(getEnvIntOrDefault("MAX_UPLOAD_MB", 25)),
	}
}

func loadGenerateConfig() GenerateConfig {
	raw := getEnvOrDefault("DATE_COLUMNS", "effective_date,start_date,end_date")

	var dateColumns []string
	for _, col := range strings.Split(raw, ",") {
		col = strings.TrimSpace(col)
		if col != "" {
			dateColumns = append(dateColumns, col)
		}
	}

	return GenerateConfig{
		DateColumns: dateColumns,
		IDColumn:    getEnvOrDefault("ID_COLUMN", "contract_id"),
	}
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Upload.MaxUploadMB <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_MB must be positive")
	}
	if config.Generate.IDColumn == "" {
		return errors.ConfigInvalid("ID_COLUMN must not be empty")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
