package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadFromEnv loads configuration from environment variables
// Parameters:
// - configDir: Directory containing config files (or empty for default)
// - configFilePath: Path to .env file (or empty for default)
func LoadFromEnv(configDir string, configFilePath string) (*Config, error) {
	cfg := New()

	// If configDir is empty, use the default
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".codenest")

		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	// Default log path is in the config directory
	defaultLogPath := filepath.Join(configDir, "codenest.log")

	// Use provided config file path or default
	if configFilePath == "" {
		configFilePath = filepath.Join(configDir, ".env")
	}

	// Check if ENV_FILE_PATH is set to load from a custom .env file
	envFilePath := getEnvString("ENV_FILE_PATH", "")
	if envFilePath != "" {
		if err := godotenv.Load(envFilePath); err != nil {
			return nil, fmt.Errorf("failed to load env file from %s: %w", envFilePath, err)
		}
	} else {
		// Try the config directory first, then the current directory
		if err := godotenv.Load(configFilePath); err != nil {
			_ = godotenv.Load() // Ignore errors if file doesn't exist
		}
	}

	cfg.Output = OutputConfig{
		BaseDir:        getEnvString("CODENEST_OUTPUT_DIR", "./output"),
		ArtifactPrefix: getEnvString("CODENEST_ARTIFACT_PREFIX", "artifact"),
		Overwrite:      getEnvBool("CODENEST_OUTPUT_OVERWRITE", true),
	}

	cfg.Source = SourceConfig{
		HTTPTimeout: getEnvDuration("CODENEST_SOURCE_HTTP_TIMEOUT", 30*time.Second),
		MaxRetries:  getEnvInt("CODENEST_SOURCE_MAX_RETRIES", 3),
		MaxBodySize: getEnvInt64("CODENEST_SOURCE_MAX_BODY_SIZE", 10<<20),
	}

	cfg.Git = GitConfig{
		AuthorName:    getEnvString("CODENEST_GIT_AUTHOR_NAME", "codenest"),
		AuthorEmail:   getEnvString("CODENEST_GIT_AUTHOR_EMAIL", "codenest@localhost"),
		CommitMessage: getEnvString("CODENEST_GIT_COMMIT_MESSAGE", "Initial commit: generated from code output analysis"),
	}

	cfg.Logging = LoggingConfig{
		Level:      getEnvString("CODENEST_LOG_LEVEL", "info"),
		Format:     getEnvString("CODENEST_LOG_FORMAT", "text"),
		Output:     getEnvString("CODENEST_LOG_OUTPUT", defaultLogPath),
		TimeFormat: getEnvString("CODENEST_LOG_TIME_FORMAT", time.RFC3339),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	if c.Source.MaxRetries < 0 {
		return fmt.Errorf("invalid max retries: %d", c.Source.MaxRetries)
	}

	return nil
}

// getEnvString returns a string from the environment variable
func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns an int from the environment variable
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvInt64 returns an int64 from the environment variable
func getEnvInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool returns a bool from the environment variable
func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration returns a time.Duration from the environment variable
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
