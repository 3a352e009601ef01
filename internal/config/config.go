// Package config provides configuration management for the codenest application
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

var (
	// Global configuration instance
	globalConfig *Config
	configMutex  sync.RWMutex
)

// Get returns the global configuration instance
// If the configuration has not been initialized, it will return an error
func Get() (*Config, error) {
	configMutex.RLock()
	defer configMutex.RUnlock()

	if globalConfig == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}

	return globalConfig, nil
}

// Set sets the global configuration instance
func Set(cfg *Config) {
	configMutex.Lock()
	defer configMutex.Unlock()

	globalConfig = cfg
}

// Config represents the complete application configuration
type Config struct {
	Output  OutputConfig
	Source  SourceConfig
	Git     GitConfig
	Logging LoggingConfig
}

// OutputConfig represents project generation configuration
type OutputConfig struct {
	BaseDir        string // Default directory to scaffold projects under
	ArtifactPrefix string // Filename prefix for blocks without a resolved path
	Overwrite      bool   // Whether existing files may be overwritten
}

// SourceConfig represents input acquisition configuration
type SourceConfig struct {
	HTTPTimeout time.Duration // Request timeout for URL sources
	MaxRetries  int           // Maximum number of retries for URL fetches
	MaxBodySize int64         // Maximum accepted response body size in bytes
}

// GitConfig represents repository initialization configuration
type GitConfig struct {
	AuthorName    string // Author for the initial commit
	AuthorEmail   string // Email for the initial commit
	CommitMessage string // Message for the initial commit
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string // debug, info, warn, error
	Format     string // text or json
	Output     string // stdout, stderr, or file path
	TimeFormat string // Time format for logs (empty uses RFC3339)
}

// New creates a new Config with zero values
func New() *Config {
	return &Config{}
}

// ParseLogLevel converts a string log level to slog.Level
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
