// Package app provides the application initialization and lifecycle management
package app

import (
	"fmt"

	"github.com/tildaslashalef/codenest/internal/config"
	"github.com/tildaslashalef/codenest/internal/extractor"
	"github.com/tildaslashalef/codenest/internal/git"
	"github.com/tildaslashalef/codenest/internal/loggy"
	"github.com/tildaslashalef/codenest/internal/scaffold"
	"github.com/tildaslashalef/codenest/internal/source"
	"github.com/tildaslashalef/codenest/internal/tree"
)

// App represents the application instance with its dependencies
type App struct {
	Config    *config.Config
	Extractor *extractor.Extractor
	Tree      *tree.Parser
	Scaffold  *scaffold.Service
	Source    *source.Service
	Git       *git.Service
}

// New initializes a new application instance with all its dependencies
func New() (*App, error) {
	cfg, err := config.LoadFromEnv("", "")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	config.Set(cfg)

	if err := loggy.Init(loggy.Config{
		Level:      config.ParseLogLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		Output:     cfg.Logging.Output,
		TimeFormat: cfg.Logging.TimeFormat,
	}); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger := loggy.GetGlobalLogger()
	loggy.Info("Application initializing", "log_level", cfg.Logging.Level)

	return &App{
		Config:    cfg,
		Extractor: extractor.New(logger),
		Tree:      tree.New(logger),
		Scaffold:  scaffold.NewService(logger),
		Source:    source.NewService(logger, cfg.Source),
		Git:       git.NewService(logger),
	}, nil
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown() error {
	loggy.Debug("Application shutting down")
	return nil
}
