// Package source acquires raw text for analysis from local files,
// URLs, or the system clipboard. Acquisition failures are fatal for the
// one attempt only; the parsing core never sees them.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/cenkalti/backoff/v4"

	"github.com/tildaslashalef/codenest/internal/config"
	"github.com/tildaslashalef/codenest/internal/loggy"
)

// Service reads analysis input from its various sources
type Service struct {
	logger      *loggy.Logger
	client      *http.Client
	maxRetries  uint64
	maxBodySize int64
}

// NewService creates a new source Service
func NewService(logger *loggy.Logger, cfg config.SourceConfig) *Service {
	return &Service{
		logger:      logger,
		client:      &http.Client{Timeout: cfg.HTTPTimeout},
		maxRetries:  uint64(cfg.MaxRetries),
		maxBodySize: cfg.MaxBodySize,
	}
}

// Acquire reads content from a location, treating it as a URL when it
// carries an http(s) scheme and as a local file path otherwise.
func (s *Service) Acquire(ctx context.Context, location string) (string, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return s.FromURL(ctx, location)
	}
	return s.FromFile(location)
}

// FromFile reads content from a local file
func (s *Service) FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file %s: %w", path, err)
	}

	s.logger.Debug("Read input file", "path", path, "bytes", len(data))
	return string(data), nil
}

// FromURL fetches content over HTTP, retrying transient failures with
// exponential backoff. Client errors (4xx) are not retried.
func (s *Service) FromURL(ctx context.Context, url string) (string, error) {
	var content string

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := s.client.Do(req)
		if err != nil {
			s.logger.Debug("Fetch attempt failed", "url", url, "error", err)
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return backoff.Permanent(fmt.Errorf("unexpected status %s", resp.Status))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %s", resp.Status)
		}

		data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBodySize))
		if err != nil {
			return err
		}

		content = string(data)
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), s.maxRetries),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}

	s.logger.Debug("Fetched input URL", "url", url, "bytes", len(content))
	return content, nil
}

// FromClipboard reads content from the system clipboard
func (s *Service) FromClipboard() (string, error) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbpaste")
	case "linux":
		cmd = exec.Command("xclip", "-selection", "clipboard", "-o")
	case "windows":
		cmd = exec.Command("powershell", "-command", "Get-Clipboard")
	default:
		return "", fmt.Errorf("unsupported platform for clipboard operations")
	}

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}

	return string(out), nil
}
