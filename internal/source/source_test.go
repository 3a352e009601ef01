package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tildaslashalef/codenest/internal/config"
	"github.com/tildaslashalef/codenest/internal/loggy"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(loggy.NewNoopLogger(), config.SourceConfig{
		HTTPTimeout: 5 * time.Second,
		MaxRetries:  2,
		MaxBodySize: 1 << 20,
	})
}

func TestFromFile(t *testing.T) {
	s := newTestService(t)

	path := filepath.Join(t.TempDir(), "input.md")
	require.NoError(t, os.WriteFile(path, []byte("## a.py\n"), 0644))

	content, err := s.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "## a.py\n", content)
}

func TestFromFileMissing(t *testing.T) {
	s := newTestService(t)

	_, err := s.FromFile(filepath.Join(t.TempDir(), "nope.md"))
	require.Error(t, err)
}

func TestFromURL(t *testing.T) {
	s := newTestService(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("remote content"))
	}))
	defer server.Close()

	content, err := s.FromURL(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "remote content", content)
}

func TestFromURLRetriesServerErrors(t *testing.T) {
	s := newTestService(t)

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("eventually"))
	}))
	defer server.Close()

	content, err := s.FromURL(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "eventually", content)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFromURLClientErrorNotRetried(t *testing.T) {
	s := newTestService(t)

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := s.FromURL(context.Background(), server.URL)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestAcquireDispatch(t *testing.T) {
	s := newTestService(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("from url"))
	}))
	defer server.Close()

	content, err := s.Acquire(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "from url", content)

	path := filepath.Join(t.TempDir(), "local.md")
	require.NoError(t, os.WriteFile(path, []byte("from file"), 0644))

	content, err = s.Acquire(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "from file", content)
}
