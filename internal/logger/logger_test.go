package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"unknown": slog.LevelInfo,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer

	log := New(&buf, "warn")
	log.Info("hidden")
	log.Warn("shown", slog.Int("n", 1))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.InDelta(t, 1, entry["n"], 0)
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "hourclock.log")

	log, closer := NewFile(path, "info")
	log.Info("hello")
	require.NoError(t, closer.Close())

	assert.FileExists(t, path)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer

	h := RequestLogger(New(&buf, "info"))(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte("short and stout"))
		}),
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/segments", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/segments", entry["path"])
	assert.InDelta(t, http.StatusTeapot, entry["status"], 0)
	assert.InDelta(t, len("short and stout"), entry["size"], 0)
}
