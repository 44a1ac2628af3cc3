package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromConfig(t *testing.T) {
	t.Setenv("APP_ENV", "")

	cfg := FromConfig("debug", "")
	assert.Equal(t, slog.LevelDebug, cfg.Level)
	assert.Equal(t, "text", cfg.Format)

	cfg = FromConfig("bogus", "json")
	assert.Equal(t, slog.LevelInfo, cfg.Level)
	assert.Equal(t, "json", cfg.Format)
}

func TestFromConfigProductionForcesJSON(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	cfg := FromConfig("warn", "text")
	assert.Equal(t, slog.LevelWarn, cfg.Level)
	assert.Equal(t, "json", cfg.Format)
}

func TestWithContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: slog.LevelInfo, Format: "json", Output: &buf})

	ctx := WithRequestID(context.Background(), "req-123")
	log.WithContext(ctx).WithComponent("http").Info("request completed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "http", entry["component"])
	assert.Equal(t, "request completed", entry["msg"])
}

func TestWithContextWithoutRequestID(t *testing.T) {
	log := Discard()
	assert.Same(t, log, log.WithContext(context.Background()))
}

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, GenerateRequestID())
	assert.Equal(t, "abc", RequestID(WithRequestID(context.Background(), "abc")))
}
