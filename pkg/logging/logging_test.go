package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, parseLevel("trace"))
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zerolog.Disabled, parseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("garbage"))
}

func TestParseTimeFormat(t *testing.T) {
	assert.Equal(t, time.Kitchen, parseTimeFormat("kitchen"))
	assert.Equal(t, time.RFC3339, parseTimeFormat("rfc3339"))
	assert.Equal(t, "", parseTimeFormat("unix"))
	assert.Equal(t, "15:04:05", parseTimeFormat("15:04:05"))
	assert.Equal(t, time.Kitchen, parseTimeFormat("garbage"))
}

func TestNewLoggerFromConfig(t *testing.T) {
	logger := NewLoggerFromConfig(&Config{
		Level:  "debug",
		Format: "json",
		Output: "discard",
	})
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())

	// Nil config falls back to defaults.
	logger = NewLoggerFromConfig(nil)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ctx := WithLogger(context.Background(), &logger)
	assert.Same(t, &logger, FromContext(ctx))
	assert.Same(t, &logger, Ctx(ctx))

	// Missing or nil context yields the default logger.
	assert.NotNil(t, FromContext(context.Background()))
	assert.NotNil(t, FromContext(nil)) //nolint:staticcheck
}

func TestWithField(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := WithLogger(context.Background(), &logger)

	ctx = WithConvention(ctx, "license")
	ctx = WithOperation(ctx, "parse")
	ctx = WithField(ctx, "count", 3)

	Ctx(ctx).Info().Msg("parsed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "license", entry["convention"])
	assert.Equal(t, "parse", entry["operation"])
	assert.Equal(t, float64(3), entry["count"])
	assert.Equal(t, "parsed", entry["message"])
}
