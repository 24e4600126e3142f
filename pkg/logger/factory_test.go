package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanweb/console/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json by default", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Info("hello", slog.String("k", "v"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "hello", record["msg"])
		assert.Equal(t, "v", record["k"])
	})

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))

		log.Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

		log.Info("dropped")
		log.Warn("kept")

		out := buf.String()
		assert.NotContains(t, out, "dropped")
		assert.Contains(t, out, "kept")
	})

	t.Run("static attributes", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "console")),
		)

		log.Info("hello")
		assert.Contains(t, buf.String(), `"service":"console"`)
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithFormat("yaml"))
		})
	})
}

func TestWithContextValue(t *testing.T) {
	t.Parallel()

	type requestIDKey struct{}

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextValue("request_id", requestIDKey{}),
	)

	ctx := context.WithValue(context.Background(), requestIDKey{}, "req-42")
	log.InfoContext(ctx, "with id")
	log.Info("without id")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"request_id":"req-42"`)
	assert.NotContains(t, lines[1], "request_id")
}

func TestAttrHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(assert.AnError).Key)
	assert.Equal(t, "username", logger.Username("alice").Key)
	assert.Equal(t, "client_address", logger.ClientAddress("192.0.2.1").Key)
	assert.Equal(t, "outcome", logger.Outcome("ok").Key)
}
