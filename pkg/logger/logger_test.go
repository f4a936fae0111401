package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/environment"
	"github.com/dmitrymomot/authkit/pkg/logger"
)

type ctxKey struct{}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("production writes json with service attrs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithEnvironment(environment.Production, "authkit"),
		)
		log.Debug("hidden")
		log.Info("visible", logger.Operation("signup"))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "visible", rec["msg"])
		assert.Equal(t, "authkit", rec["service"])
		assert.Equal(t, "production", rec["env"])
		assert.Equal(t, "signup", rec["operation"])
	})

	t.Run("development writes text at debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithEnvironment(environment.Development, "authkit"),
		)
		log.Debug("details")
		assert.Contains(t, buf.String(), "msg=details")
		assert.Contains(t, buf.String(), "env=development")
	})

	t.Run("context extractors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithFormat(logger.FormatJSON),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				v, ok := ctx.Value(ctxKey{}).(string)
				return slog.String("request_id", v), ok
			}),
		)

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.With(logger.Component("test")).InfoContext(ctx, "hello")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "req-1", rec["request_id"])
		assert.Equal(t, "test", rec["component"])
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG", slog.LevelInfo))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warning", slog.LevelInfo))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error", slog.LevelInfo))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("", slog.LevelInfo))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("loud", slog.LevelWarn))
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("boom")).Key)
	assert.Equal(t, slog.Attr{}, logger.UserID(""))
	assert.Equal(t, "u1", logger.UserID("u1").Value.String())
	assert.Equal(t, "a@b.c", logger.Email("a@b.c").Value.String())
	assert.Equal(t, slog.Attr{}, logger.RequestID(""))
}

func TestEnvironmentOnRequestRecords(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithEnvironment(environment.Staging, "authkit"),
		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
			return slog.String("request_id", "req-1"), true
		}),
	)

	log.WarnContext(context.Background(), "request error")

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, `"env":"staging"`))
	assert.Contains(t, out, `"request_id":"req-1"`)
}
