package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwhmather/validation/pkg/logger"
	"github.com/bwhmather/validation/pkg/validator"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestSource(t *testing.T) {
	attr := logger.Source("POST /orders")
	require.Equal(t, "source", attr.Key)
	assert.Equal(t, "POST /orders", attr.Value.String())

	assert.True(t, logger.Source("").Equal(slog.Attr{}))
}

func TestComponent(t *testing.T) {
	attr := logger.Component("guard")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "guard", attr.Value.String())
}

func TestValidator(t *testing.T) {
	attr := logger.Validator(validator.MustInteger(validator.MinValue(1)))
	require.Equal(t, "validator", attr.Key)
	assert.Equal(t, "integer(min_value=1)", attr.Value.String())

	assert.True(t, logger.Validator(nil).Equal(slog.Attr{}))
}

func TestErrorKind(t *testing.T) {
	attr := logger.ErrorKind(validator.NewMissingKeyError(`missing required key "a"`))
	require.Equal(t, "error_kind", attr.Key)
	assert.Equal(t, "missing_key", attr.Value.String())

	assert.True(t, logger.ErrorKind(errors.New("plain")).Equal(slog.Attr{}))
	assert.True(t, logger.ErrorKind(nil).Equal(slog.Attr{}))
}

func TestRejection(t *testing.T) {
	t.Run("groups validation details", func(t *testing.T) {
		err := validator.Contextualize(validator.NewConstraintError("too small"), "invalid item at position 2")
		attr := logger.Rejection(err)
		require.Equal(t, "rejection", attr.Key)
		require.Equal(t, slog.KindGroup, attr.Value.Kind())

		got := map[string]any{}
		for _, a := range attr.Value.Group() {
			got[a.Key] = a.Value.Any()
		}
		assert.Equal(t, "invalid item at position 2: too small", got["message"])
		assert.Equal(t, "constraint", got["kind"])
		assert.Equal(t, "too small", got["cause"])
		assert.Equal(t, []string{"invalid item at position 2"}, got["path"])
	})

	t.Run("records only the message of other errors", func(t *testing.T) {
		attr := logger.Rejection(errors.New("custom"))
		g := attr.Value.Group()
		require.Len(t, g, 1)
		assert.Equal(t, "custom", g[0].Value.String())
	})

	t.Run("is empty for nil", func(t *testing.T) {
		assert.True(t, logger.Rejection(nil).Equal(slog.Attr{}))
	})
}
