package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwhmather/validation/pkg/validator"
)

func TestError_Kinds(t *testing.T) {
	t.Parallel()

	t.Run("shape error matches only its sentinel", func(t *testing.T) {
		err := validator.NewShapeError("expected integer")
		assert.ErrorIs(t, err, validator.ErrShape)
		assert.NotErrorIs(t, err, validator.ErrConstraint)
		assert.NotErrorIs(t, err, validator.ErrMissingKey)
		assert.Equal(t, validator.KindShape, err.Kind())
		assert.Equal(t, "expected integer", err.Error())
	})

	t.Run("constraint error matches only its sentinel", func(t *testing.T) {
		err := validator.NewConstraintError("too big")
		assert.ErrorIs(t, err, validator.ErrConstraint)
		assert.NotErrorIs(t, err, validator.ErrShape)
		assert.Equal(t, validator.KindConstraint, err.Kind())
	})

	t.Run("missing key error matches only its sentinel", func(t *testing.T) {
		err := validator.NewMissingKeyError(`missing required key "a"`)
		assert.ErrorIs(t, err, validator.ErrMissingKey)
		assert.NotErrorIs(t, err, validator.ErrConstraint)
		assert.Equal(t, validator.KindMissingKey, err.Kind())
	})

	t.Run("kind names", func(t *testing.T) {
		assert.Equal(t, "shape", validator.KindShape.String())
		assert.Equal(t, "constraint", validator.KindConstraint.String())
		assert.Equal(t, "missing_key", validator.KindMissingKey.String())
		assert.Equal(t, "unknown", validator.Kind(0).String())
	})
}

func TestContextualize(t *testing.T) {
	t.Parallel()

	t.Run("prefixes message and keeps kind", func(t *testing.T) {
		inner := validator.NewConstraintError("expected value greater than or equal to 0, but got -1")
		err := validator.Contextualize(inner, "invalid item at position 1")

		var ve *validator.Error
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, validator.KindConstraint, ve.Kind())
		assert.Equal(t, "invalid item at position 1: expected value greater than or equal to 0, but got -1", err.Error())
		assert.Equal(t, "expected value greater than or equal to 0, but got -1", ve.Message())
		assert.Equal(t, []string{"invalid item at position 1"}, ve.Context())
	})

	t.Run("returns a new error and leaves the original untouched", func(t *testing.T) {
		inner := validator.NewShapeError("expected text, but value is of type int")
		err := validator.Contextualize(inner, `invalid key "a"`)
		assert.NotSame(t, inner, err)
		assert.Equal(t, "expected text, but value is of type int", inner.Error())
		assert.Empty(t, inner.Context())
	})

	t.Run("chains contexts outermost first", func(t *testing.T) {
		err := validator.Contextualize(validator.NewMissingKeyError(`missing required key "b"`), "invalid value at index 0")
		err = validator.Contextualize(err, `invalid value for key "a"`)
		assert.Equal(t, `invalid value for key "a": invalid value at index 0: missing required key "b"`, err.Error())
		assert.ErrorIs(t, err, validator.ErrMissingKey)
	})

	t.Run("preserves foreign errors", func(t *testing.T) {
		foreign := errors.New("boom")
		assert.Same(t, foreign, validator.Contextualize(foreign, "ctx"))
	})

	t.Run("preserves errors wrapping a validation error", func(t *testing.T) {
		wrapped := fmt.Errorf("custom: %w", validator.NewConstraintError("bad"))
		assert.Same(t, wrapped, validator.Contextualize(wrapped, "ctx"))
	})

	t.Run("preserves validation errors without a message", func(t *testing.T) {
		empty := validator.NewConstraintError("")
		assert.Same(t, empty, validator.Contextualize(empty, "ctx"))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, validator.Contextualize(nil, "ctx"))
	})
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	kind, ok := validator.KindOf(fmt.Errorf("wrapped: %w", validator.NewShapeError("x")))
	assert.True(t, ok)
	assert.Equal(t, validator.KindShape, kind)

	_, ok = validator.KindOf(errors.New("plain"))
	assert.False(t, ok)

	assert.True(t, validator.IsValidationError(validator.NewConstraintError("x")))
	assert.False(t, validator.IsValidationError(nil))
}
