package validator_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwhmather/validation/pkg/validator"
)

type factory func(opts ...validator.Option) (validator.Validator, error)

func adapt[T validator.Validator](fn func(...validator.Option) (T, error)) factory {
	return func(opts ...validator.Option) (validator.Validator, error) {
		return fn(opts...)
	}
}

var factories = map[string]factory{
	"integer":       adapt(validator.Integer),
	"float":         adapt(validator.Float),
	"boolean":       adapt(validator.Boolean),
	"text":          adapt(validator.Text),
	"byte_string":   adapt(validator.Bytes),
	"date":          adapt(validator.Date),
	"datetime":      adapt(validator.DateTime),
	"duration":      adapt(validator.Duration),
	"uuid":          adapt(validator.UUID),
	"email_address": adapt(validator.EmailAddress),
	"list_of":       adapt(validator.ListOf),
	"set_of":        adapt(validator.SetOf),
	"mapping_of":    adapt(validator.MappingOf),
	"structure_of":  adapt(validator.StructureOf),
	"tuple_of":      adapt(validator.TupleOf),
}

func TestRequired(t *testing.T) {
	t.Parallel()

	for name, build := range factories {
		t.Run(name+" rejects nil by default", func(t *testing.T) {
			v, err := build()
			require.NoError(t, err)

			err = v.Check(nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, validator.ErrShape)
			assert.Equal(t, "required value is missing", err.Error())
		})

		t.Run(name+" accepts nil when not required", func(t *testing.T) {
			v, err := build(validator.Required(false))
			require.NoError(t, err)
			assert.NoError(t, v.Check(nil))
			assert.Equal(t, name+"(required=False)", v.Describe())
		})

		t.Run(name+" describes defaults without parameters", func(t *testing.T) {
			v, err := build(validator.Required(true))
			require.NoError(t, err)
			assert.Equal(t, name+"()", v.Describe())
		})
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("rejects parameters the factory does not take", func(t *testing.T) {
		_, err := validator.Text(validator.MinValue(1))
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrShape)
		assert.Equal(t, "text() got an unexpected parameter min_value", err.Error())
	})

	t.Run("reports the first unexpected parameter", func(t *testing.T) {
		_, err := validator.Boolean(validator.AllowExtra(true), validator.MinLength(1))
		require.Error(t, err)
		assert.Equal(t, "boolean() got an unexpected parameter min_length", err.Error())
	})

	t.Run("ignores nil options", func(t *testing.T) {
		v, err := validator.Integer(nil, validator.MinValue(1))
		require.NoError(t, err)
		assert.Equal(t, "integer(min_value=1)", v.Describe())
	})

	t.Run("must variants panic on invalid options", func(t *testing.T) {
		assert.Panics(t, func() { validator.MustInteger(validator.MinValue(2), validator.MaxValue(1)) })
		assert.NotPanics(t, func() { validator.MustInteger(validator.MinValue(1), validator.MaxValue(2)) })
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		v := validator.MustBoolean(validator.Required(false), validator.Required(true))
		assert.Error(t, v.Check(nil))
	})
}

func TestFunc(t *testing.T) {
	t.Parallel()

	t.Run("passes the value through", func(t *testing.T) {
		var got any
		v := validator.Func("capture", func(value any) error {
			got = value
			return nil
		})
		require.NoError(t, v.Check(42))
		assert.Equal(t, 42, got)
		assert.Equal(t, "capture", v.Describe())
		assert.Equal(t, "capture", v.String())
	})

	t.Run("returns the callback error unchanged", func(t *testing.T) {
		sentinel := errors.New("nope")
		v := validator.Func("fail", func(any) error { return sentinel })
		assert.Same(t, sentinel, v.Check("x"))
	})

	t.Run("panics on a nil function", func(t *testing.T) {
		assert.Panics(t, func() { validator.Func("nil", nil) })
	})
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	v := validator.MustListOf(validator.ItemValidator(validator.MustStructureOf(validator.Schema(map[string]validator.Validator{
		"id":   validator.MustInteger(validator.MinValue(0)),
		"name": validator.MustText(validator.MinLength(1)),
	}))))

	good := []any{map[string]any{"id": 1, "name": "a"}}
	bad := []any{map[string]any{"id": -1, "name": "a"}}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, v.Check(good))
			assert.Error(t, v.Check(bad))
		}()
	}
	wg.Wait()
}
