package validator_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"

	"github.com/bwhmather/validation/pkg/validator"
)

func TestDate(t *testing.T) {
	t.Parallel()

	v := validator.MustDate()

	t.Run("accepts calendar dates", func(t *testing.T) {
		assert.NoError(t, v.Check(civil.Date{Year: 2024, Month: time.February, Day: 29}))
	})

	t.Run("rejects impossible dates", func(t *testing.T) {
		err := v.Check(civil.Date{Year: 2023, Month: time.February, Day: 29})
		assert.ErrorIs(t, err, validator.ErrConstraint)
		assert.EqualError(t, err, "2023-02-29 is not a valid calendar date")
	})

	t.Run("rejects date-times", func(t *testing.T) {
		err := v.Check(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, validator.ErrShape)
		assert.EqualError(t, err, "expected date, but value is of type time.Time")

		assert.ErrorIs(t, v.Check(civil.DateTime{Date: civil.Date{Year: 2024, Month: 1, Day: 1}}), validator.ErrShape)
		assert.ErrorIs(t, v.Check("2024-01-01"), validator.ErrShape)
	})
}

func TestDateTime(t *testing.T) {
	t.Parallel()

	v := validator.MustDateTime()

	t.Run("accepts instants", func(t *testing.T) {
		assert.NoError(t, v.Check(time.Now()))
		assert.NoError(t, v.Check(time.Date(2024, 1, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))))
	})

	t.Run("rejects naive date-times", func(t *testing.T) {
		naive := civil.DateTime{
			Date: civil.Date{Year: 2024, Month: time.January, Day: 1},
			Time: civil.Time{Hour: 12},
		}
		err := v.Check(naive)
		assert.ErrorIs(t, err, validator.ErrConstraint)
		assert.EqualError(t, err, "datetime is missing timezone")
	})

	t.Run("rejects dates", func(t *testing.T) {
		err := v.Check(civil.Date{Year: 2024, Month: time.January, Day: 1})
		assert.ErrorIs(t, err, validator.ErrShape)
		assert.EqualError(t, err, "expected datetime, but value is of type civil.Date")
	})
}

func TestDuration(t *testing.T) {
	t.Parallel()

	t.Run("accepts durations only", func(t *testing.T) {
		v := validator.MustDuration()
		assert.NoError(t, v.Check(-time.Hour))
		assert.ErrorIs(t, v.Check(int64(time.Second)), validator.ErrShape)
	})

	t.Run("checks bounds inclusively", func(t *testing.T) {
		v := validator.MustDuration(validator.MinValue(time.Second), validator.MaxValue(time.Minute))
		assert.NoError(t, v.Check(time.Second))
		assert.NoError(t, v.Check(time.Minute))

		err := v.Check(time.Millisecond)
		assert.ErrorIs(t, err, validator.ErrConstraint)
		assert.EqualError(t, err, "expected value greater than or equal to 1s, but got 1ms")
		assert.EqualError(t, v.Check(time.Hour), "expected value less than or equal to 1m0s, but got 1h0m0s")
	})

	t.Run("rejects invalid bounds", func(t *testing.T) {
		_, err := validator.Duration(validator.MinValue(5))
		assert.ErrorIs(t, err, validator.ErrShape)
		assert.EqualError(t, err, "min_value must be a time.Duration, got int")

		_, err = validator.Duration(validator.MinValue(time.Hour), validator.MaxValue(time.Second))
		assert.ErrorIs(t, err, validator.ErrConstraint)
	})

	t.Run("describes bounds", func(t *testing.T) {
		v := validator.MustDuration(validator.MinValue(-time.Second), validator.MaxValue(90*time.Second))
		assert.Equal(t, "duration(min_value=-1s, max_value=1m30s)", v.Describe())
	})
}
