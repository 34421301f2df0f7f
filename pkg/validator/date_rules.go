package validator

import (
	"time"

	"cloud.google.com/go/civil"
)

// DateValidator accepts calendar dates (civil.Date). Instants (time.Time) and
// naive date-times (civil.DateTime) describe different things and are
// rejected.
type DateValidator struct {
	required bool
}

// Date builds a validator for calendar dates.
//
// Accepted options: Required.
func Date(opts ...Option) (*DateValidator, error) {
	p, err := newParams("date", 0, opts)
	if err != nil {
		return nil, err
	}
	return &DateValidator{required: p.required}, nil
}

// MustDate is like Date but panics on invalid options.
func MustDate(opts ...Option) *DateValidator {
	return must(Date(opts...))
}

func (v *DateValidator) Check(value any) error {
	if value == nil {
		return missing(v.required)
	}
	d, ok := value.(civil.Date)
	if !ok {
		return typeMismatch("date", value)
	}
	if !d.IsValid() {
		return constraintErrorf("%s is not a valid calendar date", d)
	}
	return nil
}

func (v *DateValidator) Describe() string {
	return describe("date").required(v.required).String()
}

func (v *DateValidator) String() string { return v.Describe() }

// DateTimeValidator accepts time.Time values. A civil.DateTime is a date-time
// with no timezone and fails with a constraint error.
type DateTimeValidator struct {
	required bool
}

// DateTime builds a validator for timezone-aware date-times.
//
// Accepted options: Required.
func DateTime(opts ...Option) (*DateTimeValidator, error) {
	p, err := newParams("datetime", 0, opts)
	if err != nil {
		return nil, err
	}
	return &DateTimeValidator{required: p.required}, nil
}

// MustDateTime is like DateTime but panics on invalid options.
func MustDateTime(opts ...Option) *DateTimeValidator {
	return must(DateTime(opts...))
}

func (v *DateTimeValidator) Check(value any) error {
	if value == nil {
		return missing(v.required)
	}
	switch value.(type) {
	case time.Time:
		return nil
	case civil.DateTime:
		return NewConstraintError("datetime is missing timezone")
	}
	return typeMismatch("datetime", value)
}

func (v *DateTimeValidator) Describe() string {
	return describe("datetime").required(v.required).String()
}

func (v *DateTimeValidator) String() string { return v.Describe() }

// DurationValidator checks time.Duration values against optional bounds.
type DurationValidator struct {
	minValue *time.Duration
	maxValue *time.Duration
	required bool
}

// Duration builds a validator for signed time spans.
//
// Accepted options: MinValue, MaxValue, Required.
func Duration(opts ...Option) (*DurationValidator, error) {
	p, err := newParams("duration", paramMinValue|paramMaxValue, opts)
	if err != nil {
		return nil, err
	}

	v := &DurationValidator{required: p.required}
	if p.minValue != nil {
		b, ok := p.minValue.(time.Duration)
		if !ok {
			return nil, shapeErrorf("min_value must be a time.Duration, got %T", p.minValue)
		}
		v.minValue = &b
	}
	if p.maxValue != nil {
		b, ok := p.maxValue.(time.Duration)
		if !ok {
			return nil, shapeErrorf("max_value must be a time.Duration, got %T", p.maxValue)
		}
		v.maxValue = &b
	}
	if v.minValue != nil && v.maxValue != nil && *v.minValue > *v.maxValue {
		return nil, NewConstraintError("min_value is greater than max_value")
	}
	return v, nil
}

// MustDuration is like Duration but panics on invalid options.
func MustDuration(opts ...Option) *DurationValidator {
	return must(Duration(opts...))
}

func (v *DurationValidator) Check(value any) error {
	if value == nil {
		return missing(v.required)
	}
	d, ok := value.(time.Duration)
	if !ok {
		return typeMismatch("duration", value)
	}
	if v.minValue != nil && d < *v.minValue {
		return constraintErrorf("expected value greater than or equal to %s, but got %s", *v.minValue, d)
	}
	if v.maxValue != nil && d > *v.maxValue {
		return constraintErrorf("expected value less than or equal to %s, but got %s", *v.maxValue, d)
	}
	return nil
}

func (v *DurationValidator) Describe() string {
	d := describe("duration")
	if v.minValue != nil {
		d.add("min_value", formatDuration(*v.minValue))
	}
	if v.maxValue != nil {
		d.add("max_value", formatDuration(*v.maxValue))
	}
	return d.required(v.required).String()
}

func (v *DurationValidator) String() string { return v.Describe() }
