package validator

import (
	"math"
	"strconv"
)

// integerValue holds any Go integer without loss: the sign and the absolute
// value as a uint64.
type integerValue struct {
	neg bool
	abs uint64
}

func integerFromInt64(v int64) integerValue {
	if v < 0 {
		return integerValue{neg: true, abs: uint64(-(v + 1)) + 1}
	}
	return integerValue{abs: uint64(v)}
}

// integerOf accepts only the builtin integer types. Named types, bool and
// time.Duration are not integers here.
func integerOf(value any) (integerValue, bool) {
	switch v := value.(type) {
	case int:
		return integerFromInt64(int64(v)), true
	case int8:
		return integerFromInt64(int64(v)), true
	case int16:
		return integerFromInt64(int64(v)), true
	case int32:
		return integerFromInt64(int64(v)), true
	case int64:
		return integerFromInt64(v), true
	case uint:
		return integerValue{abs: uint64(v)}, true
	case uint8:
		return integerValue{abs: uint64(v)}, true
	case uint16:
		return integerValue{abs: uint64(v)}, true
	case uint32:
		return integerValue{abs: uint64(v)}, true
	case uint64:
		return integerValue{abs: v}, true
	}
	return integerValue{}, false
}

func (a integerValue) cmp(b integerValue) int {
	if a.neg != b.neg {
		if a.neg {
			return -1
		}
		return 1
	}
	c := 0
	switch {
	case a.abs < b.abs:
		c = -1
	case a.abs > b.abs:
		c = 1
	}
	if a.neg {
		return -c
	}
	return c
}

func (a integerValue) String() string {
	s := strconv.FormatUint(a.abs, 10)
	if a.neg {
		return "-" + s
	}
	return s
}

// IntegerValidator checks builtin integer values against optional bounds.
type IntegerValidator struct {
	minValue *integerValue
	maxValue *integerValue
	required bool
}

// Integer builds a validator for integer values.
//
// Accepted options: MinValue, MaxValue, Required.
func Integer(opts ...Option) (*IntegerValidator, error) {
	p, err := newParams("integer", paramMinValue|paramMaxValue, opts)
	if err != nil {
		return nil, err
	}

	v := &IntegerValidator{required: p.required}
	if p.minValue != nil {
		b, ok := integerOf(p.minValue)
		if !ok {
			return nil, shapeErrorf("min_value must be an integer, got %T", p.minValue)
		}
		v.minValue = &b
	}
	if p.maxValue != nil {
		b, ok := integerOf(p.maxValue)
		if !ok {
			return nil, shapeErrorf("max_value must be an integer, got %T", p.maxValue)
		}
		v.maxValue = &b
	}
	if v.minValue != nil && v.maxValue != nil && v.minValue.cmp(*v.maxValue) > 0 {
		return nil, NewConstraintError("min_value is greater than max_value")
	}
	return v, nil
}

// MustInteger is like Integer but panics on invalid options.
func MustInteger(opts ...Option) *IntegerValidator {
	return must(Integer(opts...))
}

func (v *IntegerValidator) Check(value any) error {
	if value == nil {
		return missing(v.required)
	}

	n, ok := integerOf(value)
	if !ok {
		return typeMismatch("integer", value)
	}

	if v.minValue != nil && n.cmp(*v.minValue) < 0 {
		return constraintErrorf("expected value greater than or equal to %s, but got %s", v.minValue, n)
	}
	if v.maxValue != nil && n.cmp(*v.maxValue) > 0 {
		return constraintErrorf("expected value less than or equal to %s, but got %s", v.maxValue, n)
	}
	return nil
}

func (v *IntegerValidator) Describe() string {
	d := describe("integer")
	if v.minValue != nil {
		d.add("min_value", v.minValue.String())
	}
	if v.maxValue != nil {
		d.add("max_value", v.maxValue.String())
	}
	return d.required(v.required).String()
}

func (v *IntegerValidator) String() string { return v.Describe() }

func floatOf(value any) (float64, bool) {
	switch f := value.(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	}
	return 0, false
}

// FloatValidator checks floating point values.
type FloatValidator struct {
	minValue      *float64
	maxValue      *float64
	allowInfinite bool
	allowNaN      bool
	required      bool
}

// Float builds a validator for float32 and float64 values. Infinities and NaN
// are rejected unless explicitly allowed. NaN never fails a bound check, and
// a bound may itself be infinite.
//
// Accepted options: MinValue, MaxValue, AllowInfinite, AllowNaN, Required.
func Float(opts ...Option) (*FloatValidator, error) {
	p, err := newParams("float", paramMinValue|paramMaxValue|paramAllowInfinite|paramAllowNaN, opts)
	if err != nil {
		return nil, err
	}

	v := &FloatValidator{
		allowInfinite: p.allowInfinite,
		allowNaN:      p.allowNaN,
		required:      p.required,
	}
	if p.minValue != nil {
		b, ok := floatOf(p.minValue)
		if !ok {
			return nil, shapeErrorf("min_value must be a float, got %T", p.minValue)
		}
		if math.IsNaN(b) {
			return nil, NewConstraintError("min_value must not be NaN")
		}
		v.minValue = &b
	}
	if p.maxValue != nil {
		b, ok := floatOf(p.maxValue)
		if !ok {
			return nil, shapeErrorf("max_value must be a float, got %T", p.maxValue)
		}
		if math.IsNaN(b) {
			return nil, NewConstraintError("max_value must not be NaN")
		}
		v.maxValue = &b
	}
	if v.minValue != nil && v.maxValue != nil && *v.minValue > *v.maxValue {
		return nil, NewConstraintError("min_value is greater than max_value")
	}
	return v, nil
}

// MustFloat is like Float but panics on invalid options.
func MustFloat(opts ...Option) *FloatValidator {
	return must(Float(opts...))
}

func (v *FloatValidator) Check(value any) error {
	if value == nil {
		return missing(v.required)
	}

	f, ok := floatOf(value)
	if !ok {
		return typeMismatch("float", value)
	}

	if math.IsNaN(f) {
		if !v.allowNaN {
			return NewConstraintError("expected a number, but value is NaN")
		}
		// NaN is unordered.
		return nil
	}
	if math.IsInf(f, 0) && !v.allowInfinite {
		return constraintErrorf("expected a finite value, but got %s", formatFloat(f))
	}

	if v.minValue != nil && f < *v.minValue {
		return constraintErrorf("expected value greater than or equal to %s, but got %s",
			formatFloat(*v.minValue), formatFloat(f))
	}
	if v.maxValue != nil && f > *v.maxValue {
		return constraintErrorf("expected value less than or equal to %s, but got %s",
			formatFloat(*v.maxValue), formatFloat(f))
	}
	return nil
}

func (v *FloatValidator) Describe() string {
	d := describe("float")
	if v.minValue != nil {
		d.add("min_value", formatFloat(*v.minValue))
	}
	if v.maxValue != nil {
		d.add("max_value", formatFloat(*v.maxValue))
	}
	if v.allowInfinite {
		d.add("allow_infinite", formatBool(true))
	}
	if v.allowNaN {
		d.add("allow_nan", formatBool(true))
	}
	return d.required(v.required).String()
}

func (v *FloatValidator) String() string { return v.Describe() }
