package validator

import (
	"fmt"

	"github.com/google/uuid"
)

// Validator checks a candidate value against the constraints it was built
// with. Validators are immutable after construction and safe for concurrent
// use.
type Validator interface {
	// Check returns nil if value is acceptable, a *Error otherwise. Errors
	// raised by user supplied validators nested inside may be returned as is.
	Check(value any) error
	// Describe renders the configuration as a factory call expression that
	// lists only non-default parameters.
	Describe() string
}

type param uint32

const (
	paramRequired param = 1 << iota
	paramMinValue
	paramMaxValue
	paramMinLength
	paramMaxLength
	paramPattern
	paramAllowInfinite
	paramAllowNaN
	paramVariant
	paramVersion
	paramAllowUnnormalized
	paramAllowSMTPUTF8
	paramItemValidator
	paramKeyValidator
	paramValueValidator
	paramSchema
	paramAllowExtra
	paramLength
	paramDomainCodec

	paramLast
)

var paramNames = map[param]string{
	paramRequired:          "required",
	paramMinValue:          "min_value",
	paramMaxValue:          "max_value",
	paramMinLength:         "min_length",
	paramMaxLength:         "max_length",
	paramPattern:           "pattern",
	paramAllowInfinite:     "allow_infinite",
	paramAllowNaN:          "allow_nan",
	paramVariant:           "variant",
	paramVersion:           "version",
	paramAllowUnnormalized: "allow_unnormalized",
	paramAllowSMTPUTF8:     "allow_smtputf8",
	paramItemValidator:     "item_validator",
	paramKeyValidator:      "key_validator",
	paramValueValidator:    "value_validator",
	paramSchema:            "schema",
	paramAllowExtra:        "allow_extra",
	paramLength:            "length",
	paramDomainCodec:       "domain_codec",
}

// params collects every option a factory may receive. Each factory declares
// which of them it accepts.
type params struct {
	set param

	required          bool
	minValue          any
	maxValue          any
	minLength         int
	maxLength         int
	pattern           any
	allowInfinite     bool
	allowNaN          bool
	variant           uuid.Variant
	version           int
	allowUnnormalized bool
	allowSMTPUTF8     bool
	itemValidator     Validator
	keyValidator      Validator
	valueValidator    Validator
	schema            any
	allowExtra        bool
	length            int
	domainCodec       DomainCodec
}

func (p *params) has(x param) bool { return p.set&x != 0 }

// Option configures a validator factory.
type Option func(*params)

// Required sets whether an absent (nil) value is rejected. Defaults to true.
func Required(required bool) Option {
	return func(p *params) { p.required = required; p.set |= paramRequired }
}

// MinValue sets the inclusive lower bound of integer, float and duration
// validators. The bound must have the same underlying type as the values.
func MinValue(v any) Option {
	return func(p *params) { p.minValue = v; p.set |= paramMinValue }
}

// MaxValue sets the inclusive upper bound of integer, float and duration
// validators.
func MaxValue(v any) Option {
	return func(p *params) { p.maxValue = v; p.set |= paramMaxValue }
}

// MinLength sets the minimum length of text, byte strings, lists and sets.
func MinLength(n int) Option {
	return func(p *params) { p.minLength = n; p.set |= paramMinLength }
}

// MaxLength sets the maximum length of text, byte strings, lists and sets.
func MaxLength(n int) Option {
	return func(p *params) { p.maxLength = n; p.set |= paramMaxLength }
}

// Pattern sets a regular expression, given as a string or *regexp.Regexp,
// that text values must match in full.
func Pattern(pattern any) Option {
	return func(p *params) { p.pattern = pattern; p.set |= paramPattern }
}

// AllowInfinite permits +Inf and -Inf float values.
func AllowInfinite(allow bool) Option {
	return func(p *params) { p.allowInfinite = allow; p.set |= paramAllowInfinite }
}

// AllowNaN permits NaN float values.
func AllowNaN(allow bool) Option {
	return func(p *params) { p.allowNaN = allow; p.set |= paramAllowNaN }
}

// Variant restricts UUIDs to a single variant.
func Variant(v uuid.Variant) Option {
	return func(p *params) { p.variant = v; p.set |= paramVariant }
}

// Version restricts UUIDs to a single version. One of 1, 3, 4 or 5.
func Version(v int) Option {
	return func(p *params) { p.version = v; p.set |= paramVersion }
}

// AllowUnnormalized accepts email addresses that are valid but not in
// normalized form.
func AllowUnnormalized(allow bool) Option {
	return func(p *params) { p.allowUnnormalized = allow; p.set |= paramAllowUnnormalized }
}

// AllowSMTPUTF8 controls whether email local parts may contain non-ASCII
// characters. Defaults to true.
func AllowSMTPUTF8(allow bool) Option {
	return func(p *params) { p.allowSMTPUTF8 = allow; p.set |= paramAllowSMTPUTF8 }
}

// ItemValidator sets the validator applied to every element of a list or set.
func ItemValidator(v Validator) Option {
	return func(p *params) { p.itemValidator = v; p.set |= paramItemValidator }
}

// KeyValidator sets the validator applied to every key of a mapping.
func KeyValidator(v Validator) Option {
	return func(p *params) { p.keyValidator = v; p.set |= paramKeyValidator }
}

// ValueValidator sets the validator applied to every value of a mapping.
func ValueValidator(v Validator) Option {
	return func(p *params) { p.valueValidator = v; p.set |= paramValueValidator }
}

// Schema sets the per-field validators of a structure (map[string]Validator)
// or the per-position validators of a tuple ([]Validator).
func Schema(schema any) Option {
	return func(p *params) { p.schema = schema; p.set |= paramSchema }
}

// AllowExtra lets structures contain keys that are not declared in the schema.
func AllowExtra(allow bool) Option {
	return func(p *params) { p.allowExtra = allow; p.set |= paramAllowExtra }
}

// Length sets the exact arity of a tuple validated without a schema.
func Length(n int) Option {
	return func(p *params) { p.length = n; p.set |= paramLength }
}

// WithDomainCodec replaces the IDNA codec used by the email address validator.
func WithDomainCodec(c DomainCodec) Option {
	return func(p *params) { p.domainCodec = c; p.set |= paramDomainCodec }
}

// newParams applies opts and rejects any option the named factory does not
// accept.
func newParams(name string, accepted param, opts []Option) (*params, error) {
	p := &params{required: true, allowSMTPUTF8: true}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if extra := p.set &^ (accepted | paramRequired); extra != 0 {
		for x := param(1); x < paramLast; x <<= 1 {
			if extra&x != 0 {
				return nil, shapeErrorf("%s() got an unexpected parameter %s", name, paramNames[x])
			}
		}
	}
	return p, nil
}

// checkLengthBounds validates the min_length/max_length pair.
func checkLengthBounds(p *params) error {
	if p.has(paramMinLength) && p.minLength < 0 {
		return constraintErrorf("min_length must be non-negative, got %d", p.minLength)
	}
	if p.has(paramMaxLength) && p.maxLength < 0 {
		return constraintErrorf("max_length must be non-negative, got %d", p.maxLength)
	}
	if p.has(paramMinLength) && p.has(paramMaxLength) && p.minLength > p.maxLength {
		return NewConstraintError("min_length is greater than max_length")
	}
	return nil
}

// missing handles an absent value.
func missing(required bool) error {
	if required {
		return NewShapeError("required value is missing")
	}
	return nil
}

func typeMismatch(expected string, value any) *Error {
	return shapeErrorf("expected %s, but value is of type %T", expected, value)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// FuncValidator adapts a plain function to the Validator interface.
type FuncValidator struct {
	name string
	fn   func(value any) error
}

// Func wraps fn as a Validator described by name. The function receives the
// value exactly as given, including nil, and may return any error; errors
// that are not *Error values pass through enclosing validators untouched.
func Func(name string, fn func(value any) error) *FuncValidator {
	if fn == nil {
		panic("validator: Func requires a non-nil function")
	}
	return &FuncValidator{name: name, fn: fn}
}

func (v *FuncValidator) Check(value any) error { return v.fn(value) }

func (v *FuncValidator) Describe() string { return v.name }

func (v *FuncValidator) String() string { return v.Describe() }

var _ fmt.Stringer = (*FuncValidator)(nil)
