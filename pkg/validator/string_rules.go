package validator

import (
	"regexp"
	"strconv"
	"unicode/utf8"
)

// TextValidator checks string values. Lengths count characters (runes), not
// bytes.
type TextValidator struct {
	minLength *int
	maxLength *int
	pattern   *regexp.Regexp
	source    string
	compiled  bool
	required  bool
}

// Text builds a validator for text. []byte values are never text.
//
// Accepted options: MinLength, MaxLength, Pattern, Required.
func Text(opts ...Option) (*TextValidator, error) {
	p, err := newParams("text", paramMinLength|paramMaxLength|paramPattern, opts)
	if err != nil {
		return nil, err
	}
	if err := checkLengthBounds(p); err != nil {
		return nil, err
	}

	v := &TextValidator{required: p.required}
	v.minLength, v.maxLength = lengthBounds(p)

	switch pat := p.pattern.(type) {
	case nil:
	case string:
		re, err := regexp.Compile(anchored(pat))
		if err != nil {
			return nil, constraintErrorf("invalid pattern %q: %v", pat, err)
		}
		v.pattern, v.source = re, pat
	case *regexp.Regexp:
		if pat == nil {
			break
		}
		// The caller's expression may match a prefix; match its full form.
		re, err := regexp.Compile(anchored(pat.String()))
		if err != nil {
			return nil, constraintErrorf("invalid pattern %q: %v", pat.String(), err)
		}
		v.pattern, v.source, v.compiled = re, pat.String(), true
	default:
		return nil, shapeErrorf("pattern must be a string or *regexp.Regexp, got %T", p.pattern)
	}
	return v, nil
}

// MustText is like Text but panics on invalid options.
func MustText(opts ...Option) *TextValidator {
	return must(Text(opts...))
}

func anchored(pattern string) string {
	return `^(?:` + pattern + `)$`
}

func lengthBounds(p *params) (min, max *int) {
	if p.has(paramMinLength) {
		n := p.minLength
		min = &n
	}
	if p.has(paramMaxLength) {
		n := p.maxLength
		max = &n
	}
	return min, max
}

func (v *TextValidator) Check(value any) error {
	if value == nil {
		return missing(v.required)
	}

	s, ok := value.(string)
	if !ok {
		return typeMismatch("text", value)
	}
	if !utf8.ValidString(s) {
		return NewConstraintError("expected text, but value is not valid utf-8")
	}

	n := utf8.RuneCountInString(s)
	if v.minLength != nil && n < *v.minLength {
		return constraintErrorf("expected at least %d characters, but value has %d", *v.minLength, n)
	}
	if v.maxLength != nil && n > *v.maxLength {
		return constraintErrorf("expected at most %d characters, but value has %d", *v.maxLength, n)
	}
	if v.pattern != nil && !v.pattern.MatchString(s) {
		return constraintErrorf("expected value to match pattern %q", v.source)
	}
	return nil
}

func (v *TextValidator) Describe() string {
	d := describe("text")
	if v.minLength != nil {
		d.add("min_length", strconv.Itoa(*v.minLength))
	}
	if v.maxLength != nil {
		d.add("max_length", strconv.Itoa(*v.maxLength))
	}
	if v.pattern != nil {
		if v.compiled {
			d.add("pattern", "regexp.MustCompile("+strconv.Quote(v.source)+")")
		} else {
			d.add("pattern", strconv.Quote(v.source))
		}
	}
	return d.required(v.required).String()
}

func (v *TextValidator) String() string { return v.Describe() }

// BytesValidator checks []byte values. Lengths count bytes.
type BytesValidator struct {
	minLength *int
	maxLength *int
	required  bool
}

// Bytes builds a validator for byte strings. Strings are never byte strings.
//
// Accepted options: MinLength, MaxLength, Required.
func Bytes(opts ...Option) (*BytesValidator, error) {
	p, err := newParams("byte_string", paramMinLength|paramMaxLength, opts)
	if err != nil {
		return nil, err
	}
	if err := checkLengthBounds(p); err != nil {
		return nil, err
	}

	v := &BytesValidator{required: p.required}
	v.minLength, v.maxLength = lengthBounds(p)
	return v, nil
}

// MustBytes is like Bytes but panics on invalid options.
func MustBytes(opts ...Option) *BytesValidator {
	return must(Bytes(opts...))
}

func (v *BytesValidator) Check(value any) error {
	if value == nil {
		return missing(v.required)
	}

	b, ok := value.([]byte)
	if !ok {
		return typeMismatch("byte string", value)
	}

	n := len(b)
	if v.minLength != nil && n < *v.minLength {
		return constraintErrorf("expected at least %d bytes, but value has %d", *v.minLength, n)
	}
	if v.maxLength != nil && n > *v.maxLength {
		return constraintErrorf("expected at most %d bytes, but value has %d", *v.maxLength, n)
	}
	return nil
}

func (v *BytesValidator) Describe() string {
	d := describe("byte_string")
	if v.minLength != nil {
		d.add("min_length", strconv.Itoa(*v.minLength))
	}
	if v.maxLength != nil {
		d.add("max_length", strconv.Itoa(*v.maxLength))
	}
	return d.required(v.required).String()
}

func (v *BytesValidator) String() string { return v.Describe() }
