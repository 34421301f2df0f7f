package validator

// BooleanValidator accepts only bool values; integers such as 0 and 1 are
// not booleans.
type BooleanValidator struct {
	required bool
}

// Boolean builds a validator for bool values.
//
// Accepted options: Required.
func Boolean(opts ...Option) (*BooleanValidator, error) {
	p, err := newParams("boolean", 0, opts)
	if err != nil {
		return nil, err
	}
	return &BooleanValidator{required: p.required}, nil
}

// MustBoolean is like Boolean but panics on invalid options.
func MustBoolean(opts ...Option) *BooleanValidator {
	return must(Boolean(opts...))
}

func (v *BooleanValidator) Check(value any) error {
	if value == nil {
		return missing(v.required)
	}
	if _, ok := value.(bool); !ok {
		return typeMismatch("boolean", value)
	}
	return nil
}

func (v *BooleanValidator) Describe() string {
	return describe("boolean").required(v.required).String()
}

func (v *BooleanValidator) String() string { return v.Describe() }
