package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a validation failure.
type Kind uint8

const (
	// KindShape means the value is of the wrong basic type, or is missing
	// while required.
	KindShape Kind = iota + 1
	// KindConstraint means the value has the right type but violates a bound,
	// pattern, length or semantic rule.
	KindConstraint
	// KindMissingKey means a field declared by a structure schema is absent.
	KindMissingKey
)

func (k Kind) String() string {
	switch k {
	case KindShape:
		return "shape"
	case KindConstraint:
		return "constraint"
	case KindMissingKey:
		return "missing_key"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. Any *Error matches the sentinel of its kind.
var (
	ErrShape      = &Error{kind: KindShape}
	ErrConstraint = &Error{kind: KindConstraint}
	ErrMissingKey = &Error{kind: KindMissingKey}
)

// Error is a classified validation failure. Message is the text given where
// the failure was raised; context holds the positions it crossed on the way
// out, outermost first.
type Error struct {
	kind    Kind
	message string
	context []string
}

// NewShapeError reports a value of the wrong basic type.
func NewShapeError(message string) *Error {
	return &Error{kind: KindShape, message: message}
}

// NewConstraintError reports a value that violates a configured constraint.
func NewConstraintError(message string) *Error {
	return &Error{kind: KindConstraint, message: message}
}

// NewMissingKeyError reports a structure field that is absent from a record.
func NewMissingKeyError(message string) *Error {
	return &Error{kind: KindMissingKey, message: message}
}

func shapeErrorf(format string, args ...any) *Error {
	return NewShapeError(fmt.Sprintf(format, args...))
}

func constraintErrorf(format string, args ...any) *Error {
	return NewConstraintError(fmt.Sprintf(format, args...))
}

func (e *Error) Error() string {
	if len(e.context) == 0 {
		return e.message
	}
	return strings.Join(e.context, ": ") + ": " + e.message
}

// Kind returns the failure classification.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message without any context prefix.
func (e *Error) Message() string { return e.message }

// Context returns a copy of the context chain, outermost first.
func (e *Error) Context() []string {
	return append([]string(nil), e.context...)
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrShape, ErrConstraint, ErrMissingKey:
		return e.kind == target.(*Error).kind
	}
	return false
}

// Contextualize prefixes err with a description of where the failing value
// sits. Only a *Error carrying a message is rewrapped; the result is a new
// error of the same kind. Every other error, including errors that merely
// wrap a *Error, is returned as is so its identity survives.
func Contextualize(err error, context string) error {
	ve, ok := err.(*Error)
	if !ok || ve == nil || ve.message == "" {
		return err
	}
	chain := make([]string, 0, len(ve.context)+1)
	chain = append(chain, context)
	chain = append(chain, ve.context...)
	return &Error{kind: ve.kind, message: ve.message, context: chain}
}

// KindOf returns the kind of err if it is, or wraps, a *Error.
func KindOf(err error) (Kind, bool) {
	var ve *Error
	if errors.As(err, &ve) && ve != nil {
		return ve.kind, true
	}
	return 0, false
}

// IsValidationError reports whether err is, or wraps, a *Error.
func IsValidationError(err error) bool {
	_, ok := KindOf(err)
	return ok
}
