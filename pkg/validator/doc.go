// Package validator checks arbitrary in-memory values, such as decoded
// request payloads or configuration, against composable type and shape
// contracts.
//
// A Validator is built once by a factory and then called any number of times
// with Check. Factories take functional options and report bad configuration
// immediately; the Must variants panic instead, like regexp.MustCompile.
//
// # Architecture
//
// Each source file groups one family of validators (`numeric_rules.go`,
// `string_rules.go`, `date_rules.go`, `uuid_rules.go`, `email_rules.go`,
// `collection_rules.go`, `structure_rules.go`). Validators hold no mutable
// state, so they are safe for concurrent use.
//
// Go values map onto validator kinds as follows:
//   - integer       – the builtin int and uint types, nothing else
//   - float         – float32 and float64
//   - text          – valid UTF-8 string; byte_string is []byte
//   - date          – civil.Date; datetime is time.Time; duration is time.Duration
//   - uuid          – uuid.UUID
//   - list, tuple   – slices and arrays other than byte slices
//   - set           – map[T]struct{}
//   - mapping       – any other map; structures need string keys
//
// An untyped nil is an absent value. It is rejected unless the validator was
// built with Required(false).
//
// # Usage
//
//	user := validator.MustStructureOf(validator.Schema(map[string]validator.Validator{
//	    "name":  validator.MustText(validator.MinLength(1)),
//	    "email": validator.MustEmailAddress(),
//	    "tags":  validator.MustListOf(validator.ItemValidator(validator.MustText())),
//	}))
//	if err := user.Check(payload); err != nil {
//	    // err.Error() == `invalid value for key "tags": invalid item at position 0: ...`
//	}
//
// # Error Handling
//
// Failures are *Error values of one of three kinds: shape (wrong type or a
// missing required value), constraint (a bound, pattern or format
// violation) and missing key (a declared structure field is absent). Use
// errors.Is with ErrShape, ErrConstraint or ErrMissingKey, or KindOf.
//
// Container and structure validators prefix failures of nested validators
// with the position that failed, see Contextualize. Errors that are not
// *Error values, such as those returned by a Func, pass through unchanged so
// callers get back the exact error they returned.
//
// # Descriptions
//
// Describe renders a validator as the factory call that built it, listing
// only non-default parameters:
//
//	integer(min_value=1, max_value=1, required=False)
package validator
