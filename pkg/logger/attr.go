package logger

import (
	"errors"
	"log/slog"

	"github.com/bwhmather/validation/pkg/validator"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Source records where a checked value came from (an endpoint, a file name)
// under the key "source". An empty name yields an empty Attr.
func Source(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("source", name)
}

// Validator records the description of v under the key "validator".
func Validator(v validator.Validator) slog.Attr {
	if v == nil {
		return slog.Attr{}
	}
	return slog.String("validator", v.Describe())
}

// ErrorKind records the kind of a validation failure under the key
// "error_kind". Errors that are not validation failures yield an empty Attr.
func ErrorKind(err error) slog.Attr {
	kind, ok := validator.KindOf(err)
	if !ok {
		return slog.Attr{}
	}
	return slog.String("error_kind", kind.String())
}

// Rejection groups everything known about a failed check under the key
// "rejection": the error message, its kind and, for validation errors, the
// innermost message without context.
func Rejection(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	attrs := []slog.Attr{slog.String("message", err.Error())}
	var ve *validator.Error
	if errors.As(err, &ve) {
		attrs = append(attrs, slog.String("kind", ve.Kind().String()))
		if ctx := ve.Context(); len(ctx) > 0 {
			attrs = append(attrs, slog.String("cause", ve.Message()), slog.Any("path", ctx))
		}
	}
	return Group("rejection", attrs...)
}
