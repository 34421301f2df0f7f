package guard

import "errors"

var (
	// ErrInvalidPayload is returned when a body cannot be decoded.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrPayloadTooLarge is returned when a body exceeds Config.MaxBodyBytes.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrUnsupportedMediaType is returned when a request is not application/json.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)
