package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/bwhmather/validation/pkg/validator"
)

// Header is the request and response header carrying the request ID.
const Header = "X-Request-ID"

// IDValidator accepts client supplied request IDs: 1 to 128 characters from
// [a-zA-Z0-9_-].
var IDValidator = validator.MustText(
	validator.Pattern(`[a-zA-Z0-9_-]+`),
	validator.MinLength(1),
	validator.MaxLength(128),
)

// Middleware reuses a valid X-Request-ID header or generates a UUIDv4,
// stores the ID in the request context and echoes it in the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if !Valid(requestID) {
			requestID = uuid.NewString()
		}
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}

// Valid reports whether id is acceptable as a client supplied request ID.
func Valid(id string) bool {
	return IDValidator.Check(id) == nil
}
