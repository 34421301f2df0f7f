package guard

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bwhmather/validation/pkg/logger"
	"github.com/bwhmather/validation/pkg/validator"
)

// ErrorResponse is the JSON body written for rejected requests.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// Middleware decodes JSON request bodies, checks them and stores the result
// for Payload. Requests that are not application/json get 415, bodies that
// cannot be decoded get 400 (413 when over the size limit) and bodies the
// validator rejects get 422.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isJSON(r.Header.Get("Content-Type")) {
			g.reject(w, r, http.StatusUnsupportedMediaType, ErrUnsupportedMediaType)
			return
		}

		value, err := g.DecodeJSON(r.Context(), r.Body)
		if err != nil {
			g.reject(w, r, statusFor(err), err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPayload(r.Context(), value)))
	})
}

func (g *Guard) reject(w http.ResponseWriter, r *http.Request, status int, err error) {
	// Validation failures were logged by Check.
	if status != http.StatusUnprocessableEntity {
		g.log.DebugContext(r.Context(), "request body refused",
			logger.Source(g.source),
			slog.Int("status", status),
			logger.Error(err),
		)
	}

	resp := ErrorResponse{Error: err.Error()}
	if kind, ok := validator.KindOf(err); ok {
		resp.Kind = kind.String()
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalidPayload):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout
	default:
		return http.StatusUnprocessableEntity
	}
}

func isJSON(contentType string) bool {
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	return strings.EqualFold(strings.TrimSpace(contentType), "application/json")
}
