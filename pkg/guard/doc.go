// Package guard applies a validator at an API boundary.
//
// A Guard wraps one validator.Validator. It decodes JSON or YAML input into
// the plain value model validators expect (maps, slices, strings, int64 and
// float64), checks it, and logs every rejection with the validator's
// description and the error kind.
//
// # Usage
//
//	order := validator.MustStructureOf(validator.Schema(map[string]validator.Validator{
//		"id":    validator.MustInteger(validator.MinValue(1)),
//		"email": validator.MustEmailAddress(),
//		"items": validator.MustListOf(validator.ItemValidator(validator.MustText()), validator.MinLength(1)),
//	}))
//
//	g := guard.New(order, guard.WithLogger(log), guard.WithSource("POST /orders"))
//
//	r := chi.NewRouter()
//	r.With(g.Middleware).Post("/orders", func(w http.ResponseWriter, r *http.Request) {
//		payload, _ := guard.Payload(r.Context())
//		// payload is a checked map[string]any
//	})
//
// # Status Codes
//
// Middleware answers 415 for non-JSON requests, 400 for malformed bodies,
// 413 for bodies over Config.MaxBodyBytes and 422 for bodies the validator
// rejects. The response body is an ErrorResponse.
//
// # Configuration
//
// Config is read from GUARD_MAX_BODY_BYTES, GUARD_LOG_REJECTIONS and
// GUARD_STRICT_JSON by LoadConfig.
package guard
