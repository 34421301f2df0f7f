// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware reuses the client's X-Request-ID header when IDValidator accepts
// it and otherwise generates a UUIDv4. The ID is stored in the request
// context, echoed in the response header and, through LoggerExtractor, added
// to every record logged with that context.
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
// Invalid IDs are replaced silently; the package returns no errors.
package requestid
