// Package requestid attaches a correlation id to every HTTP request.
//
// The middleware reuses the client's X-Request-ID header when it is at most
// 128 characters of letters, digits, '-' and '_'; otherwise it generates a
// UUIDv7. The id is stored in the request context and echoed in the response.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	log.InfoContext(r.Context(), "handled") // includes request_id
//
// Error responses written by the handler package include the id in their
// log records so a client-reported id can be traced.
package requestid
