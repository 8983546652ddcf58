// Package requestid tags every HTTP request with a correlation ID so log
// records of one request can be grouped.
//
// The ID is taken from the X-Request-ID request header when it is at most
// 128 characters of letters, digits, '-' and '_'; otherwise a UUIDv4 is
// generated. The chosen ID is echoed in the response header.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
