// Package middleware holds the Echo middleware applied to every request:
// request ids, the request-scoped logger, New Relic tracing, CORS, secure
// headers, panic recovery, request logging and the global error handler.
package middleware
