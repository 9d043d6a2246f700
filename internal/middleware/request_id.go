package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader is the HTTP header carrying the request correlation ID.
	// Lookups go through http.Header, so any casing sent by a client or
	// proxy (x-request-id, X-Request-Id) resolves to the same entry.
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the key the ID is stored under in the Echo context.
	RequestIDKey = "request_id"

	// maxRequestIDLength caps client-supplied IDs. Longer values are
	// replaced so a caller cannot push arbitrary blobs into every log line.
	maxRequestIDLength = 128
)

// RequestID returns an Echo middleware that ensures each request has a
// request ID.
//
// Behavior:
//   - If the incoming request carries X-Request-ID (at most 128 bytes): reuse it.
//   - Otherwise: generate a new UUID.
//   - Store it in the Echo context (c.Set) for EnhanceContext and EnhanceTracing.
//   - Set it on the response header so clients can quote it in bug reports.
//
// It must run before EnhanceContext, which copies the ID into the
// request-scoped logger.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get request ID from incoming header (if any).
			requestID := c.Request().Header.Get(RequestIDHeader)

			// Missing or oversized: generate our own.
			if requestID == "" || len(requestID) > maxRequestIDLength {
				requestID = uuid.New().String()
			}

			// Store in Echo context so other middleware/handlers can read it.
			c.Set(RequestIDKey, requestID)

			// Echo it back so reverse proxies and clients can correlate.
			c.Response().Header().Set(RequestIDHeader, requestID)

			return next(c)
		}
	}
}

// GetRequestID retrieves the request ID from the Echo context.
//
// Returns an empty string if RequestID did not run.
func GetRequestID(c echo.Context) string {
	if requestID, ok := c.Get(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
