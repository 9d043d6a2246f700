package middleware

import (
	"github.com/deppfellow/lightbnb/internal/logger"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerKey is the Echo context key of the request-scoped logger.
const LoggerKey = "logger"

// ContextEnhancer is a middleware helper that enriches request context.
//
// It builds a request-scoped logger with:
//   - request_id
//   - method, route path, ip
//   - trace.id/span.id (if a New Relic transaction exists)
//
// It then stores that logger in:
//   - Echo context (c.Set), read by handlers through GetLogger
//   - Go request context (zerolog's WithContext), read by services through zerolog.Ctx
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a ContextEnhancer over the app Server container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns an Echo middleware.
//
// For every request, it:
//  1. gets the request ID (from the RequestID middleware)
//  2. creates a logger with request fields
//  3. adds trace context if available (New Relic)
//  4. stores that logger in the Echo context and the Go context
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// "" if RequestID did not run before this.
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()). // route template (e.g. "/api/users/:id"), not the raw URL
				Str("ip", c.RealIP()).
				Logger()

			// logger.WithTraceContext adds trace.id + span.id.
			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			c.Set(LoggerKey, &contextLogger)

			// Services and repositories only see context.Context. zerolog keeps
			// the logger under its own private key, so zerolog.Ctx finds it and
			// no string key can collide.
			ctx := contextLogger.WithContext(c.Request().Context())
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from the Echo context.
//
// If EnhanceContext didn't run, it returns a no-op logger.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	// Discards output rather than crash on a nil logger.
	logger := zerolog.Nop()
	return &logger
}
