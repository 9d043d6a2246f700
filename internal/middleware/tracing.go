package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/lightbnb/internal/server"
)

// TracingMiddleware owns the New Relic related Echo middleware.
//
// It needs:
//   - server: for the environment name attached to every transaction
//   - nrApp: the New Relic application instance (nil if New Relic is disabled)
//
// This middleware has two layers:
//  1. NewRelicMiddleware() -> installs New Relic transaction handling into Echo
//  2. EnhanceTracing()     -> adds LightBnB attributes and notices errors
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

// NewTracingMiddleware constructs TracingMiddleware.
func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware returns the New Relic Echo middleware.
//
// What it does:
//   - If nrApp is nil, return a no-op middleware (passes the request through).
//   - If nrApp exists, return nrecho.Middleware(tm.nrApp), which starts a
//     transaction per request and stores it in the request context.
//
// This is what makes newrelic.FromContext work in EnhanceTracing,
// EnhanceContext, handleRequest and the nrpgx5 query segments.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		// No-op middleware: doesn't wrap the handler, just returns it.
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing adds custom attributes to New Relic transactions.
//
// It assumes NewRelicMiddleware already ran so that a transaction exists
// in the request context.
//
// What it adds:
//   - client IP and user agent
//   - service environment (development, production, ...)
//   - request id (if RequestID ran)
//   - response status code (after the handler)
//
// Handler errors are recorded with nrpkgerrors.Wrap so the trace keeps
// the stack.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// nil when New Relic is disabled or the middleware order is wrong.
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			// NOTE: user agent can be long and high-cardinality.
			txn.AddAttribute("http.real_ip", c.RealIP())
			txn.AddAttribute("http.user_agent", c.Request().UserAgent())
			txn.AddAttribute("service.environment", tm.server.Config.Primary.Env)

			// Correlates New Relic traces with log lines.
			if requestID := GetRequestID(c); requestID != "" {
				txn.AddAttribute("request.id", requestID)
			}

			err := next(c)

			// NoticeError does not stop Echo from handling the error; it is
			// still returned so GlobalErrorHandler writes the response.
			if err != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}

			// Known only after the handler ran. For errors this is still the
			// pre-handler value since GlobalErrorHandler writes later.
			txn.AddAttribute("http.status_code", c.Response().Status)

			return err
		}
	}
}
