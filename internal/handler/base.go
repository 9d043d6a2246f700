// Package handler is the HTTP layer between the router and the services.
//
// Each endpoint is a typed function receiving a bound, validated payload.
// Handle wraps it with binding, validation, logging, New Relic attributes
// and response writing; errors are returned to the global error handler.
package handler

import (
	"reflect"
	"time"

	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is the base handler type that holds shared application
// dependencies.
//
// It is embedded by concrete handlers (UserHandler, PropertyHandler,
// HealthHandler, ...) so they can reach config, logger and the pool via
// *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
//
// It returns the struct by value; copying it still points at the same
// Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// --- Generic typed handler plumbing -----------------------------------------

// HandlerFunc represents a typed endpoint function that:
//
// - receives a bound and validated request payload (Req)
// - returns a response (Res) or an error
//
// Req must satisfy validation.Validatable. In practice it is a POINTER
// type, e.g. *model.NewUser, because Echo's Bind populates it in place.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler defines how a successful handler result is written to
// the HTTP response and which New Relic attributes it adds.
type ResponseHandler interface {
	// Handle writes the HTTP response for the given result.
	Handle(c echo.Context, result any) error

	// GetOperation returns an operation name used for structured logging.
	GetOperation() string

	// AddAttributes attaches New Relic attributes derived from the result.
	AddAttributes(txn *newrelic.Transaction, result any)
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// AddAttributes records the length of list results (search, reservations)
// as response.count. http.status_code is already set by EnhanceTracing.
func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result any) {
	if txn == nil || result == nil {
		return
	}
	if v := reflect.ValueOf(result); v.Kind() == reflect.Slice {
		txn.AddAttribute("response.count", v.Len())
	}
}

// handleRequest is the shared execution pipeline for all handlers.
//
// It centralizes:
//
// - request binding + validation
// - structured logging (with the request-scoped logger)
// - New Relic attributes and error reporting
// - timing (validation duration, handler duration, total duration)
// - response writing
//
// Errors are returned unchanged; GlobalErrorHandler turns them into the
// JSON error body.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (any, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	// Set by nrecho when New Relic is enabled, nil otherwise.
	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	// The logger from EnhanceContext already carries request_id, method,
	// path and trace ids.
	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	// ---------------- Validation phase ---------------------------------------

	// BindAndValidate binds path, query and body into req and runs its
	// validator tags. A failure is a 400 and the endpoint never runs.
	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}
		return err
	}
	validationDuration := time.Since(validationStart)

	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	// ---------------- Handler execution phase --------------------------------
	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")

		// EnhanceTracing notices the error itself; only timing is added here.
		if txn != nil {
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		}
		return err
	}

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		responseHandler.AddAttributes(txn, result)
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed endpoint with validation, error handling, logging and
// tracing, and returns an echo.HandlerFunc for route registration.
//
// newReq must return a fresh payload on every call. A shared pointer would
// be bound concurrently and leak fields between requests.
//
// Usage pattern:
//
//	users.POST("", handler.Handle(h.Users.Handler, h.Users.CreateUser, http.StatusCreated, newPayload[model.NewUser]))
func Handle[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Adapt the typed handler (Res) into the untyped pipeline.
		return handleRequest(c, newReq(), func(c echo.Context, req Req) (any, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}
