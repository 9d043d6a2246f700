package handler

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/labstack/echo/v4"
)

// Pinger is a dependency the health check can ping.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the service and the store are reachable.
type HealthHandler struct {
	Handler
	db Pinger
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{Handler: NewHandler(s)}
	if s.DB != nil {
		h.db = s.DB.Pool
	}
	return h
}

func (h *HealthHandler) observability() *config.ObservabilityConfig {
	if h.server.Config.Observability != nil {
		return h.server.Config.Observability
	}
	return config.DefaultObservabilityConfig()
}

// CheckHealth returns 200 with the per-check report when every enabled
// check passes. Otherwise it returns a 503 errs.HTTPError with a retry
// action; GlobalErrorHandler renders it and the failed checks are listed
// in Errors. Driver messages stay in the log.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	obs := h.observability()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := map[string]any{}
	var failed []errs.FieldError
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	if obs.HealthChecks.Enabled && slices.Contains(obs.HealthChecks.Checks, "database") {
		ctx, cancel := context.WithTimeout(c.Request().Context(), obs.HealthCheckTimeout())
		defer cancel()

		dbStart := time.Now()
		err := h.pingDatabase(ctx)
		if err != nil {
			failed = append(failed, errs.FieldError{Field: "database", Error: "unhealthy"})

			logger.Error().
				Err(err).
				Dur("response_time", time.Since(dbStart)).
				Msg("database health check failed")

			if app := h.server.LoggerService.GetApplication(); app != nil {
				app.RecordCustomEvent("HealthCheckError", map[string]any{
					"check_type":       "database",
					"operation":        "health_check",
					"response_time_ms": time.Since(dbStart).Milliseconds(),
					"error_message":    err.Error(),
				})
			}
		} else {
			checks["database"] = map[string]any{
				"status":        "healthy",
				"response_time": time.Since(dbStart).String(),
			}
		}
	}

	if len(failed) > 0 {
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
		unavailable := errs.NewServiceUnavailableError("Service is unhealthy")
		unavailable.Errors = failed
		return unavailable
	}

	logger.Debug().Dur("total_duration", time.Since(start)).Msg("health check passed")
	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	if h.db == nil {
		return errDatabaseNotConfigured
	}
	return h.db.Ping(ctx)
}
