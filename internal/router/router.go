// Package router builds the Echo instance: global middleware, the error
// handler, and the route table.
package router

import (
	"net/http"

	"github.com/deppfellow/lightbnb/internal/handler"
	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter wires the middleware chain and registers every route.
//
// Order matters: the request id must exist before the context logger is
// built, and the New Relic transaction must exist before it is enhanced.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerAPIRoutes(router.Group("/api"), h)

	return router
}

func registerAPIRoutes(api *echo.Group, h *handler.Handlers) {
	properties := api.Group("/properties")
	properties.GET("", handler.Handle(h.Properties.Handler, h.Properties.SearchProperties, http.StatusOK, newPayload[model.SearchPropertiesPayload]))
	properties.POST("", handler.Handle(h.Properties.Handler, h.Properties.CreateProperty, http.StatusCreated, newPayload[model.NewProperty]))

	users := api.Group("/users")
	users.POST("", handler.Handle(h.Users.Handler, h.Users.CreateUser, http.StatusCreated, newPayload[model.NewUser]))
	users.GET("/by-email", handler.Handle(h.Users.Handler, h.Users.GetUserByEmail, http.StatusOK, newPayload[model.GetUserByEmailPayload]))
	users.GET("/:id", handler.Handle(h.Users.Handler, h.Users.GetUser, http.StatusOK, newPayload[model.GetUserByIDPayload]))
	users.GET("/:id/reservations", handler.Handle(h.Reservations.Handler, h.Reservations.ListGuestReservations, http.StatusOK, newPayload[model.ListReservationsPayload]))
}

func newPayload[T any]() *T {
	return new(T)
}
