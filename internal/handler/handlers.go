package handler

import (
	"errors"

	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
)

var errDatabaseNotConfigured = errors.New("database not configured")

// Handlers groups every HTTP handler so the router is wired from one value.
type Handlers struct {
	Health       *HealthHandler
	Users        *UserHandler
	Properties   *PropertyHandler
	Reservations *ReservationHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		Users:        NewUserHandler(s, services.Users),
		Properties:   NewPropertyHandler(s, services.Properties),
		Reservations: NewReservationHandler(s, services.Reservations),
	}
}
