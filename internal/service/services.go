// Package service sits between the handlers and the repositories.
//
// It receives validated input from the handlers, applies defaults such as
// the list limit, and calls the repositories. It is also where failures are
// logged: every failed operation is logged once here with its operation
// name and then returned unchanged, so handlers and the global error
// handler decide the response.
package service

import (
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
)

type Services struct {
	Users        *UserService
	Properties   *PropertyService
	Reservations *ReservationService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Users:        NewUserService(s.Logger, repos.Users),
		Properties:   NewPropertyService(s.Logger, repos.Properties),
		Reservations: NewReservationService(s.Logger, repos.Reservations),
	}
}
