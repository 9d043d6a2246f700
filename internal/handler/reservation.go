package handler

import (
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/labstack/echo/v4"
)

type ReservationHandler struct {
	Handler
	reservations *service.ReservationService
}

func NewReservationHandler(s *server.Server, reservations *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{Handler: NewHandler(s), reservations: reservations}
}

func (h *ReservationHandler) ListGuestReservations(c echo.Context, req *model.ListReservationsPayload) ([]model.ReservationWithProperty, error) {
	return h.reservations.ListForGuest(c.Request().Context(), req.GuestID, req.Limit)
}
