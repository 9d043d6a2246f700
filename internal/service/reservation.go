package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/rs/zerolog"
)

// ReservationStore is the persistence the reservation service needs.
type ReservationStore interface {
	ListForGuest(ctx context.Context, guestID int64, limit int) ([]model.ReservationWithProperty, error)
}

type ReservationService struct {
	base
	reservations ReservationStore
}

func NewReservationService(logger *zerolog.Logger, reservations ReservationStore) *ReservationService {
	return &ReservationService{base: newBase(logger), reservations: reservations}
}

// ListForGuest returns up to limit reservations of guestID joined to their
// properties. An unknown guest has no reservations.
func (s *ReservationService) ListForGuest(ctx context.Context, guestID int64, limit int) ([]model.ReservationWithProperty, error) {
	reservations, err := s.reservations.ListForGuest(ctx, guestID, limitOrDefault(limit))
	if err != nil {
		return nil, s.fail(ctx, "list_guest_reservations", err)
	}

	if reservations == nil {
		reservations = []model.ReservationWithProperty{}
	}
	return reservations, nil
}
