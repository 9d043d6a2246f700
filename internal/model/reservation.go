package model

import "time"

// Reservation is a row of the reservations table: a guest booking a
// property for [StartDate, EndDate].
type Reservation struct {
	ID         int64     `json:"id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	PropertyID int64     `json:"property_id"`
	GuestID    int64     `json:"guest_id"`
}

// ReservationWithProperty is one row of a guest's reservation list, joined
// to the reserved property.
type ReservationWithProperty struct {
	Property    Property    `json:"property"`
	Reservation Reservation `json:"reservation"`
}

// ListReservationsPayload selects reservations for a guest.
type ListReservationsPayload struct {
	GuestID int64 `param:"id" validate:"required,min=1"`
	Limit   int   `query:"limit" validate:"min=0,max=100"`
}

func (p *ListReservationsPayload) Validate() error {
	return validate.Struct(p)
}
