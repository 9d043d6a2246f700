package repository

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/jackc/pgx/v5"
)

const queryListReservationsForGuest = `
SELECT ` + propertyColumns + `,
  reservations.id, reservations.start_date, reservations.end_date,
  reservations.property_id, reservations.guest_id
FROM reservations
JOIN properties ON properties.id = reservations.property_id
WHERE reservations.guest_id = $1
LIMIT $2;`

type ReservationRepository struct {
	db DBTX
}

func NewReservationRepository(db DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func scanReservationWithProperty(row pgx.CollectableRow) (model.ReservationWithProperty, error) {
	var rp model.ReservationWithProperty
	targets := append(propertyScanTargets(&rp.Property),
		&rp.Reservation.ID,
		&rp.Reservation.StartDate,
		&rp.Reservation.EndDate,
		&rp.Reservation.PropertyID,
		&rp.Reservation.GuestID,
	)
	err := row.Scan(targets...)
	return rp, err
}

// ListForGuest returns up to limit reservations made by guestID, each
// joined to its property. A non-positive limit means DefaultLimit.
func (r *ReservationRepository) ListForGuest(ctx context.Context, guestID int64, limit int) ([]model.ReservationWithProperty, error) {
	rows, err := r.db.Query(ctx, queryListReservationsForGuest, guestID, normalizeLimit(limit))
	if err != nil {
		return nil, notFoundOr(err, "reservations", "list reservations")
	}

	reservations, err := pgx.CollectRows(rows, scanReservationWithProperty)
	if err != nil {
		return nil, notFoundOr(err, "reservations", "list reservations")
	}

	return reservations, nil
}
