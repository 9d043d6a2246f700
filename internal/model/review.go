package model

// Review is a row of the property_reviews table. Reviews are only read
// through the average_rating aggregate of a property search.
type Review struct {
	ID            int64  `json:"id"`
	GuestID       int64  `json:"guest_id"`
	PropertyID    int64  `json:"property_id"`
	ReservationID int64  `json:"reservation_id"`
	Rating        int16  `json:"rating"`
	Message       string `json:"message"`
}
