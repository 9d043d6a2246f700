package model

// Property is a row of the properties table.
//
// CostPerNight is stored as an integer amount in the smallest currency unit.
type Property struct {
	ID                int64  `json:"id"`
	OwnerID           int64  `json:"owner_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url"`
	CostPerNight      int64  `json:"cost_per_night"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
	Country           string `json:"country"`
	ParkingSpaces     int32  `json:"parking_spaces"`
	NumberOfBathrooms int32  `json:"number_of_bathrooms"`
	NumberOfBedrooms  int32  `json:"number_of_bedrooms"`
}

// PropertyWithRating is a search result: a property and the average of
// all its review ratings.
type PropertyWithRating struct {
	Property
	AverageRating float64 `json:"average_rating"`
}

// PropertyFilters narrows a property search. A zero-valued field is
// treated as absent and contributes no predicate.
type PropertyFilters struct {
	// City is matched as a case-sensitive substring.
	City string

	// OwnerID matches the owning user exactly.
	OwnerID int64

	// MinimumPricePerNight and MaximumPricePerNight are inclusive bounds
	// on cost_per_night.
	MinimumPricePerNight int64
	MaximumPricePerNight int64

	// MinimumRating is an inclusive lower bound on the average rating. It
	// is applied after aggregation.
	MinimumRating float64
}

// SearchPropertiesPayload is the query string accepted by property search.
type SearchPropertiesPayload struct {
	City                 string  `query:"city" validate:"omitempty,max=255"`
	OwnerID              int64   `query:"owner_id" validate:"min=0"`
	MinimumPricePerNight int64   `query:"minimum_price_per_night" validate:"min=0"`
	MaximumPricePerNight int64   `query:"maximum_price_per_night" validate:"omitempty,min=0,gtefield=MinimumPricePerNight"`
	MinimumRating        float64 `query:"minimum_rating" validate:"min=0,max=5"`
	Limit                int     `query:"limit" validate:"min=0,max=100"`
}

func (p *SearchPropertiesPayload) Validate() error {
	return validate.Struct(p)
}

// Filters converts the query string into search filters.
func (p *SearchPropertiesPayload) Filters() PropertyFilters {
	return PropertyFilters{
		City:                 p.City,
		OwnerID:              p.OwnerID,
		MinimumPricePerNight: p.MinimumPricePerNight,
		MaximumPricePerNight: p.MaximumPricePerNight,
		MinimumRating:        p.MinimumRating,
	}
}

// NewProperty is the payload for inserting a property. Field order matches
// the column order of the insert statement.
type NewProperty struct {
	OwnerID           int64  `json:"owner_id" validate:"required,min=1"`
	Title             string `json:"title" validate:"required,max=255"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" validate:"required,max=255"`
	CoverPhotoURL     string `json:"cover_photo_url" validate:"required,max=255"`
	CostPerNight      int64  `json:"cost_per_night" validate:"min=0"`
	Street            string `json:"street" validate:"required,max=255"`
	City              string `json:"city" validate:"required,max=255"`
	Province          string `json:"province" validate:"required,max=255"`
	PostCode          string `json:"post_code" validate:"required,max=255"`
	Country           string `json:"country" validate:"required,max=255"`
	ParkingSpaces     int32  `json:"parking_spaces" validate:"min=0"`
	NumberOfBathrooms int32  `json:"number_of_bathrooms" validate:"min=0"`
	NumberOfBedrooms  int32  `json:"number_of_bedrooms" validate:"min=0"`
}

func (p *NewProperty) Validate() error {
	return validate.Struct(p)
}
