package model

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProperty() NewProperty {
	return NewProperty{
		OwnerID:           1,
		Title:             "Loft",
		Description:       "Bright loft downtown",
		ThumbnailPhotoURL: "https://img/thumb.jpg",
		CoverPhotoURL:     "https://img/cover.jpg",
		CostPerNight:      12000,
		Street:            "1 Main St",
		City:              "Austin",
		Province:          "TX",
		PostCode:          "73301",
		Country:           "US",
		ParkingSpaces:     1,
		NumberOfBathrooms: 1,
		NumberOfBedrooms:  2,
	}
}

func TestNewUser_Validate(t *testing.T) {
	u := NewUser{Name: "Ada", Email: "ada@example.com", Password: "secret"}
	require.NoError(t, u.Validate())

	u.Email = "not-an-email"
	err := u.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "email", verrs[0].Field())
	assert.Equal(t, "email", verrs[0].Tag())
}

func TestNewProperty_Validate(t *testing.T) {
	p := validProperty()
	require.NoError(t, p.Validate())

	p.OwnerID = 0
	p.Title = ""
	err := p.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 2)
}

func TestSearchPropertiesPayload(t *testing.T) {
	p := SearchPropertiesPayload{City: "Austin", MinimumRating: 4, Limit: 5}
	require.NoError(t, p.Validate())

	f := p.Filters()
	assert.Equal(t, "Austin", f.City)
	assert.Equal(t, 4.0, f.MinimumRating)

	p.MinimumRating = 6
	assert.Error(t, p.Validate())
}

func TestSearchPropertiesPayload_PriceRange(t *testing.T) {
	p := SearchPropertiesPayload{MinimumPricePerNight: 100, MaximumPricePerNight: 50}
	err := p.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "maximum_price_per_night", verrs[0].Field())
	assert.Equal(t, "gtefield", verrs[0].Tag())

	// An unset maximum is not compared.
	p.MaximumPricePerNight = 0
	assert.NoError(t, p.Validate())
}

func TestListReservationsPayload_Validate(t *testing.T) {
	assert.NoError(t, (&ListReservationsPayload{GuestID: 1}).Validate())
	assert.Error(t, (&ListReservationsPayload{GuestID: 0}).Validate())
	assert.Error(t, (&ListReservationsPayload{GuestID: 1, Limit: 1000}).Validate())
}
