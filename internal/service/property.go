package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/rs/zerolog"
)

// PropertyStore is the persistence the property service needs.
type PropertyStore interface {
	Search(ctx context.Context, f model.PropertyFilters, limit int) ([]model.PropertyWithRating, error)
	Create(ctx context.Context, p model.NewProperty) (*model.Property, error)
}

type PropertyService struct {
	base
	properties PropertyStore
}

func NewPropertyService(logger *zerolog.Logger, properties PropertyStore) *PropertyService {
	return &PropertyService{base: newBase(logger), properties: properties}
}

// Search returns up to limit reviewed properties matching f, cheapest
// first. A non-positive limit means repository.DefaultLimit.
func (s *PropertyService) Search(ctx context.Context, f model.PropertyFilters, limit int) ([]model.PropertyWithRating, error) {
	properties, err := s.properties.Search(ctx, f, limitOrDefault(limit))
	if err != nil {
		return nil, s.fail(ctx, "search_properties", err)
	}

	if properties == nil {
		properties = []model.PropertyWithRating{}
	}
	return properties, nil
}

// Create stores a property for an existing owner.
func (s *PropertyService) Create(ctx context.Context, p model.NewProperty) (*model.Property, error) {
	property, err := s.properties.Create(ctx, p)
	if err != nil {
		return nil, s.fail(ctx, "create_property", err)
	}

	s.log(ctx).Info().
		Int64("property_id", property.ID).
		Int64("owner_id", property.OwnerID).
		Msg("property created")
	return property, nil
}
