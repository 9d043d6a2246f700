package repository

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/lib/query"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/jackc/pgx/v5"
)

const propertyColumns = `properties.id, properties.owner_id, properties.title, properties.description,
  properties.thumbnail_photo_url, properties.cover_photo_url, properties.cost_per_night,
  properties.street, properties.city, properties.province, properties.post_code, properties.country,
  properties.parking_spaces, properties.number_of_bathrooms, properties.number_of_bedrooms`

// averageRating is both the selected aggregate and the HAVING operand; the
// rating threshold must compare against the aggregate, not the raw column.
const averageRating = `avg(property_reviews.rating)`

const querySearchPropertiesBase = `
SELECT ` + propertyColumns + `,
  ` + averageRating + ` AS average_rating
FROM properties
JOIN property_reviews ON properties.id = property_reviews.property_id`

const queryCreateProperty = `
INSERT INTO properties (
  owner_id, title, description, thumbnail_photo_url, cover_photo_url, cost_per_night,
  street, city, province, post_code, country, parking_spaces, number_of_bathrooms, number_of_bedrooms
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + propertyColumns + `;`

type PropertyRepository struct {
	db DBTX
}

func NewPropertyRepository(db DBTX) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func propertyScanTargets(p *model.Property) []any {
	return []any{
		&p.ID, &p.OwnerID, &p.Title, &p.Description,
		&p.ThumbnailPhotoURL, &p.CoverPhotoURL, &p.CostPerNight,
		&p.Street, &p.City, &p.Province, &p.PostCode, &p.Country,
		&p.ParkingSpaces, &p.NumberOfBathrooms, &p.NumberOfBedrooms,
	}
}

func scanProperty(row pgx.CollectableRow) (model.Property, error) {
	var p model.Property
	err := row.Scan(propertyScanTargets(&p)...)
	return p, err
}

func scanPropertyWithRating(row pgx.CollectableRow) (model.PropertyWithRating, error) {
	var p model.PropertyWithRating
	err := row.Scan(append(propertyScanTargets(&p.Property), &p.AverageRating)...)
	return p, err
}

// BuildSearchQuery composes the property search statement.
//
// Row predicates are collected in fixed order (city, owner, minimum price,
// maximum price) and AND-joined. The rating threshold is a HAVING
// predicate on the average rating. The limit is always the last argument.
func BuildSearchQuery(f model.PropertyFilters, limit int) (string, []any) {
	b := query.New(querySearchPropertiesBase)

	if f.City != "" {
		b.Where("city", "LIKE", "%"+f.City+"%")
	}
	if f.OwnerID != 0 {
		b.Where("owner_id", "=", f.OwnerID)
	}
	if f.MinimumPricePerNight != 0 {
		b.Where("cost_per_night", ">=", f.MinimumPricePerNight)
	}
	if f.MaximumPricePerNight != 0 {
		b.Where("cost_per_night", "<=", f.MaximumPricePerNight)
	}

	b.GroupBy("properties.id")

	if f.MinimumRating != 0 {
		b.Having(averageRating, ">=", f.MinimumRating)
	}

	return b.OrderBy("cost_per_night").
		Limit(normalizeLimit(limit)).
		Build()
}

// Search returns properties matching f, cheapest first, with their average
// rating. Properties without reviews are not returned.
func (r *PropertyRepository) Search(ctx context.Context, f model.PropertyFilters, limit int) ([]model.PropertyWithRating, error) {
	sql, args := BuildSearchQuery(f, limit)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, notFoundOr(err, "properties", "search properties")
	}

	properties, err := pgx.CollectRows(rows, scanPropertyWithRating)
	if err != nil {
		return nil, notFoundOr(err, "properties", "search properties")
	}

	return properties, nil
}

// Create inserts a property and returns the stored row.
func (r *PropertyRepository) Create(ctx context.Context, p model.NewProperty) (*model.Property, error) {
	rows, err := r.db.Query(ctx, queryCreateProperty,
		p.OwnerID,
		p.Title,
		p.Description,
		p.ThumbnailPhotoURL,
		p.CoverPhotoURL,
		p.CostPerNight,
		p.Street,
		p.City,
		p.Province,
		p.PostCode,
		p.Country,
		p.ParkingSpaces,
		p.NumberOfBathrooms,
		p.NumberOfBedrooms,
	)
	if err != nil {
		return nil, notFoundOr(err, "properties", "create property")
	}

	property, err := pgx.CollectOneRow(rows, scanProperty)
	if err != nil {
		return nil, notFoundOr(err, "properties", "create property")
	}

	return &property, nil
}
