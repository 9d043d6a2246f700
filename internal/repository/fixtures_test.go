package repository

import (
	"sort"
	"strings"

	"github.com/deppfellow/lightbnb/internal/model"
)

func propertyValues(p model.Property) []any {
	return []any{
		p.ID, p.OwnerID, p.Title, p.Description,
		p.ThumbnailPhotoURL, p.CoverPhotoURL, p.CostPerNight,
		p.Street, p.City, p.Province, p.PostCode, p.Country,
		p.ParkingSpaces, p.NumberOfBathrooms, p.NumberOfBedrooms,
	}
}

func property(id int64, city string, cost int64) model.Property {
	return model.Property{
		ID:                id,
		OwnerID:           1,
		Title:             city + " stay",
		Description:       "A place in " + city,
		ThumbnailPhotoURL: "https://img/thumb.jpg",
		CoverPhotoURL:     "https://img/cover.jpg",
		CostPerNight:      cost,
		Street:            "1 Main St",
		City:              city,
		Province:          "XX",
		PostCode:          "00000",
		Country:           "US",
		ParkingSpaces:     1,
		NumberOfBathrooms: 1,
		NumberOfBedrooms:  2,
	}
}

// searchStore answers search statements over a fixed set of properties and
// reviews. It is a stand-in for Postgres, not a second implementation of the
// statement: it reads only the HAVING threshold and the limit from args,
// ignores every WHERE predicate and always orders by cost_per_night. Use it
// with fixtures that apply no row predicates; the statement itself is
// checked against a real server in TestPostgres_Search.
type searchStore struct {
	properties []model.Property
	reviews    []model.Review
}

func (s searchStore) respond(sql string, args []any) ([][]any, error) {
	limit := args[len(args)-1].(int)

	threshold := 0.0
	if strings.Contains(sql, "HAVING") {
		threshold = args[len(args)-2].(float64)
	}

	props := append([]model.Property(nil), s.properties...)
	sort.Slice(props, func(i, j int) bool { return props[i].CostPerNight < props[j].CostPerNight })

	var out [][]any
	for _, p := range props {
		var sum, n float64
		for _, r := range s.reviews {
			if r.PropertyID == p.ID {
				sum += float64(r.Rating)
				n++
			}
		}
		if n == 0 || sum/n < threshold {
			continue
		}
		out = append(out, append(propertyValues(p), sum/n))
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// austinBoston is the two-property fixture: P1 in Austin at 100 averaging
// 4.5, P2 in Boston at 50 averaging 3.0.
func austinBoston() searchStore {
	return searchStore{
		properties: []model.Property{
			property(1, "Austin", 100),
			property(2, "Boston", 50),
		},
		reviews: []model.Review{
			{ID: 1, PropertyID: 1, Rating: 4},
			{ID: 2, PropertyID: 1, Rating: 5},
			{ID: 3, PropertyID: 2, Rating: 3},
		},
	}
}
