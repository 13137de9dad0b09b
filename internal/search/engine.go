package search

import (
	"strings"

	"github.com/ClosetCoderSad/VisionScout/internal/models"
)

// Filter derives the ordered subsequence of listings matching the free-text
// query. It is a pure function of its inputs: no hidden state, original order
// preserved. A blank query short-circuits to the full collection.
func Filter(listings []models.Listing, query string) []models.Listing {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return listings
	}

	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if matches(l, query) {
			out = append(out, l)
		}
	}
	return out
}

// matches checks the query against the kind-appropriate field set: title and
// price always, plus location/sqft for properties or details/year/mileage
// for vehicles.
func matches(l models.Listing, query string) bool {
	fields := []string{l.Title, l.Price}

	switch l.Kind {
	case models.KindProperty:
		if l.Property != nil {
			fields = append(fields, l.Property.Location, l.Property.Sqft)
		}
	case models.KindVehicle:
		if l.Vehicle != nil {
			fields = append(fields, l.Vehicle.Details, l.Vehicle.Year, l.Vehicle.Mileage)
		}
	}

	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
