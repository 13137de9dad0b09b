package chat

import (
	"strings"

	"github.com/ClosetCoderSad/VisionScout/internal/models"
)

var (
	vehicleKeywords = []string{
		"car", "vehicle", "suv", "sedan", "truck", "honda", "toyota",
		"ford", "drive", "mileage", "certified", "used car",
	}
	propertyKeywords = []string{
		"apartment", "rental", "rent", "bedroom", "bath", "lease", "housing",
	}
)

// DetectKind guesses which listing domain a chat query is about by keyword
// vote. Ties fall to property, matching the assistant backend's own routing.
func DetectKind(query string) models.Kind {
	q := strings.ToLower(query)

	vehicleScore := 0
	for _, kw := range vehicleKeywords {
		if strings.Contains(q, kw) {
			vehicleScore++
		}
	}
	propertyScore := 0
	for _, kw := range propertyKeywords {
		if strings.Contains(q, kw) {
			propertyScore++
		}
	}

	if vehicleScore > propertyScore {
		return models.KindVehicle
	}
	return models.KindProperty
}
