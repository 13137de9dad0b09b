package normalize

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/ClosetCoderSad/VisionScout/config"
	"github.com/ClosetCoderSad/VisionScout/internal/models"
)

// Placeholder for absent vehicle fields.
const notAvailable = "N/A"

// VehicleListing converts one raw vehicle record into a canonical listing.
// Like PropertyListing it never fails; every field degrades to a sentinel.
func VehicleListing(raw map[string]any, index int) models.Listing {
	if raw == nil {
		raw = map[string]any{}
	}

	vehicleMake := stringField(raw, "make")
	model := stringField(raw, "model")
	yearText := notAvailable
	if y, ok := numberField(raw, "year"); ok && y > 0 {
		yearText = strconv.Itoa(int(y))
	}

	title := stringField(raw, "heading", "title")
	if title == "" {
		title = joinNonEmpty(" ", yearIfKnown(yearText), vehicleMake, model)
	}
	if title == "" {
		title = "Vehicle listing"
	}

	id := stringField(raw, "id", "vin", "listing_id")
	if id == "" {
		id = fmt.Sprintf("veh-%d-%s", index, slug(firstNonEmpty(title, "listing")))
	}

	details := joinNonEmpty(" • ",
		stringField(raw, "body_type", "bodyType"),
		stringField(raw, "transmission"),
		stringField(raw, "trim"),
	)
	if details == "" {
		details = notAvailable
	}

	mileage := notAvailable
	if m, ok := numberField(raw, "miles", "mileage"); ok && m >= 0 {
		mileage = humanize.Comma(int64(m)) + " mi"
	}

	return models.Listing{
		ID:        id,
		Kind:      models.KindVehicle,
		Title:     title,
		Price:     formatPrice(raw),
		Image:     imageOrStock(raw, index),
		Condition: sampleCondition(),
		Vehicle: &models.VehicleDetails{
			Details:  details,
			Mileage:  mileage,
			Year:     yearText,
			Color:    fieldOrNA(raw, "exterior_color", "exteriorColor", "color"),
			Make:     orNA(vehicleMake),
			BodyType: fieldOrNA(raw, "body_type", "bodyType"),
		},
	}
}

// VehicleListings normalizes a vehicle response batch. The fixed baseline
// record is always prepended so the vehicle view has a non-empty floor, even
// when the upstream returns nothing.
func VehicleListings(raws []map[string]any) []models.Listing {
	out := make([]models.Listing, 0, len(raws)+1)
	out = append(out, VehicleListing(config.BaselineVehicle(), 0))
	for i, raw := range raws {
		out = append(out, VehicleListing(raw, i+1))
	}
	return out
}

func fieldOrNA(raw map[string]any, keys ...string) string {
	return orNA(stringField(raw, keys...))
}

func orNA(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}

func yearIfKnown(yearText string) string {
	if yearText == notAvailable {
		return ""
	}
	return yearText
}
