package normalize

import (
	"fmt"
	"math/rand"

	"github.com/dustin/go-humanize"

	"github.com/ClosetCoderSad/VisionScout/config"
	"github.com/ClosetCoderSad/VisionScout/internal/models"
)

const (
	// Placeholder for absent label-like fields on property records.
	missingValue = "—"

	// Sentinel shown when a record carries no usable price.
	priceUnavailable = "Price unavailable"
)

// sampleCondition returns the placeholder quality score assigned once per
// record at normalization time. It is uniform over [70, 95] and not derived
// from real data.
func sampleCondition() int {
	return 70 + rand.Intn(26)
}

// PropertyListing converts one raw property record into a canonical listing.
// It is total: missing or malformed fields fall back to sentinels, never to
// an error. index is the record's position within the current response batch.
func PropertyListing(raw map[string]any, index int) models.Listing {
	if raw == nil {
		raw = map[string]any{}
	}

	address := stringField(raw, "address", "formattedAddress", "street", "line")
	if address == "" {
		if loc := objectField(raw, "location"); loc != nil {
			address = stringField(loc, "address", "line")
		}
	}
	city := stringField(raw, "city")
	state := stringField(raw, "state", "state_code", "region")

	id := stringField(raw, "property_id", "id", "zpid", "listing_id")
	if id == "" {
		id = fmt.Sprintf("prop-%d-%s", index, slug(firstNonEmpty(address, city, "listing")))
	}

	title := address
	if title == "" {
		title = firstNonEmpty(city, "Property listing")
	}

	location := joinNonEmpty(", ", city, state)
	if location == "" {
		location = missingValue
	}

	return models.Listing{
		ID:        id,
		Kind:      models.KindProperty,
		Title:     title,
		Price:     formatPrice(raw),
		Image:     imageOrStock(raw, index),
		Condition: sampleCondition(),
		Property: &models.PropertyDetails{
			Location:  location,
			Bedrooms:  countOrDash(raw, "beds", "bedrooms"),
			Bathrooms: countOrDash(raw, "baths", "bathrooms"),
			Sqft:      sqftOrDash(raw),
		},
	}
}

// PropertyListings normalizes a full response batch, preserving order.
func PropertyListings(raws []map[string]any) []models.Listing {
	out := make([]models.Listing, 0, len(raws))
	for i, raw := range raws {
		out = append(out, PropertyListing(raw, i))
	}
	return out
}

func formatPrice(raw map[string]any) string {
	if n, ok := numberField(raw, "price", "list_price", "rent"); ok && n > 0 {
		return "$" + humanize.Comma(int64(n))
	}
	return priceUnavailable
}

func imageOrStock(raw map[string]any, index int) string {
	if img := stringField(raw, "image_url", "imgSrc", "photo", "primary_photo", "media_url"); img != "" {
		return img
	}
	return config.StockImage(index)
}

func countOrDash(raw map[string]any, keys ...string) string {
	if n, ok := numberField(raw, keys...); ok {
		return humanize.Comma(int64(n))
	}
	return missingValue
}

func sqftOrDash(raw map[string]any) string {
	if n, ok := numberField(raw, "sqft", "livingArea", "building_size"); ok && n > 0 {
		return humanize.Comma(int64(n))
	}
	return missingValue
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
