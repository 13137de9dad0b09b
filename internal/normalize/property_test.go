package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ClosetCoderSad/VisionScout/config"
	"github.com/ClosetCoderSad/VisionScout/internal/models"
)

func TestPropertyListing_EmptyRecord(t *testing.T) {
	listing := PropertyListing(map[string]any{}, 0)

	assert.Equal(t, models.KindProperty, listing.Kind)
	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, "Property listing", listing.Title)
	assert.Equal(t, "Price unavailable", listing.Price)
	assert.Equal(t, config.StockImage(0), listing.Image)

	assert.NotNil(t, listing.Property)
	assert.Nil(t, listing.Vehicle)
	assert.Equal(t, "—", listing.Property.Location)
	assert.Equal(t, "—", listing.Property.Bedrooms)
	assert.Equal(t, "—", listing.Property.Bathrooms)
	assert.Equal(t, "—", listing.Property.Sqft)
}

func TestPropertyListing_NilRecord(t *testing.T) {
	listing := PropertyListing(nil, 3)

	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, "Price unavailable", listing.Price)
	assert.NotNil(t, listing.Property)
}

func TestPropertyListing_FullRecord(t *testing.T) {
	raw := map[string]any{
		"property_id": "P-100",
		"address":     "123 Main St",
		"city":        "Austin",
		"state":       "TX",
		"price":       float64(1500),
		"beds":        float64(2),
		"baths":       float64(2),
		"sqft":        float64(1250),
		"image_url":   "https://example.com/photo.jpg",
	}

	listing := PropertyListing(raw, 0)

	assert.Equal(t, "P-100", listing.ID)
	assert.Equal(t, "123 Main St", listing.Title)
	assert.Equal(t, "$1,500", listing.Price)
	assert.Equal(t, "https://example.com/photo.jpg", listing.Image)
	assert.Equal(t, "Austin, TX", listing.Property.Location)
	assert.Equal(t, "2", listing.Property.Bedrooms)
	assert.Equal(t, "2", listing.Property.Bathrooms)
	assert.Equal(t, "1,250", listing.Property.Sqft)
}

func TestPropertyListing_NumbersAsStrings(t *testing.T) {
	raw := map[string]any{
		"address": "5 Side St",
		"price":   "$1,850",
		"sqft":    "900",
	}

	listing := PropertyListing(raw, 0)

	assert.Equal(t, "$1,850", listing.Price)
	assert.Equal(t, "900", listing.Property.Sqft)
}

func TestPropertyListing_SynthesizedID(t *testing.T) {
	a := PropertyListing(map[string]any{"address": "123 Main St"}, 4)
	b := PropertyListing(map[string]any{"address": "456 Oak Ave"}, 5)

	assert.Equal(t, "prop-4-123-main-st", a.ID)
	assert.Equal(t, "prop-5-456-oak-ave", b.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestPropertyListing_ConditionRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		listing := PropertyListing(map[string]any{}, i)
		assert.GreaterOrEqual(t, listing.Condition, 70)
		assert.LessOrEqual(t, listing.Condition, 95)
	}
}

func TestPropertyListings_StockImageRotation(t *testing.T) {
	raws := make([]map[string]any, len(config.StockImages)+1)
	for i := range raws {
		raws[i] = map[string]any{}
	}

	listings := PropertyListings(raws)

	assert.Len(t, listings, len(raws))
	for i, l := range listings {
		assert.Equal(t, config.StockImages[i%len(config.StockImages)], l.Image)
	}
	// The pool wraps around rather than running out
	assert.Equal(t, listings[0].Image, listings[len(config.StockImages)].Image)
}

func TestPropertyListings_PreservesOrder(t *testing.T) {
	raws := []map[string]any{
		{"property_id": "a"},
		{"property_id": "b"},
		{"property_id": "c"},
	}

	listings := PropertyListings(raws)

	assert.Equal(t, []string{"a", "b", "c"}, []string{listings[0].ID, listings[1].ID, listings[2].ID})
}
