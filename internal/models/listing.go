package models

// Kind discriminates the two listing variants.
type Kind string

const (
	KindProperty Kind = "property"
	KindVehicle  Kind = "vehicle"
)

// Valid reports whether k names a known listing kind.
func (k Kind) Valid() bool {
	return k == KindProperty || k == KindVehicle
}

// Listing is the canonical record both upstream feeds are normalized into.
// Exactly one of Property or Vehicle is set, matching Kind. Every field is
// populated at normalization time; upstream absence is resolved to a sentinel
// there and never propagates downstream as a missing value.
type Listing struct {
	ID    string `json:"id"`
	Kind  Kind   `json:"kind"`
	Title string `json:"title"`
	Price string `json:"price"`
	Image string `json:"image"`

	// Condition is a placeholder quality score in [70, 95], sampled once
	// per record at normalization time and stable thereafter.
	Condition int `json:"condition"`

	Property *PropertyDetails `json:"property,omitempty"`
	Vehicle  *VehicleDetails  `json:"vehicle,omitempty"`
}

// PropertyDetails holds the property-variant fields. Missing upstream values
// render as "—".
type PropertyDetails struct {
	Location  string `json:"location"`
	Bedrooms  string `json:"bedrooms"`
	Bathrooms string `json:"bathrooms"`
	Sqft      string `json:"sqft"`
}

// VehicleDetails holds the vehicle-variant fields. Missing upstream values
// render as "N/A".
type VehicleDetails struct {
	Details  string `json:"details"`
	Mileage  string `json:"mileage"`
	Year     string `json:"year"`
	Color    string `json:"color"`
	Make     string `json:"make"`
	BodyType string `json:"body_type"`
}

// PropertyFilters drive the upstream property search. A change to any field
// triggers a debounced re-fetch.
type PropertyFilters struct {
	City          string   `json:"city"`
	State         string   `json:"state"`
	PropertyTypes []string `json:"property_types"`
	MinBedrooms   int      `json:"min_bedrooms"`
	MinBathrooms  int      `json:"min_bathrooms"`
	MinSqft       int      `json:"min_sqft"`
	MaxSqft       int      `json:"max_sqft"`
}

// VehicleFilters drive the upstream vehicle search.
type VehicleFilters struct {
	Color    string `json:"color"`
	BodyType string `json:"body_type"`
	Make     string `json:"make"`
}
