package chat

import (
	"strings"

	"github.com/ClosetCoderSad/VisionScout/config"
	"github.com/ClosetCoderSad/VisionScout/internal/models"
)

// Classify decides whether an arbitrary backend-delivered record renders as a
// vehicle or a property. The payload is untyped and the backend contract is
// not ours, so this is a best-effort heuristic: a non-empty make field, a
// body-type field, or a known vehicle source marker means vehicle; anything
// else, including an empty record, is a property.
//
// Tie-break: a record carrying both vehicle and property signals (say, make
// and address) classifies as vehicle. The vehicle checks run first and that
// ordering is part of the contract.
func Classify(record map[string]any) models.Kind {
	if record == nil {
		return models.KindProperty
	}

	if s, ok := record["make"].(string); ok && strings.TrimSpace(s) != "" {
		return models.KindVehicle
	}
	if _, ok := record["bodyType"]; ok {
		return models.KindVehicle
	}
	if _, ok := record["body_type"]; ok {
		return models.KindVehicle
	}
	if s, ok := record["source"].(string); ok && config.IsVehicleSource(strings.ToLower(strings.TrimSpace(s))) {
		return models.KindVehicle
	}

	return models.KindProperty
}
