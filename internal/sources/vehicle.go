package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ClosetCoderSad/VisionScout/internal/models"
)

// VehicleClient queries the upstream vehicle search API. Unlike the property
// feed, the API key is a query parameter and the records sit under a
// "listings" envelope.
type VehicleClient struct {
	baseURL string
	apiKey  string
	records int
	zip     string
	radius  int
	client  *http.Client
	logger  *logrus.Logger
}

// VehicleClientConfig defines settings for the vehicle search client.
type VehicleClientConfig struct {
	BaseURL string
	APIKey  string
	Records int
	Zip     string
	Radius  int
	Timeout time.Duration
}

// NewVehicleClient creates a vehicle search client.
func NewVehicleClient(cfg VehicleClientConfig, logger *logrus.Logger) *VehicleClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	records := cfg.Records
	if records <= 0 {
		records = 40
	}
	radius := cfg.Radius
	if radius <= 0 {
		radius = 50
	}

	return &VehicleClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		records: records,
		zip:     cfg.Zip,
		radius:  radius,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type vehicleSearchResponse struct {
	Listings []map[string]any `json:"listings"`
}

// Search fetches raw vehicle records matching the given filters.
func (c *VehicleClient) Search(ctx context.Context, filters models.VehicleFilters) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("rows", strconv.Itoa(c.records))
	params.Set("zip", c.zip)
	params.Set("radius", strconv.Itoa(c.radius))
	params.Set("car_type", "used")
	if filters.Make != "" {
		params.Set("make", filters.Make)
	}
	if filters.BodyType != "" {
		params.Set("body_type", filters.BodyType)
	}
	if filters.Color != "" {
		params.Set("exterior_color", filters.Color)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create vehicle request: %w", err)
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("Accept", "application/json")

	c.logger.WithField("make", filters.Make).Debug("Fetching vehicle listings")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vehicle request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("vehicle search returned status %d", resp.StatusCode)
	}

	var parsed vehicleSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse vehicle response: %w", err)
	}

	c.logger.WithField("count", len(parsed.Listings)).Debug("Vehicle search resolved")
	return parsed.Listings, nil
}
