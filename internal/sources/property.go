package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ClosetCoderSad/VisionScout/internal/models"
)

// PropertyClient queries the upstream property search API. The API key
// travels in a request header and the response body is a bare JSON array of
// raw records. This client is the only code that knows the property feed's
// field names.
type PropertyClient struct {
	baseURL string
	apiKey  string
	limit   int
	client  *http.Client
	logger  *logrus.Logger
}

// PropertyClientConfig defines settings for the property search client.
type PropertyClientConfig struct {
	BaseURL string
	APIKey  string
	Limit   int
	Timeout time.Duration
}

// NewPropertyClient creates a property search client.
func NewPropertyClient(cfg PropertyClientConfig, logger *logrus.Logger) *PropertyClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	limit := cfg.Limit
	if limit <= 0 {
		limit = 40
	}

	return &PropertyClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		limit:   limit,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Search fetches raw property records matching the given filters. A non-2xx
// status is returned as an error; the caller decides how to degrade.
func (c *PropertyClient) Search(ctx context.Context, filters models.PropertyFilters) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("city", filters.City)
	params.Set("state_code", filters.State)
	params.Set("status", "for_rent")
	params.Set("limit", strconv.Itoa(c.limit))
	if len(filters.PropertyTypes) > 0 {
		params.Set("prop_type", strings.Join(filters.PropertyTypes, ","))
	}
	if filters.MinBedrooms > 0 {
		params.Set("beds_min", strconv.Itoa(filters.MinBedrooms))
	}
	if filters.MinBathrooms > 0 {
		params.Set("baths_min", strconv.Itoa(filters.MinBathrooms))
	}
	if filters.MinSqft > 0 {
		params.Set("sqft_min", strconv.Itoa(filters.MinSqft))
	}
	if filters.MaxSqft > 0 {
		params.Set("sqft_max", strconv.Itoa(filters.MaxSqft))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create property request: %w", err)
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", req.URL.Host)

	c.logger.WithField("city", filters.City).Debug("Fetching property listings")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("property request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("property search returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read property response: %w", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("failed to parse property response: %w", err)
	}

	c.logger.WithField("count", len(records)).Debug("Property search resolved")
	return records, nil
}
