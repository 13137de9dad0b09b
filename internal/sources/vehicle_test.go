package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/ClosetCoderSad/VisionScout/internal/models"
)

func TestVehicleClient_Search(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"listings":[{"id":"V-1","make":"Honda"}]}`))
	}))
	defer server.Close()

	client := NewVehicleClient(VehicleClientConfig{
		BaseURL: server.URL,
		APIKey:  "vehicle-key",
		Records: 30,
		Zip:     "75080",
		Radius:  25,
		Timeout: time.Second,
	}, logrus.New())

	records, err := client.Search(context.Background(), models.VehicleFilters{
		Make:     "Honda",
		BodyType: "SUV",
		Color:    "Blue",
	})

	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "V-1", records[0]["id"])

	// The vehicle feed authenticates via query parameter, not header
	assert.Equal(t, "vehicle-key", gotQuery["api_key"])
	assert.Equal(t, "30", gotQuery["rows"])
	assert.Equal(t, "75080", gotQuery["zip"])
	assert.Equal(t, "25", gotQuery["radius"])
	assert.Equal(t, "used", gotQuery["car_type"])
	assert.Equal(t, "Honda", gotQuery["make"])
	assert.Equal(t, "SUV", gotQuery["body_type"])
	assert.Equal(t, "Blue", gotQuery["exterior_color"])
}

func TestVehicleClient_OmitsUnsetFilters(t *testing.T) {
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"listings":[]}`))
	}))
	defer server.Close()

	client := NewVehicleClient(VehicleClientConfig{BaseURL: server.URL, Zip: "75080"}, logrus.New())

	_, err := client.Search(context.Background(), models.VehicleFilters{})
	assert.NoError(t, err)

	assert.NotContains(t, gotQuery, "make")
	assert.NotContains(t, gotQuery, "body_type")
	assert.NotContains(t, gotQuery, "exterior_color")
}

func TestVehicleClient_NonSuccessStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewVehicleClient(VehicleClientConfig{BaseURL: server.URL}, logrus.New())

	_, err := client.Search(context.Background(), models.VehicleFilters{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestVehicleClient_EmptyEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewVehicleClient(VehicleClientConfig{BaseURL: server.URL}, logrus.New())

	records, err := client.Search(context.Background(), models.VehicleFilters{})
	assert.NoError(t, err)
	assert.Empty(t, records)
}
