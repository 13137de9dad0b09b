package aggregator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/ClosetCoderSad/VisionScout/internal/models"
	"github.com/ClosetCoderSad/VisionScout/internal/notify"
)

// stubPropertySearcher resolves immediately with fixed results.
type stubPropertySearcher struct {
	mu      sync.Mutex
	results []map[string]any
	err     error
	cities  []string
}

func (s *stubPropertySearcher) Search(_ context.Context, f models.PropertyFilters) ([]map[string]any, error) {
	s.mu.Lock()
	s.cities = append(s.cities, f.City)
	s.mu.Unlock()
	return s.results, s.err
}

func (s *stubPropertySearcher) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cities)
}

type stubVehicleSearcher struct {
	results []map[string]any
	err     error
}

func (s *stubVehicleSearcher) Search(context.Context, models.VehicleFilters) ([]map[string]any, error) {
	return s.results, s.err
}

// sequencedSearcher blocks each Search call until the test releases it,
// letting tests decide resolution order across fetch cycles.
type sequencedSearcher struct {
	mu      sync.Mutex
	waiters []chan []map[string]any
}

func (s *sequencedSearcher) Search(ctx context.Context, _ models.PropertyFilters) ([]map[string]any, error) {
	ch := make(chan []map[string]any, 1)
	s.mu.Lock()
	s.waiters = append(s.waiters, ch)
	s.mu.Unlock()

	select {
	case raws := <-ch:
		return raws, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *sequencedSearcher) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.waiters)
}

func (s *sequencedSearcher) release(call int, raws []map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waiters[call] <- raws
}

func newTestOrchestrator(props PropertySearcher, vehicles VehicleSearcher) (*Orchestrator, *notify.Hub) {
	logger := logrus.New()
	hub := notify.NewHub(8, logger)
	o := NewOrchestrator(props, vehicles, hub, Config{
		Debounce:     5 * time.Millisecond,
		FetchTimeout: time.Second,
	}, logger)
	return o, hub
}

func TestOrchestrator_AppliesResults(t *testing.T) {
	props := &stubPropertySearcher{results: []map[string]any{{"property_id": "p1"}}}
	vehicles := &stubVehicleSearcher{results: []map[string]any{{"id": "v1"}}}
	o, _ := newTestOrchestrator(props, vehicles)

	applied := 0
	o.SetOnApply(func() { applied++ })

	o.RunCycle(models.PropertyFilters{City: "Austin"}, models.VehicleFilters{})

	assert.False(t, o.Loading())
	assert.Equal(t, 1, applied)

	properties := o.Listings(models.KindProperty)
	assert.Len(t, properties, 1)
	assert.Equal(t, "p1", properties[0].ID)

	// Baseline record plus the upstream result
	vehicleListings := o.Listings(models.KindVehicle)
	assert.Len(t, vehicleListings, 2)
	assert.Equal(t, "baseline-2021-camry", vehicleListings[0].ID)
}

func TestOrchestrator_PartialFailureDegradesToEmpty(t *testing.T) {
	props := &stubPropertySearcher{err: errors.New("upstream down")}
	vehicles := &stubVehicleSearcher{results: []map[string]any{{"id": "v1"}}}
	o, hub := newTestOrchestrator(props, vehicles)

	o.RunCycle(models.PropertyFilters{}, models.VehicleFilters{})

	assert.Empty(t, o.Listings(models.KindProperty))
	assert.Len(t, o.Listings(models.KindVehicle), 2)
	assert.False(t, o.Loading())

	notices := hub.Drain()
	assert.Len(t, notices, 1)
	assert.Equal(t, notify.LevelWarning, notices[0].Level)
}

func TestOrchestrator_StaleCycleDiscarded(t *testing.T) {
	props := &sequencedSearcher{}
	vehicles := &stubVehicleSearcher{}
	o, _ := newTestOrchestrator(props, vehicles)

	applied := make(chan struct{}, 4)
	o.SetOnApply(func() { applied <- struct{}{} })

	// Cycle A starts and blocks on its property search.
	go o.RunCycle(models.PropertyFilters{City: "A"}, models.VehicleFilters{})
	assert.Eventually(t, func() bool { return props.calls() == 1 }, time.Second, time.Millisecond)

	// Cycle B supersedes it before A resolves.
	go o.RunCycle(models.PropertyFilters{City: "B"}, models.VehicleFilters{})
	assert.Eventually(t, func() bool { return props.calls() == 2 }, time.Second, time.Millisecond)

	// B resolves first and applies.
	props.release(1, []map[string]any{{"property_id": "from-B"}})
	select {
	case <-applied:
	case <-time.After(time.Second):
		t.Fatal("cycle B never applied")
	}

	// A resolves afterwards; its results must be discarded.
	props.release(0, []map[string]any{{"property_id": "from-A"}})
	time.Sleep(50 * time.Millisecond)

	properties := o.Listings(models.KindProperty)
	assert.Len(t, properties, 1)
	assert.Equal(t, "from-B", properties[0].ID)
	assert.False(t, o.Loading())

	select {
	case <-applied:
		t.Fatal("stale cycle must not trigger a second apply")
	default:
	}
}

func TestOrchestrator_StopBlocksApply(t *testing.T) {
	props := &sequencedSearcher{}
	vehicles := &stubVehicleSearcher{}
	o, _ := newTestOrchestrator(props, vehicles)

	applied := make(chan struct{}, 1)
	o.SetOnApply(func() { applied <- struct{}{} })

	go o.RunCycle(models.PropertyFilters{City: "A"}, models.VehicleFilters{})
	assert.Eventually(t, func() bool { return props.calls() == 1 }, time.Second, time.Millisecond)

	o.Stop()
	props.release(0, []map[string]any{{"property_id": "late"}})
	time.Sleep(50 * time.Millisecond)

	assert.Empty(t, o.Listings(models.KindProperty))
	select {
	case <-applied:
		t.Fatal("torn-down orchestrator must not apply results")
	default:
	}
}

func TestOrchestrator_ScheduleDebouncesToLastFilterState(t *testing.T) {
	props := &stubPropertySearcher{}
	vehicles := &stubVehicleSearcher{}
	o, _ := newTestOrchestrator(props, vehicles)

	o.Schedule(models.PropertyFilters{City: "first"}, models.VehicleFilters{})
	o.Schedule(models.PropertyFilters{City: "second"}, models.VehicleFilters{})
	o.Schedule(models.PropertyFilters{City: "third"}, models.VehicleFilters{})

	assert.Eventually(t, func() bool { return props.calls() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	props.mu.Lock()
	defer props.mu.Unlock()
	assert.Equal(t, []string{"third"}, props.cities)
}
