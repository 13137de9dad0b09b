package aggregator

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ClosetCoderSad/VisionScout/internal/models"
	"github.com/ClosetCoderSad/VisionScout/internal/normalize"
	"github.com/ClosetCoderSad/VisionScout/internal/notify"
)

// PropertySearcher fetches raw property records for a filter state.
type PropertySearcher interface {
	Search(ctx context.Context, filters models.PropertyFilters) ([]map[string]any, error)
}

// VehicleSearcher fetches raw vehicle records for a filter state.
type VehicleSearcher interface {
	Search(ctx context.Context, filters models.VehicleFilters) ([]map[string]any, error)
}

// Config defines orchestrator timing settings.
type Config struct {
	Debounce     time.Duration
	FetchTimeout time.Duration
}

// Orchestrator coordinates the two upstream searches. Filter changes are
// debounced; each fetch cycle carries a generation number and only the
// current generation may write results back, so superseded cycles resolve
// into nothing. The two searches run in parallel and fail independently: a
// failed source contributes an empty set and a notice, never an abort.
type Orchestrator struct {
	properties   PropertySearcher
	vehicles     VehicleSearcher
	notices      *notify.Hub
	logger       *logrus.Logger
	debounce     *Debouncer
	fetchTimeout time.Duration

	mu               sync.Mutex
	generation       uint64
	propertyListings []models.Listing
	vehicleListings  []models.Listing
	loading          bool
	stopped          bool
	onApply          func()
}

// NewOrchestrator creates an orchestrator over the two searchers.
func NewOrchestrator(properties PropertySearcher, vehicles VehicleSearcher, notices *notify.Hub, cfg Config, logger *logrus.Logger) *Orchestrator {
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	fetchTimeout := cfg.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = 30 * time.Second
	}

	return &Orchestrator{
		properties:   properties,
		vehicles:     vehicles,
		notices:      notices,
		logger:       logger,
		debounce:     NewDebouncer(debounce),
		fetchTimeout: fetchTimeout,
	}
}

// SetOnApply registers a callback invoked after a cycle's results become
// visible. The callback runs outside the orchestrator's lock.
func (o *Orchestrator) SetOnApply(fn func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.onApply = fn
}

// Schedule requests a fetch for the given filter snapshot after the debounce
// window. A newer call within the window supersedes this one entirely.
func (o *Orchestrator) Schedule(pf models.PropertyFilters, vf models.VehicleFilters) {
	o.debounce.Trigger(func() {
		o.RunCycle(pf, vf)
	})
}

// RunCycle executes one fetch cycle synchronously. It is safe to call
// concurrently; whichever call started last wins the right to apply.
func (o *Orchestrator) RunCycle(pf models.PropertyFilters, vf models.VehicleFilters) {
	o.mu.Lock()
	if o.stopped {
		o.mu.Unlock()
		return
	}
	o.generation++
	gen := o.generation
	o.loading = true
	o.mu.Unlock()

	defer func() {
		// A broken cycle degrades to a notice, never a crash.
		if r := recover(); r != nil {
			o.logger.WithField("panic", r).Error("Fetch cycle panicked")
			o.notices.Push(notify.LevelError, "Something went wrong while loading listings")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), o.fetchTimeout)
	defer cancel()

	var (
		wg        sync.WaitGroup
		propertyL []models.Listing
		vehicleL  []models.Listing
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		raws, err := o.properties.Search(ctx, pf)
		if err != nil {
			o.logger.WithError(err).Error("Property search failed")
			o.notices.Push(notify.LevelWarning, "Property search is temporarily unavailable")
			raws = nil
		}
		propertyL = normalize.PropertyListings(raws)
	}()
	go func() {
		defer wg.Done()
		raws, err := o.vehicles.Search(ctx, vf)
		if err != nil {
			o.logger.WithError(err).Error("Vehicle search failed")
			o.notices.Push(notify.LevelWarning, "Vehicle search is temporarily unavailable")
			raws = nil
		}
		vehicleL = normalize.VehicleListings(raws)
	}()
	wg.Wait()

	o.mu.Lock()
	if o.stopped || gen != o.generation {
		o.mu.Unlock()
		o.logger.WithFields(logrus.Fields{
			"generation": gen,
		}).Debug("Discarding results from superseded fetch cycle")
		return
	}
	o.propertyListings = propertyL
	o.vehicleListings = vehicleL
	o.loading = false
	apply := o.onApply
	o.mu.Unlock()

	o.logger.WithFields(logrus.Fields{
		"properties": len(propertyL),
		"vehicles":   len(vehicleL),
	}).Info("Applied fetch cycle results")

	if apply != nil {
		apply()
	}
}

// Listings returns a copy of the current collection for the given kind.
func (o *Orchestrator) Listings(kind models.Kind) []models.Listing {
	o.mu.Lock()
	defer o.mu.Unlock()

	var src []models.Listing
	switch kind {
	case models.KindVehicle:
		src = o.vehicleListings
	default:
		src = o.propertyListings
	}

	out := make([]models.Listing, len(src))
	copy(out, src)
	return out
}

// Find locates a listing by ID across both collections.
func (o *Orchestrator) Find(id string) (models.Listing, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, collection := range [][]models.Listing{o.propertyListings, o.vehicleListings} {
		for _, l := range collection {
			if l.ID == id {
				return l, true
			}
		}
	}
	return models.Listing{}, false
}

// Loading reports whether a fetch cycle is in flight.
func (o *Orchestrator) Loading() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.loading
}

// Stop cancels pending work and blocks any in-flight cycle from applying.
func (o *Orchestrator) Stop() {
	o.debounce.Stop()

	o.mu.Lock()
	defer o.mu.Unlock()
	o.stopped = true
}
