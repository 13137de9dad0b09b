package browse

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ClosetCoderSad/VisionScout/internal/aggregator"
	"github.com/ClosetCoderSad/VisionScout/internal/models"
	"github.com/ClosetCoderSad/VisionScout/internal/search"
)

// Session owns the browse-side state: both filter objects, the active listing
// kind, the free-text query and the page position. Any change to kind, either
// filter state, or the query resets the page to 1; filter changes additionally
// schedule a debounced re-fetch. Results from superseded fetch cycles never
// reach the session, so they can never reset the page.
type Session struct {
	orch   *aggregator.Orchestrator
	logger *logrus.Logger

	mu              sync.Mutex
	kind            models.Kind
	query           string
	propertyFilters models.PropertyFilters
	vehicleFilters  models.VehicleFilters
	pager           *search.Paginator

	selection *Selection
}

// View is the render-ready slice of session state handed to the presentation
// collaborator.
type View struct {
	Kind         models.Kind      `json:"kind"`
	Query        string           `json:"query"`
	Loading      bool             `json:"loading"`
	Page         int              `json:"page"`
	TotalPages   int              `json:"total_pages"`
	TotalResults int              `json:"total_results"`
	Listings     []models.Listing `json:"listings"`
}

// Detail is the open-listing payload, including the qualitative condition
// label derived from the placeholder score.
type Detail struct {
	Listing        models.Listing `json:"listing"`
	ConditionLabel string         `json:"condition_label"`
}

// NewSession creates a session over the orchestrator, starting on the
// property view.
func NewSession(orch *aggregator.Orchestrator, pageSize int, logger *logrus.Logger) *Session {
	s := &Session{
		orch:   orch,
		logger: logger,
		kind:   models.KindProperty,
		propertyFilters: models.PropertyFilters{
			City:  "Dallas",
			State: "TX",
		},
		pager:     search.NewPaginator(pageSize),
		selection: NewSelection(),
	}
	orch.SetOnApply(s.onResultsApplied)
	return s
}

// Start schedules the initial fetch for the default filter state.
func (s *Session) Start() {
	s.mu.Lock()
	pf, vf := s.propertyFilters, s.vehicleFilters
	s.mu.Unlock()
	s.orch.Schedule(pf, vf)
}

// Stop tears the session down; in-flight fetch cycles become stale and are
// discarded.
func (s *Session) Stop() {
	s.orch.Stop()
}

// SetKind switches the active listing kind and resets the page.
func (s *Session) SetKind(kind models.Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown listing kind: %q", kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kind != kind {
		s.kind = kind
		s.pager.Reset()
	}
	return nil
}

// SetQuery updates the free-text query and resets the page. The query is
// applied client-side; it does not trigger a re-fetch.
func (s *Session) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
	s.pager.Reset()
}

// UpdatePropertyFilters replaces the property filter state, resets the page
// and schedules a debounced re-fetch of both sources.
func (s *Session) UpdatePropertyFilters(f models.PropertyFilters) {
	s.mu.Lock()
	s.propertyFilters = f
	s.pager.Reset()
	pf, vf := s.propertyFilters, s.vehicleFilters
	s.mu.Unlock()

	s.orch.Schedule(pf, vf)
}

// UpdateVehicleFilters replaces the vehicle filter state, resets the page and
// schedules a debounced re-fetch of both sources.
func (s *Session) UpdateVehicleFilters(f models.VehicleFilters) {
	s.mu.Lock()
	s.vehicleFilters = f
	s.pager.Reset()
	pf, vf := s.propertyFilters, s.vehicleFilters
	s.mu.Unlock()

	s.orch.Schedule(pf, vf)
}

// SetPage moves to the given page. Out-of-range pages are a no-op.
func (s *Session) SetPage(page int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := search.Filter(s.orch.Listings(s.kind), s.query)
	return s.pager.SetPage(page, s.pager.TotalPages(len(filtered)))
}

// View derives the current render state: active collection, filtered by the
// query, sliced to the current page.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := search.Filter(s.orch.Listings(s.kind), s.query)
	return View{
		Kind:         s.kind,
		Query:        s.query,
		Loading:      s.orch.Loading(),
		Page:         s.pager.Page(),
		TotalPages:   s.pager.TotalPages(len(filtered)),
		TotalResults: len(filtered),
		Listings:     s.pager.Slice(filtered),
	}
}

// OpenDetail selects the listing with the given ID and opens the detail view.
func (s *Session) OpenDetail(id string) (Detail, bool) {
	listing, ok := s.orch.Find(id)
	if !ok {
		return Detail{}, false
	}

	s.selection.Open(listing)
	return Detail{
		Listing:        listing,
		ConditionLabel: ConditionLabel(listing.Condition),
	}, true
}

// CloseDetail hides the detail view, keeping the selection until the close
// transition completes.
func (s *Session) CloseDetail() {
	s.selection.Close()
}

// FinishCloseDetail clears the selection after the close transition.
func (s *Session) FinishCloseDetail() {
	s.selection.FinishClose()
}

// Selection exposes the selection controller.
func (s *Session) Selection() *Selection {
	return s.selection
}

// onResultsApplied runs after a fetch cycle's results become visible; a fresh
// collection always restarts pagination.
func (s *Session) onResultsApplied() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pager.Reset()
}
