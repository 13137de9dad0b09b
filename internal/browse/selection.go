package browse

import (
	"sync"

	"github.com/ClosetCoderSad/VisionScout/internal/models"
)

// Selection tracks the single listing open for detail viewing, independent of
// list state. Closing hides the detail view but keeps the listing selected
// until FinishClose, so the content never blanks out mid-transition.
type Selection struct {
	mu      sync.Mutex
	current *models.Listing
	open    bool
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Open selects the listing and opens the detail view.
func (s *Selection) Open(l models.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &l
	s.open = true
}

// Close hides the detail view. The selection itself is kept.
func (s *Selection) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}

// FinishClose clears the selection once the close transition has completed.
// It is a no-op while the view is still open.
func (s *Selection) FinishClose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		s.current = nil
	}
}

// Current returns the selected listing, if any.
func (s *Selection) Current() (models.Listing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.Listing{}, false
	}
	return *s.current, true
}

// IsOpen reports whether the detail view is open.
func (s *Selection) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// ConditionLabel maps the placeholder quality score to its qualitative label.
func ConditionLabel(condition int) string {
	switch {
	case condition >= 90:
		return "Excellent"
	case condition >= 80:
		return "Very Good"
	default:
		return "Good"
	}
}
