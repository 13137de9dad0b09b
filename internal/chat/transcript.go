package chat

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ClosetCoderSad/VisionScout/internal/models"
	"github.com/ClosetCoderSad/VisionScout/internal/normalize"
	"github.com/ClosetCoderSad/VisionScout/internal/notify"
)

// FallbackReply is shown when the backend returns neither listings nor text.
const FallbackReply = "I couldn't find any matching listings."

// maxTurnListings caps how many backend listings one assistant message
// carries; the remainder is silently dropped.
const maxTurnListings = 3

// Transcript is the append-only chat history. The user's message is appended
// optimistically before the round trip and never rolled back; a failed turn
// produces a transient notice instead of an assistant message. Messages are
// never edited, removed or reordered.
type Transcript struct {
	backend Backend
	notices *notify.Hub
	logger  *logrus.Logger

	mu       sync.Mutex
	messages []models.ChatMessage
	sending  bool
}

// NewTranscript creates an empty transcript over the given backend.
func NewTranscript(backend Backend, notices *notify.Hub, logger *logrus.Logger) *Transcript {
	return &Transcript{
		backend: backend,
		notices: notices,
		logger:  logger,
	}
}

// Send runs one chat turn: append the user message, call the backend, and
// append exactly one assistant message carrying either up to three classified
// listings, the backend's reply text, or the fixed fallback. On failure no
// assistant message is appended and ok is false.
func (t *Transcript) Send(ctx context.Context, query string) (assistant models.ChatMessage, ok bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.ChatMessage{}, false
	}

	t.mu.Lock()
	t.messages = append(t.messages, models.ChatMessage{
		ID:      uuid.NewString(),
		Role:    models.RoleUser,
		Content: query,
	})
	t.sending = true
	t.mu.Unlock()

	t.logger.WithFields(logrus.Fields{
		"detected": DetectKind(query),
	}).Info("Sending chat query")

	resp, err := t.backend.Send(ctx, query)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.sending = false

	if err != nil {
		t.logger.WithError(err).Error("Chat turn failed")
		t.notices.Push(notify.LevelError, "The assistant is unavailable right now")
		return models.ChatMessage{}, false
	}

	assistant = models.ChatMessage{
		ID:   uuid.NewString(),
		Role: models.RoleAssistant,
	}
	if len(resp.Listings) > 0 {
		assistant.Listings = classifyListings(resp.Listings)
	} else if resp.Reply != "" {
		assistant.Content = resp.Reply
	} else {
		assistant.Content = FallbackReply
	}

	t.messages = append(t.messages, assistant)
	return assistant, true
}

// Messages returns a copy of the transcript in order.
func (t *Transcript) Messages() []models.ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]models.ChatMessage, len(t.messages))
	copy(out, t.messages)
	return out
}

// Sending reports whether a turn is in flight.
func (t *Transcript) Sending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sending
}

// classifyListings converts the first maxTurnListings backend records into
// canonical listings, classifying each record independently. One turn may mix
// properties and vehicles.
func classifyListings(raws []map[string]any) []models.Listing {
	if len(raws) > maxTurnListings {
		raws = raws[:maxTurnListings]
	}

	out := make([]models.Listing, 0, len(raws))
	for i, raw := range raws {
		switch Classify(raw) {
		case models.KindVehicle:
			out = append(out, normalize.VehicleListing(raw, i))
		default:
			out = append(out, normalize.PropertyListing(raw, i))
		}
	}
	return out
}
