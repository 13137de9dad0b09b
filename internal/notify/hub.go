package notify

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Level classifies a notice for the consumer's presentation layer.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is a transient, non-blocking user-visible notification. Notices
// carry degraded-path information (a failed upstream search, a failed chat
// turn); they never represent fatal state.
type Notice struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Hub collects pending notices in a bounded in-memory buffer. Push never
// blocks and never fails visibly; when the buffer is full the oldest notice
// is dropped. Consumers either Drain the pending set or Subscribe for
// delivery on push.
type Hub struct {
	mu       sync.Mutex
	pending  []Notice
	maxSize  int
	logger   *logrus.Logger
	handlers []func(Notice)
}

// NewHub creates a hub retaining at most maxSize pending notices.
func NewHub(maxSize int, logger *logrus.Logger) *Hub {
	if maxSize <= 0 {
		maxSize = 32
	}
	return &Hub{
		maxSize: maxSize,
		logger:  logger,
	}
}

// Push records a notice and hands it to all subscribers.
func (h *Hub) Push(level Level, message string) {
	notice := Notice{Level: level, Message: message, At: time.Now()}

	h.mu.Lock()
	if len(h.pending) >= h.maxSize {
		h.pending = h.pending[1:]
	}
	h.pending = append(h.pending, notice)
	handlers := h.handlers
	h.mu.Unlock()

	h.logger.WithFields(logrus.Fields{
		"level":  level,
		"notice": message,
	}).Debug("Pushed notice")

	for _, handler := range handlers {
		handler(notice)
	}
}

// Subscribe adds a handler invoked for every subsequent notice.
func (h *Hub) Subscribe(handler func(Notice)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers = append(h.handlers, handler)
}

// Drain returns all pending notices and clears the buffer.
func (h *Hub) Drain() []Notice {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := h.pending
	h.pending = nil
	return out
}

// Len returns the number of pending notices.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pending)
}
