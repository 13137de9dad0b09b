package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ClosetCoderSad/VisionScout/internal/browse"
	"github.com/ClosetCoderSad/VisionScout/internal/chat"
	"github.com/ClosetCoderSad/VisionScout/internal/models"
	"github.com/ClosetCoderSad/VisionScout/internal/notify"
)

type Handler struct {
	session    *browse.Session
	transcript *chat.Transcript
	notices    *notify.Hub
	logger     *logrus.Logger
}

type SearchRequest struct {
	Query string `json:"query"`
}

type KindRequest struct {
	Kind models.Kind `json:"kind" binding:"required"`
}

type PageRequest struct {
	Page int `json:"page" binding:"required"`
}

type ChatRequest struct {
	Query string `json:"query" binding:"required"`
}

func NewHandler(session *browse.Session, transcript *chat.Transcript, notices *notify.Hub, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		session:    session,
		transcript: transcript,
		notices:    notices,
		logger:     logger,
	}
}

// GetListings returns the current paginated browse view.
func (h *Handler) GetListings(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.View())
}

// GetListing opens the detail view for one listing.
func (h *Handler) GetListing(c *gin.Context) {
	id := c.Param("id")
	detail, ok := h.session.OpenDetail(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// CloseListing hides the detail view.
func (h *Handler) CloseListing(c *gin.Context) {
	h.session.CloseDetail()
	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}

// FinishCloseListing clears the selection once the close transition is done.
func (h *Handler) FinishCloseListing(c *gin.Context) {
	h.session.FinishCloseDetail()
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// UpdatePropertyFilters replaces the property filter state and schedules a
// debounced re-fetch.
func (h *Handler) UpdatePropertyFilters(c *gin.Context) {
	var filters models.PropertyFilters
	if err := c.ShouldBindJSON(&filters); err != nil {
		h.logger.WithError(err).Error("Failed to parse property filters")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property filters"})
		return
	}

	h.session.UpdatePropertyFilters(filters)
	c.JSON(http.StatusOK, h.session.View())
}

// UpdateVehicleFilters replaces the vehicle filter state and schedules a
// debounced re-fetch.
func (h *Handler) UpdateVehicleFilters(c *gin.Context) {
	var filters models.VehicleFilters
	if err := c.ShouldBindJSON(&filters); err != nil {
		h.logger.WithError(err).Error("Failed to parse vehicle filters")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle filters"})
		return
	}

	h.session.UpdateVehicleFilters(filters)
	c.JSON(http.StatusOK, h.session.View())
}

// SetSearch updates the free-text query.
func (h *Handler) SetSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse search request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search request"})
		return
	}

	h.session.SetQuery(req.Query)
	c.JSON(http.StatusOK, h.session.View())
}

// SetKind switches between the property and vehicle views.
func (h *Handler) SetKind(c *gin.Context) {
	var req KindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse kind request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid kind request"})
		return
	}

	if err := h.session.SetKind(req.Kind); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.session.View())
}

// SetPage navigates to the requested page; out-of-range pages leave the view
// unchanged.
func (h *Handler) SetPage(c *gin.Context) {
	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse page request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page request"})
		return
	}

	h.session.SetPage(req.Page)
	c.JSON(http.StatusOK, h.session.View())
}

// Chat runs one chat turn against the assistant backend.
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse chat request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'query' field"})
		return
	}

	assistant, ok := h.transcript.Send(c.Request.Context(), req.Query)
	if !ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": "The assistant is unavailable right now"})
		return
	}

	c.JSON(http.StatusOK, assistant)
}

// GetChatMessages returns the full transcript.
func (h *Handler) GetChatMessages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"messages": h.transcript.Messages(),
		"sending":  h.transcript.Sending(),
	})
}

// GetNotices drains and returns pending transient notices.
func (h *Handler) GetNotices(c *gin.Context) {
	notices := h.notices.Drain()
	if notices == nil {
		notices = []notify.Notice{}
	}
	c.JSON(http.StatusOK, gin.H{"notices": notices})
}

// Health is a liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
