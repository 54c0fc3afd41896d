package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"example.com/festivals-morocco/services/events/internal/catalog"
	"example.com/festivals-morocco/services/events/internal/metrics"
	"example.com/festivals-morocco/services/events/internal/tracing"
)

// EventsHandler serves the event catalog endpoints.
type EventsHandler struct {
	provider *catalog.Provider
	metrics  *metrics.Metrics
	tracer   tracing.Tracer
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(provider *catalog.Provider, m *metrics.Metrics, tracer tracing.Tracer) *EventsHandler {
	return &EventsHandler{
		provider: provider,
		metrics:  m,
		tracer:   tracer,
	}
}

// HandleListEvents answers GET /api/v1/events. A slug parameter short-circuits
// to a single-event lookup; otherwise the remaining parameters are combined
// as one filter set.
func (h *EventsHandler) HandleListEvents(c *gin.Context) {
	txn := h.tracer.StartTransaction("api-list-events")
	defer h.tracer.EndTransaction(txn)

	h.metrics.IncrementCounter("api_events_requests")

	store := h.provider.Store(c.Request.Context())
	if store == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	if slug := c.Query("slug"); slug != "" {
		h.tracer.AddAttribute(txn, "slug", slug)
		event, ok := store.BySlugOrID(slug)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": event})
		return
	}

	criteria := catalog.Criteria{
		City:     c.Query("city"),
		Genre:    c.Query("genre"),
		Year:     intQuery(c, "year"),
		Month:    intQuery(c, "month"),
		Status:   c.Query("status"),
		Type:     c.Query("type"),
		Upcoming: upcomingQuery(c.Query("upcoming")),
	}

	span := h.tracer.StartSpan("catalog-query", txn)
	events := store.Query(criteria)
	span.End()

	c.JSON(http.StatusOK, gin.H{
		"data": events,
		"meta": gin.H{"total": len(events)},
	})
}

// HandleListCities answers GET /api/v1/cities.
func (h *EventsHandler) HandleListCities(c *gin.Context) {
	txn := h.tracer.StartTransaction("api-list-cities")
	defer h.tracer.EndTransaction(txn)

	cities := h.provider.Store(c.Request.Context()).DistinctCities()
	c.JSON(http.StatusOK, gin.H{
		"data": cities,
		"meta": gin.H{"total": len(cities)},
	})
}

// HandleListGenres answers GET /api/v1/genres.
func (h *EventsHandler) HandleListGenres(c *gin.Context) {
	txn := h.tracer.StartTransaction("api-list-genres")
	defer h.tracer.EndTransaction(txn)

	genres := h.provider.Store(c.Request.Context()).DistinctGenres()
	c.JSON(http.StatusOK, gin.H{
		"data": genres,
		"meta": gin.H{"total": len(genres)},
	})
}

// HandleListRegions answers GET /api/v1/regions.
func (h *EventsHandler) HandleListRegions(c *gin.Context) {
	txn := h.tracer.StartTransaction("api-list-regions")
	defer h.tracer.EndTransaction(txn)

	regions := h.provider.Store(c.Request.Context()).DistinctRegions()
	c.JSON(http.StatusOK, gin.H{
		"data": regions,
		"meta": gin.H{"total": len(regions)},
	})
}

// RegisterRoutes registers the handler's routes.
func (h *EventsHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/events", h.HandleListEvents)
	router.GET("/cities", h.HandleListCities)
	router.GET("/genres", h.HandleListGenres)
	router.GET("/regions", h.HandleListRegions)
}

// upcomingQuery enables the upcoming filter only for the wire tokens the
// endpoint accepts. The sheet-cell truthy set ("yes" etc.) does not apply
// to query parameters.
func upcomingQuery(raw string) bool {
	return raw == "true" || raw == "1"
}

// intQuery parses an integer query parameter, treating absent or malformed
// values as "not filtered".
func intQuery(c *gin.Context, name string) int {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
