package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"example.com/festivals-morocco/services/events/internal/search"
	"example.com/festivals-morocco/services/events/internal/tracing"
)

// SearchHandler exposes full-text search over the indexed event documents.
// Only registered when Elasticsearch is enabled.
type SearchHandler struct {
	elastic *search.ElasticClient
	tracer  tracing.Tracer
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(elastic *search.ElasticClient, tracer tracing.Tracer) *SearchHandler {
	return &SearchHandler{
		elastic: elastic,
		tracer:  tracer,
	}
}

// HandleSearchEvents answers GET /api/v1/search?q=.
func (h *SearchHandler) HandleSearchEvents(c *gin.Context) {
	txn := h.tracer.StartTransaction("api-search-events")
	defer h.tracer.EndTransaction(txn)

	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query parameter q"})
		return
	}
	h.tracer.AddAttribute(txn, "query", q)

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  q,
				"fields": []string{"name^3", "artists^2", "genres", "city", "description"},
			},
		},
	}

	docs, err := h.elastic.SearchEvents(c.Request.Context(), query)
	if err != nil {
		log.Error().Err(err).Msg("Event search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search events"})
		h.tracer.RecordError(txn, err)
		return
	}
	if docs == nil {
		docs = []map[string]interface{}{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data": docs,
		"meta": gin.H{"total": len(docs)},
	})
}

// RegisterRoutes registers the handler's routes.
func (h *SearchHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/search", h.HandleSearchEvents)
}
