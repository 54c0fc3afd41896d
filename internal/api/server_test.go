package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/festivals-morocco/services/events/config"
	"example.com/festivals-morocco/services/events/internal/catalog"
	"example.com/festivals-morocco/services/events/internal/metrics"
	"example.com/festivals-morocco/services/events/internal/models"
	"example.com/festivals-morocco/services/events/internal/tracing"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testServer serves the embedded seed dataset with a disabled tracer.
func testServer(t *testing.T) *Server {
	t.Helper()

	cfg := config.Config{
		Environment:   "test",
		ServerAddress: "127.0.0.1:0",
		CorsOrigins:   []string{"*"},
	}
	tracer, err := tracing.NewTracer(config.TracingConfig{})
	require.NoError(t, err)

	provider := catalog.NewProvider(nil, nil, nil, "Events", time.Minute)
	return NewServer(cfg, provider, nil, metrics.NewMetrics(), tracer)
}

func doRequest(t *testing.T, s *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

type listResponse struct {
	Data []models.Event `json:"data"`
	Meta struct {
		Total int `json:"total"`
	} `json:"meta"`
}

func TestListEventsByCity(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/events?city=essaouira")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Meta.Total)
	assert.Equal(t, "essaouira", resp.Data[0].CitySlug)
	assert.Equal(t, "gnaoua-2025", resp.Data[0].ID)
}

func TestListEventsByMonth(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/events?year=2025&month=6")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotZero(t, resp.Meta.Total)
	for _, e := range resp.Data {
		assert.True(t, strings.HasPrefix(e.StartDate, "2025-06"), e.ID)
	}
}

func TestListEventsSortedPinnedFirst(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/events")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data)

	seenUnpinned := false
	for i, e := range resp.Data {
		if !e.IsPinned {
			seenUnpinned = true
			continue
		}
		assert.False(t, seenUnpinned, "pinned event after an unpinned one at index %d", i)
	}
}

func TestUpcomingFlagTokens(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/events")
	require.Equal(t, http.StatusOK, rec.Code)
	var all listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))

	// "yes" is a sheet-cell truthy token, not a wire one; it must not
	// enable the filter.
	rec = doRequest(t, s, http.MethodGet, "/api/v1/events?upcoming=yes")
	require.Equal(t, http.StatusOK, rec.Code)
	var loose listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loose))
	assert.Equal(t, all.Meta.Total, loose.Meta.Total)

	today := time.Now().UTC().Format("2006-01-02")
	for _, token := range []string{"true", "1"} {
		rec = doRequest(t, s, http.MethodGet, "/api/v1/events?upcoming="+token)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp listResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		for _, e := range resp.Data {
			assert.GreaterOrEqual(t, e.StartDate, today)
			assert.Contains(t, []models.Status{models.StatusAnnounced, models.StatusConfirmed}, e.Status)
		}
	}
}

func TestGetEventBySlug(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/events?slug=festival-gnaoua-et-musiques-du-monde")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.Event `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "gnaoua-2025", resp.Data.ID)
}

func TestGetEventBySlugNotFound(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/events?slug=no-such-event")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Event not found"}`, rec.Body.String())
}

func TestNonGetRejected(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/events")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
}

func TestEdgeHeaders(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/events")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "s-maxage=300, stale-while-revalidate", rec.Header().Get("Cache-Control"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestListCities(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/cities")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []models.CityCount `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data)
	assert.Equal(t, len(resp.Data), resp.Meta.Total)

	for i := 1; i < len(resp.Data); i++ {
		assert.GreaterOrEqual(t, resp.Data[i-1].Count, resp.Data[i].Count)
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status bool `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
}

func TestMetricsEndpoint(t *testing.T) {
	s := testServer(t)

	// Generate one request worth of counters first.
	doRequest(t, s, http.MethodGet, "/api/v1/events")

	rec := doRequest(t, s, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp, "counters")
	assert.Contains(t, resp, "uptime_seconds")
}
