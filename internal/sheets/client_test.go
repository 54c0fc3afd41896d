package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/festivals-morocco/services/events/config"
)

func TestParseGvizPayload(t *testing.T) {
	body := []byte(`/*O_o*/` + "\n" +
		`google.visualization.Query.setResponse({"table":{"rows":[` +
		`{"c":[{"v":"id"},{"v":"name"},{"v":"cultural_significance"},{"v":"is_pinned"}]},` +
		`{"c":[{"v":"gnaoua-2025"},{"v":"Festival Gnaoua"},{"v":10},{"v":true}]},` +
		`{"c":[null,{"v":"Tanjazz"},{"v":6.5},null]}` +
		`]}});`)

	rows, err := parseGvizPayload(body)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"id", "name", "cultural_significance", "is_pinned"}, rows[0])
	assert.Equal(t, []string{"gnaoua-2025", "Festival Gnaoua", "10", "true"}, rows[1])
	assert.Equal(t, []string{"", "Tanjazz", "6.5", ""}, rows[2], "null cells read as empty strings")
}

func TestParseGvizPayloadRejectsNonJSON(t *testing.T) {
	_, err := parseGvizPayload([]byte("not a gviz response"))
	assert.Error(t, err)
}

func TestParseValuesPayload(t *testing.T) {
	rows, err := parseValuesPayload([]byte(`{"range":"Events!A1:S3","values":[["id","name"],["x","Oasis Festival"]]}`))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"x", "Oasis Festival"}, rows[1])

	empty, err := parseValuesPayload([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFetchRowsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(config.SheetsConfig{SheetID: "sheet", Timeout: time.Second})
	client.httpClient = srv.Client()

	// Point the request at the stub by fetching through a transport rewrite.
	client.httpClient.Transport = rewriteHost(srv)

	_, err := client.FetchRows(context.Background(), "Events")
	assert.Error(t, err)
}

// rewriteHost redirects any outbound request to the test server.
func rewriteHost(srv *httptest.Server) http.RoundTripper {
	return roundTripFunc(func(req *http.Request) (*http.Response, error) {
		req.URL.Scheme = "http"
		req.URL.Host = srv.Listener.Addr().String()
		return http.DefaultTransport.RoundTrip(req)
	})
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }
