// Package sheets reads a Google Sheets tab as raw rows of string cells.
// The first returned row is the tab header; callers are expected to skip it.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"example.com/festivals-morocco/services/events/config"
)

// Client fetches tab contents from a single spreadsheet.
type Client struct {
	httpClient *http.Client
	cfg        config.SheetsConfig
}

// NewClient creates a sheets client for the configured spreadsheet.
func NewClient(cfg config.SheetsConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
	}
}

// FetchRows returns every row of the named tab as string cells. With an API
// key configured it uses the official values endpoint; without one it falls
// back to the public gviz JSON export.
func (c *Client) FetchRows(ctx context.Context, tab string) ([][]string, error) {
	var endpoint string
	if c.cfg.APIKey != "" {
		endpoint = fmt.Sprintf(
			"https://sheets.googleapis.com/v4/spreadsheets/%s/values/%s?key=%s",
			c.cfg.SheetID, url.PathEscape(tab), url.QueryEscape(c.cfg.APIKey),
		)
	} else {
		endpoint = fmt.Sprintf(
			"https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:json&sheet=%s",
			c.cfg.SheetID, url.QueryEscape(tab),
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build sheet request")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch sheet tab %q", tab)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("sheet tab %q returned status %d", tab, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read sheet response")
	}

	var rows [][]string
	if c.cfg.APIKey != "" {
		rows, err = parseValuesPayload(body)
	} else {
		rows, err = parseGvizPayload(body)
	}
	if err != nil {
		return nil, err
	}

	log.Debug().Str("tab", tab).Int("rows", len(rows)).Msg("Fetched sheet rows")
	return rows, nil
}

// parseValuesPayload decodes the values API response shape.
func parseValuesPayload(body []byte) ([][]string, error) {
	var payload struct {
		Values [][]string `json:"values"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode values payload")
	}
	if payload.Values == nil {
		return [][]string{}, nil
	}
	return payload.Values, nil
}

// parseGvizPayload strips the JS wrapper gviz responses are wrapped in
// ("google.visualization.Query.setResponse({...});") and stringifies every
// cell. Missing cells read as empty strings.
func parseGvizPayload(body []byte) ([][]string, error) {
	text := string(body)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return nil, errors.New("gviz response has no JSON object")
	}

	var payload struct {
		Table struct {
			Rows []struct {
				C []*struct {
					V interface{} `json:"v"`
				} `json:"c"`
			} `json:"rows"`
		} `json:"table"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode gviz payload")
	}

	rows := make([][]string, 0, len(payload.Table.Rows))
	for _, row := range payload.Table.Rows {
		cells := make([]string, 0, len(row.C))
		for _, cell := range row.C {
			if cell == nil {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, stringifyCell(cell.V))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// stringifyCell renders a gviz cell value the way the spreadsheet displays
// it, so downstream parsing sees "10" rather than "10.000000".
func stringifyCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
