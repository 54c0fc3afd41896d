package search

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esapi"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"example.com/festivals-morocco/services/events/config"
	"example.com/festivals-morocco/services/events/internal/models"
)

// ElasticClient indexes normalized events so they are searchable by name,
// artist or description. Indexing happens on snapshot refresh; the documents
// are replaced wholesale just like the in-memory store.
type ElasticClient struct {
	client *elasticsearch.Client
	config config.ElasticConfig
}

// NewElasticClient creates a new Elasticsearch client.
func NewElasticClient(cfg config.ElasticConfig) (*ElasticClient, error) {
	esConfig := elasticsearch.Config{
		Addresses: []string{cfg.URL},
		Username:  cfg.Username,
		Password:  cfg.Password,
	}

	client, err := elasticsearch.NewClient(esConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Elasticsearch client")
	}

	return &ElasticClient{
		client: client,
		config: cfg,
	}, nil
}

// IndexEvents writes every event of a snapshot into the events index,
// keyed by event id so refreshes overwrite rather than accumulate.
func (c *ElasticClient) IndexEvents(ctx context.Context, events []models.Event) error {
	indexName := config.FormatIndex(c.config, c.config.Index)

	for _, event := range events {
		doc, err := json.Marshal(event)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal event %s", event.ID)
		}

		req := esapi.IndexRequest{
			Index:      indexName,
			DocumentID: event.ID,
			Body:       bytes.NewReader(doc),
		}

		res, err := req.Do(ctx, c.client)
		if err != nil {
			return errors.Wrapf(err, "failed to index event %s", event.ID)
		}
		res.Body.Close()

		if res.IsError() {
			return errors.Errorf("Elasticsearch index error for event %s: %s", event.ID, res.Status())
		}
	}

	log.Info().Int("events", len(events)).Str("index", indexName).Msg("Events indexed")
	return nil
}

// SearchEvents runs a raw query against the events index and returns the
// matching documents.
func (c *ElasticClient) SearchEvents(ctx context.Context, query map[string]interface{}) ([]map[string]interface{}, error) {
	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal search query")
	}

	indexName := config.FormatIndex(c.config, c.config.Index)
	req := esapi.SearchRequest{
		Index: []string{indexName},
		Body:  bytes.NewReader(queryJSON),
	}

	res, err := req.Do(ctx, c.client)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute Elasticsearch search request")
	}
	defer res.Body.Close()

	if res.IsError() {
		var e map[string]interface{}
		if err := json.NewDecoder(res.Body).Decode(&e); err != nil {
			return nil, errors.Wrap(err, "failed to parse Elasticsearch error response")
		}
		return nil, errors.Errorf("Elasticsearch search error: %v", e)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "failed to parse Elasticsearch search response")
	}

	hits, ok := result["hits"].(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected search result format")
	}
	hitsArray, ok := hits["hits"].([]interface{})
	if !ok {
		return nil, errors.New("unexpected hits format")
	}

	var docs []map[string]interface{}
	for _, hit := range hitsArray {
		hitMap, ok := hit.(map[string]interface{})
		if !ok {
			continue
		}
		if source, ok := hitMap["_source"].(map[string]interface{}); ok {
			docs = append(docs, source)
		}
	}

	return docs, nil
}
