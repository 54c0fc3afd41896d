package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"

	"example.com/festivals-morocco/services/events/config"
	"example.com/festivals-morocco/services/events/internal/models"
)

// snapshotKey holds the shared normalized snapshot. One key per sheet so
// multiple deployments can share a Redis instance.
func snapshotKey(sheetID string) string {
	return fmt.Sprintf("events:snapshot:%s", sheetID)
}

// RedisCache keeps a TTL-bounded copy of the normalized snapshot in Redis,
// letting fresh instances start warm instead of hitting the spreadsheet.
type RedisCache struct {
	client  *redis.Client
	enabled bool
	key     string
	ttl     time.Duration
}

// NewRedisCache creates a snapshot cache. When disabled in config the
// returned cache is a stub whose operations fail fast.
func NewRedisCache(cfg config.RedisConfig, sheetID string) (*RedisCache, error) {
	if !cfg.Enabled {
		return &RedisCache{enabled: false}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, errors.Wrap(err, "failed to connect to Redis")
	}

	return &RedisCache{
		client:  client,
		enabled: true,
		key:     snapshotKey(sheetID),
		ttl:     cfg.TTL,
	}, nil
}

// Enabled reports whether the cache is backed by a live connection.
func (c *RedisCache) Enabled() bool {
	return c.enabled
}

// GetSnapshot retrieves the shared snapshot. A missing key is an error so
// callers treat it as a plain miss.
func (c *RedisCache) GetSnapshot(ctx context.Context) ([]models.Event, error) {
	if !c.enabled {
		return nil, errors.New("cache is disabled")
	}

	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.Wrap(err, "snapshot not in cache")
		}
		return nil, errors.Wrap(err, "failed to get snapshot from Redis")
	}

	var events []models.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal cached snapshot")
	}

	return events, nil
}

// SetSnapshot stores the snapshot with the configured TTL.
func (c *RedisCache) SetSnapshot(ctx context.Context, events []models.Event) error {
	if !c.enabled {
		return errors.New("cache is disabled")
	}

	data, err := json.Marshal(events)
	if err != nil {
		return errors.Wrap(err, "failed to marshal snapshot for caching")
	}

	if err := c.client.Set(ctx, c.key, data, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to set snapshot in Redis")
	}

	return nil
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	if !c.enabled || c.client == nil {
		return nil
	}
	return c.client.Close()
}
