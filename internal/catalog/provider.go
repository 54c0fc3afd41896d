package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"example.com/festivals-morocco/services/events/internal/ingest"
	"example.com/festivals-morocco/services/events/internal/metrics"
	"example.com/festivals-morocco/services/events/internal/models"
	"example.com/festivals-morocco/services/events/internal/seed"
)

// RowFetcher reads raw rows from the remote spreadsheet. Nil means the
// remote source is not configured and the embedded seed data is served.
type RowFetcher interface {
	FetchRows(ctx context.Context, tab string) ([][]string, error)
}

// SnapshotCache is an optional shared copy of the normalized snapshot
// (Redis in production) so fresh instances can skip the first upstream
// fetch. Both methods may fail without affecting correctness.
type SnapshotCache interface {
	GetSnapshot(ctx context.Context) ([]models.Event, error)
	SetSnapshot(ctx context.Context, events []models.Event) error
}

// Provider owns the snapshot lifecycle: it serves the current store while
// fresh and rebuilds it wholesale once the TTL elapses. Concurrent callers
// arriving past the TTL are coalesced into a single refresh; everyone gets
// that refresh's result.
type Provider struct {
	fetcher RowFetcher
	cache   SnapshotCache
	metrics *metrics.Metrics
	tab     string
	ttl     time.Duration

	// nowFn is swapped out in tests to control TTL expiry.
	nowFn func() time.Time

	group singleflight.Group

	mu        sync.Mutex
	store     *Store
	fetchedAt time.Time
}

// NewProvider creates a snapshot provider. fetcher and cache may be nil;
// without a fetcher the provider serves the embedded seed dataset.
func NewProvider(fetcher RowFetcher, cache SnapshotCache, m *metrics.Metrics, tab string, ttl time.Duration) *Provider {
	if m == nil {
		m = metrics.NewMetrics()
	}
	return &Provider{
		fetcher: fetcher,
		cache:   cache,
		metrics: m,
		tab:     tab,
		ttl:     ttl,
		nowFn:   time.Now,
	}
}

// Store returns the current snapshot, refreshing it first when the TTL has
// elapsed. It never returns an error to callers: a failed refresh falls
// back to the last-known-good snapshot, or to the seed data when nothing
// has ever been fetched.
func (p *Provider) Store(ctx context.Context) *Store {
	if store := p.fresh(); store != nil {
		return store
	}

	v, _, _ := p.group.Do("snapshot", func() (interface{}, error) {
		// A caller that queued behind an in-flight refresh sees its result
		// as fresh here and skips a duplicate rebuild.
		if store := p.fresh(); store != nil {
			return store, nil
		}
		return p.refresh(ctx), nil
	})
	return v.(*Store)
}

// Refresh forces a rebuild regardless of TTL. The worker uses it on its
// schedule so request traffic rarely pays for a refresh.
func (p *Provider) Refresh(ctx context.Context) *Store {
	v, _, _ := p.group.Do("snapshot", func() (interface{}, error) {
		return p.refresh(ctx), nil
	})
	return v.(*Store)
}

func (p *Provider) fresh() *Store {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.store != nil && p.nowFn().Sub(p.fetchedAt) < p.ttl {
		return p.store
	}
	return nil
}

func (p *Provider) refresh(ctx context.Context) *Store {
	start := p.nowFn()
	events := p.load(ctx)
	store := NewStore(events)

	p.mu.Lock()
	p.store = store
	// Stamped even after a failed remote fetch so a dead upstream is
	// retried once per TTL window, not once per request.
	p.fetchedAt = p.nowFn()
	p.mu.Unlock()

	p.metrics.IncrementCounter("snapshot_refresh")
	p.metrics.RecordTimer("snapshot_refresh", time.Since(start).Milliseconds())
	log.Info().Int("events", store.Len()).Msg("Snapshot refreshed")
	return store
}

// load produces the next normalized event list, in order of preference:
// remote sheet, shared cache (first load only), last-known-good snapshot,
// embedded seed data.
func (p *Provider) load(ctx context.Context) []models.Event {
	if p.fetcher == nil {
		p.metrics.IncrementCounter("snapshot_source_seed")
		return seedEvents()
	}

	events, err := p.fetchRemote(ctx)
	if err == nil {
		p.metrics.RecordSuccess("sheet_fetch")
		p.metrics.SetHealth("sheets", true)
		p.storeInCache(ctx, events)
		return events
	}

	p.metrics.RecordError("sheet_fetch")
	p.metrics.SetHealth("sheets", false)
	log.Error().Err(err).Msg("Failed to fetch events from sheet, falling back")

	p.mu.Lock()
	previous := p.store
	p.mu.Unlock()
	if previous != nil {
		p.metrics.IncrementCounter("snapshot_fallback_previous")
		return previous.Events()
	}

	if cached := p.loadFromCache(ctx); cached != nil {
		p.metrics.IncrementCounter("snapshot_fallback_cache")
		return cached
	}

	p.metrics.IncrementCounter("snapshot_fallback_seed")
	return seedEvents()
}

func (p *Provider) fetchRemote(ctx context.Context) ([]models.Event, error) {
	rows, err := p.fetcher.FetchRows(ctx, p.tab)
	if err != nil {
		return nil, errors.Wrap(err, "fetch rows")
	}
	return ingest.EventsFromRows(rows), nil
}

func (p *Provider) loadFromCache(ctx context.Context) []models.Event {
	if p.cache == nil {
		return nil
	}
	events, err := p.cache.GetSnapshot(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("No snapshot in shared cache")
		return nil
	}
	return events
}

func (p *Provider) storeInCache(ctx context.Context, events []models.Event) {
	if p.cache == nil {
		return
	}
	if err := p.cache.SetSnapshot(ctx, events); err != nil {
		log.Warn().Err(err).Msg("Failed to mirror snapshot to shared cache")
	}
}

func seedEvents() []models.Event {
	return ingest.EventsFromSeeds(seed.Events())
}
