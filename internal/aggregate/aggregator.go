package aggregate

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/humanlystaffing/jobboard-api/internal/core"
	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
)

// ListingsCacheKey is the cache key for the merged listings snapshot.
// A single snapshot is kept; filtering happens downstream in the query layer.
const ListingsCacheKey = "listings:merged"

// DefaultListingTTL bounds snapshot staleness for callers that never
// explicitly invalidate.
const DefaultListingTTL = 15 * time.Minute

// DefaultFetchTimeout caps how long one provider may stall an aggregation pass.
const DefaultFetchTimeout = 10 * time.Second

// snapshot is the serialized form of one completed aggregation pass.
type snapshot struct {
	FetchedAt time.Time          `json:"fetched_at"`
	Listings  []model.JobListing `json:"listings"`
}

// Aggregator owns the merged-listings cache entry lifecycle. A miss fans out
// to every registered connector concurrently, normalizes and deduplicates the
// results, and stores the merged set until the TTL expires or a writer
// invalidates it. Concurrent misses share one refresh via singleflight.
type Aggregator struct {
	connectors   []Connector
	normalizer   *Normalizer
	cache        core.CacheRepository
	logger       *slog.Logger
	ttl          time.Duration
	fetchTimeout time.Duration
	group        singleflight.Group
}

// AggregatorOptions bundles dependencies for NewAggregator.
type AggregatorOptions struct {
	// Connectors in dedup-priority order: platform-internal sources first,
	// then external providers in a fixed declared order.
	Connectors   []Connector
	Normalizer   *Normalizer
	Cache        core.CacheRepository
	Logger       *slog.Logger
	TTL          time.Duration // defaults to DefaultListingTTL
	FetchTimeout time.Duration // defaults to DefaultFetchTimeout
}

// NewAggregator creates an Aggregator.
func NewAggregator(opts AggregatorOptions) *Aggregator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	normalizer := opts.Normalizer
	if normalizer == nil {
		normalizer = NewNormalizer(NormalizerOptions{Logger: logger})
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultListingTTL
	}
	fetchTimeout := opts.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = DefaultFetchTimeout
	}
	return &Aggregator{
		connectors:   opts.Connectors,
		normalizer:   normalizer,
		cache:        opts.Cache,
		logger:       logger,
		ttl:          ttl,
		fetchTimeout: fetchTimeout,
	}
}

// MergedListings returns the current merged listing set. The second return
// value reports whether the set came from the cache (true) or a fresh
// aggregation pass (false). A miss with every provider failing still returns
// an empty list rather than an error; "no jobs" is a valid state.
func (a *Aggregator) MergedListings(ctx context.Context) ([]model.JobListing, bool, error) {
	if cached, ok := a.cachedSnapshot(ctx); ok {
		return cached.Listings, true, nil
	}

	listings, err := a.refreshShared(ctx)
	if err != nil {
		return nil, false, err
	}
	return listings, false, nil
}

// Refresh forces a full aggregation pass regardless of cache state and
// replaces the stored snapshot.
func (a *Aggregator) Refresh(ctx context.Context) ([]model.JobListing, error) {
	return a.refreshShared(ctx)
}

// Invalidate discards the current snapshot unconditionally. The next
// MergedListings call is guaranteed to fan out. Writers that mutate the
// internal job source must call this so readers never observe stale
// post-mutation data beyond one request.
func (a *Aggregator) Invalidate(ctx context.Context) error {
	_, err := a.cache.Delete(ctx, ListingsCacheKey)
	if err != nil {
		return err
	}
	a.logger.InfoContext(ctx, "listings cache invalidated")
	return nil
}

// cachedSnapshot loads and decodes the stored snapshot. Cache trouble is
// logged and treated as a miss so one bad Redis round-trip cannot take
// listings offline.
func (a *Aggregator) cachedSnapshot(ctx context.Context) (*snapshot, bool) {
	data, err := a.cache.Get(ctx, ListingsCacheKey)
	if err != nil {
		a.logger.WarnContext(ctx, "listings cache read failed", "error", err)
		return nil, false
	}
	if len(data) == 0 {
		return nil, false
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		a.logger.WarnContext(ctx, "listings cache entry corrupt, discarding", "error", err)
		_, _ = a.cache.Delete(ctx, ListingsCacheKey)
		return nil, false
	}
	return &snap, true
}

// refreshShared collapses concurrent refreshes into a single aggregation pass.
func (a *Aggregator) refreshShared(ctx context.Context) ([]model.JobListing, error) {
	v, err, _ := a.group.Do(ListingsCacheKey, func() (any, error) {
		return a.runPass(ctx)
	})
	if err != nil {
		return nil, err
	}
	listings, _ := v.([]model.JobListing)
	return listings, nil
}

// runPass executes one full fan-out/merge/store cycle.
func (a *Aggregator) runPass(ctx context.Context) ([]model.JobListing, error) {
	start := time.Now()
	outcomes := a.fanOut(ctx)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	merged := a.merge(outcomes)

	failed := 0
	for _, o := range outcomes {
		if o.Failed() {
			failed++
		}
	}
	a.logger.InfoContext(ctx, "aggregation pass complete",
		"listings", len(merged),
		"connectors", len(a.connectors),
		"failed", failed,
		"elapsed", time.Since(start))

	a.store(ctx, merged)
	return merged, nil
}

// fanOut queries every connector concurrently with a per-connector timeout.
// A failed or timed-out connector contributes an empty result; the pass never
// aborts because one provider is down.
func (a *Aggregator) fanOut(ctx context.Context) []FetchOutcome {
	outcomes := make([]FetchOutcome, len(a.connectors))

	g, gctx := errgroup.WithContext(ctx)
	for i, conn := range a.connectors {
		g.Go(func() error {
			outcomes[i] = a.fetchOne(gctx, conn)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures live in outcomes

	return outcomes
}

// fetchOne runs a single connector fetch with its own timeout and normalizes
// the result.
func (a *Aggregator) fetchOne(ctx context.Context, conn Connector) FetchOutcome {
	fctx, cancel := context.WithTimeout(ctx, a.fetchTimeout)
	defer cancel()

	start := time.Now()
	raw, err := conn.Fetch(fctx)
	elapsed := time.Since(start)

	if err != nil {
		a.logger.WarnContext(ctx, "provider fetch failed",
			"connector", conn.Name(), "source", string(conn.Source()),
			"elapsed", elapsed, "error", err)
		return FetchOutcome{Source: conn.Source(), Err: err, Elapsed: elapsed}
	}

	listings := a.normalizer.Normalize(conn.Source(), raw)
	a.logger.DebugContext(ctx, "provider fetch complete",
		"connector", conn.Name(), "listings", len(listings), "elapsed", elapsed)
	return FetchOutcome{Source: conn.Source(), Listings: listings, Elapsed: elapsed}
}

// merge concatenates outcomes in connector registration order and
// deduplicates by listing ID, first occurrence wins. Registration order puts
// internal sources first, so an ID collision always resolves to the internal
// record.
func (a *Aggregator) merge(outcomes []FetchOutcome) []model.JobListing {
	total := 0
	for _, o := range outcomes {
		total += len(o.Listings)
	}

	merged := make([]model.JobListing, 0, total)
	seen := make(map[string]struct{}, total)
	for _, o := range outcomes {
		for _, l := range o.Listings {
			if _, dup := seen[l.ID]; dup {
				continue
			}
			seen[l.ID] = struct{}{}
			merged = append(merged, l)
		}
	}
	return merged
}

// store persists the snapshot. Write failures are logged, not surfaced: the
// caller still gets the freshly merged listings.
func (a *Aggregator) store(ctx context.Context, listings []model.JobListing) {
	snap := snapshot{FetchedAt: time.Now().UTC(), Listings: listings}
	data, err := json.Marshal(snap)
	if err != nil {
		a.logger.ErrorContext(ctx, "listings snapshot marshal failed", "error", err)
		return
	}
	if err := a.cache.Set(ctx, ListingsCacheKey, data, a.ttl); err != nil {
		a.logger.WarnContext(ctx, "listings cache write failed", "error", err)
	}
}
