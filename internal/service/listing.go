package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
	apperrors "github.com/humanlystaffing/jobboard-api/internal/errors"
)

const (
	// DefaultSearchLimit is the page size when the caller does not specify one.
	DefaultSearchLimit = 20
	// MaxSearchLimit caps the page size a caller can request.
	MaxSearchLimit = 100
	// DefaultFeaturedLimit is the featured-listing count when unspecified.
	DefaultFeaturedLimit = 6
)

// listingAggregator is the minimal behavior the listing service needs from
// the aggregation layer.
type listingAggregator interface {
	// MergedListings returns the merged snapshot and whether it came from cache.
	MergedListings(ctx context.Context) ([]model.JobListing, bool, error)
	// Refresh forces a fan-out pass and returns the fresh merged set.
	Refresh(ctx context.Context) ([]model.JobListing, error)
	// Invalidate drops the cached snapshot.
	Invalidate(ctx context.Context) error
}

// ListingServiceOptions groups dependencies for ListingService.
type ListingServiceOptions struct {
	Aggregator listingAggregator // Required: merged listing source
	Logger     *slog.Logger      // Optional: structured logger
}

// ListingService is the read-side query facade over the aggregated listing
// set. It never touches repositories directly; everything goes through the
// aggregator so public reads share one snapshot.
type ListingService struct {
	agg    listingAggregator
	logger *slog.Logger
}

// NewListingService constructs a new ListingService.
func NewListingService(opts ListingServiceOptions) (*ListingService, error) {
	if opts.Aggregator == nil {
		return nil, errors.New("Aggregator is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ListingService{
		agg:    opts.Aggregator,
		logger: logger.With("component", "listing_service"),
	}, nil
}

// MustNewListingService constructs a new ListingService and panics on error.
func MustNewListingService(opts ListingServiceOptions) *ListingService {
	svc, err := NewListingService(opts)
	if err != nil {
		panic(fmt.Sprintf("failed to create ListingService: %v", err))
	}
	return svc
}

// SearchParams bundles the inputs to SearchAllJobs.
type SearchParams struct {
	Filters model.SearchFilters
	Page    model.SearchPage
	// Refresh forces a fan-out pass before searching, bypassing the cache.
	Refresh bool
}

// SearchAllJobs filters and paginates the merged listing set. Total and
// totalPages are computed from the filtered count.
func (s *ListingService) SearchAllJobs(ctx context.Context, params SearchParams) (*model.SearchResult, error) {
	listings, fromCache, err := s.fetch(ctx, params.Refresh)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.JobListing, 0, len(listings))
	for _, l := range listings {
		if params.Filters.Matches(l) {
			filtered = append(filtered, l)
		}
	}

	page := params.Page.Normalize(DefaultSearchLimit, MaxSearchLimit)
	total := len(filtered)
	totalPages := (total + page.Limit - 1) / page.Limit

	start := (page.Page - 1) * page.Limit
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}

	s.logger.InfoContext(ctx, "listing search",
		"total", total,
		"page", page.Page,
		"limit", page.Limit,
		"from_cache", fromCache,
	)

	return &model.SearchResult{
		Jobs:       filtered[start:end],
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: totalPages,
		Source:     sourceLabel(fromCache),
	}, nil
}

// GetFeaturedJobs returns up to limit featured listings, most recently
// posted first.
func (s *ListingService) GetFeaturedJobs(ctx context.Context, limit int) ([]model.JobListing, error) {
	if limit < 1 {
		limit = DefaultFeaturedLimit
	}

	listings, _, err := s.fetch(ctx, false)
	if err != nil {
		return nil, err
	}

	featured := make([]model.JobListing, 0, limit)
	for _, l := range listings {
		if l.Featured {
			featured = append(featured, l)
		}
	}

	sort.SliceStable(featured, func(i, j int) bool {
		return featured[i].PostedAt.After(featured[j].PostedAt)
	})

	if len(featured) > limit {
		featured = featured[:limit]
	}
	return featured, nil
}

// GetJobStats summarizes the merged listing set by industry, employment
// type, and source.
func (s *ListingService) GetJobStats(ctx context.Context) (*model.JobStats, error) {
	listings, _, err := s.fetch(ctx, false)
	if err != nil {
		return nil, err
	}

	stats := &model.JobStats{
		TotalJobs:  len(listings),
		ByIndustry: make(map[string]int),
		ByType:     make(map[string]int),
		BySource:   make(map[string]int),
	}
	for _, l := range listings {
		stats.ByIndustry[l.Industry]++
		stats.ByType[string(l.Type)]++
		stats.BySource[string(l.Source)]++
	}
	return stats, nil
}

// GetJobByID looks a single listing up in the merged set by its prefixed
// ID (for example "adzuna_12345"). External listings only exist in the
// aggregated snapshot, so this is the canonical lookup for them.
func (s *ListingService) GetJobByID(ctx context.Context, id string) (*model.JobListing, error) {
	listings, _, err := s.fetch(ctx, false)
	if err != nil {
		return nil, err
	}
	for i := range listings {
		if listings[i].ID == id {
			return &listings[i], nil
		}
	}
	return nil, apperrors.NotFoundf("listing %q not found", id)
}

// ClearJobCache drops the cached snapshot so the next read pays a fresh
// fan-out. Called after internal posting mutations.
func (s *ListingService) ClearJobCache(ctx context.Context) error {
	if err := s.agg.Invalidate(ctx); err != nil {
		return fmt.Errorf("invalidate listing cache: %w", err)
	}
	return nil
}

func (s *ListingService) fetch(ctx context.Context, refresh bool) ([]model.JobListing, bool, error) {
	if refresh {
		listings, err := s.agg.Refresh(ctx)
		if err != nil {
			return nil, false, fmt.Errorf("refresh listings: %w", err)
		}
		return listings, false, nil
	}

	listings, fromCache, err := s.agg.MergedListings(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("load merged listings: %w", err)
	}
	return listings, fromCache, nil
}

func sourceLabel(fromCache bool) string {
	if fromCache {
		return "cache"
	}
	return "live"
}
