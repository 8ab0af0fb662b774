package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
	apperrors "github.com/humanlystaffing/jobboard-api/internal/errors"
)

// stubAggregator is a test double for the aggregation layer.
type stubAggregator struct {
	listings    []model.JobListing
	fromCache   bool
	err         error
	refreshed   int
	invalidated int
}

func (s *stubAggregator) MergedListings(context.Context) ([]model.JobListing, bool, error) {
	return s.listings, s.fromCache, s.err
}

func (s *stubAggregator) Refresh(context.Context) ([]model.JobListing, error) {
	s.refreshed++
	return s.listings, s.err
}

func (s *stubAggregator) Invalidate(context.Context) error {
	s.invalidated++
	return s.err
}

func listingFixture(id string, opts ...func(*model.JobListing)) model.JobListing {
	l := model.JobListing{
		ID:           id,
		Source:       model.SourceInternal,
		Title:        "Data Analyst",
		Company:      "Humanly Staffing",
		Location:     "Seattle, WA",
		LocationType: model.LocationOnsite,
		Type:         model.TypeFullTime,
		Industry:     "Technology",
		Description:  "Analyze hiring funnel data.",
		PostedAt:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

func newListingService(t *testing.T, agg *stubAggregator) *ListingService {
	t.Helper()
	svc, err := NewListingService(ListingServiceOptions{Aggregator: agg})
	require.NoError(t, err)
	return svc
}

func TestSearchAllJobs_QueryMatchesAcrossSources(t *testing.T) {
	t.Parallel()

	// Same title from two sources with distinct IDs must both survive.
	agg := &stubAggregator{
		fromCache: true,
		listings: []model.JobListing{
			listingFixture("internal_1", func(l *model.JobListing) {
				l.Title = "Senior Software Engineer"
			}),
			listingFixture("adzuna_77", func(l *model.JobListing) {
				l.Source = model.SourceAdzuna
				l.Title = "Senior Software Engineer"
			}),
			listingFixture("internal_2", func(l *model.JobListing) {
				l.Title = "Staff Accountant"
				l.Industry = "Finance"
			}),
		},
	}
	svc := newListingService(t, agg)

	res, err := svc.SearchAllJobs(context.Background(), SearchParams{
		Filters: model.SearchFilters{Query: "Senior"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Len(t, res.Jobs, 2)
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, "cache", res.Source)
}

func TestSearchAllJobs_NoMatchesYieldsZeroPages(t *testing.T) {
	t.Parallel()

	agg := &stubAggregator{
		listings: []model.JobListing{
			listingFixture("internal_1", func(l *model.JobListing) {
				l.Title = "Senior Software Engineer"
			}),
			listingFixture("adzuna_77", func(l *model.JobListing) {
				l.Source = model.SourceAdzuna
				l.Title = "Senior Software Engineer"
			}),
		},
	}
	svc := newListingService(t, agg)

	// Both are Technology but neither is remote.
	res, err := svc.SearchAllJobs(context.Background(), SearchParams{
		Filters: model.SearchFilters{Industry: "Technology", Remote: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.Empty(t, res.Jobs)
	assert.Equal(t, 0, res.TotalPages)
	assert.False(t, res.HasMore())
}

func TestSearchAllJobs_PaginationReassemblesFilteredSet(t *testing.T) {
	t.Parallel()

	var listings []model.JobListing
	for i := 0; i < 7; i++ {
		listings = append(listings, listingFixture(fmt.Sprintf("internal_%d", i)))
	}
	svc := newListingService(t, &stubAggregator{listings: listings})

	var seen []string
	limit := 3
	page := 1
	for {
		res, err := svc.SearchAllJobs(context.Background(), SearchParams{
			Page: model.SearchPage{Page: page, Limit: limit},
		})
		require.NoError(t, err)
		assert.Equal(t, 7, res.Total)
		assert.Equal(t, 3, res.TotalPages)
		for _, j := range res.Jobs {
			seen = append(seen, j.ID)
		}
		if !res.HasMore() {
			break
		}
		page++
	}

	require.Len(t, seen, 7)
	unique := make(map[string]struct{}, len(seen))
	for _, id := range seen {
		unique[id] = struct{}{}
	}
	assert.Len(t, unique, 7)
}

func TestSearchAllJobs_PageBeyondEndIsEmpty(t *testing.T) {
	t.Parallel()

	svc := newListingService(t, &stubAggregator{
		listings: []model.JobListing{listingFixture("internal_1")},
	})

	res, err := svc.SearchAllJobs(context.Background(), SearchParams{
		Page: model.SearchPage{Page: 5, Limit: 10},
	})
	require.NoError(t, err)
	assert.Empty(t, res.Jobs)
	assert.Equal(t, 1, res.Total)
}

func TestSearchAllJobs_RefreshBypassesCache(t *testing.T) {
	t.Parallel()

	agg := &stubAggregator{fromCache: true, listings: []model.JobListing{listingFixture("internal_1")}}
	svc := newListingService(t, agg)

	res, err := svc.SearchAllJobs(context.Background(), SearchParams{Refresh: true})
	require.NoError(t, err)
	assert.Equal(t, 1, agg.refreshed)
	assert.Equal(t, "live", res.Source)
}

func TestSearchAllJobs_AggregatorError(t *testing.T) {
	t.Parallel()

	svc := newListingService(t, &stubAggregator{err: errors.New("boom")})

	_, err := svc.SearchAllJobs(context.Background(), SearchParams{})
	assert.Error(t, err)
}

func TestGetFeaturedJobs_NewestFirstTruncated(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	var listings []model.JobListing
	for i := 0; i < 5; i++ {
		i := i
		listings = append(listings, listingFixture(fmt.Sprintf("internal_f%d", i), func(l *model.JobListing) {
			l.Featured = true
			l.PostedAt = base.Add(time.Duration(i) * time.Hour)
		}))
	}
	for i := 0; i < 10; i++ {
		listings = append(listings, listingFixture(fmt.Sprintf("internal_n%d", i)))
	}
	svc := newListingService(t, &stubAggregator{listings: listings})

	featured, err := svc.GetFeaturedJobs(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, featured, 3)
	for i, l := range featured {
		assert.True(t, l.Featured)
		if i > 0 {
			assert.False(t, featured[i-1].PostedAt.Before(l.PostedAt))
		}
	}
	assert.Equal(t, "internal_f4", featured[0].ID)
}

func TestGetFeaturedJobs_DefaultLimit(t *testing.T) {
	t.Parallel()

	var listings []model.JobListing
	for i := 0; i < 10; i++ {
		listings = append(listings, listingFixture(fmt.Sprintf("internal_%d", i), func(l *model.JobListing) {
			l.Featured = true
		}))
	}
	svc := newListingService(t, &stubAggregator{listings: listings})

	featured, err := svc.GetFeaturedJobs(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, featured, DefaultFeaturedLimit)
}

func TestGetJobStats_CountsByDimension(t *testing.T) {
	t.Parallel()

	svc := newListingService(t, &stubAggregator{
		listings: []model.JobListing{
			listingFixture("internal_1"),
			listingFixture("internal_2", func(l *model.JobListing) {
				l.Industry = "Healthcare"
				l.Type = model.TypePartTime
			}),
			listingFixture("remotive_3", func(l *model.JobListing) {
				l.Source = model.SourceRemotive
			}),
		},
	})

	stats, err := svc.GetJobStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalJobs)
	assert.Equal(t, 2, stats.ByIndustry["Technology"])
	assert.Equal(t, 1, stats.ByIndustry["Healthcare"])
	assert.Equal(t, 2, stats.ByType[string(model.TypeFullTime)])
	assert.Equal(t, 2, stats.BySource[string(model.SourceInternal)])
	assert.Equal(t, 1, stats.BySource[string(model.SourceRemotive)])
}

func TestClearJobCache_DelegatesToAggregator(t *testing.T) {
	t.Parallel()

	agg := &stubAggregator{}
	svc := newListingService(t, agg)

	require.NoError(t, svc.ClearJobCache(context.Background()))
	assert.Equal(t, 1, agg.invalidated)
}

func TestGetJobByID_FindsAcrossSources(t *testing.T) {
	t.Parallel()

	svc := newListingService(t, &stubAggregator{
		listings: []model.JobListing{
			listingFixture("internal_1"),
			listingFixture("adzuna_77", func(l *model.JobListing) {
				l.Source = model.SourceAdzuna
				l.Title = "Platform Engineer"
			}),
		},
	})

	got, err := svc.GetJobByID(context.Background(), "adzuna_77")
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineer", got.Title)

	_, err = svc.GetJobByID(context.Background(), "usajobs_404")
	assert.True(t, apperrors.IsNotFound(err))
}
