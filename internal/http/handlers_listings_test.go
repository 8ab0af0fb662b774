package httpx

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/humanlystaffing/jobboard-api/internal/domain/auth"
	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
)

func listingFixture(id string, opts ...func(*model.JobListing)) model.JobListing {
	l := model.JobListing{
		ID:       id,
		Source:   model.SourceInternal,
		Title:    "Data Analyst",
		Company:  "Humanly Staffing",
		Location: "Seattle, WA",
		Type:     model.TypeFullTime,
		Industry: "Technology",
		PostedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

func newListingRouter(t *testing.T, agg *stubAggregator, auth AuthFlowService) http.Handler {
	t.Helper()
	return NewRouter(RouterServices{
		Listings: newTestListingService(t, agg),
		Auth:     auth,
		Logger:   quietLogger(),
	})
}

func TestSearch_ReturnsPaginationEnvelope(t *testing.T) {
	t.Parallel()

	listings := make([]model.JobListing, 0, 7)
	for i := range 7 {
		listings = append(listings, listingFixture(fmt.Sprintf("internal_%d", i)))
	}
	router := newListingRouter(t, &stubAggregator{listings: listings, fromCache: true}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs?limit=3&page=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "cache", body["source"])
	assert.Len(t, body["jobs"], 3)

	pagination, ok := body["pagination"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 7, pagination["total"])
	assert.EqualValues(t, 3, pagination["limit"])
	assert.EqualValues(t, 2, pagination["page"])
	assert.EqualValues(t, 3, pagination["totalPages"])
	assert.Equal(t, true, pagination["hasMore"])
}

func TestSearch_FiltersFromQueryParams(t *testing.T) {
	t.Parallel()

	router := newListingRouter(t, &stubAggregator{listings: []model.JobListing{
		listingFixture("internal_1", func(l *model.JobListing) { l.Title = "Senior Go Engineer" }),
		listingFixture("adzuna_2", func(l *model.JobListing) {
			l.Source = model.SourceAdzuna
			l.Title = "Office Manager"
		}),
	}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs?query=engineer", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["jobs"], 1)
}

func TestSearch_RefreshServesLive(t *testing.T) {
	t.Parallel()

	agg := &stubAggregator{listings: []model.JobListing{listingFixture("internal_1")}, fromCache: true}
	router := newListingRouter(t, agg, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs?refresh=true", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "live", decodeBody(t, rec)["source"])
	assert.Equal(t, 1, agg.refreshed)
}

func TestSearch_FeaturedVariant(t *testing.T) {
	t.Parallel()

	router := newListingRouter(t, &stubAggregator{listings: []model.JobListing{
		listingFixture("internal_1", func(l *model.JobListing) { l.Featured = true }),
		listingFixture("internal_2"),
		listingFixture("remotive_3", func(l *model.JobListing) {
			l.Source = model.SourceRemotive
			l.Featured = true
		}),
	}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs?featured=true&limit=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["jobs"], 2)
	pagination, ok := body["pagination"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 2, pagination["total"])
	assert.EqualValues(t, 1, pagination["page"])
	assert.Equal(t, false, pagination["hasMore"])
}

func TestSearch_StatsVariant(t *testing.T) {
	t.Parallel()

	router := newListingRouter(t, &stubAggregator{listings: []model.JobListing{
		listingFixture("internal_1"),
		listingFixture("arbeitnow_2", func(l *model.JobListing) {
			l.Source = model.SourceArbeitnow
			l.Industry = "Healthcare"
		}),
	}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs?stats=true", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	stats, ok := decodeBody(t, rec)["stats"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 2, stats["totalJobs"])
}

func TestSearch_AggregatorFailureIs500(t *testing.T) {
	t.Parallel()

	router := newListingRouter(t, &stubAggregator{err: assert.AnError}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "internal server error", body["message"])
}

func TestClearCache_AdminOnly(t *testing.T) {
	t.Parallel()

	agg := &stubAggregator{}
	auth := newFakeAuth(
		testSession("sess-admin", "admin-1", domainauth.RoleAdmin),
		testSession("sess-cand", "candidate-1", domainauth.RoleCandidate),
	)
	router := newListingRouter(t, agg, auth)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/jobs/cache", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req := withSessionCookie(httptest.NewRequest(http.MethodDelete, "/api/jobs/cache", nil), "sess-cand")
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	req = withSessionCookie(httptest.NewRequest(http.MethodDelete, "/api/jobs/cache", nil), "sess-admin")
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, agg.invalidated)
}
