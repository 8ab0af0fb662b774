package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/humanlystaffing/jobboard-api/internal/domain/auth"
	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
	apperrors "github.com/humanlystaffing/jobboard-api/internal/errors"
	"github.com/humanlystaffing/jobboard-api/internal/mocks"
	"github.com/humanlystaffing/jobboard-api/internal/service"
)

const validJobBody = `{
	"title": "Senior Software Engineer",
	"company": "Humanly Staffing",
	"location": "Seattle, WA",
	"location_type": "hybrid",
	"type": "full-time",
	"experience_level": "senior",
	"industry": "Technology",
	"description": "We are looking for a senior engineer to build and operate the services behind our hiring platform, from the public search API to the internal tooling our recruiters rely on every day.",
	"requirements": ["5+ years of backend experience"],
	"skills": ["Go", "PostgreSQL"]
}`

func newJobRouter(t *testing.T, repo *mocks.MockJobRepository, agg *stubAggregator, auth AuthFlowService) http.Handler {
	t.Helper()

	listings := newTestListingService(t, agg)
	jobs, err := service.NewJobService(service.JobServiceOptions{
		Repo:     repo,
		Listings: listings,
		Logger:   quietLogger(),
	})
	require.NoError(t, err)

	return NewRouter(RouterServices{
		Listings: listings,
		Jobs:     jobs,
		Auth:     auth,
		Logger:   quietLogger(),
	})
}

func TestCreateJob_RequiresSession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	router := newJobRouter(t, mocks.NewMockJobRepository(ctrl), &stubAggregator{}, newFakeAuth())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader(validJobBody)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateJob_EmployerCreatesAndInvalidatesCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockJobRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, req *model.CreateJobRequest) (*model.Job, error) {
			assert.Equal(t, "employer-1", req.EmployerID)
			return &model.Job{ID: "11111111-2222-3333-4444-555555555555", EmployerID: req.EmployerID, Title: req.Title}, nil
		})

	agg := &stubAggregator{}
	auth := newFakeAuth(testSession("sess-emp", "employer-1", domainauth.RoleEmployer))
	router := newJobRouter(t, repo, agg, auth)

	rec := httptest.NewRecorder()
	req := withSessionCookie(httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader(validJobBody)), "sess-emp")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, 1, agg.invalidated)
}

func TestCreateJob_ValidationFailureIs400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	auth := newFakeAuth(testSession("sess-emp", "employer-1", domainauth.RoleEmployer))
	router := newJobRouter(t, mocks.NewMockJobRepository(ctrl), &stubAggregator{}, auth)

	rec := httptest.NewRecorder()
	req := withSessionCookie(
		httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader(`{"title":"x"}`)), "sess-emp")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "validation", body["error"])
	assert.Equal(t, "title", body["field"])
}

func TestGetJob_InternalFromRepo(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockJobRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), "abc-123").
		Return(&model.Job{ID: "abc-123", Title: "Recruiter"}, nil)

	router := newJobRouter(t, repo, &stubAggregator{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs/internal_abc-123", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	job, ok := decodeBody(t, rec)["job"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Recruiter", job["title"])
}

func TestGetJob_ExternalFromSnapshot(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	agg := &stubAggregator{listings: []model.JobListing{
		listingFixture("adzuna_77", func(l *model.JobListing) {
			l.Source = model.SourceAdzuna
			l.Title = "Platform Engineer"
		}),
	}}
	router := newJobRouter(t, mocks.NewMockJobRepository(ctrl), agg, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs/adzuna_77", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	job, ok := decodeBody(t, rec)["job"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Platform Engineer", job["title"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs/usajobs_404", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateJob_OwnershipEnforced(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockJobRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), "abc-123").
		Return(&model.Job{ID: "abc-123", EmployerID: "someone-else"}, nil)

	auth := newFakeAuth(testSession("sess-emp", "employer-1", domainauth.RoleEmployer))
	router := newJobRouter(t, repo, &stubAggregator{}, auth)

	rec := httptest.NewRecorder()
	req := withSessionCookie(httptest.NewRequest(
		http.MethodPut, "/api/jobs/abc-123", strings.NewReader(`{"featured":true}`)), "sess-emp")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteJob_MissingIs404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockJobRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), "abc-123").
		Return(nil, apperrors.NotFound("job not found"))

	auth := newFakeAuth(testSession("sess-admin", "admin-1", domainauth.RoleAdmin))
	router := newJobRouter(t, repo, &stubAggregator{}, auth)

	rec := httptest.NewRecorder()
	req := withSessionCookie(httptest.NewRequest(http.MethodDelete, "/api/jobs/abc-123", nil), "sess-admin")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListMine_ScopedToEmployer(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockJobRepository(ctrl)
	repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, opts *model.JobsListOptions) ([]*model.Job, error) {
			require.NotNil(t, opts.EmployerID)
			assert.Equal(t, "employer-1", *opts.EmployerID)
			return []*model.Job{{ID: "abc-123", EmployerID: "employer-1"}}, nil
		})
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)

	auth := newFakeAuth(testSession("sess-emp", "employer-1", domainauth.RoleEmployer))
	router := newJobRouter(t, repo, &stubAggregator{}, auth)

	rec := httptest.NewRecorder()
	req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/api/employer/jobs", nil), "sess-emp")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 1, body["total"])
	assert.Len(t, body["jobs"], 1)
}
