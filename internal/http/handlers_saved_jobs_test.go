package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/humanlystaffing/jobboard-api/internal/core"
	domainauth "github.com/humanlystaffing/jobboard-api/internal/domain/auth"
	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
	"github.com/humanlystaffing/jobboard-api/internal/mocks"
	"github.com/humanlystaffing/jobboard-api/internal/service"
)

func newSavedJobRouter(t *testing.T, repo *mocks.MockSavedJobRepository, auth AuthFlowService) http.Handler {
	t.Helper()

	svc, err := service.NewSavedJobService(service.SavedJobServiceOptions{
		Repo:   repo,
		Logger: quietLogger(),
	})
	require.NoError(t, err)

	return NewRouter(RouterServices{
		Listings:  newTestListingService(t, &stubAggregator{}),
		SavedJobs: svc,
		Auth:      auth,
		Logger:    quietLogger(),
	})
}

func TestSaveJob_CandidateFromSession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSavedJobRepository(ctrl)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, req *model.SaveJobRequest) (*model.SavedJob, error) {
			assert.Equal(t, "candidate-1", req.CandidateID)
			return &model.SavedJob{ID: "saved-1", CandidateID: req.CandidateID, ListingID: req.ListingID}, nil
		})

	auth := newFakeAuth(testSession("sess-cand", "candidate-1", domainauth.RoleCandidate))
	router := newSavedJobRouter(t, repo, auth)

	body := `{"listing_id":"remotive_42","title":"Data Analyst","company":"Acme"}`
	rec := httptest.NewRecorder()
	req := withSessionCookie(httptest.NewRequest(http.MethodPost, "/api/saved-jobs", strings.NewReader(body)), "sess-cand")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestListSavedJobs(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSavedJobRepository(ctrl)
	repo.EXPECT().ListByCandidate(gomock.Any(), "candidate-1").
		Return([]*model.SavedJob{{ID: "saved-1", CandidateID: "candidate-1"}}, nil)

	auth := newFakeAuth(testSession("sess-cand", "candidate-1", domainauth.RoleCandidate))
	router := newSavedJobRouter(t, repo, auth)

	rec := httptest.NewRecorder()
	req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/api/saved-jobs", nil), "sess-cand")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 1, body["count"])
}

func TestUnsaveJob_MissingIs404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSavedJobRepository(ctrl)
	repo.EXPECT().Delete(gomock.Any(), core.DeleteSavedJobParams{
		CandidateID: "candidate-1",
		ListingID:   "remotive_42",
	}).Return(false, nil)

	auth := newFakeAuth(testSession("sess-cand", "candidate-1", domainauth.RoleCandidate))
	router := newSavedJobRouter(t, repo, auth)

	rec := httptest.NewRecorder()
	req := withSessionCookie(httptest.NewRequest(http.MethodDelete, "/api/saved-jobs/remotive_42", nil), "sess-cand")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
