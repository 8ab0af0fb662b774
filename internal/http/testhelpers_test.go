package httpx

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domainauth "github.com/humanlystaffing/jobboard-api/internal/domain/auth"
	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
	"github.com/humanlystaffing/jobboard-api/internal/service"
)

// stubAggregator is a canned aggregation layer for handler tests.
type stubAggregator struct {
	listings  []model.JobListing
	fromCache bool
	err       error

	refreshed   int
	invalidated int
}

func (s *stubAggregator) MergedListings(_ context.Context) ([]model.JobListing, bool, error) {
	if s.err != nil {
		return nil, false, s.err
	}
	return s.listings, s.fromCache, nil
}

func (s *stubAggregator) Refresh(_ context.Context) ([]model.JobListing, error) {
	s.refreshed++
	if s.err != nil {
		return nil, s.err
	}
	return s.listings, nil
}

func (s *stubAggregator) Invalidate(_ context.Context) error {
	s.invalidated++
	return s.err
}

func newTestListingService(t *testing.T, agg *stubAggregator) *service.ListingService {
	t.Helper()
	svc, err := service.NewListingService(service.ListingServiceOptions{
		Aggregator: agg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return svc
}

// fakeAuth is an in-memory AuthFlowService for middleware and route tests.
type fakeAuth struct {
	sessions map[string]*domainauth.Session
}

func newFakeAuth(sessions ...*domainauth.Session) *fakeAuth {
	f := &fakeAuth{sessions: map[string]*domainauth.Session{}}
	for _, s := range sessions {
		f.sessions[s.ID] = s
	}
	return f
}

func (f *fakeAuth) BeginLogin(_ context.Context, _ string) (*service.BeginLoginResult, error) {
	return &service.BeginLoginResult{AuthURL: "https://idp.example.com/auth", State: "s", Nonce: "n"}, nil
}

func (f *fakeAuth) CompleteLogin(_ context.Context, _ service.CompleteLoginInput) (*domainauth.Session, error) {
	return nil, service.ErrSessionExpired
}

func (f *fakeAuth) GetSession(_ context.Context, id string) (*domainauth.Session, error) {
	if s, ok := f.sessions[id]; ok {
		return s, nil
	}
	return nil, service.ErrSessionExpired
}

func (f *fakeAuth) Logout(_ context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

func testSession(id, userID string, role domainauth.Role) *domainauth.Session {
	return &domainauth.Session{
		ID:        id,
		UserID:    userID,
		Email:     userID + "@example.com",
		Role:      role,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func withSessionCookie(r *http.Request, sessionID string) *http.Request {
	r.AddCookie(&http.Cookie{Name: "session_id", Value: sessionID})
	return r
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
