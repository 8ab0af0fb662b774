package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/humanlystaffing/jobboard-api/internal/domain/auth"
)

func okHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_NoCookieIs401(t *testing.T) {
	t.Parallel()

	h := RequireAuth(newFakeAuth())(okHandler(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_SessionLandsInContext(t *testing.T) {
	t.Parallel()

	auth := newFakeAuth(testSession("sess-1", "candidate-1", domainauth.RoleCandidate))
	var seen *domainauth.Session
	h := RequireAuth(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, withSessionCookie(httptest.NewRequest(http.MethodGet, "/", nil), "sess-1"))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "candidate-1", seen.UserID)
}

func TestRequireRole_Hierarchy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		userRole domainauth.Role
		required domainauth.Role
		want     int
	}{
		{"admin passes employer gate", domainauth.RoleAdmin, domainauth.RoleEmployer, http.StatusOK},
		{"employer passes employer gate", domainauth.RoleEmployer, domainauth.RoleEmployer, http.StatusOK},
		{"candidate fails employer gate", domainauth.RoleCandidate, domainauth.RoleEmployer, http.StatusForbidden},
		{"employer fails admin gate", domainauth.RoleEmployer, domainauth.RoleAdmin, http.StatusForbidden},
		{"guest fails candidate gate", domainauth.RoleGuest, domainauth.RoleCandidate, http.StatusForbidden},
		{"unknown role is rejected", domainauth.Role("superuser"), domainauth.RoleCandidate, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			auth := newFakeAuth(testSession("sess-1", "user-1", tt.userRole))
			h := RequireRole(auth, tt.required)(okHandler(t))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, withSessionCookie(httptest.NewRequest(http.MethodGet, "/", nil), "sess-1"))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestOptionalAuth_ContinuesWithoutSession(t *testing.T) {
	t.Parallel()

	var sawSession bool
	h := OptionalAuth(newFakeAuth())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawSession = GetUserSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, sawSession)
}

func TestRecover_TurnsPanicInto500(t *testing.T) {
	t.Parallel()

	h := Recover(quietLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
