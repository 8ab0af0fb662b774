package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockauth "github.com/humanlystaffing/jobboard-api/internal/mocks/auth"
	"github.com/humanlystaffing/jobboard-api/internal/service"
)

func newAuthRouter(t *testing.T) http.Handler {
	t.Helper()

	svc := service.NewAuthService(service.AuthServiceOptions{
		Provider: mockauth.NewMockAuthProvider(),
		Sessions: mockauth.NewMemorySessionStore(),
		Roles: &mockauth.StaticRoleMapper{
			AdminGroup:    "jobboard-admins",
			EmployerGroup: "jobboard-employers",
		},
	})

	return NewRouter(RouterServices{
		Listings: newTestListingService(t, &stubAggregator{}),
		Auth:     svc,
		Logger:   quietLogger(),
	})
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLogin_RedirectsToIdPWithCookies(t *testing.T) {
	t.Parallel()

	router := newAuthRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/login?redirect_uri=/jobs", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://mock-idp/auth", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	state := cookieByName(cookies, "oauth_state")
	require.NotNil(t, state)
	assert.Equal(t, "state-1", state.Value)
	require.NotNil(t, cookieByName(cookies, "oauth_nonce"))
	redirect := cookieByName(cookies, "post_login_redirect")
	require.NotNil(t, redirect)
	assert.Equal(t, "/jobs", redirect.Value)
}

func TestLogin_RejectsAbsoluteRedirect(t *testing.T) {
	t.Parallel()

	router := newAuthRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(
		http.MethodGet, "/auth/login?redirect_uri=https://evil.example.com/", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	redirect := cookieByName(rec.Result().Cookies(), "post_login_redirect")
	require.NotNil(t, redirect)
	assert.Equal(t, "/", redirect.Value)
}

func TestCallback_CompletesLoginAndSetsSession(t *testing.T) {
	t.Parallel()

	router := newAuthRouter(t)

	// Begin the flow to mint state/nonce server-side.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/login?redirect_uri=/jobs", nil))
	require.Equal(t, http.StatusFound, rec.Code)
	loginCookies := rec.Result().Cookies()

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=dev&state=state-1", nil)
	for _, c := range loginCookies {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/jobs", rec.Header().Get("Location"))

	sessionCookie := cookieByName(rec.Result().Cookies(), "session_id")
	require.NotNil(t, sessionCookie)
	require.NotEmpty(t, sessionCookie.Value)

	// The fresh session authenticates /auth/me.
	meReq := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	meReq.AddCookie(&http.Cookie{Name: "session_id", Value: sessionCookie.Value})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, meReq)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["authenticated"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "mock-user-1", user["id"])
	assert.Equal(t, "candidate", user["role"])
}

func TestCallback_StateMismatchIs400(t *testing.T) {
	t.Parallel()

	router := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=dev&state=state-1", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "state-other"})
	req.AddCookie(&http.Cookie{Name: "oauth_nonce", Value: "nonce-1"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_state", decodeBody(t, rec)["error"])
}

func TestMe_Unauthenticated(t *testing.T) {
	t.Parallel()

	router := newAuthRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["authenticated"])
}

func TestLogout_ClearsSessionCookie(t *testing.T) {
	t.Parallel()

	router := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "does-not-exist"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cleared := cookieByName(rec.Result().Cookies(), "session_id")
	require.NotNil(t, cleared)
	assert.Equal(t, -1, cleared.MaxAge)
}
