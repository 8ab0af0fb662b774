package httpx

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/humanlystaffing/jobboard-api/internal/core"
	domainauth "github.com/humanlystaffing/jobboard-api/internal/domain/auth"
	"github.com/humanlystaffing/jobboard-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Listings     *service.ListingService
	Jobs         *service.JobService
	Applications *service.ApplicationService
	SavedJobs    *service.SavedJobService
	Auth         AuthFlowService
	CookieDomain string

	// Readiness dependencies; either may be nil (demo mode runs without Postgres).
	DB    *sql.DB
	Cache core.CacheRepository

	Logger *slog.Logger
}

// NewRouter creates and configures the HTTP router.
// The public search surface is unauthenticated; posting, application, and
// saved-job mutations require a session.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	listingHandlers := &ListingHandlers{Svc: services.Listings}
	jobHandlers := &JobHandlers{Svc: services.Jobs, Listings: services.Listings}
	applicationHandlers := &ApplicationHandlers{Svc: services.Applications}
	savedJobHandlers := &SavedJobHandlers{Svc: services.SavedJobs}

	registerListingRoutes(mux, listingHandlers, services.Auth)
	registerJobRoutes(mux, jobHandlers, services.Auth)
	registerApplicationRoutes(mux, applicationHandlers, services.Auth)
	registerSavedJobRoutes(mux, savedJobHandlers, services.Auth)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	ready := &ReadinessHandlers{DB: services.DB, Cache: services.Cache}
	mux.Handle("GET /readyz", http.HandlerFunc(ready.Ready))

	if services.Auth != nil {
		authHandlers := &AuthHandlers{
			Svc:          services.Auth,
			CookieDomain: services.CookieDomain,
			Logger:       logger,
		}
		registerAuthRoutes(mux, authHandlers)
	}

	var handler http.Handler = mux
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}

func registerListingRoutes(mux *http.ServeMux, h *ListingHandlers, auth AuthFlowService) {
	mux.Handle("GET /api/jobs", http.HandlerFunc(h.Search))
	if auth != nil {
		mux.Handle("DELETE /api/jobs/cache",
			RequireRole(auth, domainauth.RoleAdmin)(http.HandlerFunc(h.ClearCache)))
	}
}

func registerJobRoutes(mux *http.ServeMux, h *JobHandlers, auth AuthFlowService) {
	mux.Handle("GET /api/jobs/{id}", http.HandlerFunc(h.Get))
	if auth == nil || h.Svc == nil {
		return
	}
	mux.Handle("POST /api/jobs", RequireAuth(auth)(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/jobs/{id}", RequireAuth(auth)(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/jobs/{id}", RequireAuth(auth)(http.HandlerFunc(h.Delete)))
	mux.Handle("GET /api/employer/jobs",
		RequireRole(auth, domainauth.RoleEmployer)(http.HandlerFunc(h.ListMine)))
}

func registerApplicationRoutes(mux *http.ServeMux, h *ApplicationHandlers, auth AuthFlowService) {
	if auth == nil || h.Svc == nil {
		return
	}
	mux.Handle("POST /api/applications", RequireAuth(auth)(http.HandlerFunc(h.Apply)))
	mux.Handle("GET /api/applications", RequireAuth(auth)(http.HandlerFunc(h.List)))
	mux.Handle("PUT /api/applications/{id}/status", RequireAuth(auth)(http.HandlerFunc(h.UpdateStatus)))
	mux.Handle("DELETE /api/applications/{id}", RequireAuth(auth)(http.HandlerFunc(h.Withdraw)))
}

func registerSavedJobRoutes(mux *http.ServeMux, h *SavedJobHandlers, auth AuthFlowService) {
	if auth == nil || h.Svc == nil {
		return
	}
	mux.Handle("POST /api/saved-jobs", RequireAuth(auth)(http.HandlerFunc(h.Save)))
	mux.Handle("GET /api/saved-jobs", RequireAuth(auth)(http.HandlerFunc(h.List)))
	mux.Handle("DELETE /api/saved-jobs/{listingID}", RequireAuth(auth)(http.HandlerFunc(h.Unsave)))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.Handle("GET /auth/login", http.HandlerFunc(h.Login))
	mux.Handle("GET /auth/callback", http.HandlerFunc(h.Callback))
	mux.Handle("POST /auth/logout", http.HandlerFunc(h.Logout))
	mux.Handle("GET /auth/me", http.HandlerFunc(h.Me))
}
