package httpx

import (
	"context"
	"database/sql"
	"io"
	"net/http"
	"time"

	"github.com/humanlystaffing/jobboard-api/internal/core"
)

const healthResponse = `{"status":"ok"}`

// healthHandler returns a simple 200 OK status for readiness/liveness checks.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, healthResponse); err != nil {
		// Nothing more to do if the client connection is gone.
		return
	}
}

// ReadinessHandlers reports dependency health for readiness probes.
// Either dependency may be nil (e.g. demo mode without Postgres).
type ReadinessHandlers struct {
	DB    *sql.DB
	Cache core.CacheRepository
}

// Ready checks the configured dependencies.
// GET /readyz.
func (h *ReadinessHandlers) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true

	if h.DB != nil {
		if err := h.DB.PingContext(ctx); err != nil {
			checks["database"] = err.Error()
			healthy = false
		} else {
			checks["database"] = "ok"
		}
	}
	if h.Cache != nil {
		if err := h.Cache.Health(ctx); err != nil {
			checks["cache"] = err.Error()
			healthy = false
		} else {
			checks["cache"] = "ok"
		}
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	WriteJSON(w, status, map[string]any{"healthy": healthy, "checks": checks})
}
