package httpx

import (
	"net/http"

	"github.com/humanlystaffing/jobboard-api/internal/service"
)

// ListingHandlers provides HTTP handlers for the aggregated public job search.
type ListingHandlers struct {
	Svc *service.ListingService
}

// Search handles the public aggregated search endpoint.
// GET /api/jobs?query=&location=&industry=&type=&remote=&page=&limit=
// with featured=true, stats=true, and refresh=true variants.
func (h *ListingHandlers) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if parseBoolParam(q.Get("stats")) {
		h.stats(w, r)
		return
	}
	if parseBoolParam(q.Get("featured")) {
		h.featured(w, r)
		return
	}

	result, err := h.Svc.SearchAllJobs(r.Context(), service.SearchParams{
		Filters: ParseSearchFilters(q),
		Page:    ParseSearchPage(q),
		Refresh: parseBoolParam(q.Get("refresh")),
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"jobs":    result.Jobs,
		"pagination": map[string]any{
			"total":      result.Total,
			"limit":      result.Limit,
			"page":       result.Page,
			"totalPages": result.TotalPages,
			"hasMore":    result.HasMore(),
		},
		"source": result.Source,
	})
}

func (h *ListingHandlers) featured(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 0)

	jobs, err := h.Svc.GetFeaturedJobs(r.Context(), limit)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"jobs":    jobs,
		"pagination": map[string]any{
			"total":   len(jobs),
			"limit":   limit,
			"page":    1,
			"hasMore": false,
		},
	})
}

func (h *ListingHandlers) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.GetJobStats(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"stats":   stats,
	})
}

// ClearCache drops the aggregated listing snapshot.
// DELETE /api/jobs/cache (admin only, guarded by middleware).
func (h *ListingHandlers) ClearCache(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.ClearJobCache(r.Context()); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
