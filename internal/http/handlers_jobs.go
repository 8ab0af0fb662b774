package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
	apperrors "github.com/humanlystaffing/jobboard-api/internal/errors"
	"github.com/humanlystaffing/jobboard-api/internal/service"
)

const (
	defaultPostingsLimit = 50
	maxPostingsLimit     = 200
)

// JobHandlers provides HTTP handlers for internal posting management.
type JobHandlers struct {
	Svc *service.JobService
	// Listings resolves external IDs that only exist in the merged snapshot.
	Listings *service.ListingService
}

// Create handles posting creation for employers and admins.
// POST /api/jobs.
func (h *JobHandlers) Create(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	if sess == nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	var req model.CreateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Create(r.Context(), sess, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]any{"success": true, "job": job})
}

// Get returns a single posting by ID.
// GET /api/jobs/{id}. Internal postings come from the database; IDs carrying
// an external source prefix are resolved against the aggregated snapshot.
func (h *JobHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("job id is required"),
		})
		return
	}

	// Without a database every listing lives in the aggregated snapshot only.
	if isExternalListingID(id) || h.Svc == nil {
		listing, err := h.Listings.GetJobByID(r.Context(), id)
		if err != nil {
			WriteAppError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]any{"success": true, "job": listing})
		return
	}

	job, err := h.Svc.GetByID(r.Context(), strings.TrimPrefix(id, "internal_"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"success": true, "job": job})
}

// ListMine returns the caller's own postings (admins may scope to any
// employer via employer_id).
// GET /api/employer/jobs?status=&featured=&limit=&offset=.
func (h *JobHandlers) ListMine(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	if sess == nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	q := r.URL.Query()
	opts := &model.JobsListOptions{
		Limit:  parseIntQuery(r, "limit", defaultPostingsLimit),
		Offset: parseIntQuery(r, "offset", 0),
	}
	if opts.Limit < 1 || opts.Limit > maxPostingsLimit {
		opts.Limit = defaultPostingsLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}

	employerID := sess.UserID
	if sess.IsAdmin() {
		if v := strings.TrimSpace(q.Get("employer_id")); v != "" {
			employerID = v
		} else {
			employerID = ""
		}
	}
	if employerID != "" {
		opts.EmployerID = &employerID
	}
	if v := strings.TrimSpace(q.Get("status")); v != "" {
		status := model.JobStatus(v)
		if !status.Valid() {
			WriteAppError(w, apperrors.ValidationField("status", "unknown job status"))
			return
		}
		opts.Status = &status
	}
	if v := q.Get("featured"); v != "" {
		featured := parseBoolParam(v)
		opts.Featured = &featured
	}

	jobs, total, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"jobs":    jobs,
		"total":   total,
	})
}

// Update modifies a posting owned by the caller (or any posting for admins).
// PUT /api/jobs/{id}.
func (h *JobHandlers) Update(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	id := r.PathValue("id")

	var req model.UpdateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Update(r.Context(), sess, strings.TrimPrefix(id, "internal_"), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"success": true, "job": job})
}

// Delete removes a posting owned by the caller (or any posting for admins).
// DELETE /api/jobs/{id}.
func (h *JobHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	id := r.PathValue("id")

	if err := h.Svc.Delete(r.Context(), sess, strings.TrimPrefix(id, "internal_")); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

// isExternalListingID reports whether the ID carries a non-internal source
// prefix, e.g. "adzuna_12345".
func isExternalListingID(id string) bool {
	prefix, _, ok := strings.Cut(id, "_")
	if !ok {
		return false
	}
	switch model.ListingSource(prefix) {
	case model.SourceDemo, model.SourceAdzuna, model.SourceRemotive,
		model.SourceArbeitnow, model.SourceUSAJobs, model.SourceCustom:
		return true
	default:
		return false
	}
}
