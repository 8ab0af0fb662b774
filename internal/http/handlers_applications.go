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
	defaultApplicationsLimit = 50
	maxApplicationsLimit     = 200
)

// ApplicationHandlers provides HTTP handlers for job applications.
type ApplicationHandlers struct {
	Svc *service.ApplicationService
}

// Apply submits an application to an internal posting.
// POST /api/applications.
func (h *ApplicationHandlers) Apply(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	var req model.CreateApplicationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	app, err := h.Svc.Apply(r.Context(), sess, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]any{"success": true, "application": app})
}

// List returns applications visible to the caller: candidates see their own,
// employers see applicants to their postings, admins see everything.
// GET /api/applications?job_id=&status=&limit=&offset=.
func (h *ApplicationHandlers) List(w http.ResponseWriter, r *http.Request) {
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
	opts := &model.ApplicationsListOptions{
		Limit:  parseIntQuery(r, "limit", defaultApplicationsLimit),
		Offset: parseIntQuery(r, "offset", 0),
	}
	if opts.Limit < 1 || opts.Limit > maxApplicationsLimit {
		opts.Limit = defaultApplicationsLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	if v := strings.TrimSpace(q.Get("job_id")); v != "" {
		opts.JobID = &v
	}
	if v := strings.TrimSpace(q.Get("status")); v != "" {
		status := model.ApplicationStatus(v)
		if !status.Valid() {
			WriteAppError(w, apperrors.ValidationField("status", "unknown application status"))
			return
		}
		opts.Status = &status
	}

	apps, total, err := h.Svc.ListForSession(r.Context(), sess, opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"applications": apps,
		"total":        total,
	})
}

// UpdateStatus moves an application through the review pipeline.
// PUT /api/applications/{id}/status (employer owning the posting, or admin).
func (h *ApplicationHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	id := r.PathValue("id")

	var req model.UpdateApplicationStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	app, err := h.Svc.UpdateStatus(r.Context(), sess, id, req.Status)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"success": true, "application": app})
}

// Withdraw deletes the caller's application.
// DELETE /api/applications/{id}.
func (h *ApplicationHandlers) Withdraw(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	id := r.PathValue("id")

	if err := h.Svc.Withdraw(r.Context(), sess, id); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
