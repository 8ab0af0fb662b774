package httpx

import (
	"errors"
	"net/http"

	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
	"github.com/humanlystaffing/jobboard-api/internal/service"
)

// SavedJobHandlers provides HTTP handlers for a candidate's saved listings.
type SavedJobHandlers struct {
	Svc *service.SavedJobService
}

// Save bookmarks a listing for the caller.
// POST /api/saved-jobs.
func (h *SavedJobHandlers) Save(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	var req model.SaveJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	saved, err := h.Svc.Save(r.Context(), sess, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]any{"success": true, "saved_job": saved})
}

// List returns the caller's saved listings.
// GET /api/saved-jobs.
func (h *SavedJobHandlers) List(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	if sess == nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	saved, err := h.Svc.List(r.Context(), sess)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"saved_jobs": saved,
		"count":      len(saved),
	})
}

// Unsave removes a bookmark by listing ID.
// DELETE /api/saved-jobs/{listingID}.
func (h *SavedJobHandlers) Unsave(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	listingID := r.PathValue("listingID")
	if listingID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("listing id is required"),
		})
		return
	}

	if err := h.Svc.Unsave(r.Context(), sess, listingID); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
