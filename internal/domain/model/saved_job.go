package model

import (
	"strings"
	"time"

	apperrors "github.com/humanlystaffing/jobboard-api/internal/errors"
)

// SavedJob represents a candidate's bookmark of a listing.
// ListingID may reference either an internal posting or an external
// aggregated listing (source-prefixed ID); only internal ones are
// guaranteed to still resolve later.
type SavedJob struct {
	ID          string    `json:"id"           db:"id"`
	CandidateID string    `json:"candidate_id" db:"candidate_id"`
	ListingID   string    `json:"listing_id"   db:"listing_id"`
	Title       string    `json:"title"        db:"title"`
	Company     string    `json:"company"      db:"company"`
	CreatedAt   time.Time `json:"created_at"   db:"created_at"`
}

// SaveJobRequest bookmarks a listing for the calling candidate.
// CandidateID is populated from the session, never from the request body.
// Title and Company are snapshotted at save time so the bookmark stays
// renderable after an external listing drops out of the aggregated set.
type SaveJobRequest struct {
	CandidateID string `json:"-"`
	ListingID   string `json:"listing_id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
}

// Validate checks the save request.
func (r *SaveJobRequest) Validate() error {
	if strings.TrimSpace(r.ListingID) == "" {
		return apperrors.ValidationField("listing_id", "Listing is required and cannot be empty")
	}
	if strings.TrimSpace(r.Title) == "" {
		return apperrors.ValidationField("title", "Title is required and cannot be empty")
	}
	return nil
}
