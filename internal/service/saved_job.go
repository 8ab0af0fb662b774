package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/humanlystaffing/jobboard-api/internal/core"
	domainauth "github.com/humanlystaffing/jobboard-api/internal/domain/auth"
	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
	apperrors "github.com/humanlystaffing/jobboard-api/internal/errors"
)

// SavedJobServiceOptions groups dependencies for SavedJobService.
type SavedJobServiceOptions struct {
	Repo   core.SavedJobRepository // Required: saved-job repository
	Logger *slog.Logger            // Optional: structured logger
}

// SavedJobService lets candidates bookmark listings from any source. The
// listing ID is stored as-is, so external listings survive even after the
// upstream feed drops them.
type SavedJobService struct {
	repo   core.SavedJobRepository
	logger *slog.Logger
}

// NewSavedJobService constructs a new SavedJobService.
func NewSavedJobService(opts SavedJobServiceOptions) (*SavedJobService, error) {
	if opts.Repo == nil {
		return nil, errors.New("SavedJobRepository is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &SavedJobService{
		repo:   opts.Repo,
		logger: logger.With("component", "saved_job_service"),
	}, nil
}

// MustNewSavedJobService constructs a new SavedJobService and panics on error.
func MustNewSavedJobService(opts SavedJobServiceOptions) *SavedJobService {
	svc, err := NewSavedJobService(opts)
	if err != nil {
		panic(fmt.Sprintf("failed to create SavedJobService: %v", err))
	}
	return svc
}

// Save bookmarks a listing for the session's user.
func (s *SavedJobService) Save(ctx context.Context, sess *domainauth.Session, req *model.SaveJobRequest) (*model.SavedJob, error) {
	if sess.IsGuest() {
		return nil, apperrors.Forbidden("Sign in to save jobs")
	}

	req.CandidateID = sess.UserID
	if err := req.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("save job: %w", err)
	}

	s.logger.InfoContext(ctx, "job saved",
		"listing_id", saved.ListingID,
	)
	return saved, nil
}

// List returns the session user's saved jobs, most recent first.
func (s *SavedJobService) List(ctx context.Context, sess *domainauth.Session) ([]*model.SavedJob, error) {
	if sess.IsGuest() {
		return nil, apperrors.Forbidden("Sign in to view saved jobs")
	}

	saved, err := s.repo.ListByCandidate(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("list saved jobs: %w", err)
	}
	return saved, nil
}

// Unsave removes a bookmark.
func (s *SavedJobService) Unsave(ctx context.Context, sess *domainauth.Session, listingID string) error {
	if sess.IsGuest() {
		return apperrors.Forbidden("Sign in to manage saved jobs")
	}

	deleted, err := s.repo.Delete(ctx, core.DeleteSavedJobParams{
		CandidateID: sess.UserID,
		ListingID:   listingID,
	})
	if err != nil {
		return fmt.Errorf("delete saved job: %w", err)
	}
	if !deleted {
		return apperrors.NotFound("Saved job not found")
	}

	s.logger.InfoContext(ctx, "job unsaved", "listing_id", listingID)
	return nil
}
