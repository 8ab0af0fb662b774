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

// cacheInvalidator drops the aggregated listing snapshot after a posting
// mutation so public reads pick up the change on the next fetch.
type cacheInvalidator interface {
	ClearJobCache(ctx context.Context) error
}

// JobServiceOptions groups dependencies for JobService.
type JobServiceOptions struct {
	Repo     core.JobRepository // Required: posting repository
	Listings cacheInvalidator   // Optional: invalidated after successful writes
	Logger   *slog.Logger       // Optional: structured logger
}

// JobService provides business logic for internal job postings: CRUD with
// ownership enforcement and listing-cache invalidation on every successful
// write.
type JobService struct {
	repo     core.JobRepository
	listings cacheInvalidator
	logger   *slog.Logger
}

// NewJobService constructs a new JobService.
func NewJobService(opts JobServiceOptions) (*JobService, error) {
	if opts.Repo == nil {
		return nil, errors.New("JobRepository is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &JobService{
		repo:     opts.Repo,
		listings: opts.Listings,
		logger:   logger.With("component", "job_service"),
	}, nil
}

// MustNewJobService constructs a new JobService and panics on error.
func MustNewJobService(opts JobServiceOptions) *JobService {
	svc, err := NewJobService(opts)
	if err != nil {
		panic(fmt.Sprintf("failed to create JobService: %v", err))
	}
	return svc
}

// Create creates a posting owned by the session's user.
func (s *JobService) Create(ctx context.Context, sess *domainauth.Session, req *model.CreateJobRequest) (*model.Job, error) {
	if !sess.CanManageJobs() {
		return nil, apperrors.Forbidden("Only employers can post jobs")
	}

	req.EmployerID = sess.UserID
	if err := req.Validate(); err != nil {
		return nil, err
	}

	job, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	s.logger.InfoContext(ctx, "job created",
		"id", job.ID,
		"employer_id", job.EmployerID,
		"title", job.Title,
	)
	s.invalidate(ctx)

	return job, nil
}

// GetByID fetches one posting.
func (s *JobService) GetByID(ctx context.Context, id string) (*model.Job, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return job, nil
}

// List returns postings matching the options, newest first.
func (s *JobService) List(ctx context.Context, opts *model.JobsListOptions) ([]*model.Job, int, error) {
	jobs, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}
	total, err := s.repo.Count(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}
	return jobs, total, nil
}

// Update modifies a posting. Only the owning employer or an admin may
// update it.
func (s *JobService) Update(ctx context.Context, sess *domainauth.Session, id string, req *model.UpdateJobRequest) (*model.Job, error) {
	if err := s.authorizeWrite(ctx, sess, id); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	job, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}

	s.logger.InfoContext(ctx, "job updated", "id", job.ID)
	s.invalidate(ctx)

	return job, nil
}

// Delete removes a posting. Only the owning employer or an admin may
// delete it.
func (s *JobService) Delete(ctx context.Context, sess *domainauth.Session, id string) error {
	if err := s.authorizeWrite(ctx, sess, id); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if !deleted {
		return apperrors.NotFound("Job not found")
	}

	s.logger.InfoContext(ctx, "job deleted", "id", id)
	s.invalidate(ctx)

	return nil
}

// authorizeWrite checks that the session may mutate the posting. The
// lookup doubles as the existence check so missing postings return 404
// rather than 403.
func (s *JobService) authorizeWrite(ctx context.Context, sess *domainauth.Session, id string) error {
	if !sess.CanManageJobs() {
		return apperrors.Forbidden("Only employers can manage jobs")
	}

	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get job: %w", err)
	}
	if !sess.IsAdmin() && job.EmployerID != sess.UserID {
		return apperrors.Forbidden("You do not own this job posting")
	}
	return nil
}

// invalidate is best-effort: a stale snapshot self-heals at TTL expiry, so
// cache failures never fail the write.
func (s *JobService) invalidate(ctx context.Context) {
	if s.listings == nil {
		return
	}
	if err := s.listings.ClearJobCache(ctx); err != nil {
		s.logger.WarnContext(ctx, "listing cache invalidation failed", "error", err)
	}
}
