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

// ApplicationServiceOptions groups dependencies for ApplicationService.
type ApplicationServiceOptions struct {
	Repo   core.ApplicationRepository // Required: application repository
	Jobs   core.JobRepository         // Required: posting lookups for apply checks
	Logger *slog.Logger               // Optional: structured logger
}

// ApplicationService handles candidate applications to internal postings.
// Candidates see their own applications; employers see applicants to their
// own postings; admins see everything.
type ApplicationService struct {
	repo   core.ApplicationRepository
	jobs   core.JobRepository
	logger *slog.Logger
}

// NewApplicationService constructs a new ApplicationService.
func NewApplicationService(opts ApplicationServiceOptions) (*ApplicationService, error) {
	if opts.Repo == nil {
		return nil, errors.New("ApplicationRepository is required")
	}
	if opts.Jobs == nil {
		return nil, errors.New("JobRepository is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ApplicationService{
		repo:   opts.Repo,
		jobs:   opts.Jobs,
		logger: logger.With("component", "application_service"),
	}, nil
}

// MustNewApplicationService constructs a new ApplicationService and panics on error.
func MustNewApplicationService(opts ApplicationServiceOptions) *ApplicationService {
	svc, err := NewApplicationService(opts)
	if err != nil {
		panic(fmt.Sprintf("failed to create ApplicationService: %v", err))
	}
	return svc
}

// Apply submits an application for the session's user. The posting must
// exist and be active.
func (s *ApplicationService) Apply(ctx context.Context, sess *domainauth.Session, req *model.CreateApplicationRequest) (*model.Application, error) {
	if sess.IsGuest() {
		return nil, apperrors.Forbidden("Sign in to apply for jobs")
	}

	req.CandidateID = sess.UserID
	if err := req.Validate(); err != nil {
		return nil, err
	}

	job, err := s.jobs.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	if job.Status != model.JobStatusActive {
		return nil, apperrors.Validation("This job is no longer accepting applications")
	}

	app, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	s.logger.InfoContext(ctx, "application submitted",
		"id", app.ID,
		"job_id", app.JobID,
	)
	return app, nil
}

// ListForSession returns the applications the session is allowed to see.
func (s *ApplicationService) ListForSession(ctx context.Context, sess *domainauth.Session, opts *model.ApplicationsListOptions) ([]*model.Application, int, error) {
	if sess.IsGuest() {
		return nil, 0, apperrors.Forbidden("Sign in to view applications")
	}
	if opts == nil {
		opts = &model.ApplicationsListOptions{}
	}

	switch sess.Role {
	case domainauth.RoleAdmin:
		// unrestricted
	case domainauth.RoleEmployer:
		employerID := sess.UserID
		opts.EmployerID = &employerID
		opts.CandidateID = nil
	default:
		candidateID := sess.UserID
		opts.CandidateID = &candidateID
		opts.EmployerID = nil
	}

	apps, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list applications: %w", err)
	}
	total, err := s.repo.Count(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("count applications: %w", err)
	}
	return apps, total, nil
}

// UpdateStatus moves an application through the review pipeline. Only the
// employer owning the posting, or an admin, may change status.
func (s *ApplicationService) UpdateStatus(ctx context.Context, sess *domainauth.Session, id string, status model.ApplicationStatus) (*model.Application, error) {
	if !sess.CanManageJobs() {
		return nil, apperrors.Forbidden("Only employers can review applications")
	}
	if !status.Valid() {
		return nil, apperrors.ValidationField("status", "Unknown application status")
	}

	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}

	if !sess.IsAdmin() {
		job, jobErr := s.jobs.GetByID(ctx, app.JobID)
		if jobErr != nil {
			return nil, fmt.Errorf("get job: %w", jobErr)
		}
		if job.EmployerID != sess.UserID {
			return nil, apperrors.Forbidden("You do not own this job posting")
		}
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update application status: %w", err)
	}

	s.logger.InfoContext(ctx, "application status changed",
		"id", id,
		"status", status,
	)
	return updated, nil
}

// Withdraw removes a candidate's own application.
func (s *ApplicationService) Withdraw(ctx context.Context, sess *domainauth.Session, id string) error {
	if sess.IsGuest() {
		return apperrors.Forbidden("Sign in to withdraw applications")
	}

	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get application: %w", err)
	}
	if !sess.IsAdmin() && app.CandidateID != sess.UserID {
		return apperrors.Forbidden("You can only withdraw your own applications")
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if !deleted {
		return apperrors.NotFound("Application not found")
	}

	s.logger.InfoContext(ctx, "application withdrawn", "id", id)
	return nil
}
