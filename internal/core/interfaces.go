package core

import (
	"context"

	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// JobRepository defines the interface for employer job posting data operations.
type JobRepository interface {
	Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error)
	GetByID(ctx context.Context, id string) (*model.Job, error)
	List(ctx context.Context, opts *model.JobsListOptions) ([]*model.Job, error)
	Count(ctx context.Context, opts *model.JobsListOptions) (int, error)
	Update(ctx context.Context, id string, req *model.UpdateJobRequest) (*model.Job, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	Create(ctx context.Context, req *model.CreateApplicationRequest) (*model.Application, error)
	GetByID(ctx context.Context, id string) (*model.Application, error)
	List(ctx context.Context, opts *model.ApplicationsListOptions) ([]*model.Application, error)
	Count(ctx context.Context, opts *model.ApplicationsListOptions) (int, error)
	UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus) (*model.Application, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// SavedJobRepository defines the interface for candidate saved-listing data operations.
type SavedJobRepository interface {
	Save(ctx context.Context, req *model.SaveJobRequest) (*model.SavedJob, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]*model.SavedJob, error)
	Delete(ctx context.Context, params DeleteSavedJobParams) (bool, error)
	Exists(ctx context.Context, params DeleteSavedJobParams) (bool, error)
}

// DeleteSavedJobParams groups parameters for saved-job lookups to keep param count ≤3.
type DeleteSavedJobParams struct {
	CandidateID string
	ListingID   string
}
