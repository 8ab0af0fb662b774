package model

import (
	"strings"
	"time"

	apperrors "github.com/humanlystaffing/jobboard-api/internal/errors"
)

// ApplicationStatus represents where an application sits in the hiring pipeline.
type ApplicationStatus string

const (
	ApplicationSubmitted   ApplicationStatus = "submitted"
	ApplicationReviewing   ApplicationStatus = "reviewing"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationHired       ApplicationStatus = "hired"
)

// Valid returns true if the ApplicationStatus is one of the supported values.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationSubmitted, ApplicationReviewing, ApplicationShortlisted,
		ApplicationRejected, ApplicationHired:
		return true
	default:
		return false
	}
}

// Application represents a candidate's application to an internal posting.
type Application struct {
	ID          string            `json:"id"                     db:"id"`
	JobID       string            `json:"job_id"                 db:"job_id"`
	CandidateID string            `json:"candidate_id"           db:"candidate_id"`
	FullName    string            `json:"full_name"              db:"full_name"`
	Email       string            `json:"email"                  db:"email"`
	Phone       *string           `json:"phone,omitempty"        db:"phone"`
	ResumeURL   *string           `json:"resume_url,omitempty"   db:"resume_url"`
	CoverLetter *string           `json:"cover_letter,omitempty" db:"cover_letter"`
	Status      ApplicationStatus `json:"status"                 db:"status"`
	CreatedAt   time.Time         `json:"created_at"             db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"             db:"updated_at"`
}

// CreateApplicationRequest represents parameters to apply to a posting.
// CandidateID is populated from the session, never from the request body.
type CreateApplicationRequest struct {
	CandidateID string  `json:"-"`
	JobID       string  `json:"job_id"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	ResumeURL   *string `json:"resume_url,omitempty"`
	CoverLetter *string `json:"cover_letter,omitempty"`
}

// Validate checks the application request.
func (r *CreateApplicationRequest) Validate() error {
	if strings.TrimSpace(r.JobID) == "" {
		return apperrors.ValidationField("job_id", "Job is required and cannot be empty")
	}
	if len(strings.TrimSpace(r.FullName)) < 2 {
		return apperrors.ValidationField("full_name", "Full name must be at least 2 characters")
	}
	email := strings.TrimSpace(r.Email)
	if email == "" || !strings.Contains(email, "@") {
		return apperrors.ValidationField("email", "A valid email address is required")
	}
	return nil
}

// UpdateApplicationStatusRequest moves an application through the pipeline.
type UpdateApplicationStatusRequest struct {
	Status ApplicationStatus `json:"status"`
}

// Validate checks the status transition request.
func (r *UpdateApplicationStatusRequest) Validate() error {
	if !r.Status.Valid() {
		return apperrors.ValidationField("status",
			"Status must be one of: submitted, reviewing, shortlisted, rejected, hired")
	}
	return nil
}

// ApplicationsListOptions controls paging and filtering for listing applications.
type ApplicationsListOptions struct {
	Limit       int
	Offset      int
	JobID       *string            // exact match
	CandidateID *string            // exact match
	EmployerID  *string            // applications to any of this employer's postings
	Status      *ApplicationStatus // exact match
}
