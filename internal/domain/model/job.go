package model

import (
	"strings"
	"time"

	apperrors "github.com/humanlystaffing/jobboard-api/internal/errors"
)

const (
	minJobTitleLen       = 5
	minJobLocationLen    = 3
	minJobDescriptionLen = 100
)

// JobStatus represents the lifecycle state of an internal posting.
type JobStatus string

const (
	// JobStatusActive postings are visible on the public search surface.
	JobStatusActive JobStatus = "active"
	// JobStatusDraft postings are visible only to their owner.
	JobStatusDraft JobStatus = "draft"
	// JobStatusClosed postings no longer accept applications.
	JobStatusClosed JobStatus = "closed"
)

// Valid returns true if the JobStatus is one of the supported values.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusActive, JobStatusDraft, JobStatusClosed:
		return true
	default:
		return false
	}
}

// ExperienceLevel represents the seniority a posting targets.
type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

// Valid returns true if the ExperienceLevel is one of the supported values.
func (e ExperienceLevel) Valid() bool {
	switch e {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive:
		return true
	default:
		return false
	}
}

// Job represents an internal job posting row.
type Job struct {
	ID              string          `json:"id"                         db:"id"`
	EmployerID      string          `json:"employer_id"                db:"employer_id"`
	Title           string          `json:"title"                      db:"title"`
	Company         string          `json:"company"                    db:"company"`
	Department      *string         `json:"department,omitempty"       db:"department"`
	Location        string          `json:"location"                   db:"location"`
	LocationType    LocationType    `json:"location_type"              db:"location_type"`
	Type            EmploymentType  `json:"type"                       db:"type"`
	SalaryRange     *string         `json:"salary_range,omitempty"     db:"salary_range"`
	ShowSalary      bool            `json:"show_salary"                db:"show_salary"`
	ExperienceLevel ExperienceLevel `json:"experience_level"           db:"experience_level"`
	Industry        string          `json:"industry"                   db:"industry"`
	Description     string          `json:"description"                db:"description"`
	Requirements    []string        `json:"requirements"               db:"requirements"`
	Benefits        []string        `json:"benefits"                   db:"benefits"`
	Skills          []string        `json:"skills"                     db:"skills"`
	Featured        bool            `json:"featured"                   db:"featured"`
	Status          JobStatus       `json:"status"                     db:"status"`
	CreatedAt       time.Time       `json:"created_at"                 db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"                 db:"updated_at"`
}

// Listing converts an internal posting into the canonical aggregated shape.
// Internal listings carry no apply URL: candidates apply on the platform.
func (j *Job) Listing() JobListing {
	var salary *string
	if j.ShowSalary && j.SalaryRange != nil && *j.SalaryRange != "" {
		s := *j.SalaryRange
		salary = &s
	}
	return JobListing{
		ID:           string(SourceInternal) + "_" + j.ID,
		Source:       SourceInternal,
		ExternalID:   j.ID,
		Title:        j.Title,
		Company:      j.Company,
		Location:     j.Location,
		LocationType: j.LocationType,
		Type:         j.Type,
		Salary:       salary,
		Industry:     j.Industry,
		Description:  j.Description,
		Requirements: j.Requirements,
		Skills:       j.Skills,
		Featured:     j.Featured,
		PostedAt:     j.CreatedAt,
	}
}

// CreateJobRequest represents parameters to create a Job posting.
// EmployerID is populated from the session, never from the request body.
type CreateJobRequest struct {
	EmployerID      string          `json:"-"`
	Title           string          `json:"title"`
	Company         string          `json:"company"`
	Department      *string         `json:"department,omitempty"`
	Location        string          `json:"location"`
	LocationType    LocationType    `json:"location_type"`
	Type            EmploymentType  `json:"type"`
	SalaryRange     *string         `json:"salary_range,omitempty"`
	ShowSalary      bool            `json:"show_salary"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	Industry        string          `json:"industry"`
	Description     string          `json:"description"`
	Requirements    []string        `json:"requirements"`
	Benefits        []string        `json:"benefits,omitempty"`
	Skills          []string        `json:"skills"`
	Featured        bool            `json:"featured"`
	Status          JobStatus       `json:"status,omitempty"`
}

// Validate checks the request against posting constraints.
func (r *CreateJobRequest) Validate() error {
	if len(strings.TrimSpace(r.Title)) < minJobTitleLen {
		return apperrors.ValidationField("title", "Job title must be at least 5 characters")
	}
	if strings.TrimSpace(r.Company) == "" {
		return apperrors.ValidationField("company", "Company is required and cannot be empty")
	}
	if len(strings.TrimSpace(r.Location)) < minJobLocationLen {
		return apperrors.ValidationField("location", "Location must be at least 3 characters")
	}
	if !r.LocationType.Valid() {
		return apperrors.ValidationField("location_type", "Location type must be one of: onsite, remote, hybrid")
	}
	if !r.Type.Valid() {
		return apperrors.ValidationField("type",
			"Type must be one of: full-time, part-time, contract, temporary, internship")
	}
	if !r.ExperienceLevel.Valid() {
		return apperrors.ValidationField("experience_level",
			"Experience level must be one of: entry, mid, senior, executive")
	}
	if len(strings.TrimSpace(r.Description)) < minJobDescriptionLen {
		return apperrors.ValidationField("description", "Description must be at least 100 characters")
	}
	if len(r.Requirements) == 0 {
		return apperrors.ValidationField("requirements", "At least one requirement is required")
	}
	for _, req := range r.Requirements {
		if strings.TrimSpace(req) == "" {
			return apperrors.ValidationField("requirements", "Requirements cannot contain empty entries")
		}
	}
	if len(r.Skills) == 0 {
		return apperrors.ValidationField("skills", "At least one skill is required")
	}
	if r.Status != "" && !r.Status.Valid() {
		return apperrors.ValidationField("status", "Status must be one of: active, draft, closed")
	}
	return nil
}

// UpdateJobRequest represents parameters to update a Job posting.
// Nil fields are left unchanged.
type UpdateJobRequest struct {
	Title           *string          `json:"title,omitempty"`
	Company         *string          `json:"company,omitempty"`
	Department      *string          `json:"department,omitempty"`
	Location        *string          `json:"location,omitempty"`
	LocationType    *LocationType    `json:"location_type,omitempty"`
	Type            *EmploymentType  `json:"type,omitempty"`
	SalaryRange     *string          `json:"salary_range,omitempty"`
	ShowSalary      *bool            `json:"show_salary,omitempty"`
	ExperienceLevel *ExperienceLevel `json:"experience_level,omitempty"`
	Industry        *string          `json:"industry,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Requirements    []string         `json:"requirements,omitempty"`
	Benefits        []string         `json:"benefits,omitempty"`
	Skills          []string         `json:"skills,omitempty"`
	Featured        *bool            `json:"featured,omitempty"`
	Status          *JobStatus       `json:"status,omitempty"`
}

// Validate checks that the update is non-empty and its set fields are sound.
func (r *UpdateJobRequest) Validate() error {
	if r.Title == nil && r.Company == nil && r.Department == nil && r.Location == nil &&
		r.LocationType == nil && r.Type == nil && r.SalaryRange == nil && r.ShowSalary == nil &&
		r.ExperienceLevel == nil && r.Industry == nil && r.Description == nil &&
		r.Requirements == nil && r.Benefits == nil && r.Skills == nil &&
		r.Featured == nil && r.Status == nil {
		return apperrors.Validation("at least one field must be updated")
	}
	if r.Title != nil && len(strings.TrimSpace(*r.Title)) < minJobTitleLen {
		return apperrors.ValidationField("title", "Job title must be at least 5 characters")
	}
	if r.Location != nil && len(strings.TrimSpace(*r.Location)) < minJobLocationLen {
		return apperrors.ValidationField("location", "Location must be at least 3 characters")
	}
	if r.LocationType != nil && !r.LocationType.Valid() {
		return apperrors.ValidationField("location_type", "Location type must be one of: onsite, remote, hybrid")
	}
	if r.Type != nil && !r.Type.Valid() {
		return apperrors.ValidationField("type",
			"Type must be one of: full-time, part-time, contract, temporary, internship")
	}
	if r.ExperienceLevel != nil && !r.ExperienceLevel.Valid() {
		return apperrors.ValidationField("experience_level",
			"Experience level must be one of: entry, mid, senior, executive")
	}
	if r.Description != nil && len(strings.TrimSpace(*r.Description)) < minJobDescriptionLen {
		return apperrors.ValidationField("description", "Description must be at least 100 characters")
	}
	if r.Status != nil && !r.Status.Valid() {
		return apperrors.ValidationField("status", "Status must be one of: active, draft, closed")
	}
	return nil
}

// JobsListOptions controls paging and filtering for listing internal postings.
type JobsListOptions struct {
	Limit      int
	Offset     int
	EmployerID *string    // exact match
	Status     *JobStatus // exact match
	Featured   *bool      // exact match
}
