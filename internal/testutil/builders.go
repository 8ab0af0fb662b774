package testutil

import (
	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
)

// JobRequestBuilder provides a fluent interface for building CreateJobRequest objects for testing.
type JobRequestBuilder struct {
	req *model.CreateJobRequest
}

// NewJobRequest creates a new JobRequestBuilder with sensible defaults.
func NewJobRequest() *JobRequestBuilder {
	return &JobRequestBuilder{
		req: &model.CreateJobRequest{
			EmployerID:      "employer-1",
			Title:           "Senior Software Engineer",
			Company:         "Humanly Staffing",
			Location:        "Seattle, WA",
			LocationType:    model.LocationHybrid,
			Type:            model.TypeFullTime,
			ExperienceLevel: model.ExperienceSenior,
			Industry:        "Technology",
			Description: "Build and operate the backend services powering our hiring platform, " +
				"from the public search API to the candidate application pipeline, " +
				"working with product and recruiting teams to ship reliably.",
			Requirements: []string{"5+ years of backend experience"},
			Skills:       []string{"Go", "PostgreSQL"},
		},
	}
}

// WithEmployerID sets the owning employer.
func (b *JobRequestBuilder) WithEmployerID(id string) *JobRequestBuilder {
	b.req.EmployerID = id
	return b
}

// WithTitle sets the job title.
func (b *JobRequestBuilder) WithTitle(title string) *JobRequestBuilder {
	b.req.Title = title
	return b
}

// WithCompany sets the company name.
func (b *JobRequestBuilder) WithCompany(company string) *JobRequestBuilder {
	b.req.Company = company
	return b
}

// WithLocation sets the job location.
func (b *JobRequestBuilder) WithLocation(location string) *JobRequestBuilder {
	b.req.Location = location
	return b
}

// WithLocationType sets the location type.
func (b *JobRequestBuilder) WithLocationType(lt model.LocationType) *JobRequestBuilder {
	b.req.LocationType = lt
	return b
}

// WithType sets the employment type.
func (b *JobRequestBuilder) WithType(t model.EmploymentType) *JobRequestBuilder {
	b.req.Type = t
	return b
}

// WithIndustry sets the industry.
func (b *JobRequestBuilder) WithIndustry(industry string) *JobRequestBuilder {
	b.req.Industry = industry
	return b
}

// WithSalaryRange sets the salary range text.
func (b *JobRequestBuilder) WithSalaryRange(salary string) *JobRequestBuilder {
	b.req.SalaryRange = &salary
	b.req.ShowSalary = true
	return b
}

// WithFeatured marks the posting as featured.
func (b *JobRequestBuilder) WithFeatured(featured bool) *JobRequestBuilder {
	b.req.Featured = featured
	return b
}

// WithStatus sets the posting status.
func (b *JobRequestBuilder) WithStatus(status model.JobStatus) *JobRequestBuilder {
	b.req.Status = status
	return b
}

// Build returns the constructed request.
func (b *JobRequestBuilder) Build() *model.CreateJobRequest {
	req := *b.req
	return &req
}

// ApplicationRequestBuilder builds CreateApplicationRequest objects for testing.
type ApplicationRequestBuilder struct {
	req *model.CreateApplicationRequest
}

// NewApplicationRequest creates a builder with sensible defaults.
func NewApplicationRequest(jobID string) *ApplicationRequestBuilder {
	return &ApplicationRequestBuilder{
		req: &model.CreateApplicationRequest{
			CandidateID: "candidate-1",
			JobID:       jobID,
			FullName:    "Jordan Reyes",
			Email:       "jordan.reyes@example.com",
		},
	}
}

// WithCandidateID sets the applying candidate.
func (b *ApplicationRequestBuilder) WithCandidateID(id string) *ApplicationRequestBuilder {
	b.req.CandidateID = id
	return b
}

// WithFullName sets the applicant name.
func (b *ApplicationRequestBuilder) WithFullName(name string) *ApplicationRequestBuilder {
	b.req.FullName = name
	return b
}

// WithEmail sets the applicant email.
func (b *ApplicationRequestBuilder) WithEmail(email string) *ApplicationRequestBuilder {
	b.req.Email = email
	return b
}

// WithCoverLetter sets the cover letter text.
func (b *ApplicationRequestBuilder) WithCoverLetter(text string) *ApplicationRequestBuilder {
	b.req.CoverLetter = &text
	return b
}

// Build returns the constructed request.
func (b *ApplicationRequestBuilder) Build() *model.CreateApplicationRequest {
	req := *b.req
	return &req
}
