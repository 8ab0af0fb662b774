package providers

import (
	"context"

	"github.com/humanlystaffing/jobboard-api/internal/aggregate"
	"github.com/humanlystaffing/jobboard-api/internal/core"
	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
)

// internalFetchLimit caps how many postings one aggregation pass pulls from
// the database.
const internalFetchLimit = 500

// InternalConnector exposes the platform's own active postings to the
// aggregator. It is registered first so internal records win ID collisions.
type InternalConnector struct {
	jobs core.JobRepository
}

// NewInternalConnector creates an internal postings connector.
func NewInternalConnector(jobs core.JobRepository) *InternalConnector {
	return &InternalConnector{jobs: jobs}
}

func (c *InternalConnector) Name() string                { return "internal" }
func (c *InternalConnector) Source() model.ListingSource { return model.SourceInternal }

// Fetch returns active postings as raw listings. Draft and closed postings
// never reach the public surface.
func (c *InternalConnector) Fetch(ctx context.Context) ([]aggregate.RawListing, error) {
	status := model.JobStatusActive
	jobs, err := c.jobs.List(ctx, &model.JobsListOptions{
		Status: &status,
		Limit:  internalFetchLimit,
	})
	if err != nil {
		return nil, err
	}

	listings := make([]aggregate.RawListing, 0, len(jobs))
	for _, j := range jobs {
		listings = append(listings, rawFromJob(j))
	}
	return listings, nil
}

func rawFromJob(j *model.Job) aggregate.RawListing {
	l := j.Listing()
	return aggregate.RawListing{
		ExternalID:   j.ID,
		Title:        l.Title,
		Company:      l.Company,
		Location:     l.Location,
		LocationType: string(l.LocationType),
		Type:         string(l.Type),
		Salary:       l.Salary,
		Industry:     l.Industry,
		Description:  l.Description,
		Requirements: l.Requirements,
		Skills:       l.Skills,
		Featured:     l.Featured,
		PostedAt:     l.PostedAt,
	}
}
