package providers

import (
	"context"
	"time"

	"github.com/humanlystaffing/jobboard-api/internal/aggregate"
	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
)

// DemoConnector serves a small embedded listing set so the board renders
// without a configured database. It stands in for the internal connector in
// development and demo deployments.
type DemoConnector struct {
	now func() time.Time
}

// NewDemoConnector creates a demo connector. now defaults to time.Now.
func NewDemoConnector(now func() time.Time) *DemoConnector {
	if now == nil {
		now = time.Now
	}
	return &DemoConnector{now: now}
}

func (c *DemoConnector) Name() string                { return "demo" }
func (c *DemoConnector) Source() model.ListingSource { return model.SourceDemo }

// Fetch returns the embedded demo listings. Posted dates are relative to now
// so the feed never looks stale.
func (c *DemoConnector) Fetch(_ context.Context) ([]aggregate.RawListing, error) {
	now := c.now()
	listings := make([]aggregate.RawListing, len(demoListings))
	copy(listings, demoListings)
	for i := range listings {
		listings[i].PostedAt = now.AddDate(0, 0, -demoPostedDaysAgo[i])
	}
	return listings, nil
}

func strPtr(s string) *string { return &s }

var demoListings = []aggregate.RawListing{
	{
		ExternalID:   "1",
		Title:        "Senior Software Engineer",
		Company:      "Humanly Staffing",
		Location:     "Austin, TX",
		LocationType: "hybrid",
		Type:         "full-time",
		Salary:       strPtr("$140,000 - $180,000"),
		Industry:     "Technology",
		Description:  "Lead the design and delivery of distributed backend services for our client placement platform.",
		Requirements: []string{"7+ years of backend development", "Production experience with PostgreSQL and Redis"},
		Skills:       []string{"Go", "PostgreSQL", "Redis", "Kubernetes"},
		Featured:     true,
	},
	{
		ExternalID:   "2",
		Title:        "Registered Nurse - ICU",
		Company:      "Lakeside Medical Center",
		Location:     "Dallas, TX",
		LocationType: "onsite",
		Type:         "full-time",
		Salary:       strPtr("$75,000 - $95,000"),
		Industry:     "Healthcare",
		Description:  "Provide critical care nursing in a 30-bed intensive care unit with a supportive team culture.",
		Requirements: []string{"Active Texas RN license", "2+ years ICU experience"},
		Skills:       []string{"Critical Care", "Patient Assessment"},
		Featured:     true,
	},
	{
		ExternalID:   "3",
		Title:        "Staff Accountant",
		Company:      "Meridian Financial Group",
		Location:     "Houston, TX",
		LocationType: "hybrid",
		Type:         "full-time",
		Salary:       strPtr("$60,000 - $72,000"),
		Industry:     "Finance",
		Description:  "Own month-end close, reconciliations, and financial reporting for a growing advisory practice.",
		Requirements: []string{"Bachelor's degree in Accounting", "GAAP knowledge"},
		Skills:       []string{"Excel", "QuickBooks", "GAAP"},
	},
	{
		ExternalID:   "4",
		Title:        "Warehouse Operations Supervisor",
		Company:      "Crossdock Logistics",
		Location:     "San Antonio, TX",
		LocationType: "onsite",
		Type:         "full-time",
		Salary:       strPtr("$55,000 - $65,000"),
		Industry:     "Logistics",
		Description:  "Supervise a second-shift fulfillment team of 25 and drive safety and throughput metrics.",
		Requirements: []string{"3+ years warehouse leadership"},
		Skills:       []string{"WMS", "Team Leadership"},
	},
	{
		ExternalID:   "5",
		Title:        "Digital Marketing Specialist",
		Company:      "Brightline Agency",
		Location:     "Remote",
		LocationType: "remote",
		Type:         "contract",
		Salary:       strPtr("$45/hour"),
		Industry:     "Marketing",
		Description:  "Plan and execute paid search and social campaigns for B2B clients in the staffing sector.",
		Requirements: []string{"Google Ads certification", "Portfolio of managed campaigns"},
		Skills:       []string{"SEO", "Google Ads", "Analytics"},
		Featured:     true,
	},
	{
		ExternalID:   "6",
		Title:        "Customer Success Associate",
		Company:      "Humanly Staffing",
		Location:     "Austin, TX",
		LocationType: "remote",
		Type:         "part-time",
		Industry:     "Customer Service",
		Description:  "Support employers and candidates through onboarding, billing questions, and placement follow-ups.",
		Requirements: []string{"1+ year customer-facing experience"},
		Skills:       []string{"Zendesk", "Communication"},
	},
}

// demoPostedDaysAgo staggers demo posting dates, newest first.
var demoPostedDaysAgo = []int{1, 2, 4, 7, 10, 14}
