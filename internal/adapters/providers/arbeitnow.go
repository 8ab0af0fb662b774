package providers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/humanlystaffing/jobboard-api/config"
	"github.com/humanlystaffing/jobboard-api/internal/aggregate"
	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
)

// ArbeitnowConnector fetches listings from the Arbeitnow job board API.
type ArbeitnowConnector struct {
	cfg    config.ArbeitnowConfig
	limit  int
	client *http.Client
}

// ArbeitnowConnectorOptions bundles dependencies for NewArbeitnowConnector.
type ArbeitnowConnectorOptions struct {
	Config     config.ArbeitnowConfig
	FetchLimit int
	HTTPClient *http.Client
}

// NewArbeitnowConnector creates an Arbeitnow connector. No credentials needed.
func NewArbeitnowConnector(opts ArbeitnowConnectorOptions) *ArbeitnowConnector {
	limit := opts.FetchLimit
	if limit <= 0 {
		limit = 100
	}
	return &ArbeitnowConnector{
		cfg:    opts.Config,
		limit:  limit,
		client: defaultedClient(opts.HTTPClient),
	}
}

func (c *ArbeitnowConnector) Name() string                { return "arbeitnow" }
func (c *ArbeitnowConnector) Source() model.ListingSource { return model.SourceArbeitnow }

// Fetch retrieves the first page of the board feed. The API paginates but one
// page is enough per aggregation pass.
func (c *ArbeitnowConnector) Fetch(ctx context.Context) ([]aggregate.RawListing, error) {
	var payload arbeitnowResponse
	if err := getJSON(ctx, c.client, jsonRequest{Name: "arbeitnow", URL: c.cfg.BaseURL + "?page=1"}, &payload); err != nil {
		return nil, err
	}

	n := len(payload.Data)
	if n > c.limit {
		n = c.limit
	}
	listings := make([]aggregate.RawListing, 0, n)
	for _, j := range payload.Data[:n] {
		listings = append(listings, mapArbeitnowJob(j))
	}
	return listings, nil
}

type arbeitnowResponse struct {
	Data []arbeitnowJob `json:"data"`
	Meta struct {
		Total int `json:"total"`
	} `json:"meta"`
}

type arbeitnowJob struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	CompanyName string   `json:"company_name"`
	Location    string   `json:"location"`
	Remote      bool     `json:"remote"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	JobTypes    []string `json:"job_types"`
	CreatedAt   int64    `json:"created_at"`
}

func mapArbeitnowJob(j arbeitnowJob) aggregate.RawListing {
	isRemote := j.Remote || strings.Contains(strings.ToLower(j.Location), "remote")

	location := j.Location
	if location == "" {
		if isRemote {
			location = "Remote"
		} else {
			location = "Not Specified"
		}
	}

	locationType := ""
	if isRemote {
		locationType = "remote"
	}

	var postedAt time.Time
	if j.CreatedAt > 0 {
		postedAt = time.Unix(j.CreatedAt, 0).UTC()
	}

	return aggregate.RawListing{
		ExternalID:   j.Slug,
		Title:        j.Title,
		Company:      j.CompanyName,
		Location:     location,
		LocationType: locationType,
		Type:         strings.Join(j.JobTypes, " "),
		Industry:     inferIndustryFromTags(j.Tags, j.Title),
		Description:  j.Description,
		Skills:       j.Tags,
		ApplyURL:     j.URL,
		PostedAt:     postedAt,
	}
}

// industryKeywordRules maps keyword groups to industries. Arbeitnow has no
// category field, so the industry is inferred from tags and title text.
var industryKeywordRules = []struct {
	industry string
	keywords []string
}{
	{"Technology", []string{"software", "developer", "engineer", "devops", "data"}},
	{"Marketing", []string{"marketing", "seo", "content"}},
	{"Sales", []string{"sales", "business development"}},
	{"Finance", []string{"finance", "accounting", "financial"}},
	{"Creative", []string{"design", "ux", "ui", "creative"}},
	{"Human Resources", []string{"hr", "human resources", "recruiting"}},
	{"Customer Service", []string{"customer", "support"}},
	{"Healthcare", []string{"healthcare", "medical", "health"}},
}

func inferIndustryFromTags(tags []string, title string) string {
	allText := strings.ToLower(strings.Join(append(append([]string{}, tags...), title), " "))
	for _, rule := range industryKeywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(allText, kw) {
				return rule.industry
			}
		}
	}
	return "Other"
}
