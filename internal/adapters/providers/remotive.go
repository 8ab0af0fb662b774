package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/humanlystaffing/jobboard-api/config"
	"github.com/humanlystaffing/jobboard-api/internal/aggregate"
	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
)

// remotiveCategoryIndustry maps Remotive categories onto platform industries.
var remotiveCategoryIndustry = map[string]string{
	"software-dev":     "Technology",
	"customer-support": "Customer Service",
	"design":           "Creative",
	"marketing":        "Marketing",
	"sales":            "Sales",
	"product":          "Technology",
	"business":         "Business",
	"data":             "Technology",
	"devops":           "Technology",
	"finance-legal":    "Finance",
	"hr":               "Human Resources",
	"qa":               "Technology",
	"writing":          "Creative",
	"all-others":       "Other",
}

// remotiveSkillKeywords are scanned in descriptions to populate the skills
// field, since Remotive provides no structured skill data.
var remotiveSkillKeywords = []string{
	"JavaScript", "Python", "React", "Node.js", "TypeScript", "AWS", "Docker",
	"Kubernetes", "SQL", "PostgreSQL", "MongoDB", "Git", "CI/CD", "Agile", "Scrum",
}

// RemotiveConnector fetches remote-only listings from the Remotive public API.
type RemotiveConnector struct {
	cfg    config.RemotiveConfig
	limit  int
	client *http.Client
}

// RemotiveConnectorOptions bundles dependencies for NewRemotiveConnector.
type RemotiveConnectorOptions struct {
	Config     config.RemotiveConfig
	FetchLimit int
	HTTPClient *http.Client
}

// NewRemotiveConnector creates a Remotive connector. No credentials needed.
func NewRemotiveConnector(opts RemotiveConnectorOptions) *RemotiveConnector {
	limit := opts.FetchLimit
	if limit <= 0 {
		limit = 50
	}
	return &RemotiveConnector{
		cfg:    opts.Config,
		limit:  limit,
		client: defaultedClient(opts.HTTPClient),
	}
}

func (c *RemotiveConnector) Name() string                { return "remotive" }
func (c *RemotiveConnector) Source() model.ListingSource { return model.SourceRemotive }

// Fetch retrieves current remote listings.
func (c *RemotiveConnector) Fetch(ctx context.Context) ([]aggregate.RawListing, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("remotive: parse base url: %w", err)
	}
	values := url.Values{}
	values.Set("limit", strconv.Itoa(c.limit))
	u.RawQuery = values.Encode()

	var payload remotiveResponse
	if err := getJSON(ctx, c.client, jsonRequest{Name: "remotive", URL: u.String()}, &payload); err != nil {
		return nil, err
	}

	listings := make([]aggregate.RawListing, 0, len(payload.Jobs))
	for _, j := range payload.Jobs {
		listings = append(listings, mapRemotiveJob(j))
	}
	return listings, nil
}

type remotiveResponse struct {
	JobCount int           `json:"job-count"`
	Jobs     []remotiveJob `json:"jobs"`
}

type remotiveJob struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	CompanyName     string `json:"company_name"`
	Category        string `json:"category"`
	JobType         string `json:"job_type"`
	PublicationDate string `json:"publication_date"`
	Location        string `json:"candidate_required_location"`
	Salary          string `json:"salary"`
	Description     string `json:"description"`
	URL             string `json:"url"`
}

func mapRemotiveJob(j remotiveJob) aggregate.RawListing {
	industry := remotiveCategoryIndustry[j.Category]
	if industry == "" {
		industry = "Technology"
	}

	location := j.Location
	if location == "" {
		location = "Worldwide"
	}

	var salary *string
	if s := strings.TrimSpace(j.Salary); s != "" {
		salary = &s
	}

	var skills []string
	descLower := strings.ToLower(j.Description)
	for _, kw := range remotiveSkillKeywords {
		if strings.Contains(descLower, strings.ToLower(kw)) {
			skills = append(skills, kw)
		}
	}

	return aggregate.RawListing{
		ExternalID:   strconv.FormatInt(j.ID, 10),
		Title:        j.Title,
		Company:      j.CompanyName,
		Location:     location,
		LocationType: "remote", // Remotive exclusively lists remote roles
		Type:         j.JobType,
		Salary:       salary,
		Industry:     industry,
		Description:  j.Description,
		Skills:       skills,
		ApplyURL:     j.URL,
		PostedAt:     parseTimeAny(j.PublicationDate),
	}
}
