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

// usaJobsBenefits are the standard federal benefits attached to every posting;
// the API does not provide a structured benefits field.
var usaJobsBenefits = []string{
	"Federal employee benefits",
	"Health insurance",
	"Retirement plan",
	"Paid time off",
}

// USAJobsConnector fetches US federal government postings from the USAJobs
// search API. Requires an API key and a registered contact email.
type USAJobsConnector struct {
	cfg    config.USAJobsConfig
	limit  int
	client *http.Client
}

// USAJobsConnectorOptions bundles dependencies for NewUSAJobsConnector.
type USAJobsConnectorOptions struct {
	Config     config.USAJobsConfig
	FetchLimit int
	HTTPClient *http.Client
}

// NewUSAJobsConnector creates a USAJobs connector.
func NewUSAJobsConnector(opts USAJobsConnectorOptions) (*USAJobsConnector, error) {
	if !opts.Config.Active() {
		return nil, fmt.Errorf("usajobs: api key and contact email are required")
	}
	limit := opts.FetchLimit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return &USAJobsConnector{
		cfg:    opts.Config,
		limit:  limit,
		client: defaultedClient(opts.HTTPClient),
	}, nil
}

func (c *USAJobsConnector) Name() string                { return "usajobs" }
func (c *USAJobsConnector) Source() model.ListingSource { return model.SourceUSAJobs }

// Fetch retrieves current federal postings.
func (c *USAJobsConnector) Fetch(ctx context.Context) ([]aggregate.RawListing, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("usajobs: parse base url: %w", err)
	}
	values := url.Values{}
	values.Set("ResultsPerPage", strconv.Itoa(c.limit))
	values.Set("Page", "1")
	u.RawQuery = values.Encode()

	req := jsonRequest{
		Name: "usajobs",
		URL:  u.String(),
		Headers: map[string]string{
			"Authorization-Key": c.cfg.APIKey,
			"User-Agent":        c.cfg.Email,
		},
	}

	var payload usaJobsResponse
	if err := getJSON(ctx, c.client, req, &payload); err != nil {
		return nil, err
	}

	items := payload.SearchResult.SearchResultItems
	listings := make([]aggregate.RawListing, 0, len(items))
	for _, item := range items {
		listings = append(listings, mapUSAJobsPosition(item.MatchedObjectDescriptor))
	}
	return listings, nil
}

type usaJobsResponse struct {
	SearchResult struct {
		SearchResultCount int `json:"SearchResultCount"`
		SearchResultItems []struct {
			MatchedObjectDescriptor usaJobsPosition `json:"MatchedObjectDescriptor"`
		} `json:"SearchResultItems"`
	} `json:"SearchResult"`
}

type usaJobsPosition struct {
	PositionID              string `json:"PositionID"`
	PositionTitle           string `json:"PositionTitle"`
	OrganizationName        string `json:"OrganizationName"`
	PositionLocationDisplay string `json:"PositionLocationDisplay"`
	PositionStartDate       string `json:"PositionStartDate"`
	ApplyOnlineURL          string `json:"ApplyOnlineUrl"`
	PositionRemuneration    []struct {
		MinimumRange     string `json:"MinimumRange"`
		MaximumRange     string `json:"MaximumRange"`
		RateIntervalCode string `json:"RateIntervalCode"`
	} `json:"PositionRemuneration"`
	JobCategory []struct {
		Name string `json:"Name"`
	} `json:"JobCategory"`
	UserArea struct {
		Details struct {
			JobSummary   string `json:"JobSummary"`
			Requirements string `json:"Requirements"`
		} `json:"Details"`
	} `json:"UserArea"`
}

func mapUSAJobsPosition(p usaJobsPosition) aggregate.RawListing {
	company := p.OrganizationName
	if company == "" {
		company = "U.S. Government"
	}

	location := p.PositionLocationDisplay
	if location == "" {
		location = "Washington, DC"
	}

	locationType := ""
	locLower := strings.ToLower(location)
	if strings.Contains(locLower, "remote") || strings.Contains(locLower, "telework") {
		locationType = "remote"
	}

	applyURL := p.ApplyOnlineURL
	if applyURL == "" {
		applyURL = "https://www.usajobs.gov/job/" + p.PositionID
	}

	var requirements []string
	if r := strings.TrimSpace(p.UserArea.Details.Requirements); r != "" {
		requirements = []string{r}
	}

	return aggregate.RawListing{
		ExternalID:   p.PositionID,
		Title:        p.PositionTitle,
		Company:      company,
		Location:     location,
		LocationType: locationType,
		Type:         "full-time",
		Salary:       usaJobsSalary(p),
		Industry:     usaJobsIndustry(p),
		Description:  p.UserArea.Details.JobSummary,
		Requirements: requirements,
		ApplyURL:     applyURL,
		PostedAt:     parseTimeAny(p.PositionStartDate),
	}
}

func usaJobsSalary(p usaJobsPosition) *string {
	if len(p.PositionRemuneration) == 0 {
		return nil
	}
	r := p.PositionRemuneration[0]
	min, _ := strconv.ParseFloat(r.MinimumRange, 64)
	max, _ := strconv.ParseFloat(r.MaximumRange, 64)
	if min <= 0 || max <= 0 {
		return nil
	}
	period := "/hour"
	if r.RateIntervalCode == "PA" {
		period = "/year"
	}
	s := fmt.Sprintf("$%s - $%s%s", formatThousands(min), formatThousands(max), period)
	return &s
}

func usaJobsIndustry(p usaJobsPosition) string {
	category := ""
	if len(p.JobCategory) > 0 {
		category = strings.ToLower(p.JobCategory[0].Name)
	}
	switch {
	case strings.Contains(category, "information technology"),
		strings.Contains(category, "engineering"):
		return "Technology"
	case strings.Contains(category, "medical"), strings.Contains(category, "health"):
		return "Healthcare"
	case strings.Contains(category, "accounting"), strings.Contains(category, "financial"):
		return "Finance"
	default:
		return "Government"
	}
}
