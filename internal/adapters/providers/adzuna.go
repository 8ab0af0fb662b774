package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/humanlystaffing/jobboard-api/config"
	"github.com/humanlystaffing/jobboard-api/internal/aggregate"
	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
)

// adzunaCategoryIndustry maps Adzuna category tags onto platform industries.
var adzunaCategoryIndustry = map[string]string{
	"it-jobs":                   "Technology",
	"engineering-jobs":          "Technology",
	"healthcare-nursing-jobs":   "Healthcare",
	"accounting-finance-jobs":   "Finance",
	"manufacturing-jobs":        "Manufacturing",
	"retail-jobs":               "Retail",
	"logistics-warehouse-jobs":  "Logistics",
	"hr-jobs":                   "Human Resources",
	"legal-jobs":                "Legal",
	"marketing-jobs":            "Marketing",
	"sales-jobs":                "Sales",
	"admin-jobs":                "Administrative",
	"customer-services-jobs":    "Customer Service",
	"hospitality-catering-jobs": "Hospitality",
	"construction-jobs":         "Construction",
	"energy-oil-gas-jobs":       "Energy",
	"graduate-jobs":             "Entry Level",
	"consultancy-jobs":          "Consulting",
	"scientific-qa-jobs":        "Science",
	"creative-design-jobs":      "Creative",
}

// AdzunaConnector fetches listings from the Adzuna search API.
type AdzunaConnector struct {
	cfg    config.AdzunaConfig
	limit  int
	client *http.Client
}

// AdzunaConnectorOptions bundles dependencies for NewAdzunaConnector.
type AdzunaConnectorOptions struct {
	Config     config.AdzunaConfig
	FetchLimit int
	HTTPClient *http.Client
}

// NewAdzunaConnector creates an Adzuna connector. Credentials are required.
func NewAdzunaConnector(opts AdzunaConnectorOptions) (*AdzunaConnector, error) {
	if !opts.Config.Active() {
		return nil, fmt.Errorf("adzuna: app_id and app_key are required")
	}
	limit := opts.FetchLimit
	if limit <= 0 || limit > 50 {
		limit = 50 // Adzuna caps results_per_page at 50
	}
	return &AdzunaConnector{
		cfg:    opts.Config,
		limit:  limit,
		client: defaultedClient(opts.HTTPClient),
	}, nil
}

func (c *AdzunaConnector) Name() string                { return "adzuna" }
func (c *AdzunaConnector) Source() model.ListingSource { return model.SourceAdzuna }

// Fetch retrieves the first page of current postings.
func (c *AdzunaConnector) Fetch(ctx context.Context) ([]aggregate.RawListing, error) {
	u, err := c.searchURL()
	if err != nil {
		return nil, err
	}

	var payload adzunaSearchResponse
	if err := getJSON(ctx, c.client, jsonRequest{Name: "adzuna", URL: u}, &payload); err != nil {
		return nil, err
	}

	listings := make([]aggregate.RawListing, 0, len(payload.Results))
	for _, j := range payload.Results {
		listings = append(listings, mapAdzunaJob(j))
	}
	return listings, nil
}

func (c *AdzunaConnector) searchURL() (string, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("adzuna: parse base url: %w", err)
	}
	u.Path = path.Join(u.Path, "v1", "api", "jobs", c.cfg.Country, "search", "1")

	values := url.Values{}
	values.Set("app_id", c.cfg.AppID)
	values.Set("app_key", c.cfg.AppKey)
	values.Set("results_per_page", strconv.Itoa(c.limit))
	values.Set("content-type", "application/json")
	u.RawQuery = values.Encode()
	return u.String(), nil
}

type adzunaSearchResponse struct {
	Results []adzunaJob `json:"results"`
	Count   int         `json:"count"`
}

type adzunaJob struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	RedirectURL  string  `json:"redirect_url"`
	Created      string  `json:"created"`
	SalaryMin    float64 `json:"salary_min"`
	SalaryMax    float64 `json:"salary_max"`
	ContractTime string  `json:"contract_time"`
	ContractType string  `json:"contract_type"`
	Company      struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Category struct {
		Tag string `json:"tag"`
	} `json:"category"`
}

func mapAdzunaJob(j adzunaJob) aggregate.RawListing {
	industry := adzunaCategoryIndustry[j.Category.Tag]
	if industry == "" {
		industry = "Other"
	}

	locationType := ""
	if strings.Contains(strings.ToLower(j.Location.DisplayName), "remote") ||
		strings.Contains(strings.ToLower(j.Title), "remote") {
		locationType = "remote"
	}

	return aggregate.RawListing{
		ExternalID:   j.ID,
		Title:        j.Title,
		Company:      j.Company.DisplayName,
		Location:     j.Location.DisplayName,
		LocationType: locationType,
		Type:         adzunaContractType(j.ContractTime, j.ContractType),
		Salary:       formatSalaryRange(j.SalaryMin, j.SalaryMax),
		Industry:     industry,
		Description:  j.Description,
		ApplyURL:     j.RedirectURL,
		PostedAt:     parseTimeAny(j.Created),
	}
}

func adzunaContractType(contractTime, contractType string) string {
	if contractType == "contract" {
		return "contract"
	}
	if contractTime == "part_time" {
		return "part-time"
	}
	return "full-time"
}

// formatSalaryRange renders numeric bounds as display text, matching the
// board's listing card format. Returns nil when neither bound is present.
func formatSalaryRange(min, max float64) *string {
	var s string
	switch {
	case min > 0 && max > 0:
		s = fmt.Sprintf("$%s - $%s", formatThousands(min), formatThousands(max))
	case min > 0:
		s = fmt.Sprintf("From $%s", formatThousands(min))
	case max > 0:
		s = fmt.Sprintf("Up to $%s", formatThousands(max))
	default:
		return nil
	}
	return &s
}

func formatThousands(v float64) string {
	n := int64(v)
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
