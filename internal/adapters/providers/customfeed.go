package providers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/humanlystaffing/jobboard-api/config"
	"github.com/humanlystaffing/jobboard-api/internal/aggregate"
	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
)

// CustomFeedConnector fetches a generic JSON feed and extracts listing fields
// with operator-supplied JMESPath expressions. It lets a deployment wire in
// one extra provider through configuration alone.
type CustomFeedConnector struct {
	cfg    config.CustomFeedConfig
	client *http.Client
}

// CustomFeedConnectorOptions bundles dependencies for NewCustomFeedConnector.
type CustomFeedConnectorOptions struct {
	Config     config.CustomFeedConfig
	HTTPClient *http.Client
}

// NewCustomFeedConnector creates a custom feed connector. All configured
// JMESPath expressions are validated up front so a typo fails at startup
// rather than silently dropping every record.
func NewCustomFeedConnector(opts CustomFeedConnectorOptions) (*CustomFeedConnector, error) {
	if !opts.Config.Active() {
		return nil, fmt.Errorf("custom feed: enabled flag and url are required")
	}
	for _, expr := range opts.Config.Expressions() {
		if expr == "" {
			continue
		}
		if _, err := jmespath.Compile(expr); err != nil {
			return nil, fmt.Errorf("custom feed: invalid JMESPath %q: %w", expr, err)
		}
	}
	return &CustomFeedConnector{
		cfg:    opts.Config,
		client: defaultedClient(opts.HTTPClient),
	}, nil
}

func (c *CustomFeedConnector) Name() string                { return c.cfg.Name }
func (c *CustomFeedConnector) Source() model.ListingSource { return model.SourceCustom }

// Fetch retrieves the feed and extracts one RawListing per item. Items whose
// extraction fails are skipped; the normalizer handles missing fields.
func (c *CustomFeedConnector) Fetch(ctx context.Context) ([]aggregate.RawListing, error) {
	var doc any
	if err := getJSON(ctx, c.client, jsonRequest{Name: c.cfg.Name, URL: c.cfg.URL}, &doc); err != nil {
		return nil, err
	}

	itemsVal, err := jmespath.Search(c.cfg.ItemsPath, doc)
	if err != nil {
		return nil, fmt.Errorf("custom feed: items path: %w", err)
	}
	items, ok := itemsVal.([]any)
	if !ok {
		return nil, fmt.Errorf("custom feed: items path %q did not select an array", c.cfg.ItemsPath)
	}

	listings := make([]aggregate.RawListing, 0, len(items))
	for _, item := range items {
		var salary *string
		if s := extractString(c.cfg.SalaryPath, item); s != "" {
			salary = &s
		}
		listings = append(listings, aggregate.RawListing{
			ExternalID:  extractString(c.cfg.IDPath, item),
			Title:       extractString(c.cfg.TitlePath, item),
			Company:     extractString(c.cfg.CompanyPath, item),
			Location:    extractString(c.cfg.LocationPath, item),
			Type:        extractString(c.cfg.TypePath, item),
			Salary:      salary,
			Industry:    extractString(c.cfg.IndustryPath, item),
			Description: extractString(c.cfg.DescPath, item),
			ApplyURL:    extractString(c.cfg.URLPath, item),
			PostedAt:    parseTimeAny(extractString(c.cfg.PostedPath, item)),
		})
	}
	return listings, nil
}

// extractString evaluates a JMESPath expression against one feed item and
// coerces scalar results to a string. Missing or non-scalar values yield "".
func extractString(expr string, item any) string {
	if expr == "" {
		return ""
	}
	v, err := jmespath.Search(expr, item)
	if err != nil || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}
