package aggregate

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
)

const (
	defaultIndustry    = "General"
	defaultDescription = "No description provided."
)

// Normalizer maps raw provider records into the canonical JobListing shape.
// Records missing a title, company or location are dropped rather than
// surfaced half-empty.
type Normalizer struct {
	logger *slog.Logger
	now    func() time.Time
}

// NormalizerOptions bundles dependencies for NewNormalizer.
type NormalizerOptions struct {
	Logger *slog.Logger
	Now    func() time.Time // defaults to time.Now; stamped dates are normalized to UTC
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(opts NormalizerOptions) *Normalizer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Normalizer{logger: logger, now: now}
}

// Normalize converts one provider's raw records into canonical listings.
// The listing ID is the external ID prefixed with the source tag so that
// identifiers never collide across providers.
func (n *Normalizer) Normalize(source model.ListingSource, raw []RawListing) []model.JobListing {
	listings := make([]model.JobListing, 0, len(raw))
	skipped := 0
	for _, r := range raw {
		l, ok := n.normalizeOne(source, r)
		if !ok {
			skipped++
			continue
		}
		listings = append(listings, l)
	}
	if skipped > 0 {
		n.logger.Warn("skipped incomplete provider records",
			"source", string(source), "skipped", skipped, "kept", len(listings))
	}
	return listings
}

func (n *Normalizer) normalizeOne(source model.ListingSource, r RawListing) (model.JobListing, bool) {
	title := strings.TrimSpace(r.Title)
	company := strings.TrimSpace(r.Company)
	location := strings.TrimSpace(r.Location)
	if title == "" || company == "" || location == "" {
		return model.JobListing{}, false
	}

	externalID := strings.TrimSpace(r.ExternalID)
	if externalID == "" {
		// Providers occasionally omit stable IDs; derive one that is at least
		// stable for identical postings so dedup still works.
		externalID = syntheticID(title, company)
	}

	l := model.JobListing{
		ID:           fmt.Sprintf("%s_%s", source, externalID),
		Source:       source,
		ExternalID:   externalID,
		Title:        title,
		Company:      company,
		Location:     location,
		LocationType: normalizeLocationType(r.LocationType, location),
		Type:         model.ParseEmploymentType(r.Type),
		Salary:       r.Salary,
		Industry:     strings.TrimSpace(r.Industry),
		Description:  strings.TrimSpace(r.Description),
		Requirements: compactStrings(r.Requirements),
		Skills:       compactStrings(r.Skills),
		Featured:     r.Featured,
		PostedAt:     r.PostedAt,
		ApplyURL:     strings.TrimSpace(r.ApplyURL),
	}

	if l.Industry == "" {
		l.Industry = defaultIndustry
	}
	if l.Description == "" {
		l.Description = defaultDescription
	}
	// Stamp in UTC so a freshly normalized listing matches its snapshot
	// round-trip; JSON decoding yields UTC times.
	if l.PostedAt.IsZero() {
		l.PostedAt = n.now().UTC()
	}
	if l.ApplyURL != "" {
		l.ViaDomain = registrableDomain(l.ApplyURL)
	}
	return l, true
}

// normalizeLocationType maps free-form provider values onto the canonical
// enum, falling back to sniffing the location text.
func normalizeLocationType(raw, location string) model.LocationType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "remote", "fully remote", "anywhere":
		return model.LocationRemote
	case "hybrid":
		return model.LocationHybrid
	case "onsite", "on-site", "on site", "in office":
		return model.LocationOnsite
	}
	if strings.Contains(strings.ToLower(location), "remote") {
		return model.LocationRemote
	}
	return model.LocationOnsite
}

// registrableDomain extracts the eTLD+1 of an apply URL ("via example.com"
// attribution). Returns empty on unparsable hosts.
func registrableDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	etld1, err := publicsuffix.EffectiveTLDPlusOne(u.Hostname())
	if err != nil {
		return ""
	}
	return etld1
}

func syntheticID(title, company string) string {
	slug := strings.ToLower(title + "-" + company)
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	return strings.Trim(slug, "-")
}

func compactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
