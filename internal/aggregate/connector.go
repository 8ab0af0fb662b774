// Package aggregate merges job listings from heterogeneous providers into one
// canonical, cached view. It fans out to registered source connectors,
// normalizes each provider's record shape, deduplicates by listing identifier,
// and memoizes the merged result for a bounded TTL.
package aggregate

import (
	"context"
	"time"

	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
)

// RawListing is the loose record shape a connector produces before
// normalization. Only ExternalID, Title, Company and Location are required;
// everything else is defaulted by the normalizer.
type RawListing struct {
	ExternalID   string
	Title        string
	Company      string
	Location     string
	LocationType string
	Type         string
	Salary       *string
	Industry     string
	Description  string
	Requirements []string
	Skills       []string
	Featured     bool
	PostedAt     time.Time
	ApplyURL     string
}

// Connector fetches raw listings from one job data provider.
// Implementations live in internal/adapters/providers.
type Connector interface {
	// Name returns a short human-readable connector name for logging.
	Name() string

	// Source identifies which provider the records belong to. The aggregator
	// uses it for ID prefixing and dedup priority.
	Source() model.ListingSource

	// Fetch retrieves the provider's current listings. Implementations must
	// honor ctx cancellation; the aggregator applies a per-connector timeout.
	Fetch(ctx context.Context) ([]RawListing, error)
}

// FetchOutcome distinguishes "no jobs" from "the source errored" for one
// connector within an aggregation pass. Both degrade to an empty contribution,
// but the distinction is preserved for logging and stats.
type FetchOutcome struct {
	Source   model.ListingSource
	Listings []model.JobListing
	Err      error
	Elapsed  time.Duration
}

// Failed reports whether the connector errored (as opposed to returning an
// empty but successful result).
func (o FetchOutcome) Failed() bool { return o.Err != nil }
