// Package model defines the core data types and structures used throughout the job board.
package model

import (
	"strings"
	"time"
)

// ListingSource identifies where an aggregated listing came from.
type ListingSource string

const (
	// SourceInternal marks listings from the platform's own postings table.
	SourceInternal ListingSource = "internal"
	// SourceDemo marks embedded fallback listings served when no database is configured.
	SourceDemo ListingSource = "demo"
	// SourceAdzuna marks listings fetched from the Adzuna API.
	SourceAdzuna ListingSource = "adzuna"
	// SourceRemotive marks listings fetched from the Remotive API.
	SourceRemotive ListingSource = "remotive"
	// SourceArbeitnow marks listings fetched from the Arbeitnow API.
	SourceArbeitnow ListingSource = "arbeitnow"
	// SourceUSAJobs marks listings fetched from the USAJobs API.
	SourceUSAJobs ListingSource = "usajobs"
	// SourceCustom marks listings fetched from an operator-configured JSON feed.
	SourceCustom ListingSource = "custom"
)

// InPlatform reports whether listings from this source are applied to on the
// platform itself rather than through an external apply URL.
func (s ListingSource) InPlatform() bool {
	return s == SourceInternal || s == SourceDemo
}

// EmploymentType represents the contract type of a listing.
type EmploymentType string

const (
	TypeFullTime   EmploymentType = "full-time"
	TypePartTime   EmploymentType = "part-time"
	TypeContract   EmploymentType = "contract"
	TypeTemporary  EmploymentType = "temporary"
	TypeInternship EmploymentType = "internship"
)

// Valid returns true if the EmploymentType is one of the supported values.
func (t EmploymentType) Valid() bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract, TypeTemporary, TypeInternship:
		return true
	default:
		return false
	}
}

// ParseEmploymentType normalizes free-form provider type strings
// ("Full Time", "freelance", "intern") into an EmploymentType.
// Unrecognized values default to full-time, matching upstream feeds that
// omit or garble the field.
func ParseEmploymentType(v string) EmploymentType {
	s := strings.ToLower(strings.TrimSpace(v))
	switch {
	case strings.Contains(s, "part"):
		return TypePartTime
	case strings.Contains(s, "contract"), strings.Contains(s, "freelance"):
		return TypeContract
	case strings.Contains(s, "temp"):
		return TypeTemporary
	case strings.Contains(s, "intern"):
		return TypeInternship
	default:
		return TypeFullTime
	}
}

// LocationType represents where the work happens.
type LocationType string

const (
	LocationOnsite LocationType = "onsite"
	LocationRemote LocationType = "remote"
	LocationHybrid LocationType = "hybrid"
)

// Valid returns true if the LocationType is one of the supported values.
func (l LocationType) Valid() bool {
	switch l {
	case LocationOnsite, LocationRemote, LocationHybrid:
		return true
	default:
		return false
	}
}

// JobListing is the canonical post-normalization listing shape served to the
// public search surface. Every source's records are mapped into this shape so
// consumers never branch on provider-specific fields.
//
// ID is globally unique across sources: the provider's record ID prefixed
// with the source tag, so identifiers never collide across providers.
type JobListing struct {
	ID           string         `json:"id"`
	Source       ListingSource  `json:"source"`
	ExternalID   string         `json:"externalId,omitempty"`
	Title        string         `json:"title"`
	Company      string         `json:"company"`
	Location     string         `json:"location"`
	LocationType LocationType   `json:"locationType"`
	Type         EmploymentType `json:"type"`
	Salary       *string        `json:"salary"`
	Industry     string         `json:"industry"`
	Description  string         `json:"description"`
	Requirements []string       `json:"requirements"`
	Skills       []string       `json:"skills"`
	Featured     bool           `json:"featured"`
	PostedAt     time.Time      `json:"postedDate"`

	// ApplyURL is set only for externally sourced listings; empty means
	// "apply on this platform".
	ApplyURL string `json:"applyUrl,omitempty"`

	// ViaDomain is the registrable domain of ApplyURL, for "via example.com"
	// display on external listings.
	ViaDomain string `json:"viaDomain,omitempty"`
}

// Remote reports whether the listing is remote-friendly.
func (l JobListing) Remote() bool {
	return l.LocationType == LocationRemote ||
		strings.Contains(strings.ToLower(l.Location), "remote")
}
