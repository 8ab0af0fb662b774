package model

import "strings"

// SearchFilters holds the public search predicates applied over the
// aggregated listing snapshot. Zero values mean "no restriction".
type SearchFilters struct {
	Query    string `json:"query,omitempty"`
	Location string `json:"location,omitempty"`
	Industry string `json:"industry,omitempty"`
	Type     string `json:"type,omitempty"`
	Remote   bool   `json:"remote,omitempty"`
}

// Empty reports whether no predicate is set.
func (f SearchFilters) Empty() bool {
	return f.Query == "" && f.Location == "" && f.Industry == "" && f.Type == "" && !f.Remote
}

// Matches applies the filter predicates to one listing, in the order
// free-text, location, industry, employment type, remote-only.
func (f SearchFilters) Matches(l JobListing) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(l.Title), q) &&
			!strings.Contains(strings.ToLower(l.Company), q) &&
			!strings.Contains(strings.ToLower(l.Description), q) {
			return false
		}
	}
	if f.Location != "" &&
		!strings.Contains(strings.ToLower(l.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Industry != "" && !strings.EqualFold(l.Industry, f.Industry) {
		return false
	}
	if f.Type != "" && !strings.EqualFold(string(l.Type), f.Type) {
		return false
	}
	if f.Remote && !l.Remote() {
		return false
	}
	return true
}

// SearchPage bundles pagination parameters for a listing search.
type SearchPage struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Normalize clamps page/limit to sane bounds.
func (p SearchPage) Normalize(defLimit, maxLimit int) SearchPage {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// SearchResult is one page of filtered, aggregated listings.
// Total and TotalPages are computed from the filtered count, not the size of
// the underlying merged snapshot.
type SearchResult struct {
	Jobs       []JobListing `json:"jobs"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalPages int          `json:"totalPages"`
	Source     string       `json:"source"`
}

// HasMore reports whether pages remain after the current one.
func (r SearchResult) HasMore() bool {
	return r.Page < r.TotalPages
}

// JobStats is a read-only summary of the aggregated listing set.
type JobStats struct {
	TotalJobs  int            `json:"totalJobs"`
	ByIndustry map[string]int `json:"byIndustry"`
	ByType     map[string]int `json:"byType"`
	BySource   map[string]int `json:"bySource"`
}
