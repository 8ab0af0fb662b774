package httpx

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
)

const (
	// StrTrue represents the string "true" for boolean query parameters.
	StrTrue = "true"
)

// ParseSearchFilters extracts listing search predicates from URL query parameters.
// Unknown or empty parameters are ignored; "remote" accepts true/1.
func ParseSearchFilters(q url.Values) model.SearchFilters {
	return model.SearchFilters{
		Query:    strings.TrimSpace(q.Get("query")),
		Location: strings.TrimSpace(q.Get("location")),
		Industry: strings.TrimSpace(q.Get("industry")),
		Type:     strings.TrimSpace(q.Get("type")),
		Remote:   parseBoolParam(q.Get("remote")),
	}
}

// ParseSearchPage extracts page/limit from URL query parameters. Values are
// returned as-is; the listing service clamps them to valid bounds.
func ParseSearchPage(q url.Values) model.SearchPage {
	return model.SearchPage{
		Page:  parseIntParam(q.Get("page"), 0),
		Limit: parseIntParam(q.Get("limit"), 0),
	}
}

// parseBoolParam interprets a query value as a boolean flag.
func parseBoolParam(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == StrTrue || v == "1"
}

// parseIntParam parses a decimal query value, falling back to def when the
// value is absent or malformed.
func parseIntParam(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// parseIntQuery reads a named integer query parameter from the request.
func parseIntQuery(r *http.Request, key string, def int) int {
	return parseIntParam(r.URL.Query().Get(key), def)
}
