package httpx

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
)

func TestParseSearchFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  model.SearchFilters
	}{
		{
			name:  "all params",
			query: "query=engineer&location=Seattle&industry=Technology&type=full-time&remote=true",
			want: model.SearchFilters{
				Query:    "engineer",
				Location: "Seattle",
				Industry: "Technology",
				Type:     "full-time",
				Remote:   true,
			},
		},
		{
			name:  "remote accepts 1",
			query: "remote=1",
			want:  model.SearchFilters{Remote: true},
		},
		{
			name:  "remote false",
			query: "query=nurse&remote=false",
			want:  model.SearchFilters{Query: "nurse"},
		},
		{
			name:  "whitespace trimmed",
			query: "query=%20%20analyst%20%20",
			want:  model.SearchFilters{Query: "analyst"},
		},
		{
			name:  "empty",
			query: "",
			want:  model.SearchFilters{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ParseSearchFilters(q))
		})
	}
}

func TestParseSearchPage(t *testing.T) {
	t.Parallel()

	q, _ := url.ParseQuery("page=3&limit=25")
	assert.Equal(t, model.SearchPage{Page: 3, Limit: 25}, ParseSearchPage(q))

	q, _ = url.ParseQuery("page=abc&limit=")
	assert.Equal(t, model.SearchPage{}, ParseSearchPage(q))
}
