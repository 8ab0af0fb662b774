package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildListQueryBasic(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("jobs",
		WithColumns("id", "title"),
		WithCondition(WhereCond("status", Equal, "active")),
		WithOrderBy("created_at", "desc"),
		WithLimit(10),
		WithOffset(20),
	)

	query, args := BuildListQuery(opts)
	assert.Equal(t,
		`SELECT "id", "title" FROM "jobs" WHERE "status" = $1 ORDER BY "created_at" DESC LIMIT $2 OFFSET $3`,
		query)
	assert.Equal(t, []any{"active", 10, 20}, args)
}

func TestBuildListQueryCountOnly(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("jobs",
		WithCondition(WhereCond("employer_id", Equal, "e1")),
		WithCondition(WhereCond("featured", Equal, true)),
		WithCountOnly(),
	)

	query, args := BuildListQuery(opts)
	assert.Equal(t, `SELECT COUNT(*) FROM "jobs" WHERE "employer_id" = $1 AND "featured" = $2`, query)
	assert.Equal(t, []any{"e1", true}, args)
}

func TestBuildListQueryInCondition(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("applications",
		WithCondition(WhereCond("status", In, []any{"submitted", "reviewing"})),
	)

	query, args := BuildListQuery(opts)
	assert.Equal(t, `SELECT * FROM "applications" WHERE "status" IN ($1, $2)`, query)
	assert.Equal(t, []any{"submitted", "reviewing"}, args)
}

func TestBuildListQuerySkipsEmptyIn(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("jobs",
		WithCondition(WhereCond("status", In, []any{})),
	)

	query, args := BuildListQuery(opts)
	assert.Equal(t, `SELECT * FROM "jobs"`, query)
	assert.Empty(t, args)
}

func TestBuildListQuerySanitizesIdentifiers(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("jobs",
		WithColumns(`id"; DROP TABLE jobs; --`),
	)

	query, _ := BuildListQuery(opts)
	// Embedded quotes are escaped so the injection stays inside the identifier.
	assert.Contains(t, query, `"id""; DROP TABLE jobs; --"`)
	assert.Contains(t, query, `FROM "jobs"`)
}
