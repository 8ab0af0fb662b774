// Package database provides a small SQL builder for list queries with
// optional filters, ordering and pagination. Identifiers are sanitized with
// pgx; values always travel as positional parameters.
package database

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// ConditionType enumerates supported comparison operators.
type ConditionType string

const (
	Equal    ConditionType = "="
	NotEqual ConditionType = "!="
	ILike    ConditionType = "ILIKE"
	In       ConditionType = "IN"
)

// Condition is one WHERE predicate.
type Condition struct {
	Field string
	Type  ConditionType
	Value any
}

// WhereCond builds a Condition.
func WhereCond(field string, condType ConditionType, value any) Condition {
	return Condition{Field: field, Type: condType, Value: value}
}

// ListQueryOptions describes a list or count query over one table.
type ListQueryOptions struct {
	Table      string
	Columns    []string
	CountOnly  bool
	Conditions []Condition
	OrderBy    string
	OrderDir   string
	Limit      int
	Offset     int
}

// ListQueryOption mutates ListQueryOptions.
type ListQueryOption func(*ListQueryOptions)

// NewListQueryOptions creates options for the given table.
func NewListQueryOptions(table string, opts ...ListQueryOption) *ListQueryOptions {
	options := &ListQueryOptions{Table: table, Limit: -1, Offset: -1}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithColumns sets the columns to select.
func WithColumns(cols ...string) ListQueryOption {
	return func(o *ListQueryOptions) { o.Columns = cols }
}

// WithCondition adds a single condition.
func WithCondition(cond Condition) ListQueryOption {
	return func(o *ListQueryOptions) { o.Conditions = append(o.Conditions, cond) }
}

// WithOrderBy sets the ordering column and direction.
func WithOrderBy(column, direction string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.OrderBy = column
		o.OrderDir = direction
	}
}

// WithLimit sets the limit. Accepts 0.
func WithLimit(limit int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if limit >= 0 {
			o.Limit = limit
		}
	}
}

// WithOffset sets the offset. Accepts 0.
func WithOffset(offset int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if offset >= 0 {
			o.Offset = offset
		}
	}
}

// WithCountOnly switches the query to SELECT COUNT(*).
func WithCountOnly() ListQueryOption {
	return func(o *ListQueryOptions) { o.CountOnly = true }
}

func sanitizeIdentifier(ident string) string {
	return pgx.Identifier{ident}.Sanitize()
}

// BuildListQuery constructs the SQL string and positional arguments described
// by options. Unknown condition types and empty IN lists are skipped rather
// than producing invalid SQL.
func BuildListQuery(options *ListQueryOptions) (string, []any) {
	if options == nil {
		return "", nil
	}

	var query strings.Builder

	if options.CountOnly {
		query.WriteString("SELECT COUNT(*) ")
	} else if len(options.Columns) == 0 {
		query.WriteString("SELECT * ")
	} else {
		cols := make([]string, len(options.Columns))
		for i, c := range options.Columns {
			cols[i] = sanitizeIdentifier(c)
		}
		fmt.Fprintf(&query, "SELECT %s ", strings.Join(cols, ", "))
	}
	query.WriteString("FROM ")
	query.WriteString(sanitizeIdentifier(options.Table))

	args := []any{}
	where := make([]string, 0, len(options.Conditions))
	for _, cond := range options.Conditions {
		clause, condArgs := buildCondition(cond, len(args)+1)
		if clause == "" {
			continue
		}
		where = append(where, clause)
		args = append(args, condArgs...)
	}
	if len(where) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(where, " AND "))
	}

	if options.CountOnly {
		return query.String(), args
	}

	if options.OrderBy != "" {
		query.WriteString(" ORDER BY ")
		query.WriteString(sanitizeIdentifier(options.OrderBy))
		if dir := strings.ToUpper(options.OrderDir); dir == "ASC" || dir == "DESC" {
			query.WriteString(" ")
			query.WriteString(dir)
		}
	}
	if options.Limit >= 0 {
		fmt.Fprintf(&query, " LIMIT $%d", len(args)+1)
		args = append(args, options.Limit)
	}
	if options.Offset >= 0 {
		fmt.Fprintf(&query, " OFFSET $%d", len(args)+1)
		args = append(args, options.Offset)
	}

	return query.String(), args
}

func buildCondition(cond Condition, nextParam int) (string, []any) {
	if cond.Field == "" {
		return "", nil
	}
	field := sanitizeIdentifier(cond.Field)

	switch cond.Type {
	case Equal, NotEqual, ILike:
		return fmt.Sprintf("%s %s $%d", field, cond.Type, nextParam), []any{cond.Value}
	case In:
		values, ok := cond.Value.([]any)
		if !ok || len(values) == 0 {
			return "", nil
		}
		placeholders := make([]string, len(values))
		for i := range values {
			placeholders[i] = fmt.Sprintf("$%d", nextParam+i)
		}
		return fmt.Sprintf("%s IN (%s)", field, strings.Join(placeholders, ", ")), values
	default:
		return "", nil
	}
}
