package errors

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapDBError_NilError(t *testing.T) {
	if err := MapDBError(nil); err != nil {
		t.Errorf("MapDBError(nil) = %v, want nil", err)
	}
}

func TestMapDBError_ContextErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode ErrorCode
	}{
		{"deadline exceeded", context.DeadlineExceeded, ErrCodeTimeout},
		{"canceled", context.Canceled, ErrCodeCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapDBError(tt.err)
			if GetCode(err) != tt.wantCode {
				t.Errorf("MapDBError() code = %v, want %v", GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestMapDBError_NoRows(t *testing.T) {
	err := MapDBError(pgx.ErrNoRows)
	if !IsNotFound(err) {
		t.Errorf("MapDBError(pgx.ErrNoRows) should be NotFound, got %v", GetCode(err))
	}
}

func TestMapDBError_UniqueViolation(t *testing.T) {
	tests := []struct {
		name      string
		pgErr     *pgconn.PgError
		wantField string
	}{
		{
			name: "field from column name",
			pgErr: &pgconn.PgError{
				Code:       pgerrcode.UniqueViolation,
				ColumnName: "slug",
			},
			wantField: "slug",
		},
		{
			name: "field from detail",
			pgErr: &pgconn.PgError{
				Code:   pgerrcode.UniqueViolation,
				Detail: "Key (slug)=(senior-engineer) already exists.",
			},
			wantField: "slug",
		},
		{
			name: "field inferred from constraint",
			pgErr: &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "jobs_slug_key",
			},
			wantField: "slug",
		},
		{
			name: "multi-column constraint stays fieldless",
			pgErr: &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "applications_job_id_candidate_id_key",
			},
			wantField: "",
		},
		{
			name: "expression index stays fieldless",
			pgErr: &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "jobs_lower_key",
			},
			wantField: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapDBError(tt.pgErr)
			if !IsConflict(err) {
				t.Fatalf("want Conflict, got %v", GetCode(err))
			}
			if GetField(err) != tt.wantField {
				t.Errorf("GetField() = %q, want %q", GetField(err), tt.wantField)
			}
		})
	}
}

func TestMapDBError_ForeignKeyViolation(t *testing.T) {
	tests := []struct {
		name  string
		pgErr *pgconn.PgError
	}{
		{
			name: "parent still referenced",
			pgErr: &pgconn.PgError{
				Code:   pgerrcode.ForeignKeyViolation,
				Detail: `Key (id)=(abc) is still referenced from table "applications".`,
			},
		},
		{
			name: "missing parent",
			pgErr: &pgconn.PgError{
				Code:   pgerrcode.ForeignKeyViolation,
				Detail: `Key (job_id)=(abc) is not present in table "jobs".`,
			},
		},
		{
			name: "constraint name fallback",
			pgErr: &pgconn.PgError{
				Code:           pgerrcode.ForeignKeyViolation,
				ConstraintName: "applications_job_id_fkey",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapDBError(tt.pgErr)
			if !IsForeignKey(err) {
				t.Errorf("want ForeignKey, got %v", GetCode(err))
			}
		})
	}
}

func TestMapDBError_ValidationViolations(t *testing.T) {
	notNull := &pgconn.PgError{Code: pgerrcode.NotNullViolation, ColumnName: "title"}
	err := MapDBError(notNull)
	if !IsValidation(err) || GetField(err) != "title" {
		t.Errorf("not-null: code=%v field=%q", GetCode(err), GetField(err))
	}

	check := &pgconn.PgError{Code: pgerrcode.CheckViolation}
	err = MapDBError(check)
	if !IsValidation(err) {
		t.Errorf("check: want Validation, got %v", GetCode(err))
	}
}

func TestMapDBError_UnknownPgError(t *testing.T) {
	err := MapDBError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	if !IsInternal(err) {
		t.Errorf("want Internal, got %v", GetCode(err))
	}
}

func TestMapDBError_PassThrough(t *testing.T) {
	plain := errors.New("not a db error")
	if got := MapDBError(plain); !errors.Is(got, plain) {
		t.Errorf("MapDBError should return unrecognized errors unchanged")
	}
}
