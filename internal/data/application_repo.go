package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/humanlystaffing/jobboard-api/internal/data/pgxutil"
	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
	apperrors "github.com/humanlystaffing/jobboard-api/internal/errors"
)

// ApplicationRepo provides database operations for job applications.
type ApplicationRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewApplicationRepo creates an ApplicationRepo with the real clock.
func NewApplicationRepo(db *sql.DB) *ApplicationRepo {
	return &ApplicationRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewApplicationRepoWithTimeProvider creates an ApplicationRepo with a custom clock (tests).
func NewApplicationRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ApplicationRepo {
	return &ApplicationRepo{DB: db, timeProvider: tp}
}

const applicationColumns = `id, job_id, candidate_id, full_name, email, phone,
	resume_url, cover_letter, status, created_at, updated_at`

// Create inserts a new application. The (job_id, candidate_id) unique
// constraint surfaces duplicate applications as a conflict.
func (r *ApplicationRepo) Create(ctx context.Context, req *model.CreateApplicationRequest) (*model.Application, error) {
	if req == nil {
		return nil, apperrors.Validation("create application request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.Application
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO applications (
				job_id, candidate_id, full_name, email, phone, resume_url,
				cover_letter, status, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
			RETURNING `+applicationColumns,
			req.JobID,
			req.CandidateID,
			strings.TrimSpace(req.FullName),
			strings.TrimSpace(req.Email),
			req.Phone,
			req.ResumeURL,
			req.CoverLetter,
			model.ApplicationSubmitted,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Application])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves an application by ID.
func (r *ApplicationRepo) GetByID(ctx context.Context, id string) (*model.Application, error) {
	var app model.Application
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		app, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Application])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Application not found")
		}
		return nil, fmt.Errorf("failed to get application by ID: %w", err)
	}
	return &app, nil
}

// List retrieves applications matching the filter options, newest first.
func (r *ApplicationRepo) List(ctx context.Context, opts *model.ApplicationsListOptions) ([]*model.Application, error) {
	where, args := buildApplicationWhere(opts)

	limit := defaultListLimit
	offset := 0
	if opts != nil {
		if opts.Limit > 0 {
			limit = opts.Limit
		}
		offset = max(opts.Offset, 0)
	}
	args = append(args, limit, offset)
	query := `SELECT ` + applicationColumns + ` FROM applications` + where +
		` ORDER BY created_at DESC` +
		` LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	var rowsOut []model.Application
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Application])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	res := make([]*model.Application, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Count returns the number of applications matching the filter options.
func (r *ApplicationRepo) Count(ctx context.Context, opts *model.ApplicationsListOptions) (int, error) {
	where, args := buildApplicationWhere(opts)

	var count int
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `SELECT COUNT(*) FROM applications`+where, args...).Scan(&count)
	}); err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}

// buildApplicationWhere assembles the WHERE clause for list/count queries.
// The employer filter matches applications against any of that employer's
// postings via a subquery.
func buildApplicationWhere(opts *model.ApplicationsListOptions) (string, []any) {
	if opts == nil {
		return "", nil
	}

	conds := make([]string, 0, 4)
	args := make([]any, 0, 4)
	add := func(clause string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(clause, len(args)))
	}

	if opts.JobID != nil && *opts.JobID != "" {
		add("job_id = $%d", *opts.JobID)
	}
	if opts.CandidateID != nil && *opts.CandidateID != "" {
		add("candidate_id = $%d", *opts.CandidateID)
	}
	if opts.EmployerID != nil && *opts.EmployerID != "" {
		add("job_id IN (SELECT id FROM jobs WHERE employer_id = $%d)", *opts.EmployerID)
	}
	if opts.Status != nil && *opts.Status != "" {
		add("status = $%d", string(*opts.Status))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// UpdateStatus moves an application to a new pipeline status.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus) (*model.Application, error) {
	if !status.Valid() {
		return nil, apperrors.ValidationField("status",
			"Status must be one of: submitted, reviewing, shortlisted, rejected, hired")
	}

	var out model.Application
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE applications SET status = $1, updated_at = $2
			WHERE id = $3
			RETURNING `+applicationColumns,
			status, r.timeProvider.Now().UTC(), id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Application])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Application not found")
		}
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete removes an application by ID. Returns false if it didn't exist.
func (r *ApplicationRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete application: %w", err)
	}
	return affected > 0, nil
}
