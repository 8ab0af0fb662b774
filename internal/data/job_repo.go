// Package data implements the core repository interfaces against PostgreSQL
// (via the pgx stdlib bridge) and Redis.
package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/humanlystaffing/jobboard-api/internal/data/database"
	"github.com/humanlystaffing/jobboard-api/internal/data/pgxutil"
	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
	apperrors "github.com/humanlystaffing/jobboard-api/internal/errors"
)

const defaultListLimit = 50

// JobRepo provides database operations for employer job postings.
type JobRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewJobRepo creates a JobRepo with the real clock.
func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewJobRepoWithTimeProvider creates a JobRepo with a custom clock (tests).
func NewJobRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *JobRepo {
	return &JobRepo{DB: db, timeProvider: tp}
}

const jobColumns = `id, employer_id, title, company, department, location, location_type,
	type, salary_range, show_salary, experience_level, industry, description,
	requirements, benefits, skills, featured, status, created_at, updated_at`

// Create inserts a new posting.
func (r *JobRepo) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	if req == nil {
		return nil, apperrors.Validation("create job request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.JobStatusActive
	}
	now := r.timeProvider.Now().UTC()

	var out model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO jobs (
				employer_id, title, company, department, location, location_type,
				type, salary_range, show_salary, experience_level, industry, description,
				requirements, benefits, skills, featured, status, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
				$11, $12, $13, $14, $15, $16, $17, $18, $18
			) RETURNING `+jobColumns,
			req.EmployerID,
			strings.TrimSpace(req.Title),
			strings.TrimSpace(req.Company),
			req.Department,
			strings.TrimSpace(req.Location),
			req.LocationType,
			req.Type,
			req.SalaryRange,
			req.ShowSalary,
			req.ExperienceLevel,
			strings.TrimSpace(req.Industry),
			req.Description,
			req.Requirements,
			req.Benefits,
			req.Skills,
			req.Featured,
			status,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a posting by ID.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*model.Job, error) {
	var job model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		job, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Job not found")
		}
		return nil, fmt.Errorf("failed to get job by ID: %w", err)
	}
	return &job, nil
}

// List retrieves postings matching the filter options, newest first.
func (r *JobRepo) List(ctx context.Context, opts *model.JobsListOptions) ([]*model.Job, error) {
	query, args := database.BuildListQuery(r.buildListOptions(opts, false))

	var rowsOut []model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Job])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	res := make([]*model.Job, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Count returns the number of postings matching the filter options.
func (r *JobRepo) Count(ctx context.Context, opts *model.JobsListOptions) (int, error) {
	query, args := database.BuildListQuery(r.buildListOptions(opts, true))

	var count int
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, query, args...).Scan(&count)
	}); err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return count, nil
}

func (r *JobRepo) buildListOptions(opts *model.JobsListOptions, countOnly bool) *database.ListQueryOptions {
	if opts == nil {
		opts = &model.JobsListOptions{}
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := max(opts.Offset, 0)

	queryOpts := []database.ListQueryOption{}
	if countOnly {
		queryOpts = append(queryOpts, database.WithCountOnly())
	} else {
		queryOpts = append(queryOpts,
			database.WithColumns(jobColumnList()...),
			database.WithOrderBy("created_at", "DESC"),
			database.WithLimit(limit),
			database.WithOffset(offset),
		)
	}

	if opts.EmployerID != nil && *opts.EmployerID != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("employer_id", database.Equal, *opts.EmployerID),
		))
	}
	if opts.Status != nil && *opts.Status != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("status", database.Equal, string(*opts.Status)),
		))
	}
	if opts.Featured != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("featured", database.Equal, *opts.Featured),
		))
	}

	return database.NewListQueryOptions("jobs", queryOpts...)
}

func jobColumnList() []string {
	return []string{
		"id", "employer_id", "title", "company", "department", "location",
		"location_type", "type", "salary_range", "show_salary", "experience_level",
		"industry", "description", "requirements", "benefits", "skills",
		"featured", "status", "created_at", "updated_at",
	}
}

// Update applies the non-nil fields of req to a posting.
func (r *JobRepo) Update(ctx context.Context, id string, req *model.UpdateJobRequest) (*model.Job, error) {
	if req == nil {
		return nil, apperrors.Validation("update job request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setClause, args := r.buildUpdateClause(req)
	args = append(args, id)
	query := "UPDATE jobs SET " + setClause +
		" WHERE id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + jobColumns

	var out model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Job not found")
		}
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// buildUpdateClause builds the SET clause and args for an update. Validate
// guarantees at least one field is present; updated_at is always touched.
func (r *JobRepo) buildUpdateClause(req *model.UpdateJobRequest) (string, []any) {
	setParts := make([]string, 0, 8)
	args := make([]any, 0, 8)
	set := func(col string, val any) {
		args = append(args, val)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Title != nil {
		set("title", strings.TrimSpace(*req.Title))
	}
	if req.Company != nil {
		set("company", strings.TrimSpace(*req.Company))
	}
	if req.Department != nil {
		set("department", *req.Department)
	}
	if req.Location != nil {
		set("location", strings.TrimSpace(*req.Location))
	}
	if req.LocationType != nil {
		set("location_type", *req.LocationType)
	}
	if req.Type != nil {
		set("type", *req.Type)
	}
	if req.SalaryRange != nil {
		set("salary_range", *req.SalaryRange)
	}
	if req.ShowSalary != nil {
		set("show_salary", *req.ShowSalary)
	}
	if req.ExperienceLevel != nil {
		set("experience_level", *req.ExperienceLevel)
	}
	if req.Industry != nil {
		set("industry", strings.TrimSpace(*req.Industry))
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if req.Requirements != nil {
		set("requirements", req.Requirements)
	}
	if req.Benefits != nil {
		set("benefits", req.Benefits)
	}
	if req.Skills != nil {
		set("skills", req.Skills)
	}
	if req.Featured != nil {
		set("featured", *req.Featured)
	}
	if req.Status != nil {
		set("status", *req.Status)
	}
	set("updated_at", r.timeProvider.Now().UTC())

	return strings.Join(setParts, ", "), args
}

// Delete removes a posting by ID. Returns false if it didn't exist.
func (r *JobRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete job: %w", err)
	}
	return affected > 0, nil
}
