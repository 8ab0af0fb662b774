package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/humanlystaffing/jobboard-api/internal/core"
	"github.com/humanlystaffing/jobboard-api/internal/data/pgxutil"
	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
	apperrors "github.com/humanlystaffing/jobboard-api/internal/errors"
)

// SavedJobRepo provides database operations for candidate bookmarks.
type SavedJobRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewSavedJobRepo creates a SavedJobRepo with the real clock.
func NewSavedJobRepo(db *sql.DB) *SavedJobRepo {
	return &SavedJobRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const savedJobColumns = `id, candidate_id, listing_id, title, company, created_at`

// Save bookmarks a listing. The (candidate_id, listing_id) unique constraint
// surfaces repeat saves as a conflict.
func (r *SavedJobRepo) Save(ctx context.Context, req *model.SaveJobRequest) (*model.SavedJob, error) {
	if req == nil {
		return nil, apperrors.Validation("save job request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.SavedJob
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO saved_jobs (candidate_id, listing_id, title, company, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+savedJobColumns,
			req.CandidateID,
			strings.TrimSpace(req.ListingID),
			strings.TrimSpace(req.Title),
			strings.TrimSpace(req.Company),
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.SavedJob])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// ListByCandidate retrieves a candidate's bookmarks, newest first.
func (r *SavedJobRepo) ListByCandidate(ctx context.Context, candidateID string) ([]*model.SavedJob, error) {
	var rowsOut []model.SavedJob
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+savedJobColumns+` FROM saved_jobs WHERE candidate_id = $1 ORDER BY created_at DESC`,
			candidateID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.SavedJob])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list saved jobs: %w", err)
	}

	res := make([]*model.SavedJob, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Delete removes a bookmark. Returns false if it didn't exist.
func (r *SavedJobRepo) Delete(ctx context.Context, params core.DeleteSavedJobParams) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx,
			`DELETE FROM saved_jobs WHERE candidate_id = $1 AND listing_id = $2`,
			params.CandidateID, params.ListingID)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete saved job: %w", err)
	}
	return affected > 0, nil
}

// Exists reports whether the candidate has bookmarked the listing.
func (r *SavedJobRepo) Exists(ctx context.Context, params core.DeleteSavedJobParams) (bool, error) {
	var exists bool
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM saved_jobs WHERE candidate_id = $1 AND listing_id = $2)`,
			params.CandidateID, params.ListingID).Scan(&exists)
	})
	if err != nil {
		return false, fmt.Errorf("failed to check saved job: %w", err)
	}
	return exists, nil
}
