package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
	apperrors "github.com/humanlystaffing/jobboard-api/internal/errors"
	"github.com/humanlystaffing/jobboard-api/internal/testutil"
)

func TestJobRepo_Create_Get_List_Update_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewJobRepo(db)

		req := testutil.NewJobRequest().
			WithTitle(fmt.Sprintf("Backend Engineer %d", time.Now().UnixNano())).
			WithSalaryRange("$140,000 - $170,000").
			Build()

		job, err := repo.Create(ctx, req)
		require.NoError(t, err)
		require.NotEmpty(t, job.ID)
		assert.Equal(t, model.JobStatusActive, job.Status)
		assert.Equal(t, req.Title, job.Title)
		assert.NotZero(t, job.CreatedAt)
		assert.Equal(t, job.CreatedAt, job.UpdatedAt)

		// get by id
		got, err := repo.GetByID(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, job.Title, got.Title)
		require.NotNil(t, got.SalaryRange)
		assert.Equal(t, "$140,000 - $170,000", *got.SalaryRange)
		assert.Equal(t, []string{"Go", "PostgreSQL"}, got.Skills)

		// list by employer
		employerID := req.EmployerID
		lst, err := repo.List(ctx, &model.JobsListOptions{EmployerID: &employerID})
		require.NoError(t, err)
		require.Len(t, lst, 1)
		assert.Equal(t, job.ID, lst[0].ID)

		count, err := repo.Count(ctx, &model.JobsListOptions{EmployerID: &employerID})
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		// update
		newTitle := "Staff Backend Engineer"
		featured := true
		updated, err := repo.Update(ctx, job.ID, &model.UpdateJobRequest{
			Title:    &newTitle,
			Featured: &featured,
			Skills:   []string{"Go", "PostgreSQL", "Redis"},
		})
		require.NoError(t, err)
		assert.Equal(t, newTitle, updated.Title)
		assert.True(t, updated.Featured)
		assert.Equal(t, []string{"Go", "PostgreSQL", "Redis"}, updated.Skills)
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))

		// delete
		deleted, err := repo.Delete(ctx, job.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, job.ID)
		assert.True(t, apperrors.IsNotFound(err))

		deleted, err = repo.Delete(ctx, job.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestJobRepo_ListFilters(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewJobRepo(db)

		_, err := repo.Create(ctx, testutil.NewJobRequest().
			WithEmployerID("emp-a").
			WithFeatured(true).
			Build())
		require.NoError(t, err)

		_, err = repo.Create(ctx, testutil.NewJobRequest().
			WithEmployerID("emp-a").
			WithTitle("Junior Accountant").
			WithIndustry("Finance").
			WithStatus(model.JobStatusClosed).
			Build())
		require.NoError(t, err)

		_, err = repo.Create(ctx, testutil.NewJobRequest().
			WithEmployerID("emp-b").
			WithTitle("ICU Nurse").
			WithIndustry("Healthcare").
			Build())
		require.NoError(t, err)

		empA := "emp-a"
		active := model.JobStatusActive
		featured := true

		lst, err := repo.List(ctx, &model.JobsListOptions{EmployerID: &empA})
		require.NoError(t, err)
		assert.Len(t, lst, 2)

		lst, err = repo.List(ctx, &model.JobsListOptions{EmployerID: &empA, Status: &active})
		require.NoError(t, err)
		require.Len(t, lst, 1)
		assert.True(t, lst[0].Featured)

		lst, err = repo.List(ctx, &model.JobsListOptions{Featured: &featured})
		require.NoError(t, err)
		assert.Len(t, lst, 1)

		count, err := repo.Count(ctx, &model.JobsListOptions{Status: &active})
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		// newest first
		lst, err = repo.List(ctx, &model.JobsListOptions{})
		require.NoError(t, err)
		require.Len(t, lst, 3)
		for i := 1; i < len(lst); i++ {
			assert.False(t, lst[i-1].CreatedAt.Before(lst[i].CreatedAt))
		}
	})
}

func TestJobRepo_ListPagination(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewJobRepo(db)

		for i := 0; i < 5; i++ {
			_, err := repo.Create(ctx, testutil.NewJobRequest().
				WithTitle(fmt.Sprintf("Role %d", i)).
				Build())
			require.NoError(t, err)
		}

		page1, err := repo.List(ctx, &model.JobsListOptions{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, page1, 2)

		page3, err := repo.List(ctx, &model.JobsListOptions{Limit: 2, Offset: 4})
		require.NoError(t, err)
		assert.Len(t, page3, 1)
	})
}
