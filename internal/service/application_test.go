package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/humanlystaffing/jobboard-api/internal/domain/auth"
	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
	apperrors "github.com/humanlystaffing/jobboard-api/internal/errors"
	"github.com/humanlystaffing/jobboard-api/internal/mocks"
	"github.com/humanlystaffing/jobboard-api/internal/testutil"
)

func newApplicationService(t *testing.T) (*mocks.MockApplicationRepository, *mocks.MockJobRepository, *ApplicationService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockApplicationRepository(ctrl)
	jobs := mocks.NewMockJobRepository(ctrl)
	svc, err := NewApplicationService(ApplicationServiceOptions{Repo: repo, Jobs: jobs})
	require.NoError(t, err)
	return repo, jobs, svc
}

func TestApplicationService_ApplySetsCandidateFromSession(t *testing.T) {
	t.Parallel()

	repo, jobs, svc := newApplicationService(t)

	jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(
		&model.Job{ID: "job-1", Status: model.JobStatusActive}, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, got *model.CreateApplicationRequest) (*model.Application, error) {
			assert.Equal(t, "cand-1", got.CandidateID)
			return &model.Application{ID: "app-1", JobID: got.JobID, CandidateID: got.CandidateID}, nil
		})

	app, err := svc.Apply(context.Background(), candidateSession("cand-1"),
		testutil.NewApplicationRequest("job-1").Build())
	require.NoError(t, err)
	assert.Equal(t, "app-1", app.ID)
}

func TestApplicationService_ApplyToClosedJobFails(t *testing.T) {
	t.Parallel()

	_, jobs, svc := newApplicationService(t)

	jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(
		&model.Job{ID: "job-1", Status: model.JobStatusClosed}, nil)

	_, err := svc.Apply(context.Background(), candidateSession("cand-1"),
		testutil.NewApplicationRequest("job-1").Build())
	assert.True(t, apperrors.IsValidation(err))
}

func TestApplicationService_ApplyGuestForbidden(t *testing.T) {
	t.Parallel()

	_, _, svc := newApplicationService(t)

	guest := &domainauth.Session{ID: "s", Role: domainauth.RoleGuest}
	_, err := svc.Apply(context.Background(), guest, testutil.NewApplicationRequest("job-1").Build())
	assert.True(t, apperrors.IsForbidden(err))
}

func TestApplicationService_ListScopesByRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sess *domainauth.Session
		want func(t *testing.T, opts *model.ApplicationsListOptions)
	}{
		{
			name: "candidate sees own",
			sess: candidateSession("cand-1"),
			want: func(t *testing.T, opts *model.ApplicationsListOptions) {
				require.NotNil(t, opts.CandidateID)
				assert.Equal(t, "cand-1", *opts.CandidateID)
				assert.Nil(t, opts.EmployerID)
			},
		},
		{
			name: "employer sees own postings' applicants",
			sess: employerSession("emp-1"),
			want: func(t *testing.T, opts *model.ApplicationsListOptions) {
				require.NotNil(t, opts.EmployerID)
				assert.Equal(t, "emp-1", *opts.EmployerID)
				assert.Nil(t, opts.CandidateID)
			},
		},
		{
			name: "admin unrestricted",
			sess: adminSession(),
			want: func(t *testing.T, opts *model.ApplicationsListOptions) {
				assert.Nil(t, opts.CandidateID)
				assert.Nil(t, opts.EmployerID)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo, _, svc := newApplicationService(t)

			repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, opts *model.ApplicationsListOptions) ([]*model.Application, error) {
					tt.want(t, opts)
					return nil, nil
				})
			repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)

			_, _, err := svc.ListForSession(context.Background(), tt.sess, nil)
			require.NoError(t, err)
		})
	}
}

func TestApplicationService_UpdateStatusRequiresOwnership(t *testing.T) {
	t.Parallel()

	repo, jobs, svc := newApplicationService(t)

	repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(
		&model.Application{ID: "app-1", JobID: "job-1"}, nil)
	jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(
		&model.Job{ID: "job-1", EmployerID: "emp-owner"}, nil)

	_, err := svc.UpdateStatus(context.Background(), employerSession("emp-other"), "app-1", model.ApplicationShortlisted)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestApplicationService_UpdateStatusRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	_, _, svc := newApplicationService(t)

	_, err := svc.UpdateStatus(context.Background(), adminSession(), "app-1", model.ApplicationStatus("bogus"))
	assert.True(t, apperrors.IsValidation(err))
}

func TestApplicationService_WithdrawOwnOnly(t *testing.T) {
	t.Parallel()

	repo, _, svc := newApplicationService(t)

	repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(
		&model.Application{ID: "app-1", CandidateID: "cand-1"}, nil).Times(2)
	repo.EXPECT().Delete(gomock.Any(), "app-1").Return(true, nil)

	err := svc.Withdraw(context.Background(), candidateSession("cand-other"), "app-1")
	assert.True(t, apperrors.IsForbidden(err))

	require.NoError(t, svc.Withdraw(context.Background(), candidateSession("cand-1"), "app-1"))
}
