package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) Search(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithPoster, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobWithPoster), args.Error(1)
}

func (m *MockJobRepo) Count(ctx context.Context, filter domain.JobFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newJobValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterJSONTagNames(v)
	return v
}

func validJob() *domain.JobPosting {
	return &domain.JobPosting{
		Title:      "Backend Engineer",
		Company:    "Acme",
		Location:   "Remote",
		Type:       "full-time",
		Experience: "3+ years",
		Skills:     "Go, PostgreSQL",
	}
}

func TestCreateJobAuthorization(t *testing.T) {
	mockRepo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(mockRepo, newJobValidator())
	ctx := context.Background()

	t.Run("Should reject unauthenticated caller before touching the store", func(t *testing.T) {
		err := uc.CreateJob(ctx, "", domain.RoleRecruiter, validJob())
		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject non-recruiter roles before touching the store", func(t *testing.T) {
		err := uc.CreateJob(ctx, "user1", domain.RoleCandidate, validJob())
		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusForbidden, appErr.Code)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestCreateJobValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("Should name every missing field in details", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, newJobValidator())

		job := validJob()
		job.Title = "   "
		job.Skills = ""

		err := uc.CreateJob(ctx, "rec1", domain.RoleRecruiter, job)
		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Len(t, appErr.Details, 2)
		assert.Contains(t, appErr.Details, "title")
		assert.Contains(t, appErr.Details, "skills")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should stamp poster id and creation time on success", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, newJobValidator())

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.JobPosting")).Return(nil).Run(func(args mock.Arguments) {
			job := args.Get(1).(*domain.JobPosting)
			assert.Equal(t, "rec1", job.PostedBy)
			assert.False(t, job.CreatedAt.IsZero())
		})

		err := uc.CreateJob(ctx, "rec1", domain.RoleRecruiter, validJob())
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestListJobsPagination(t *testing.T) {
	ctx := context.Background()

	t.Run("Should default page and limit and forward filters", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, newJobValidator())

		wantFilter := domain.JobFilter{Search: "react", Location: "remote", Limit: 10, Offset: 0}
		mockRepo.On("Search", ctx, wantFilter).Return([]domain.JobWithPoster{}, nil)
		mockRepo.On("Count", ctx, wantFilter).Return(int64(0), nil)

		list, err := uc.ListJobs(ctx, domain.JobListQuery{Search: "react", Location: "remote"})
		assert.NoError(t, err)
		assert.Equal(t, 1, list.Pagination.Page)
		assert.Equal(t, 10, list.Pagination.Limit)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should compute pages as ceil(total/limit)", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, newJobValidator())

		filter := domain.JobFilter{Limit: 10, Offset: 10}
		jobs := []domain.JobWithPoster{{JobPosting: domain.JobPosting{ID: 11}}}
		mockRepo.On("Search", ctx, filter).Return(jobs, nil)
		mockRepo.On("Count", ctx, filter).Return(int64(25), nil)

		list, err := uc.ListJobs(ctx, domain.JobListQuery{Page: 2, Limit: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(25), list.Pagination.Total)
		assert.Equal(t, 3, list.Pagination.Pages)
	})

	t.Run("Should return empty jobs with unchanged total beyond the last page", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, newJobValidator())

		filter := domain.JobFilter{Limit: 10, Offset: 90}
		mockRepo.On("Search", ctx, filter).Return([]domain.JobWithPoster{}, nil)
		mockRepo.On("Count", ctx, filter).Return(int64(25), nil)

		list, err := uc.ListJobs(ctx, domain.JobListQuery{Page: 10, Limit: 10})
		assert.NoError(t, err)
		assert.Empty(t, list.Jobs)
		assert.Equal(t, int64(25), list.Pagination.Total)
	})

	t.Run("Should surface store failures unchanged", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, newJobValidator())

		mockRepo.On("Search", ctx, mock.Anything).Return(nil, errors.New("connection reset"))

		_, err := uc.ListJobs(ctx, domain.JobListQuery{})
		assert.Error(t, err)
	})
}
