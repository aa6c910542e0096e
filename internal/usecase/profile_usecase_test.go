package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetAggregate(ctx context.Context, userID string) (*domain.ProfileAggregate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileAggregate), args.Error(1)
}

func (m *MockProfileRepo) SaveAggregate(ctx context.Context, input *domain.ProfileSaveInput) (*domain.Profile, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should require a user id", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo)

		_, err := uc.GetProfile(ctx, "   ")
		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		mockRepo.AssertNotCalled(t, "GetAggregate")
	})

	t.Run("Should return the aggregate as stored", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo)

		agg := &domain.ProfileAggregate{
			Profile: &domain.Profile{UserID: "user1", Name: "Dewi"},
			Skills:  []domain.Skill{{ID: 1, UserID: "user1", Name: "Go"}},
		}
		mockRepo.On("GetAggregate", ctx, "user1").Return(agg, nil)

		got, err := uc.GetProfile(ctx, "user1")
		assert.NoError(t, err)
		assert.Equal(t, agg, got)
	})
}

func TestSaveProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should require a user id", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo)

		_, err := uc.SaveProfile(ctx, &domain.ProfileSaveInput{})
		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		mockRepo.AssertNotCalled(t, "SaveAggregate")
	})

	t.Run("Should keep omitted and empty collections distinct", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo)

		input := &domain.ProfileSaveInput{
			UserID: "user1",
			Skills: []domain.Skill{},
		}
		mockRepo.On("SaveAggregate", ctx, mock.AnythingOfType("*domain.ProfileSaveInput")).
			Return(&domain.Profile{UserID: "user1"}, nil).
			Run(func(args mock.Arguments) {
				in := args.Get(1).(*domain.ProfileSaveInput)
				assert.NotNil(t, in.Skills)
				assert.Empty(t, in.Skills)
				assert.Nil(t, in.Employments)
				assert.Nil(t, in.Educations)
			})

		_, err := uc.SaveProfile(ctx, input)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should write the aggregate exactly once", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo)

		summary := "Platform engineer"
		input := &domain.ProfileSaveInput{
			UserID:      "user1",
			ProfileData: &domain.ProfileInput{Summary: &summary},
			Skills:      []domain.Skill{{Name: "Go"}},
		}
		mockRepo.On("SaveAggregate", ctx, input).Return(&domain.Profile{UserID: "user1", Summary: summary}, nil)

		profile, err := uc.SaveProfile(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, "Platform engineer", profile.Summary)
		mockRepo.AssertNumberOfCalls(t, "SaveAggregate", 1)
	})

	t.Run("Should read back what a save stored", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo)

		city := "Jakarta"
		input := &domain.ProfileSaveInput{
			UserID:      "user1",
			ProfileData: &domain.ProfileInput{City: &city},
			Skills:      []domain.Skill{{Name: "Go"}},
		}
		saved := &domain.Profile{UserID: "user1", City: city}
		mockRepo.On("SaveAggregate", ctx, input).Return(saved, nil)
		mockRepo.On("GetAggregate", ctx, "user1").Return(&domain.ProfileAggregate{
			Profile: saved,
			Skills:  []domain.Skill{{ID: 1, UserID: "user1", Name: "Go"}},
		}, nil)

		_, err := uc.SaveProfile(ctx, input)
		assert.NoError(t, err)

		agg, err := uc.GetProfile(ctx, "user1")
		assert.NoError(t, err)
		assert.Equal(t, "Jakarta", agg.Profile.City)
		assert.Len(t, agg.Skills, 1)
		assert.Equal(t, "Go", agg.Skills[0].Name)
	})

	t.Run("Should surface store failures unchanged", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo)

		mockRepo.On("SaveAggregate", ctx, mock.Anything).Return(nil, errors.New("deadlock detected"))

		_, err := uc.SaveProfile(ctx, &domain.ProfileSaveInput{UserID: "user1"})
		assert.Error(t, err)
	})
}
