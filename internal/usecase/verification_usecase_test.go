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

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockVerificationRepo struct {
	mock.Mock
}

func (m *MockVerificationRepo) Create(ctx context.Context, v *domain.EmailVerification) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVerificationRepo) GetByToken(ctx context.Context, token string) (*domain.EmailVerification, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmailVerification), args.Error(1)
}

func (m *MockVerificationRepo) MarkVerified(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendVerificationEmail(toEmail, recipientName, token string) error {
	return m.Called(toEmail, recipientName, token).Error(0)
}

func (m *MockMailer) IsConfigured() bool {
	return m.Called().Bool(0)
}

func TestRequestVerification(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: "user1", Name: "Dewi", Email: "dewi@example.com", Role: domain.RoleCandidate}

	t.Run("Should reject unknown accounts", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		verRepo := new(MockVerificationRepo)
		mailer := new(MockMailer)
		uc := usecase.NewVerificationUsecase(verRepo, userRepo, mailer)

		userRepo.On("GetByID", ctx, "ghost").Return(nil, nil)

		_, err := uc.RequestVerification(ctx, "ghost")
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusNotFound, appErr.Code)
		verRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should store a token and send the email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		verRepo := new(MockVerificationRepo)
		mailer := new(MockMailer)
		uc := usecase.NewVerificationUsecase(verRepo, userRepo, mailer)

		userRepo.On("GetByID", ctx, "user1").Return(user, nil)
		verRepo.On("Create", ctx, mock.AnythingOfType("*domain.EmailVerification")).Return(nil)
		mailer.On("IsConfigured").Return(true)
		mailer.On("SendVerificationEmail", user.Email, user.Name, mock.AnythingOfType("string")).Return(nil)

		v, err := uc.RequestVerification(ctx, "user1")
		assert.NoError(t, err)
		assert.NotEmpty(t, v.Token)
		assert.Equal(t, "user1", v.UserID)
		mailer.AssertExpectations(t)
	})

	t.Run("Should report an unconfigured mailer as unavailable", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		verRepo := new(MockVerificationRepo)
		mailer := new(MockMailer)
		uc := usecase.NewVerificationUsecase(verRepo, userRepo, mailer)

		userRepo.On("GetByID", ctx, "user1").Return(user, nil)
		verRepo.On("Create", ctx, mock.Anything).Return(nil)
		mailer.On("IsConfigured").Return(false)

		_, err := uc.RequestVerification(ctx, "user1")
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusServiceUnavailable, appErr.Code)
		mailer.AssertNotCalled(t, "SendVerificationEmail")
	})

	t.Run("Should report a failed send without retrying", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		verRepo := new(MockVerificationRepo)
		mailer := new(MockMailer)
		uc := usecase.NewVerificationUsecase(verRepo, userRepo, mailer)

		userRepo.On("GetByID", ctx, "user1").Return(user, nil)
		verRepo.On("Create", ctx, mock.Anything).Return(nil)
		mailer.On("IsConfigured").Return(true)
		mailer.On("SendVerificationEmail", user.Email, user.Name, mock.Anything).Return(errors.New("smtp timeout")).Once()

		_, err := uc.RequestVerification(ctx, "user1")
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		mailer.AssertNumberOfCalls(t, "SendVerificationEmail", 1)
	})
}

func TestConfirmVerification(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject unknown tokens", func(t *testing.T) {
		verRepo := new(MockVerificationRepo)
		uc := usecase.NewVerificationUsecase(verRepo, new(MockUserRepo), new(MockMailer))

		verRepo.On("GetByToken", ctx, "nope").Return(nil, nil)

		err := uc.ConfirmVerification(ctx, "nope")
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})

	t.Run("Should be a no-op for already verified tokens", func(t *testing.T) {
		verRepo := new(MockVerificationRepo)
		uc := usecase.NewVerificationUsecase(verRepo, new(MockUserRepo), new(MockMailer))

		verRepo.On("GetByToken", ctx, "tok").Return(&domain.EmailVerification{Token: "tok", Verified: true}, nil)

		assert.NoError(t, uc.ConfirmVerification(ctx, "tok"))
		verRepo.AssertNotCalled(t, "MarkVerified")
	})

	t.Run("Should mark fresh tokens verified", func(t *testing.T) {
		verRepo := new(MockVerificationRepo)
		uc := usecase.NewVerificationUsecase(verRepo, new(MockUserRepo), new(MockMailer))

		verRepo.On("GetByToken", ctx, "tok").Return(&domain.EmailVerification{Token: "tok"}, nil)
		verRepo.On("MarkVerified", ctx, "tok").Return(nil)

		assert.NoError(t, uc.ConfirmVerification(ctx, "tok"))
		verRepo.AssertExpectations(t)
	})
}

func TestEnsureUserExists(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create missing users with the default role", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo)

		userRepo.On("GetByID", ctx, "new1").Return(nil, nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, domain.RoleCandidate, u.Role)
		})

		err := uc.EnsureUserExists(ctx, &domain.User{ID: "new1", Name: "Dewi", Email: "dewi@example.com"})
		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("Should leave unchanged users untouched", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo)

		existing := &domain.User{ID: "user1", Name: "Dewi", Role: domain.RoleCandidate}
		userRepo.On("GetByID", ctx, "user1").Return(existing, nil)

		err := uc.EnsureUserExists(ctx, &domain.User{ID: "user1", Name: "Dewi", Role: domain.RoleCandidate})
		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "Update")
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should update drifted names", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo)

		existing := &domain.User{ID: "user1", Name: "Dewi", Role: domain.RoleCandidate}
		userRepo.On("GetByID", ctx, "user1").Return(existing, nil)
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, "Dewi Lestari", u.Name)
		})

		err := uc.EnsureUserExists(ctx, &domain.User{ID: "user1", Name: "Dewi Lestari"})
		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})
}
