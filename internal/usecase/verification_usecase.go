package usecase

import (
	"context"
	"net/http"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/google/uuid"
)

type verificationUsecase struct {
	verificationRepo domain.VerificationRepository
	userRepo         domain.UserRepository
	mailer           domain.VerificationMailer
}

func NewVerificationUsecase(repo domain.VerificationRepository, userRepo domain.UserRepository, mailer domain.VerificationMailer) domain.VerificationUsecase {
	return &verificationUsecase{
		verificationRepo: repo,
		userRepo:         userRepo,
		mailer:           mailer,
	}
}

func (uc *verificationUsecase) RequestVerification(ctx context.Context, userID string) (*domain.EmailVerification, error) {
	if userID == "" {
		return nil, apperror.BadRequest("userId is required")
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	v := &domain.EmailVerification{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := uc.verificationRepo.Create(ctx, v); err != nil {
		return nil, err
	}

	if !uc.mailer.IsConfigured() {
		return nil, apperror.New(http.StatusServiceUnavailable, "Email service is not configured", nil)
	}

	// Fire-and-forget: a failed send is reported, never retried. The
	// token stays valid so the client may request a fresh email later.
	if err := uc.mailer.SendVerificationEmail(user.Email, user.Name, v.Token); err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to send verification email", err)
	}

	return v, nil
}

func (uc *verificationUsecase) ConfirmVerification(ctx context.Context, token string) error {
	v, err := uc.verificationRepo.GetByToken(ctx, token)
	if err != nil {
		return err
	}
	if v == nil {
		return apperror.NotFound("Verification token not found")
	}
	if v.Verified {
		return nil
	}
	return uc.verificationRepo.MarkVerified(ctx, token)
}
