package usecase

import (
	"context"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type profileUsecase struct {
	repo domain.ProfileRepository
}

func NewProfileUsecase(repo domain.ProfileRepository) domain.ProfileUsecase {
	return &profileUsecase{repo: repo}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (*domain.ProfileAggregate, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperror.BadRequest("userId is required")
	}
	return u.repo.GetAggregate(ctx, userID)
}

// SaveProfile validates the identifier and hands the whole aggregate to
// the repository in one call; atomicity is the transaction's job, not
// ours. Collections the caller omitted stay nil and are left untouched.
func (u *profileUsecase) SaveProfile(ctx context.Context, input *domain.ProfileSaveInput) (*domain.Profile, error) {
	if input == nil || strings.TrimSpace(input.UserID) == "" {
		return nil, apperror.BadRequest("userId is required")
	}
	return u.repo.SaveAggregate(ctx, input)
}
