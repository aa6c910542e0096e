package usecase

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type authUsecase struct {
	userRepo domain.UserRepository
}

func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

// EnsureUserExists syncs the identity-provider subject into the local
// users table. Idempotent: existing rows are only touched when name or
// role drifted.
func (u *authUsecase) EnsureUserExists(ctx context.Context, user *domain.User) error {
	existing, err := u.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		changed := false
		if user.Name != "" && existing.Name != user.Name {
			existing.Name = user.Name
			changed = true
		}
		if user.Role != "" && existing.Role != user.Role {
			existing.Role = user.Role
			changed = true
		}
		if !changed {
			return nil
		}
		existing.UpdatedAt = time.Now()
		return u.userRepo.Update(ctx, existing)
	}

	if user.Role == "" {
		user.Role = domain.RoleCandidate
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	return u.userRepo.Create(ctx, user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}
