package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
)

type authUsecase struct {
	userRepo domain.UserRepository
}

func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

// EnsureUserExists syncs a Supabase auth user into the local users table.
// Idempotent: called on every login and on first authenticated request.
func (u *authUsecase) EnsureUserExists(ctx context.Context, user *domain.User) error {
	existing, err := u.userRepo.GetByID(ctx, user.ID)
	if existing != nil && err == nil {
		if user.Email != "" && existing.Email != user.Email {
			// Email changed on the auth side (e.g. confirmed address swap)
			existing.Email = user.Email
			existing.UpdatedAt = time.Now()
			return u.userRepo.Update(ctx, existing)
		}
		return nil
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return u.userRepo.Create(ctx, user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

func (u *authUsecase) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return user != nil, nil
}
