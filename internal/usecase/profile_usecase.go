package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
	"github.com/Koushik2208/contentgen-pro/pkg/apperror"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	prefsRepo   domain.PreferencesRepository
	status      *StatusChecker
	validate    *validator.Validate
}

func NewProfileUsecase(
	profileRepo domain.ProfileRepository,
	prefsRepo domain.PreferencesRepository,
	status *StatusChecker,
	validate *validator.Validate,
) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		prefsRepo:   prefsRepo,
		status:      status,
		validate:    validate,
	}
}

// GetProfile loads the profile row plus preferences. A missing preferences
// row is not an error, it just means onboarding preferences were never saved.
func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, *domain.UserPreferences, error) {
	if err := requireCtxUser(ctx, userID); err != nil {
		return nil, nil, err
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.NotFound("Profile not found")
		}
		return nil, nil, apperror.New(http.StatusInternalServerError, "Failed to load profile: "+err.Error(), err)
	}

	prefs, err := u.prefsRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, nil, apperror.New(http.StatusInternalServerError, "Failed to load preferences: "+err.Error(), err)
	}
	return profile, prefs, nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, userID string, req *domain.ProfileUpdateRequest) (*domain.UserProfile, error) {
	if err := requireCtxUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := u.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.New(http.StatusInternalServerError, "Failed to load profile: "+err.Error(), err)
	}

	profile.Name = req.Name
	profile.Industry = req.Industry
	profile.TargetAudience = req.TargetAudience
	if err := u.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to save profile: "+err.Error(), err)
	}
	return profile, nil
}

func (u *profileUsecase) UpdatePreferences(ctx context.Context, userID string, req *domain.PreferencesUpdateRequest) (*domain.UserPreferences, error) {
	if err := requireCtxUser(ctx, userID); err != nil {
		return nil, err
	}
	// Enum fields are covered by the registered custom validators; only the
	// cross-field rule stays here.
	if err := u.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if req.Profession == domain.ProfessionOther && req.CustomProfession == "" {
		return nil, apperror.BadRequest("Please specify your profession")
	}

	prefs := &domain.UserPreferences{
		UserID:           userID,
		Profession:       req.Profession,
		CustomProfession: req.CustomProfession,
		ContentGoals:     req.ContentGoals,
		PreferredTone:    req.PreferredTone,
		ContentPillars:   req.ContentPillars,
		Notifications:    req.Notifications,
	}
	if err := u.prefsRepo.Upsert(ctx, prefs); err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to save preferences: "+err.Error(), err)
	}

	// Writing preferences can flip onboarding state, drop the cached answer.
	u.status.Invalidate(userID)
	return prefs, nil
}

func (u *profileUsecase) UpdateAvatar(ctx context.Context, userID, avatarURL string) error {
	if err := requireCtxUser(ctx, userID); err != nil {
		return err
	}
	if err := u.profileRepo.UpdateAvatarURL(ctx, userID, avatarURL); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Profile not found")
		}
		return apperror.New(http.StatusInternalServerError, "Failed to save avatar: "+err.Error(), err)
	}
	return nil
}
