package usecase

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
	"github.com/Koushik2208/contentgen-pro/pkg/apperror"
)

type onboardingUsecase struct {
	profileRepo domain.ProfileRepository
	prefsRepo   domain.PreferencesRepository
	status      *StatusChecker
	validate    *validator.Validate
}

func NewOnboardingUsecase(
	profileRepo domain.ProfileRepository,
	prefsRepo domain.PreferencesRepository,
	status *StatusChecker,
	validate *validator.Validate,
) domain.OnboardingUsecase {
	return &onboardingUsecase{
		profileRepo: profileRepo,
		prefsRepo:   prefsRepo,
		status:      status,
		validate:    validate,
	}
}

// ============================================================================
// Onboarding Status
// ============================================================================

func (u *onboardingUsecase) GetStatus(ctx context.Context, userID string) (*domain.OnboardingStatus, error) {
	// Security: Verify context user matches requested user
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only check your own onboarding status")
	}

	// The checker fails open, so this never errors and never blocks long.
	return &domain.OnboardingStatus{Completed: u.status.Check(ctx, userID)}, nil
}

func (u *onboardingUsecase) InvalidateStatus(userID string) {
	u.status.Invalidate(userID)
}

// ============================================================================
// Per-step validation
// ============================================================================

// CheckStep runs one wizard step through the pure state machine and reports
// where the client should go next. No side effects.
func (u *onboardingUsecase) CheckStep(step int, form domain.WizardForm) domain.StepResult {
	if step < domain.StepCredentials || step > domain.StepFinal {
		return domain.StepResult{
			Valid:       false,
			FieldErrors: domain.FieldErrors{"step": "Unknown onboarding step"},
			NextStep:    domain.StepCredentials,
		}
	}

	w := domain.Wizard{Step: step, Form: form}
	submit := w.Advance()
	if len(w.Errors) > 0 {
		return domain.StepResult{
			Valid:       false,
			FieldErrors: w.Errors,
			NextStep:    step,
		}
	}
	return domain.StepResult{
		Valid:    true,
		NextStep: w.Step,
		Submit:   submit,
	}
}

// ============================================================================
// Complete Onboarding
// ============================================================================

func (u *onboardingUsecase) Complete(ctx context.Context, userID, email string, req *domain.OnboardingSubmitRequest) error {
	// Security: Verify context user matches requested user
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return apperror.Forbidden("You can only complete your own onboarding")
	}

	if err := u.validate.Struct(req); err != nil {
		return validationError(err)
	}

	// Re-run the wizard rules server-side. Credentials were already handled
	// by the auth provider, so only the profile steps are checked here.
	form := domain.WizardForm{
		Name:             req.Name,
		Profession:       req.Profession,
		CustomProfession: req.CustomProfession,
		Goals:            req.Goals,
		Tone:             req.Tone,
	}
	for step := domain.StepName; step <= domain.StepFinal; step++ {
		if errs := domain.ValidateStep(step, form); len(errs) > 0 {
			return apperror.New(http.StatusBadRequest, "Onboarding form has invalid fields", nil)
		}
	}

	profile := &domain.UserProfile{
		ID:             userID,
		Name:           req.Name,
		Email:          email,
		Industry:       req.Industry,
		TargetAudience: req.TargetAudience,
	}
	if err := u.profileRepo.Upsert(ctx, profile); err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to save profile: "+err.Error(), err)
	}

	prefs := &domain.UserPreferences{
		UserID:           userID,
		Profession:       req.Profession,
		CustomProfession: req.CustomProfession,
		ContentGoals:     req.Goals,
		PreferredTone:    req.Tone,
		Notifications:    req.Notifications,
	}
	if err := u.prefsRepo.Upsert(ctx, prefs); err != nil {
		// The profile row may exist now, but without a preferences row the
		// user is still "not onboarded" and can retry; upserts make the
		// retry idempotent.
		return apperror.New(http.StatusInternalServerError, "Failed to save preferences: "+err.Error(), err)
	}

	// The cached "incomplete" answer is stale now.
	u.status.Invalidate(userID)
	return nil
}
