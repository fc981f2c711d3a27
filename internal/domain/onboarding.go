package domain

import (
	"context"
	"regexp"
	"time"
)

// ============================================================================
// Wizard steps
// ============================================================================

const (
	StepCredentials = 0
	StepName        = 1
	StepProfession  = 2
	StepGoals       = 3

	// StepFinal is the terminal step; Advance from here submits.
	StepFinal = StepGoals
)

// Matches the loose client-side rule: something@something.something.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// MinPasswordLength follows the Supabase default.
const MinPasswordLength = 6

// FieldErrors maps a form field name to its validation message.
type FieldErrors map[string]string

// WizardForm collects everything the onboarding flow gathers across steps.
type WizardForm struct {
	Email            string   `json:"email"`
	Password         string   `json:"password"`
	Name             string   `json:"name"`
	Profession       string   `json:"profession"`
	CustomProfession string   `json:"custom_profession"`
	Goals            []string `json:"goals"`
	Tone             string   `json:"tone"`
}

// ValidateStep applies the required-field rules for a single step. It is a
// pure function: no side effects, the same input always yields the same
// errors. An unknown step validates clean.
func ValidateStep(step int, form WizardForm) FieldErrors {
	errs := FieldErrors{}

	switch step {
	case StepCredentials:
		if form.Email == "" {
			errs["email"] = "Email is required"
		} else if !emailPattern.MatchString(form.Email) {
			errs["email"] = "Please enter a valid email"
		}
		if len(form.Password) < MinPasswordLength {
			errs["password"] = "Password must be at least 6 characters"
		}

	case StepName:
		if form.Name == "" {
			errs["name"] = "Name is required"
		}

	case StepProfession:
		if form.Profession == "" {
			errs["profession"] = "Please select your profession"
		} else if !IsValidProfession(form.Profession) {
			errs["profession"] = "Unknown profession option"
		}
		if form.Profession == ProfessionOther && form.CustomProfession == "" {
			errs["custom_profession"] = "Please specify your profession"
		}

	case StepGoals:
		if len(form.Goals) == 0 {
			errs["goals"] = "Please select at least one goal"
		} else {
			for _, g := range form.Goals {
				if !GoalKey(g).IsValid() {
					errs["goals"] = "Unknown goal: " + g
					break
				}
			}
		}
		if form.Tone == "" {
			errs["tone"] = "Please select your preferred tone"
		} else if !ToneKey(form.Tone).IsValid() {
			errs["tone"] = "Unknown tone: " + form.Tone
		}
	}

	return errs
}

// ValidateAll runs every step's rules, merging field errors. Used by the
// final submission so a resumed or tampered flow cannot skip a step.
func ValidateAll(form WizardForm) FieldErrors {
	merged := FieldErrors{}
	for step := StepCredentials; step <= StepFinal; step++ {
		for field, msg := range ValidateStep(step, form) {
			merged[field] = msg
		}
	}
	return merged
}

// ============================================================================
// Wizard state machine
// ============================================================================

// Wizard is the linear step machine behind the onboarding flow. Advance only
// moves forward when the current step validates; Retreat never validates.
type Wizard struct {
	Step   int
	Form   WizardForm
	Errors FieldErrors
}

// Advance validates the current step. On failure the step index is unchanged
// and Errors holds the field messages. On success it either increments the
// step or, at the terminal step, reports that submission should run.
func (w *Wizard) Advance() (submit bool) {
	errs := ValidateStep(w.Step, w.Form)
	if len(errs) > 0 {
		w.Errors = errs
		return false
	}
	w.Errors = FieldErrors{}
	if w.Step >= StepFinal {
		return true
	}
	w.Step++
	return false
}

// Retreat steps backward. At step 0 it reports that the caller should leave
// the wizard entirely (navigation is the caller's concern).
func (w *Wizard) Retreat() (exit bool) {
	if w.Step <= StepCredentials {
		return true
	}
	w.Step--
	return false
}

// ============================================================================
// Interfaces
// ============================================================================

type OnboardingStatus struct {
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// StepResult is the server-side answer to a per-step validation request.
type StepResult struct {
	Valid       bool        `json:"valid"`
	FieldErrors FieldErrors `json:"field_errors,omitempty"`
	NextStep    int         `json:"next_step"`
	Submit      bool        `json:"submit"`
}

type OnboardingSubmitRequest struct {
	Name             string               `json:"name" validate:"required,max=120"`
	Profession       string               `json:"profession" validate:"required,profession"`
	CustomProfession string               `json:"custom_profession"`
	Goals            []string             `json:"goals" validate:"required,min=1,dive,required,goal_key"`
	Tone             string               `json:"tone" validate:"required,tone_key"`
	Industry         string               `json:"industry" validate:"max=200"`
	TargetAudience   string               `json:"target_audience" validate:"max=500"`
	Notifications    NotificationSettings `json:"email_notifications"`
}

type OnboardingUsecase interface {
	GetStatus(ctx context.Context, userID string) (*OnboardingStatus, error)
	CheckStep(step int, form WizardForm) StepResult
	Complete(ctx context.Context, userID, email string, req *OnboardingSubmitRequest) error
	InvalidateStatus(userID string)
}
