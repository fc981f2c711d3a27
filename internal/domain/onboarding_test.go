package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
)

func validForm() domain.WizardForm {
	return domain.WizardForm{
		Email:      "maya@example.com",
		Password:   "supersecret",
		Name:       "Maya",
		Profession: "Business Coach",
		Goals:      []string{"reach", "authority"},
		Tone:       "professional",
	}
}

func TestValidateStep(t *testing.T) {
	t.Run("Should report both credential errors at once", func(t *testing.T) {
		form := domain.WizardForm{Email: "not-an-email", Password: "123"}
		errs := domain.ValidateStep(domain.StepCredentials, form)

		assert.Len(t, errs, 2)
		assert.Equal(t, "Please enter a valid email", errs["email"])
		assert.Equal(t, "Password must be at least 6 characters", errs["password"])
	})

	t.Run("Should require email before checking its shape", func(t *testing.T) {
		errs := domain.ValidateStep(domain.StepCredentials, domain.WizardForm{Password: "supersecret"})
		assert.Equal(t, "Email is required", errs["email"])
	})

	t.Run("Should accept a minimal valid email", func(t *testing.T) {
		form := validForm()
		errs := domain.ValidateStep(domain.StepCredentials, form)
		assert.Empty(t, errs)
	})

	t.Run("Should require a name on the name step", func(t *testing.T) {
		errs := domain.ValidateStep(domain.StepName, domain.WizardForm{})
		assert.Equal(t, "Name is required", errs["name"])
	})

	t.Run("Should require custom text when profession is Other", func(t *testing.T) {
		form := domain.WizardForm{Profession: domain.ProfessionOther}
		errs := domain.ValidateStep(domain.StepProfession, form)
		assert.Equal(t, "Please specify your profession", errs["custom_profession"])

		form.CustomProfession = "Beekeeper"
		assert.Empty(t, domain.ValidateStep(domain.StepProfession, form))
	})

	t.Run("Should reject a profession outside the option list", func(t *testing.T) {
		form := domain.WizardForm{Profession: "Astronaut"}
		errs := domain.ValidateStep(domain.StepProfession, form)
		assert.Equal(t, "Unknown profession option", errs["profession"])
	})

	t.Run("Should require at least one goal and a tone", func(t *testing.T) {
		errs := domain.ValidateStep(domain.StepGoals, domain.WizardForm{})
		assert.Equal(t, "Please select at least one goal", errs["goals"])
		assert.Equal(t, "Please select your preferred tone", errs["tone"])
	})

	t.Run("Should reject unknown goal and tone keys", func(t *testing.T) {
		form := domain.WizardForm{Goals: []string{"fame"}, Tone: "sarcastic"}
		errs := domain.ValidateStep(domain.StepGoals, form)
		assert.Contains(t, errs["goals"], "Unknown goal")
		assert.Contains(t, errs["tone"], "Unknown tone")
	})

	t.Run("Should be pure: same input yields same errors", func(t *testing.T) {
		form := domain.WizardForm{Email: "not-an-email", Password: "123"}
		first := domain.ValidateStep(domain.StepCredentials, form)
		second := domain.ValidateStep(domain.StepCredentials, form)
		assert.Equal(t, first, second)
	})
}

func TestWizardAdvance(t *testing.T) {
	t.Run("Should stay on the step and collect errors when invalid", func(t *testing.T) {
		w := domain.Wizard{Step: domain.StepCredentials, Form: domain.WizardForm{Email: "not-an-email", Password: "123"}}
		submit := w.Advance()

		assert.False(t, submit)
		assert.Equal(t, domain.StepCredentials, w.Step)
		assert.Len(t, w.Errors, 2)
	})

	t.Run("Should clear stale errors on a successful advance", func(t *testing.T) {
		w := domain.Wizard{
			Step:   domain.StepName,
			Form:   validForm(),
			Errors: domain.FieldErrors{"name": "Name is required"},
		}
		submit := w.Advance()

		assert.False(t, submit)
		assert.Equal(t, domain.StepProfession, w.Step)
		assert.Empty(t, w.Errors)
	})

	t.Run("Should walk all steps and submit from the final one", func(t *testing.T) {
		w := domain.Wizard{Form: validForm()}
		for i := 0; i < 3; i++ {
			assert.False(t, w.Advance())
		}
		assert.Equal(t, domain.StepFinal, w.Step)
		assert.True(t, w.Advance())
		assert.Equal(t, domain.StepFinal, w.Step, "submit must not move past the final step")
	})
}

func TestWizardRetreat(t *testing.T) {
	t.Run("Should exit from step zero", func(t *testing.T) {
		w := domain.Wizard{Step: domain.StepCredentials}
		assert.True(t, w.Retreat())
		assert.Equal(t, domain.StepCredentials, w.Step)
	})

	t.Run("Should step back without validating", func(t *testing.T) {
		// Form is entirely invalid; retreat must not care
		w := domain.Wizard{Step: domain.StepGoals}
		assert.False(t, w.Retreat())
		assert.Equal(t, domain.StepProfession, w.Step)
	})
}

func TestValidateAll(t *testing.T) {
	t.Run("Should merge errors across every step", func(t *testing.T) {
		errs := domain.ValidateAll(domain.WizardForm{})
		for _, field := range []string{"email", "password", "name", "profession", "goals", "tone"} {
			assert.Contains(t, errs, field)
		}
	})

	t.Run("Should validate clean for a complete form", func(t *testing.T) {
		assert.Empty(t, domain.ValidateAll(validForm()))
	})
}
