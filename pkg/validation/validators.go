package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
)

// RegisterValidators registers the content enum validators on the shared
// validator instance.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("content_type", ContentType)
	_ = v.RegisterValidation("content_tone", ContentTone)
	_ = v.RegisterValidation("content_pillar", ContentPillar)
	_ = v.RegisterValidation("social_platform", SocialPlatform)
	_ = v.RegisterValidation("goal_key", GoalKey)
	_ = v.RegisterValidation("tone_key", ToneKey)
	_ = v.RegisterValidation("profession", Profession)
}

// ContentType validates post|carousel|thread.
func ContentType(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return domain.ContentType(val).IsValid()
}

// ContentTone validates the display tones (Professional, Casual, ...).
func ContentTone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return domain.ContentTone(val).IsValid()
}

// ContentPillar validates the five pillar labels.
func ContentPillar(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return domain.ContentPillar(val).IsValid()
}

// SocialPlatform validates the supported platforms.
func SocialPlatform(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return domain.SocialPlatform(val).IsValid()
}

// GoalKey validates onboarding goal ids (reach, authority, ...).
func GoalKey(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return domain.GoalKey(val).IsValid()
}

// ToneKey validates onboarding tone ids (professional, casual, ...).
func ToneKey(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return domain.ToneKey(val).IsValid()
}

// Profession validates the profession option list including the
// "Other (specify)" sentinel.
func Profession(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return domain.IsValidProfession(val)
}
