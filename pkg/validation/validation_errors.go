package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels.
var FieldLabels = map[string]string{
	"Name":             "Name",
	"Email":            "Email",
	"Password":         "Password",
	"Industry":         "Industry",
	"TargetAudience":   "Target audience",
	"Profession":       "Profession",
	"CustomProfession": "Custom profession",
	"ContentGoals":     "Content goals",
	"Goals":            "Goals",
	"PreferredTone":    "Preferred tone",
	"Tone":             "Tone",
	"ContentPillars":   "Content pillars",
	"Pillar":           "Pillar",
	"Title":            "Title",
	"Body":             "Content",
	"Type":             "Content type",
	"Platforms":        "Platforms",
	"Platform":         "Platform",
}

// FormatValidationErrors converts validator.ValidationErrors to
// user-friendly messages.
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := fieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must have at least %s entries", label, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must have at most %s entries", label, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(e.Param(), " ", ", "))
	case "content_type":
		return fmt.Sprintf("%s must be post, carousel or thread", label)
	case "content_tone":
		return fmt.Sprintf("%s is not a recognized tone", label)
	case "content_pillar":
		return fmt.Sprintf("%s is not a recognized pillar", label)
	case "social_platform":
		return fmt.Sprintf("%s is not a supported platform", label)
	case "goal_key":
		return fmt.Sprintf("%s contains an unknown goal", label)
	case "tone_key":
		return fmt.Sprintf("%s is not a recognized tone", label)
	case "profession":
		return fmt.Sprintf("%s is not one of the selectable options", label)
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

func fieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	// CamelCase to spaced words as a fallback
	var b strings.Builder
	for i, r := range fieldName {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
