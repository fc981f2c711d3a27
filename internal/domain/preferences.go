package domain

import (
	"context"
	"time"
)

// ============================================================================
// Profession (Onboarding Step 2)
// ============================================================================

// ProfessionOther is the sentinel choice that requires free-text input.
const ProfessionOther = "Other (specify)"

// Professions lists the selectable options, in display order.
var Professions = []string{
	"Marketing Professional",
	"Sales Manager",
	"Business Coach",
	"Consultant",
	"Entrepreneur",
	"Real Estate Agent",
	"Financial Advisor",
	"Healthcare Professional",
	"Technology Professional",
	"Creative Professional",
	ProfessionOther,
}

// IsValidProfession checks the selection against the fixed option list.
func IsValidProfession(p string) bool {
	for _, valid := range Professions {
		if p == valid {
			return true
		}
	}
	return false
}

// ============================================================================
// Content Goals (Onboarding Step 3)
// ============================================================================

type GoalKey string

const (
	GoalReach     GoalKey = "reach"
	GoalAuthority GoalKey = "authority"
	GoalClients   GoalKey = "clients"
	GoalNetwork   GoalKey = "network"
)

func ValidGoalKeys() []GoalKey {
	return []GoalKey{GoalReach, GoalAuthority, GoalClients, GoalNetwork}
}

func (k GoalKey) IsValid() bool {
	for _, valid := range ValidGoalKeys() {
		if k == valid {
			return true
		}
	}
	return false
}

// ============================================================================
// Preferred Tone (Onboarding Step 3)
// ============================================================================

type ToneKey string

const (
	ToneKeyProfessional ToneKey = "professional"
	ToneKeyCasual       ToneKey = "casual"
	ToneKeyStorytelling ToneKey = "storytelling"
	ToneKeyEducational  ToneKey = "educational"
)

func ValidToneKeys() []ToneKey {
	return []ToneKey{ToneKeyProfessional, ToneKeyCasual, ToneKeyStorytelling, ToneKeyEducational}
}

func (k ToneKey) IsValid() bool {
	for _, valid := range ValidToneKeys() {
		if k == valid {
			return true
		}
	}
	return false
}

// ============================================================================
// User Preferences
// ============================================================================

// NotificationSettings is stored as a jsonb column on user_preferences.
type NotificationSettings struct {
	WeeklyDigest    bool `json:"weekly_digest"`
	ContentReady    bool `json:"content_ready"`
	EngagementStats bool `json:"engagement_stats"`
	ProductUpdates  bool `json:"product_updates"`
}

// UserPreferences mirrors the user_preferences table. A row existing for a
// user id is what marks onboarding as completed, there is no separate flag.
type UserPreferences struct {
	ID               int64                `json:"id"`
	UserID           string               `json:"user_id"`
	Profession       string               `json:"profession"`
	CustomProfession string               `json:"custom_profession,omitempty"`
	ContentGoals     []string             `json:"content_goals"`
	PreferredTone    string               `json:"preferred_tone"`
	ContentPillars   []string             `json:"content_pillars"`
	Notifications    NotificationSettings `json:"email_notifications"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// PreferencesUpdateRequest carries the editable subset from profile settings.
type PreferencesUpdateRequest struct {
	Profession       string               `json:"profession" validate:"required,profession"`
	CustomProfession string               `json:"custom_profession"`
	ContentGoals     []string             `json:"content_goals" validate:"required,min=1,dive,required,goal_key"`
	PreferredTone    string               `json:"preferred_tone" validate:"required,tone_key"`
	ContentPillars   []string             `json:"content_pillars" validate:"dive,required,content_pillar"`
	Notifications    NotificationSettings `json:"email_notifications"`
}

type PreferencesRepository interface {
	GetByUserID(ctx context.Context, userID string) (*UserPreferences, error)
	Exists(ctx context.Context, userID string) (bool, error)
	Upsert(ctx context.Context, prefs *UserPreferences) error
}
