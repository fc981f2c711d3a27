package domain

import (
	"context"
	"time"
)

// UserProfile mirrors the profiles table. The row id is the Supabase user id,
// so profile and auth identity are always 1:1.
type UserProfile struct {
	ID             string    `json:"id"`
	Name           string    `json:"name" validate:"required,max=120"`
	Email          string    `json:"email" validate:"required,email"`
	Industry       string    `json:"industry" validate:"max=200"`
	TargetAudience string    `json:"target_audience" validate:"max=500"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProfileUpdateRequest carries the editable subset of a profile.
// Email is sourced from the auth token, never from the client.
type ProfileUpdateRequest struct {
	Name           string `json:"name" validate:"required,max=120"`
	Industry       string `json:"industry" validate:"max=200"`
	TargetAudience string `json:"target_audience" validate:"max=500"`
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*UserProfile, error)
	Upsert(ctx context.Context, profile *UserProfile) error
	UpdateAvatarURL(ctx context.Context, userID, avatarURL string) error
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*UserProfile, *UserPreferences, error)
	UpdateProfile(ctx context.Context, userID string, req *ProfileUpdateRequest) (*UserProfile, error)
	UpdatePreferences(ctx context.Context, userID string, req *PreferencesUpdateRequest) (*UserPreferences, error)
	UpdateAvatar(ctx context.Context, userID, avatarURL string) error
}
