package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `
		SELECT id, name, email, industry, target_audience, avatar_url, created_at, updated_at
		FROM profiles
		WHERE id = $1`

	var p domain.UserProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.Name, &p.Email, &p.Industry, &p.TargetAudience,
		&p.AvatarURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// Upsert inserts the profile row or, when the user already has one, updates
// the editable fields. Resuming an interrupted onboarding must not error.
func (r *profileRepo) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	query := `
		INSERT INTO profiles (id, name, email, industry, target_audience, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			name            = EXCLUDED.name,
			email           = EXCLUDED.email,
			industry        = EXCLUDED.industry,
			target_audience = EXCLUDED.target_audience,
			updated_at      = NOW()`

	_, err := r.db.Exec(ctx, query,
		profile.ID, profile.Name, profile.Email, profile.Industry, profile.TargetAudience,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

func (r *profileRepo) UpdateAvatarURL(ctx context.Context, userID, avatarURL string) error {
	query := `UPDATE profiles SET avatar_url = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, userID, avatarURL)
	if err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
