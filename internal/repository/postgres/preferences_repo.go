package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
)

type preferencesRepo struct {
	db *pgxpool.Pool
}

func NewPreferencesRepository(db *pgxpool.Pool) domain.PreferencesRepository {
	return &preferencesRepo{db: db}
}

func (r *preferencesRepo) GetByUserID(ctx context.Context, userID string) (*domain.UserPreferences, error) {
	query := `
		SELECT id, user_id, profession, custom_profession, content_goals,
		       preferred_tone, content_pillars, email_notifications,
		       created_at, updated_at
		FROM user_preferences
		WHERE user_id = $1`

	var (
		prefs         domain.UserPreferences
		goals         []string
		pillars       []string
		notifications []byte
	)
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&prefs.ID, &prefs.UserID, &prefs.Profession, &prefs.CustomProfession,
		pq.Array(&goals), &prefs.PreferredTone, pq.Array(&pillars),
		&notifications, &prefs.CreatedAt, &prefs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	prefs.ContentGoals = goals
	prefs.ContentPillars = pillars
	if len(notifications) > 0 {
		if err := json.Unmarshal(notifications, &prefs.Notifications); err != nil {
			return nil, fmt.Errorf("failed to decode notification settings: %w", err)
		}
	}
	return &prefs, nil
}

// Exists answers the onboarding-status question: a preferences row existing
// for the user id is the definition of "onboarding completed".
func (r *preferencesRepo) Exists(ctx context.Context, userID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM user_preferences WHERE user_id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check preferences existence: %w", err)
	}
	return exists, nil
}

// Upsert uses insert-on-conflict-update semantics so a resumed onboarding or
// repeated settings save never errors on the unique user_id constraint.
func (r *preferencesRepo) Upsert(ctx context.Context, prefs *domain.UserPreferences) error {
	notifications, err := json.Marshal(prefs.Notifications)
	if err != nil {
		return fmt.Errorf("failed to encode notification settings: %w", err)
	}

	query := `
		INSERT INTO user_preferences
			(user_id, profession, custom_profession, content_goals,
			 preferred_tone, content_pillars, email_notifications, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			profession          = EXCLUDED.profession,
			custom_profession   = EXCLUDED.custom_profession,
			content_goals       = EXCLUDED.content_goals,
			preferred_tone      = EXCLUDED.preferred_tone,
			content_pillars     = EXCLUDED.content_pillars,
			email_notifications = EXCLUDED.email_notifications,
			updated_at          = NOW()`

	_, err = r.db.Exec(ctx, query,
		prefs.UserID, prefs.Profession, prefs.CustomProfession,
		pq.Array(prefs.ContentGoals), prefs.PreferredTone,
		pq.Array(prefs.ContentPillars), notifications,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert preferences: %w", err)
	}
	return nil
}
