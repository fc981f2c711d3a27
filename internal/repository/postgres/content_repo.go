package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
)

type contentRepo struct {
	db *pgxpool.Pool
}

func NewContentRepository(db *pgxpool.Pool) domain.ContentRepository {
	return &contentRepo{db: db}
}

const contentColumns = `id, user_id, type, title, content, tone, pillar, platforms,
       engagement_likes, engagement_comments, engagement_shares,
       is_favorited, created_at`

func scanContentItem(row pgx.Row) (*domain.ContentItem, error) {
	var (
		item      domain.ContentItem
		platforms []string
	)
	err := row.Scan(
		&item.ID, &item.UserID, &item.Type, &item.Title, &item.Body,
		&item.Tone, &item.Pillar, pq.Array(&platforms),
		&item.Engagement.Likes, &item.Engagement.Comments, &item.Engagement.Shares,
		&item.IsFavorited, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.Platforms = platforms
	return &item, nil
}

func (r *contentRepo) ListByUserID(ctx context.Context, userID string) ([]domain.ContentItem, error) {
	query := `
		SELECT ` + contentColumns + `
		FROM content
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	defer rows.Close()

	var items []domain.ContentItem
	for rows.Next() {
		item, err := scanContentItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan content row: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating content rows: %w", err)
	}
	return items, nil
}

func (r *contentRepo) GetByID(ctx context.Context, id string) (*domain.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM content WHERE id = $1`

	item, err := scanContentItem(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get content: %w", err)
	}
	return item, nil
}

func (r *contentRepo) Create(ctx context.Context, item *domain.ContentItem) error {
	query := `
		INSERT INTO content
			(id, user_id, type, title, content, tone, pillar, platforms,
			 engagement_likes, engagement_comments, engagement_shares,
			 is_favorited, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		RETURNING created_at`

	err := r.db.QueryRow(ctx, query,
		item.ID, item.UserID, item.Type, item.Title, item.Body,
		item.Tone, item.Pillar, pq.Array(item.Platforms),
		item.Engagement.Likes, item.Engagement.Comments, item.Engagement.Shares,
		item.IsFavorited,
	).Scan(&item.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert content: %w", err)
	}
	return nil
}

func (r *contentRepo) Update(ctx context.Context, item *domain.ContentItem) error {
	query := `
		UPDATE content SET
			title     = $2,
			content   = $3,
			tone      = $4,
			pillar    = $5,
			platforms = $6
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		item.ID, item.Title, item.Body, item.Tone, item.Pillar, pq.Array(item.Platforms),
	)
	if err != nil {
		return fmt.Errorf("failed to update content: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contentRepo) SetFavorited(ctx context.Context, id string, favorited bool) error {
	query := `UPDATE content SET is_favorited = $2 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, favorited)
	if err != nil {
		return fmt.Errorf("failed to set favorite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contentRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM content WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contentRepo) Summary(ctx context.Context, userID string) (*domain.ContentSummary, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE type = 'post'),
		       COUNT(*) FILTER (WHERE type = 'carousel'),
		       COUNT(*) FILTER (WHERE type = 'thread'),
		       COUNT(*) FILTER (WHERE is_favorited)
		FROM content
		WHERE user_id = $1`

	var s domain.ContentSummary
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&s.Total, &s.Posts, &s.Carousels, &s.Threads, &s.Favorites,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get content summary: %w", err)
	}
	return &s, nil
}
