package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
)

type analyticsRepo struct {
	db *pgxpool.Pool
}

func NewAnalyticsRepository(db *pgxpool.Pool) domain.AnalyticsRepository {
	return &analyticsRepo{db: db}
}

func (r *analyticsRepo) ListByContentID(ctx context.Context, contentID string) ([]domain.AnalyticsRecord, error) {
	query := `
		SELECT id, content_id, platform, views, likes, comments, shares,
		       clicks, engagement_rate, recorded_at
		FROM content_analytics
		WHERE content_id = $1
		ORDER BY recorded_at DESC`

	rows, err := r.db.Query(ctx, query, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list analytics: %w", err)
	}
	defer rows.Close()

	var records []domain.AnalyticsRecord
	for rows.Next() {
		var a domain.AnalyticsRecord
		if err := rows.Scan(
			&a.ID, &a.ContentID, &a.Platform, &a.Views, &a.Likes,
			&a.Comments, &a.Shares, &a.Clicks, &a.EngagementRate, &a.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan analytics row: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analytics rows: %w", err)
	}
	return records, nil
}

func (r *analyticsRepo) Insert(ctx context.Context, record *domain.AnalyticsRecord) error {
	query := `
		INSERT INTO content_analytics
			(content_id, platform, views, likes, comments, shares, clicks,
			 engagement_rate, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, recorded_at`

	err := r.db.QueryRow(ctx, query,
		record.ContentID, record.Platform, record.Views, record.Likes,
		record.Comments, record.Shares, record.Clicks, record.EngagementRate,
	).Scan(&record.ID, &record.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to insert analytics record: %w", err)
	}
	return nil
}
