package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
)

type carouselRepo struct {
	db *pgxpool.Pool
}

func NewCarouselRepository(db *pgxpool.Pool) domain.CarouselRepository {
	return &carouselRepo{db: db}
}

func (r *carouselRepo) ListByContentID(ctx context.Context, contentID string) ([]domain.CarouselSlide, error) {
	query := `
		SELECT id, content_id, slide_number, title, content,
		       background_color, text_color, created_at
		FROM carousel_slides
		WHERE content_id = $1
		ORDER BY slide_number ASC`

	rows, err := r.db.Query(ctx, query, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list slides: %w", err)
	}
	defer rows.Close()

	var slides []domain.CarouselSlide
	for rows.Next() {
		var s domain.CarouselSlide
		if err := rows.Scan(
			&s.ID, &s.ContentID, &s.SlideNumber, &s.Title, &s.Body,
			&s.BackgroundColor, &s.TextColor, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan slide row: %w", err)
		}
		slides = append(slides, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating slide rows: %w", err)
	}
	return slides, nil
}
