package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
)

type templateRepo struct {
	db *pgxpool.Pool
}

func NewTemplateRepository(db *pgxpool.Pool) domain.TemplateRepository {
	return &templateRepo{db: db}
}

func (r *templateRepo) ListActive(ctx context.Context, filter domain.TemplateFilter) ([]domain.ContentTemplate, error) {
	var (
		sb   strings.Builder
		args []interface{}
	)
	sb.WriteString(`
		SELECT id, name, type, tone, pillar, body, is_active, created_at
		FROM content_templates
		WHERE is_active = TRUE`)

	addFilter := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		sb.WriteString(" AND " + column + " = $" + strconv.Itoa(len(args)))
	}
	addFilter("type", filter.Type)
	addFilter("tone", filter.Tone)
	addFilter("pillar", filter.Pillar)
	sb.WriteString(" ORDER BY name ASC")

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []domain.ContentTemplate
	for rows.Next() {
		var t domain.ContentTemplate
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Type, &t.Tone, &t.Pillar, &t.Body, &t.IsActive, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan template row: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating template rows: %w", err)
	}
	return templates, nil
}
