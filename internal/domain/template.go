package domain

import (
	"context"
	"time"
)

// ContentTemplate is a reusable starting point for new content. Templates
// are curated rows; this service only lists the active ones.
type ContentTemplate struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Type      ContentType `json:"type"`
	Tone      string      `json:"tone"`
	Pillar    string      `json:"pillar"`
	Body      string      `json:"body"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
}

// TemplateFilter narrows the listing; zero values mean no filter.
type TemplateFilter struct {
	Type   string
	Tone   string
	Pillar string
}

type TemplateRepository interface {
	ListActive(ctx context.Context, filter TemplateFilter) ([]ContentTemplate, error)
}

type TemplateUsecase interface {
	List(ctx context.Context, filter TemplateFilter) ([]ContentTemplate, error)
}
