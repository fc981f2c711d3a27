package domain

import (
	"context"
	"time"
)

// AnalyticsRecord is one per-platform metrics snapshot for a content item.
// Rows are append-only; the newest row per platform is the current value.
type AnalyticsRecord struct {
	ID             int64     `json:"id"`
	ContentID      string    `json:"content_id"`
	Platform       string    `json:"platform"`
	Views          int       `json:"views"`
	Likes          int       `json:"likes"`
	Comments       int       `json:"comments"`
	Shares         int       `json:"shares"`
	Clicks         int       `json:"clicks"`
	EngagementRate float64   `json:"engagement_rate"`
	RecordedAt     time.Time `json:"recorded_at"`
}

type AnalyticsSubmitRequest struct {
	Platform       string  `json:"platform" validate:"required,social_platform"`
	Views          int     `json:"views" validate:"min=0"`
	Likes          int     `json:"likes" validate:"min=0"`
	Comments       int     `json:"comments" validate:"min=0"`
	Shares         int     `json:"shares" validate:"min=0"`
	Clicks         int     `json:"clicks" validate:"min=0"`
	EngagementRate float64 `json:"engagement_rate" validate:"min=0"`
}

type AnalyticsRepository interface {
	ListByContentID(ctx context.Context, contentID string) ([]AnalyticsRecord, error)
	Insert(ctx context.Context, record *AnalyticsRecord) error
}

type AnalyticsUsecase interface {
	List(ctx context.Context, userID, contentID string) ([]AnalyticsRecord, error)
	Record(ctx context.Context, userID, contentID string, req *AnalyticsSubmitRequest) (*AnalyticsRecord, error)
}
