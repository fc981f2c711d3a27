package domain

import (
	"context"
	"strings"
	"time"
)

// ============================================================================
// Content enums
// ============================================================================

type ContentType string

const (
	TypePost     ContentType = "post"
	TypeCarousel ContentType = "carousel"
	TypeThread   ContentType = "thread"
)

func ValidContentTypes() []ContentType {
	return []ContentType{TypePost, TypeCarousel, TypeThread}
}

func (t ContentType) IsValid() bool {
	for _, valid := range ValidContentTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

type ContentTone string

const (
	ToneProfessional ContentTone = "Professional"
	ToneCasual       ContentTone = "Casual"
	ToneEducational  ContentTone = "Educational"
	ToneStorytelling ContentTone = "Storytelling"
)

func ValidContentTones() []ContentTone {
	return []ContentTone{ToneProfessional, ToneCasual, ToneEducational, ToneStorytelling}
}

func (t ContentTone) IsValid() bool {
	for _, valid := range ValidContentTones() {
		if t == valid {
			return true
		}
	}
	return false
}

type ContentPillar string

const (
	PillarThoughtLeadership ContentPillar = "Thought Leadership"
	PillarTipsAdvice        ContentPillar = "Tips & Advice"
	PillarPersonalStory     ContentPillar = "Personal Story"
	PillarBusinessGrowth    ContentPillar = "Business Growth"
	PillarBehindTheScenes   ContentPillar = "Behind the Scenes"
)

func ValidContentPillars() []ContentPillar {
	return []ContentPillar{
		PillarThoughtLeadership, PillarTipsAdvice, PillarPersonalStory,
		PillarBusinessGrowth, PillarBehindTheScenes,
	}
}

func (p ContentPillar) IsValid() bool {
	for _, valid := range ValidContentPillars() {
		if p == valid {
			return true
		}
	}
	return false
}

type SocialPlatform string

const (
	PlatformLinkedIn  SocialPlatform = "LinkedIn"
	PlatformTwitter   SocialPlatform = "Twitter"
	PlatformInstagram SocialPlatform = "Instagram"
	PlatformFacebook  SocialPlatform = "Facebook"
)

func ValidSocialPlatforms() []SocialPlatform {
	return []SocialPlatform{PlatformLinkedIn, PlatformTwitter, PlatformInstagram, PlatformFacebook}
}

func (p SocialPlatform) IsValid() bool {
	for _, valid := range ValidSocialPlatforms() {
		if p == valid {
			return true
		}
	}
	return false
}

// ============================================================================
// Content item
// ============================================================================

// Engagement counters are display-only. They are stored and returned as-is,
// never recomputed by this service.
type Engagement struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
}

type ContentItem struct {
	ID          string      `json:"id"`
	UserID      string      `json:"-"`
	Type        ContentType `json:"type"`
	Title       string      `json:"title"`
	Body        string      `json:"content"`
	Tone        string      `json:"tone"`
	Pillar      string      `json:"pillar"`
	Platforms   []string    `json:"platform"`
	Engagement  Engagement  `json:"engagement"`
	IsFavorited bool        `json:"is_favorited"`
	CreatedAt   time.Time   `json:"created_at"`
}

// ContentSummary aggregates a user's library for the dashboard header.
type ContentSummary struct {
	Total     int `json:"total"`
	Posts     int `json:"posts"`
	Carousels int `json:"carousels"`
	Threads   int `json:"threads"`
	Favorites int `json:"favorites"`
}

// ============================================================================
// Filtering (pure, order-independent)
// ============================================================================

// Sentinel filter values meaning "no filter". The empty string is accepted
// as an equivalent so clients can simply omit the query parameter.
const (
	FilterAllPillars = "All Pillars"
	FilterAllTones   = "All Tones"
)

// FilterContent narrows items by free-text search (case-insensitive substring
// over title and body), pillar equality and tone equality. Each predicate is
// independent, so applying them in any order yields the same result set.
func FilterContent(items []ContentItem, search, pillar, tone string) []ContentItem {
	needle := strings.ToLower(strings.TrimSpace(search))
	filtered := make([]ContentItem, 0, len(items))
	for _, item := range items {
		if needle != "" &&
			!strings.Contains(strings.ToLower(item.Title), needle) &&
			!strings.Contains(strings.ToLower(item.Body), needle) {
			continue
		}
		if pillar != "" && pillar != FilterAllPillars && item.Pillar != pillar {
			continue
		}
		if tone != "" && tone != FilterAllTones && item.Tone != tone {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// ExportFilename converts a content title into a filesystem-safe name:
// lowercase, alphanumerics kept, every other run of characters collapsed to
// a single underscore.
func ExportFilename(title string) string {
	var b strings.Builder
	lastUnderscore := true // suppress a leading underscore
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	name := strings.TrimSuffix(b.String(), "_")
	if name == "" {
		name = "content"
	}
	return name + ".txt"
}

// ============================================================================
// Interfaces
// ============================================================================

type ContentCreateRequest struct {
	Type      ContentType `json:"type" validate:"required,content_type"`
	Title     string      `json:"title" validate:"required,max=200"`
	Body      string      `json:"content" validate:"required"`
	Tone      string      `json:"tone" validate:"required,content_tone"`
	Pillar    string      `json:"pillar" validate:"required,content_pillar"`
	Platforms []string    `json:"platforms" validate:"required,min=1,dive,required,social_platform"`
}

type ContentUpdateRequest struct {
	Title     *string  `json:"title,omitempty"`
	Body      *string  `json:"content,omitempty"`
	Tone      *string  `json:"tone,omitempty"`
	Pillar    *string  `json:"pillar,omitempty"`
	Platforms []string `json:"platforms,omitempty"`
}

type ContentRepository interface {
	ListByUserID(ctx context.Context, userID string) ([]ContentItem, error)
	GetByID(ctx context.Context, id string) (*ContentItem, error)
	Create(ctx context.Context, item *ContentItem) error
	Update(ctx context.Context, item *ContentItem) error
	SetFavorited(ctx context.Context, id string, favorited bool) error
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, userID string) (*ContentSummary, error)
}

type ContentUsecase interface {
	List(ctx context.Context, userID, search, pillar, tone string) ([]ContentItem, error)
	Get(ctx context.Context, userID, id string) (*ContentItem, error)
	Create(ctx context.Context, userID string, req *ContentCreateRequest) (*ContentItem, error)
	Update(ctx context.Context, userID, id string, req *ContentUpdateRequest) (*ContentItem, error)
	ToggleFavorite(ctx context.Context, userID, id string, favorited bool) error
	Delete(ctx context.Context, userID, id string) error
	Export(ctx context.Context, userID, id string) (filename string, body []byte, err error)
	Summary(ctx context.Context, userID string) (*ContentSummary, error)
}
