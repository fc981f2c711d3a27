package domain

import (
	"context"
	"time"
)

// CarouselSlide mirrors one row of carousel_slides, ordered by SlideNumber
// within its content id. Slides are read-only in this service.
type CarouselSlide struct {
	ID              int64     `json:"id"`
	ContentID       string    `json:"content_id"`
	SlideNumber     int       `json:"slide_number"`
	Title           string    `json:"title"`
	Body            string    `json:"content"`
	BackgroundColor string    `json:"background_color"`
	TextColor       string    `json:"text_color"`
	CreatedAt       time.Time `json:"created_at"`
}

// SlideDeck provides cyclic navigation over an ordered slide list.
// Both directions wrap: advancing past the last slide lands on the first,
// retreating before the first lands on the last. A single-slide deck is a
// fixed point for Next and Prev.
type SlideDeck struct {
	Slides []CarouselSlide
}

func (d SlideDeck) Len() int { return len(d.Slides) }

// Normalize maps any integer onto a valid slide index cyclically.
func (d SlideDeck) Normalize(i int) int {
	n := len(d.Slides)
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func (d SlideDeck) Next(i int) int {
	if len(d.Slides) == 0 {
		return 0
	}
	return d.Normalize(i + 1)
}

func (d SlideDeck) Prev(i int) int {
	if len(d.Slides) == 0 {
		return 0
	}
	return d.Normalize(i - 1)
}

// SlideView is the payload for a single-slide fetch: the slide at the
// cyclically-normalized index plus the neighbor indices the client should
// request for next/prev.
type SlideView struct {
	Slide     CarouselSlide `json:"slide"`
	Index     int           `json:"index"`
	Total     int           `json:"total"`
	NextIndex int           `json:"next_index"`
	PrevIndex int           `json:"prev_index"`
}

type CarouselRepository interface {
	ListByContentID(ctx context.Context, contentID string) ([]CarouselSlide, error)
}

type CarouselUsecase interface {
	GetSlides(ctx context.Context, userID, contentID string) ([]CarouselSlide, error)
	GetSlide(ctx context.Context, userID, contentID string, index int) (*SlideView, error)
}
