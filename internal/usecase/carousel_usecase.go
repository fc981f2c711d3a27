package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
	"github.com/Koushik2208/contentgen-pro/pkg/apperror"
)

type carouselUsecase struct {
	slides  domain.CarouselRepository
	content domain.ContentRepository
}

func NewCarouselUsecase(slides domain.CarouselRepository, content domain.ContentRepository) domain.CarouselUsecase {
	return &carouselUsecase{slides: slides, content: content}
}

// loadDeck verifies the content item belongs to the caller and is actually a
// carousel, then loads its slides in slide_number order.
func (u *carouselUsecase) loadDeck(ctx context.Context, userID, contentID string) (domain.SlideDeck, error) {
	if err := requireCtxUser(ctx, userID); err != nil {
		return domain.SlideDeck{}, err
	}

	item, err := u.content.GetByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.SlideDeck{}, apperror.NotFound("Content not found")
		}
		return domain.SlideDeck{}, apperror.New(http.StatusInternalServerError, "Failed to load content: "+err.Error(), err)
	}
	if item.UserID != userID {
		return domain.SlideDeck{}, apperror.NotFound("Content not found")
	}
	if item.Type != domain.TypeCarousel {
		return domain.SlideDeck{}, apperror.BadRequest("Content is not a carousel")
	}

	slides, err := u.slides.ListByContentID(ctx, contentID)
	if err != nil {
		return domain.SlideDeck{}, apperror.New(http.StatusInternalServerError, "Failed to load slides: "+err.Error(), err)
	}
	return domain.SlideDeck{Slides: slides}, nil
}

func (u *carouselUsecase) GetSlides(ctx context.Context, userID, contentID string) ([]domain.CarouselSlide, error) {
	deck, err := u.loadDeck(ctx, userID, contentID)
	if err != nil {
		return nil, err
	}
	return deck.Slides, nil
}

// GetSlide returns one slide with cyclic index handling: any integer index is
// normalized onto the deck, and the neighbor indices wrap at both ends.
func (u *carouselUsecase) GetSlide(ctx context.Context, userID, contentID string, index int) (*domain.SlideView, error) {
	deck, err := u.loadDeck(ctx, userID, contentID)
	if err != nil {
		return nil, err
	}
	if deck.Len() == 0 {
		return nil, apperror.NotFound("Carousel has no slides")
	}

	i := deck.Normalize(index)
	return &domain.SlideView{
		Slide:     deck.Slides[i],
		Index:     i,
		Total:     deck.Len(),
		NextIndex: deck.Next(i),
		PrevIndex: deck.Prev(i),
	}, nil
}
