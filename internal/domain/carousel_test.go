package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
)

func deck(n int) domain.SlideDeck {
	slides := make([]domain.CarouselSlide, n)
	for i := range slides {
		slides[i] = domain.CarouselSlide{SlideNumber: i + 1}
	}
	return domain.SlideDeck{Slides: slides}
}

func TestSlideDeckNavigation(t *testing.T) {
	t.Run("Should wrap forward past the last slide", func(t *testing.T) {
		d := deck(5)
		assert.Equal(t, 1, d.Next(0))
		assert.Equal(t, 0, d.Next(4))
	})

	t.Run("Should wrap backward past the first slide", func(t *testing.T) {
		d := deck(5)
		assert.Equal(t, 4, d.Prev(0))
		assert.Equal(t, 3, d.Prev(4))
	})

	t.Run("Should return to start after a full loop in either direction", func(t *testing.T) {
		d := deck(7)
		i := 3
		for n := 0; n < d.Len(); n++ {
			i = d.Next(i)
		}
		assert.Equal(t, 3, i)
		for n := 0; n < d.Len(); n++ {
			i = d.Prev(i)
		}
		assert.Equal(t, 3, i)
	})

	t.Run("Should treat a single slide as a fixed point", func(t *testing.T) {
		d := deck(1)
		assert.Equal(t, 0, d.Next(0))
		assert.Equal(t, 0, d.Prev(0))
	})

	t.Run("Should normalize any integer onto a valid index", func(t *testing.T) {
		d := deck(4)
		assert.Equal(t, 1, d.Normalize(5))
		assert.Equal(t, 3, d.Normalize(-1))
		assert.Equal(t, 0, d.Normalize(-8))
		assert.Equal(t, 2, d.Normalize(2))
	})

	t.Run("Should not panic on an empty deck", func(t *testing.T) {
		d := deck(0)
		assert.Equal(t, 0, d.Normalize(9))
		assert.Equal(t, 0, d.Next(0))
		assert.Equal(t, 0, d.Prev(0))
	})
}
