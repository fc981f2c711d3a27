package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
)

func sampleLibrary() []domain.ContentItem {
	return []domain.ContentItem{
		{ID: "1", Title: "5 Leadership Lessons", Body: "What a decade of managing taught me", Pillar: "Thought Leadership", Tone: "Professional"},
		{ID: "2", Title: "My Biggest Failure", Body: "A story about a launch gone wrong", Pillar: "Personal Story", Tone: "Storytelling"},
		{ID: "3", Title: "Quick LinkedIn Tips", Body: "Three ways to write better hooks", Pillar: "Tips & Advice", Tone: "Casual"},
		{ID: "4", Title: "Scaling the Team", Body: "Leadership hiring notes", Pillar: "Business Growth", Tone: "Professional"},
	}
}

func TestFilterContent(t *testing.T) {
	items := sampleLibrary()

	t.Run("Should return everything when all filters are off", func(t *testing.T) {
		assert.Len(t, domain.FilterContent(items, "", domain.FilterAllPillars, domain.FilterAllTones), 4)
		assert.Len(t, domain.FilterContent(items, "", "", ""), 4)
	})

	t.Run("Should match search case-insensitively over title and body", func(t *testing.T) {
		got := domain.FilterContent(items, "LEADERSHIP", "", "")
		assert.Len(t, got, 2) // one title match, one body match
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "4", got[1].ID)
	})

	t.Run("Should intersect search with pillar and tone", func(t *testing.T) {
		got := domain.FilterContent(items, "leadership", "Thought Leadership", "Professional")
		assert.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)
	})

	t.Run("Should return empty when nothing matches", func(t *testing.T) {
		assert.Empty(t, domain.FilterContent(items, "cryptocurrency", "", ""))
	})

	t.Run("Should be idempotent", func(t *testing.T) {
		once := domain.FilterContent(items, "leadership", "", "Professional")
		twice := domain.FilterContent(once, "leadership", "", "Professional")
		assert.Equal(t, once, twice)
	})

	t.Run("Should not depend on predicate order", func(t *testing.T) {
		// Applying pillar-then-tone as separate passes equals one combined pass
		combined := domain.FilterContent(items, "", "Business Growth", "Professional")
		pillarFirst := domain.FilterContent(domain.FilterContent(items, "", "Business Growth", ""), "", "", "Professional")
		toneFirst := domain.FilterContent(domain.FilterContent(items, "", "", "Professional"), "", "Business Growth", "")
		assert.Equal(t, combined, pillarFirst)
		assert.Equal(t, combined, toneFirst)
	})

	t.Run("Should preserve input order", func(t *testing.T) {
		got := domain.FilterContent(items, "", "", "Professional")
		assert.Equal(t, []string{got[0].ID, got[1].ID}, []string{"1", "4"})
	})
}

func TestExportFilename(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"5 Leadership Lessons", "5_leadership_lessons.txt"},
		{"Hello, World!", "hello_world.txt"},
		{"  --spaced--  ", "spaced.txt"},
		{"already_clean", "already_clean.txt"},
		{"!!!", "content.txt"},
		{"", "content.txt"},
		{"MiXeD CaSe 42", "mixed_case_42.txt"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, domain.ExportFilename(tc.title), "title %q", tc.title)
	}
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, domain.TypeCarousel.IsValid())
	assert.False(t, domain.ContentType("video").IsValid())

	assert.True(t, domain.PillarBehindTheScenes.IsValid())
	assert.False(t, domain.ContentPillar("Gossip").IsValid())

	assert.True(t, domain.ToneStorytelling.IsValid())
	assert.False(t, domain.ContentTone("professional").IsValid(), "tone labels are capitalized")

	assert.True(t, domain.PlatformLinkedIn.IsValid())
	assert.False(t, domain.SocialPlatform("MySpace").IsValid())
}
