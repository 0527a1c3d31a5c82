package llmsdoc_test

import (
	"testing"
	"time"

	"github.com/jeongil-dev/llmsdoc"
	"github.com/stretchr/testify/assert"
)

func TestSection_FullText(t *testing.T) {
	t.Parallel()

	s := &llmsdoc.Section{Title: "DB Migration", Content: "We migrated the database."}

	assert.Equal(t, "DB Migration We migrated the database.", s.FullText())
}

func TestSection_PublishedDate(t *testing.T) {
	t.Parallel()

	t.Run("formats set date", func(t *testing.T) {
		t.Parallel()

		s := &llmsdoc.Section{PublishedAt: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)}

		assert.True(t, s.HasDate())
		assert.Equal(t, "2024-03-15", s.PublishedDate())
	})

	t.Run("returns empty string when undated", func(t *testing.T) {
		t.Parallel()

		s := &llmsdoc.Section{}

		assert.False(t, s.HasDate())
		assert.Empty(t, s.PublishedDate())
	})
}

func TestParsedContent_All(t *testing.T) {
	t.Parallel()

	t.Run("returns sections in category group order", func(t *testing.T) {
		t.Parallel()

		c := &llmsdoc.ParsedContent{}
		c.Add(&llmsdoc.Section{Title: "trend", Category: llmsdoc.CategoryTrends})
		c.Add(&llmsdoc.Section{Title: "post", Category: llmsdoc.CategoryBlog})
		c.Add(&llmsdoc.Section{Title: "doc", Category: llmsdoc.CategoryDocumentation})
		c.Add(&llmsdoc.Section{Title: "thought", Category: llmsdoc.CategoryReflections})
		c.Add(&llmsdoc.Section{Title: "post2", Category: llmsdoc.CategoryBlog})

		var titles []string
		for _, s := range c.All() {
			titles = append(titles, s.Title)
		}

		assert.Equal(t, []string{"doc", "post", "post2", "thought", "trend"}, titles)
		assert.Equal(t, 5, c.Len())
	})

	t.Run("ignores sections without category", func(t *testing.T) {
		t.Parallel()

		c := &llmsdoc.ParsedContent{}
		c.Add(&llmsdoc.Section{Title: "orphan"})

		assert.Empty(t, c.All())
	})
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  llmsdoc.Category
		ok    bool
	}{
		{"documentation", llmsdoc.CategoryDocumentation, true},
		{"Blog", llmsdoc.CategoryBlog, true},
		{"tech_blog", llmsdoc.CategoryBlog, true},
		{" reflection ", llmsdoc.CategoryReflections, true},
		{"TRENDS", llmsdoc.CategoryTrends, true},
		{"backend", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, ok := llmsdoc.ParseCategory(tt.input)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateRange_Contains(t *testing.T) {
	t.Parallel()

	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }

	t.Run("open range contains everything", func(t *testing.T) {
		t.Parallel()

		r := llmsdoc.DateRange{}

		assert.True(t, r.IsZero())
		assert.True(t, r.Contains(day(1)))
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		t.Parallel()

		r := llmsdoc.DateRange{Start: day(10), End: day(20)}

		assert.True(t, r.Contains(day(10)))
		assert.True(t, r.Contains(day(20)))
		assert.False(t, r.Contains(day(9)))
		assert.False(t, r.Contains(day(21)))
	})
}
