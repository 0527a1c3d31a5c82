package llmsdoc

import "strings"

// Category is one of the top-level groups of an llms.txt document.
// The zero value means the content is not in any known group.
type Category string

// Category constants, one per recognized level-2 heading.
const (
	CategoryDocumentation Category = "documentation"
	CategoryBlog          Category = "tech_blog"
	CategoryReflections   Category = "reflections"
	CategoryTrends        Category = "trends"
)

// Categories returns all categories in canonical group order.
// This order defines ParsedContent.All and every derived listing.
func Categories() []Category {
	return []Category{
		CategoryDocumentation,
		CategoryBlog,
		CategoryReflections,
		CategoryTrends,
	}
}

// categoryAliases maps accepted user input to categories.
var categoryAliases = map[string]Category{
	"documentation": CategoryDocumentation,
	"docs":          CategoryDocumentation,
	"tech_blog":     CategoryBlog,
	"blog":          CategoryBlog,
	"reflections":   CategoryReflections,
	"reflection":    CategoryReflections,
	"trends":        CategoryTrends,
}

// ParseCategory converts user input into a Category.
// Matching is case-insensitive and accepts a few short aliases.
func ParseCategory(s string) (Category, bool) {
	c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(s))]
	return c, ok
}

// Title returns a display name for the category.
func (c Category) Title() string {
	switch c {
	case CategoryDocumentation:
		return "Documentation"
	case CategoryBlog:
		return "Tech Blog"
	case CategoryReflections:
		return "Reflections"
	case CategoryTrends:
		return "Trends"
	}
	return string(c)
}
