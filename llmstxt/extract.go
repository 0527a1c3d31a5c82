package llmstxt

import (
	"regexp"
	"strings"
	"time"

	"github.com/jeongil-dev/llmsdoc"
)

var (
	publishedPattern = regexp.MustCompile(`Published\s+(\d{4}-\d{2}-\d{2})`)
	datePattern      = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)
	linkPattern      = regexp.MustCompile(`\[([^\]]+)\]\((/[^)]+)\)`)
	bulletPattern    = regexp.MustCompile(`^- \[([^\]]+)\](\([^)]*\))?`)
)

// keyword maps a substring to the value it selects.
type keyword struct {
	match string
	value string
}

// categoryHeadings selects the category of a level-2 heading.
// Matching is case-sensitive; the first hit wins.
var categoryHeadings = []struct {
	match    string
	category llmsdoc.Category
}{
	{"Documentation", llmsdoc.CategoryDocumentation},
	{"Tech Blog", llmsdoc.CategoryBlog},
	{"Reflection", llmsdoc.CategoryReflections},
	{"Thoughts", llmsdoc.CategoryReflections},
	{"Trends", llmsdoc.CategoryTrends},
}

// subcategoryKeywords is matched against lower-cased context and title.
// Order matters: the first hit wins.
var subcategoryKeywords = []keyword{
	{"troubleshooting", "troubleshooting"},
	{"performance", "performance"},
	{"optimization", "performance"},
	{"backend", "backend"},
	{"infrastructure", "infrastructure"},
	{"devops", "infrastructure"},
	{"architecture", "architecture"},
	{"design", "architecture"},
	{"culture", "culture"},
	{"reflection", "reflection"},
	{"trends", "trends"},
}

// headingCategory returns the category named by a level-2 heading, or the
// zero Category when the heading is not recognized.
func headingCategory(heading string) llmsdoc.Category {
	for _, h := range categoryHeadings {
		if strings.Contains(heading, h.match) {
			return h.category
		}
	}
	return ""
}

// extractDate finds a publication date. An explicit "Published" marker takes
// precedence over the first bare date. Invalid calendar dates are skipped.
func extractDate(text string) time.Time {
	for _, p := range []*regexp.Regexp{publishedPattern, datePattern} {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if t, err := time.Parse(llmsdoc.DateLayout, m[1]); err == nil {
			return t
		}
	}
	return time.Time{}
}

// extractURLs returns the human-readable and full-content URLs of the first
// site-relative markdown link in text.
func extractURLs(baseURL, text string) (url, fullURL string) {
	m := linkPattern.FindStringSubmatch(text)
	if m == nil {
		return "", ""
	}
	path := m[2]

	human := path
	if h, ok := strings.CutSuffix(human, "/index.md"); ok {
		human = h
	} else {
		human = strings.TrimSuffix(human, ".md")
	}

	return baseURL + human, baseURL + path
}

// extractSubcategory returns the first subcategory keyword found in
// context, or an empty string.
func extractSubcategory(context string) string {
	lower := strings.ToLower(context)
	for _, k := range subcategoryKeywords {
		if strings.Contains(lower, k.match) {
			return k.value
		}
	}
	return ""
}
