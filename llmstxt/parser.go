// Package llmstxt parses llms.txt documents into categorized sections.
//
// The parser makes a single forward pass over the lines of a document.
// Level-2 headings select a category, level-3 and level-4 headings build a
// nested context used for subcategory inference, and each bulleted link
// opens a new section whose body runs until the next heading or bullet.
package llmstxt

import (
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jeongil-dev/llmsdoc"
)

// Ensure Parser implements llmsdoc.Parser at compile time.
var _ llmsdoc.Parser = (*Parser)(nil)

// Parser converts raw llms.txt text into llmsdoc.ParsedContent.
type Parser struct {
	// BaseURL prefixes site-relative link paths, e.g. "https://example.com".
	BaseURL string

	// SourceURL is recorded on every result.
	SourceURL string

	// Now stamps FetchedAt. Defaults to time.Now.
	Now func() time.Time
}

// NewParser creates a Parser for documents served from baseURL.
func NewParser(baseURL, sourceURL string) *Parser {
	return &Parser{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		SourceURL: sourceURL,
		Now:       time.Now,
	}
}

// Parse splits raw into sections. It never fails; lines that do not fit the
// expected structure are dropped.
func (p *Parser) Parse(raw string) *llmsdoc.ParsedContent {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	s := &scanner{
		baseURL: p.BaseURL,
		result: &llmsdoc.ParsedContent{
			Raw:       raw,
			SourceURL: p.SourceURL,
			FetchedAt: now(),
			Hash:      Hash(raw),
		},
	}

	for _, line := range strings.Split(raw, "\n") {
		s.scan(line)
	}
	s.closeSection()

	return s.result
}

// Hash returns the xxHash64 of raw as a 16-digit hex string.
func Hash(raw string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(raw))
}

// scanner holds the state of one Parse call.
type scanner struct {
	baseURL string
	result  *llmsdoc.ParsedContent

	category llmsdoc.Category
	context  string

	// In-progress section.
	open    bool
	title   string
	body    []string
	url     string
	fullURL string
}

func (s *scanner) scan(line string) {
	trimmed := strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(trimmed, "## "):
		s.closeSection()
		s.category = headingCategory(strings.TrimSpace(trimmed[3:]))
		s.context = ""

	case strings.HasPrefix(trimmed, "### "):
		s.closeSection()
		s.context = strings.TrimSpace(trimmed[4:])

	case strings.HasPrefix(trimmed, "#### "):
		s.closeSection()
		sub := strings.TrimSpace(trimmed[5:])
		if s.context != "" {
			s.context = s.context + " > " + sub
		} else {
			s.context = sub
		}

	case strings.HasPrefix(trimmed, "- ["):
		s.closeSection()
		s.openSection(trimmed)

	default:
		if s.category != "" && s.open {
			s.body = append(s.body, line)
		}
	}
}

// openSection starts a section from a bullet line. Bullets whose link text
// cannot be read leave no section open.
func (s *scanner) openSection(bullet string) {
	m := bulletPattern.FindStringSubmatchIndex(bullet)
	if m == nil {
		return
	}

	s.open = true
	s.title = bullet[m[2]:m[3]]
	s.url, s.fullURL = extractURLs(s.baseURL, bullet)

	rest := strings.TrimSpace(bullet[m[1]:])
	rest = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
	if rest != "" {
		s.body = append(s.body, rest)
	}
}

// closeSection finalizes the in-progress section and always resets it.
func (s *scanner) closeSection() {
	defer s.reset()

	if !s.open || s.title == "" || s.category == "" {
		return
	}
	content := strings.TrimSpace(strings.Join(s.body, "\n"))
	if content == "" {
		return
	}

	section := &llmsdoc.Section{
		Title:          s.title,
		Content:        content,
		Category:       s.category,
		URL:            s.url,
		FullContentURL: s.fullURL,
		PublishedAt:    extractDate(content),
	}
	if section.URL == "" {
		section.URL, section.FullContentURL = extractURLs(s.baseURL, content)
	}
	if s.category != llmsdoc.CategoryDocumentation {
		section.Subcategory = extractSubcategory(s.context + " " + s.title)
	}

	s.result.Add(section)
}

func (s *scanner) reset() {
	s.open = false
	s.title = ""
	s.body = nil
	s.url = ""
	s.fullURL = ""
}
