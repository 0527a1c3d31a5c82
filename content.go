package llmsdoc

import "time"

// ParsedContent is the result of parsing one fetched document.
// Sections keep document order within each category.
type ParsedContent struct {
	Raw           string     `json:"raw"`
	Documentation []*Section `json:"documentation"`
	Blog          []*Section `json:"techBlog"`
	Reflections   []*Section `json:"reflections"`
	Trends        []*Section `json:"trends"`
	SourceURL     string     `json:"sourceUrl"`
	FetchedAt     time.Time  `json:"fetchedAt"`

	// Hash identifies the raw text so refreshes can tell whether the
	// document changed.
	Hash string `json:"hash"`
}

// All returns every section in category group order
// (documentation, tech blog, reflections, trends).
// Search indexes are built over this view.
func (c *ParsedContent) All() []*Section {
	all := make([]*Section, 0, c.Len())
	for _, cat := range Categories() {
		all = append(all, c.Sections(cat)...)
	}
	return all
}

// Sections returns the sections of a single category.
func (c *ParsedContent) Sections(cat Category) []*Section {
	switch cat {
	case CategoryDocumentation:
		return c.Documentation
	case CategoryBlog:
		return c.Blog
	case CategoryReflections:
		return c.Reflections
	case CategoryTrends:
		return c.Trends
	}
	return nil
}

// Add appends a section to the group of its category.
// Sections without a known category are ignored.
func (c *ParsedContent) Add(s *Section) {
	switch s.Category {
	case CategoryDocumentation:
		c.Documentation = append(c.Documentation, s)
	case CategoryBlog:
		c.Blog = append(c.Blog, s)
	case CategoryReflections:
		c.Reflections = append(c.Reflections, s)
	case CategoryTrends:
		c.Trends = append(c.Trends, s)
	}
}

// Len returns the total number of sections.
func (c *ParsedContent) Len() int {
	return len(c.Documentation) + len(c.Blog) + len(c.Reflections) + len(c.Trends)
}
