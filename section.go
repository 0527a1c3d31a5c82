package llmsdoc

import "time"

// DateLayout is the calendar date format used in documents and output.
const DateLayout = "2006-01-02"

// Section is one titled entry of an llms.txt document, such as a single
// blog post or documentation page, together with its inferred metadata.
type Section struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Category    Category `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`

	// URL is the human-readable page address.
	URL string `json:"url,omitempty"`

	// FullContentURL points at the raw markdown of the page and is used
	// to fetch the complete body on demand.
	FullContentURL string `json:"fullContentUrl,omitempty"`

	// PublishedAt is the zero time when no valid date was found.
	PublishedAt time.Time `json:"publishedAt,omitzero"`

	// Tags is reserved and currently always empty.
	Tags []string `json:"tags,omitempty"`
}

// FullText returns the text indexed for search.
func (s *Section) FullText() string {
	return s.Title + " " + s.Content
}

// HasDate reports whether a publication date was extracted.
func (s *Section) HasDate() bool {
	return !s.PublishedAt.IsZero()
}

// PublishedDate returns the publication date formatted as YYYY-MM-DD,
// or an empty string when the section is undated.
func (s *Section) PublishedDate() string {
	if !s.HasDate() {
		return ""
	}
	return s.PublishedAt.Format(DateLayout)
}
