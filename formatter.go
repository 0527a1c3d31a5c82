package llmsdoc

import (
	"strings"
	"unicode/utf8"
)

// SummaryPreviewLen is the number of characters of content shown per
// section in a summary.
const SummaryPreviewLen = 200

// FormatSummary formats an overview of sections for display or LLM context.
// Each section gets a heading, a metadata line when it has any, and a
// content preview.
func FormatSummary(cat Category, sections []*Section) string {
	if len(sections) == 0 {
		return "No " + strings.ToLower(cat.Title()) + " sections found."
	}

	parts := []string{"# " + cat.Title() + " Summary\n"}
	for _, s := range sections {
		parts = append(parts, "## "+s.Title)
		if meta := FormatMeta(s); meta != "" {
			parts = append(parts, meta)
		}
		parts = append(parts, Preview(s.Content, SummaryPreviewLen))
		parts = append(parts, "")
	}

	return strings.Join(parts, "\n")
}

// FormatMeta returns the publication date, subcategory and URL of a
// section joined with " | ", skipping empty values.
func FormatMeta(s *Section) string {
	var meta []string
	if s.HasDate() {
		meta = append(meta, "Published: "+s.PublishedDate())
	}
	if s.Subcategory != "" {
		meta = append(meta, "Category: "+s.Subcategory)
	}
	if s.URL != "" {
		meta = append(meta, "URL: "+s.URL)
	}
	return strings.Join(meta, " | ")
}

// Preview truncates text to at most n characters, appending "..." when
// anything was cut.
func Preview(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return strings.TrimSpace(text)
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:n])) + "..."
}
