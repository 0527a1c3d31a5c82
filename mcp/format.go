package mcp

import (
	"fmt"
	"strings"

	"github.com/jeongil-dev/llmsdoc"
)

// recentPreviewLen is the number of characters shown per recent post.
const recentPreviewLen = 300

// formatSearchAll renders ranked results from every category.
func formatSearchAll(query string, results []llmsdoc.SearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Global Search Results for '%s' (Top %d)\n", query, len(results))

	for i, r := range results {
		s := r.Section
		fmt.Fprintf(&b, "\n## %d. %s [Score: %.2f]\n\n", i+1, s.Title, r.Score)

		category := "Category: " + string(s.Category)
		if s.Subcategory != "" {
			category += " > " + s.Subcategory
		}
		b.WriteString(category + "\n")
		writeLine(&b, "URL", s.URL)
		writeLine(&b, "Published", s.PublishedDate())
		if len(r.MatchedTerms) > 0 {
			writeLine(&b, "Matched terms", strings.Join(r.MatchedTerms, ", "))
		}
		fmt.Fprintf(&b, "\n%s\n\n---\n", s.Content)
	}

	return b.String()
}

// formatSectionList renders sections under a heading, numbered, with
// their metadata and full body.
func formatSectionList(heading string, sections []*llmsdoc.Section) string {
	var b strings.Builder
	b.WriteString(heading + "\n")

	for i, s := range sections {
		fmt.Fprintf(&b, "\n## %d. %s\n\n", i+1, s.Title)
		writeLine(&b, "URL", s.URL)
		writeLine(&b, "Published", s.PublishedDate())
		writeLine(&b, "Category", s.Subcategory)
		fmt.Fprintf(&b, "\n%s\n\n---\n", s.Content)
	}

	return b.String()
}

// formatRecent renders recent sections with a short preview each.
func formatRecent(heading string, sections []*llmsdoc.Section) string {
	var b strings.Builder
	b.WriteString(heading + "\n")
	fmt.Fprintf(&b, "\nFound %d posts\n", len(sections))

	for i, s := range sections {
		fmt.Fprintf(&b, "\n## %d. %s\n\n", i+1, s.Title)
		writeLine(&b, "Published", s.PublishedDate())
		writeLine(&b, "Category", s.Subcategory)
		writeLine(&b, "URL", s.URL)
		fmt.Fprintf(&b, "\n%s\n\n---\n", llmsdoc.Preview(s.Content, recentPreviewLen))
	}

	return b.String()
}

// formatSection renders a single section with its metadata line.
func formatSection(s *llmsdoc.Section) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", s.Title)
	if meta := llmsdoc.FormatMeta(s); meta != "" {
		b.WriteString(meta + "\n\n")
	}
	b.WriteString(s.Content)
	return b.String()
}

// formatSections renders full sections separated by horizontal rules.
func formatSections(sections []*llmsdoc.Section) string {
	parts := make([]string, len(sections))
	for i, s := range sections {
		parts[i] = fmt.Sprintf("# %s\n\n%s\n", s.Title, s.Content)
	}
	return strings.Join(parts, "\n---\n\n")
}

func writeLine(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}
