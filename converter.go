package llmsdoc

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// Used when a full-content URL serves an HTML page instead of markdown.
	Convert(html string) (string, error)
}
