package llmsdoc

// Parser turns raw llms.txt text into categorized sections.
type Parser interface {
	// Parse never fails: malformed structure yields fewer or
	// under-populated sections.
	Parse(raw string) *ParsedContent
}
