package main

import (
	"fmt"
	"strings"

	"github.com/jeongil-dev/llmsdoc"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	var (
		results []llmsdoc.SearchResult
		err     error
	)
	if c.Category != "" {
		cat, ok := llmsdoc.ParseCategory(c.Category)
		if !ok {
			err := llmsdoc.Errorf(llmsdoc.EINVALID, "unknown category: %q", c.Category)
			fmt.Fprintf(deps.Stderr, "error: %s\n", llmsdoc.ErrorMessage(err))
			return err
		}
		results, err = deps.Content.SearchCategory(deps.Ctx, cat, c.Query, c.TopK)
	} else {
		results, err = deps.Content.SearchAll(deps.Ctx, c.Query, c.TopK)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", llmsdoc.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results found for query: '%s'\n", c.Query)
		return nil
	}

	for i, r := range results {
		s := r.Section
		fmt.Fprintf(deps.Stdout, "%d. %s [%.2f]\n", i+1, s.Title, r.Score)
		fmt.Fprintf(deps.Stdout, "   %s\n", sectionMeta(s))
		if len(r.MatchedTerms) > 0 {
			fmt.Fprintf(deps.Stdout, "   matched: %s\n", strings.Join(r.MatchedTerms, ", "))
		}
	}

	return nil
}

// sectionMeta renders the one-line listing metadata of a section.
func sectionMeta(s *llmsdoc.Section) string {
	parts := []string{string(s.Category)}
	if s.Subcategory != "" {
		parts[0] += " > " + s.Subcategory
	}
	if d := s.PublishedDate(); d != "" {
		parts = append(parts, d)
	}
	if s.URL != "" {
		parts = append(parts, s.URL)
	}
	return strings.Join(parts, "  ")
}
