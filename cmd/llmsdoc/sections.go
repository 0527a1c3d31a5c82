package main

import (
	"fmt"

	"github.com/jeongil-dev/llmsdoc"
)

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	sections, err := deps.Content.CategorySections(deps.Ctx, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", llmsdoc.ErrorMessage(err))
		return err
	}

	if len(sections) == 0 {
		fmt.Fprintf(deps.Stdout, "No posts found in category: '%s'\n", c.Name)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Posts in %s (%d total):\n\n", c.Name, len(sections))
	printSections(deps, sections)
	return nil
}

func printSections(deps *Dependencies, sections []*llmsdoc.Section) {
	for i, s := range sections {
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s\n", i+1, s.Title, sectionMeta(s))
	}
}
