package main

import (
	"fmt"

	"github.com/jeongil-dev/llmsdoc"
)

// Run executes the recent command.
func (c *RecentCmd) Run(deps *Dependencies) error {
	var cat llmsdoc.Category
	if c.Category != "" {
		parsed, ok := llmsdoc.ParseCategory(c.Category)
		if !ok {
			err := llmsdoc.Errorf(llmsdoc.EINVALID, "unknown category: %q", c.Category)
			fmt.Fprintf(deps.Stderr, "error: %s\n", llmsdoc.ErrorMessage(err))
			return err
		}
		cat = parsed
	}

	sections, err := deps.Content.RecentSections(deps.Ctx, c.Days, cat)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", llmsdoc.ErrorMessage(err))
		return err
	}

	if len(sections) == 0 {
		fmt.Fprintf(deps.Stdout, "No posts found in the last %d days\n", c.Days)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Posts from the last %d days (%d total):\n\n", c.Days, len(sections))
	printSections(deps, sections)
	return nil
}
