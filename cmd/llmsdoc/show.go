package main

import (
	"fmt"

	"github.com/jeongil-dev/llmsdoc"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	if c.Full {
		body, err := deps.Content.FullSectionContent(deps.Ctx, c.Title)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", llmsdoc.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, body)
		return nil
	}

	s, err := deps.Content.SectionByTitle(deps.Ctx, c.Title)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", llmsdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "# %s\n\n", s.Title)
	if meta := llmsdoc.FormatMeta(s); meta != "" {
		fmt.Fprintf(deps.Stdout, "%s\n\n", meta)
	}
	fmt.Fprintln(deps.Stdout, s.Content)
	return nil
}
