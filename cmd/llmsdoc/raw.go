package main

import (
	"fmt"

	"github.com/jeongil-dev/llmsdoc"
)

// Run executes the raw command.
func (c *RawCmd) Run(deps *Dependencies) error {
	raw, err := deps.Content.RawDocument(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", llmsdoc.ErrorMessage(err))
		return err
	}
	fmt.Fprint(deps.Stdout, raw)
	return nil
}
