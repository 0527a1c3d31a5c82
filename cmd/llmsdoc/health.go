package main

import (
	"encoding/json"
	"fmt"

	"github.com/jeongil-dev/llmsdoc"
)

// Run executes the health command. It loads the content first so the
// report reflects a populated cache or the reason it could not be filled.
func (c *HealthCmd) Run(deps *Dependencies) error {
	if _, err := deps.Content.Content(deps.Ctx, false); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: %s\n", llmsdoc.ErrorMessage(err))
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(deps.Content.Health(deps.Ctx))
}
