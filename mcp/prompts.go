package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// prompt is a single-argument prompt template.
type prompt struct {
	name        string
	description string
	arg         string
	argHelp     string
	template    string
}

var prompts = []prompt{
	{
		name:        "check_past_experience",
		description: "Check whether a similar problem was encountered before and summarize key learnings.",
		arg:         "topic",
		argHelp:     "technical topic or problem, e.g. 'kubernetes deployment'",
		template: `I'm working on: %s

Have I encountered a similar problem before? Please search my tech blog for related experiences and summarize:
1. What similar challenges did I face?
2. How did I solve them?
3. What lessons did I learn that might apply now?

Use the search_experience tool to find relevant posts.`,
	},
	{
		name:        "get_development_guideline",
		description: "Retrieve development guidelines and conventions from the documentation.",
		arg:         "guideline_type",
		argHelp:     "type of guideline, e.g. 'git convention' or 'API design'",
		template: `I need to check our development guidelines for: %s

Please retrieve the relevant guidelines from our documentation and provide:
1. The specific rules or conventions
2. Any examples or best practices mentioned
3. Related guidelines that might also apply

Use the search_documentation tool to find the information.`,
	},
	{
		name:        "review_architecture_decision",
		description: "Review past architectural decisions and patterns before making a similar one.",
		arg:         "architecture_topic",
		argHelp:     "architecture topic, e.g. 'MSA transition'",
		template: `I'm making an architecture decision about: %s

Please help me review past architectural decisions and experiences:
1. Search documentation for architectural principles and patterns
2. Search tech blog for related implementation experiences
3. Summarize key learnings and considerations

Use both search_documentation and search_experience tools.`,
	},
}

// registerPrompts registers all prompt templates with the MCP server.
func (s *Server) registerPrompts() {
	for _, p := range prompts {
		s.server.AddPrompt(&mcp.Prompt{
			Name:        p.name,
			Description: p.description,
			Arguments: []*mcp.PromptArgument{{
				Name:        p.arg,
				Description: p.argHelp,
				Required:    true,
			}},
		}, p.handle)
	}
}

func (p prompt) handle(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	value := req.Params.Arguments[p.arg]
	if value == "" {
		return nil, fmt.Errorf("missing required argument %q", p.arg)
	}

	return &mcp.GetPromptResult{
		Description: p.description,
		Messages: []*mcp.PromptMessage{{
			Role:    "user",
			Content: &mcp.TextContent{Text: fmt.Sprintf(p.template, value)},
		}},
	}, nil
}
