package mcp

import (
	"context"

	"github.com/jeongil-dev/llmsdoc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the URI scheme for blog resources.
const uriScheme = "blog://"

// Resource URIs.
const (
	URILLMSText             = uriScheme + "llms-txt"
	URIDocumentation        = uriScheme + "documentation"
	URITechBlog             = uriScheme + "tech-blog"
	URIDocumentationSummary = uriScheme + "documentation/summary"
	URITechBlogSummary      = uriScheme + "tech-blog/summary"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         URILLMSText,
		Name:        "llms-txt",
		Description: "Complete llms.txt document of the blog",
		MIMEType:    "text/markdown",
	}, s.handleLLMSText)

	s.server.AddResource(&mcp.Resource{
		URI:         URIDocumentation,
		Name:        "documentation",
		Description: "Development guidelines and conventions",
		MIMEType:    "text/markdown",
	}, s.sectionsResource(llmsdoc.CategoryDocumentation, "No documentation sections available."))

	s.server.AddResource(&mcp.Resource{
		URI:         URITechBlog,
		Name:        "tech-blog",
		Description: "Real-world tech experiences and blog posts",
		MIMEType:    "text/markdown",
	}, s.sectionsResource(llmsdoc.CategoryBlog, "No tech blog posts available."))

	s.server.AddResource(&mcp.Resource{
		URI:         URIDocumentationSummary,
		Name:        "documentation-summary",
		Description: "Overview of all documentation sections without full content",
		MIMEType:    "text/markdown",
	}, s.summaryResource(llmsdoc.CategoryDocumentation))

	s.server.AddResource(&mcp.Resource{
		URI:         URITechBlogSummary,
		Name:        "tech-blog-summary",
		Description: "Overview of all tech blog posts without full content",
		MIMEType:    "text/markdown",
	}, s.summaryResource(llmsdoc.CategoryBlog))
}

// handleLLMSText returns the cached raw document.
func (s *Server) handleLLMSText(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	c, err := s.content.Content(ctx, false)
	if err != nil {
		return nil, err
	}
	return markdownResult(req.Params.URI, c.Raw), nil
}

// sectionsResource returns a handler rendering every section of cat.
func (s *Server) sectionsResource(cat llmsdoc.Category, empty string) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		c, err := s.content.Content(ctx, false)
		if err != nil {
			return nil, err
		}

		sections := c.Sections(cat)
		if len(sections) == 0 {
			return markdownResult(req.Params.URI, empty), nil
		}
		return markdownResult(req.Params.URI, formatSections(sections)), nil
	}
}

// summaryResource returns a handler rendering the summary of cat.
func (s *Server) summaryResource(cat llmsdoc.Category) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		summary, err := s.content.Summary(ctx, cat)
		if err != nil {
			return nil, err
		}
		return markdownResult(req.Params.URI, summary), nil
	}
}

func markdownResult(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     text,
		}},
	}
}
