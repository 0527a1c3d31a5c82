// Package mcp exposes an llmsdoc.ContentService to AI assistants over the
// Model Context Protocol as tools, resources and prompts.
package mcp

import (
	"errors"

	"github.com/jeongil-dev/llmsdoc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ErrMissingContentService is returned when the content service is not provided.
var ErrMissingContentService = errors.New("mcp: content service is required")

// errorText renders err for an assistant. Application errors show their
// message and cause; other errors are shown as is.
func errorText(err error) string {
	var appErr *llmsdoc.Error
	if !errors.As(err, &appErr) {
		return err.Error()
	}
	if appErr.Err != nil {
		return appErr.Message + ": " + appErr.Err.Error()
	}
	return appErr.Message
}

// errorResult reports err as a tool-level failure.
func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: errorText(err)}},
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
