package mcp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jeongil-dev/llmsdoc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Name is the MCP implementation name.
const Name = "llmsdoc"

// Server is the MCP server for a blog's llms.txt content.
type Server struct {
	content llmsdoc.ContentService
	server  *mcp.Server
	logger  *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for tool failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// NewServer creates a new MCP server backed by content.
func NewServer(content llmsdoc.ContentService, opts ...Option) (*Server, error) {
	if content == nil {
		return nil, ErrMissingContentService
	}

	impl := &mcp.Implementation{
		Name:    Name,
		Version: llmsdoc.Version,
	}

	s := &Server{
		content: content,
		server:  mcp.NewServer(impl, nil),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns an http.Handler serving the streamable HTTP transport.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)
}
