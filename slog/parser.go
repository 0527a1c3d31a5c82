package slog

import (
	"log/slog"
	"time"

	"github.com/jeongil-dev/llmsdoc"
)

// Ensure LoggingParser implements llmsdoc.Parser.
var _ llmsdoc.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser and logs per-category section counts.
type LoggingParser struct {
	next   llmsdoc.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next llmsdoc.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the result.
func (p *LoggingParser) Parse(raw string) *llmsdoc.ParsedContent {
	begin := time.Now()
	c := p.next.Parse(raw)
	p.logger.Info("parse",
		"documentation", len(c.Documentation),
		"tech_blog", len(c.Blog),
		"reflections", len(c.Reflections),
		"trends", len(c.Trends),
		"hash", c.Hash,
		"duration", time.Since(begin),
	)
	return c
}
