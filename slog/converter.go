package slog

import (
	"log/slog"
	"time"

	"github.com/jeongil-dev/llmsdoc"
)

// Ensure LoggingConverter implements llmsdoc.Converter.
var _ llmsdoc.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with debug logging.
type LoggingConverter struct {
	next   llmsdoc.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next llmsdoc.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the operation.
func (c *LoggingConverter) Convert(html string) (md string, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("convert",
			"html_bytes", len(html),
			"markdown_bytes", len(md),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(html)
}
