package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/jeongil-dev/llmsdoc"
	"github.com/jeongil-dev/llmsdoc/content"
	"github.com/jeongil-dev/llmsdoc/htmltomarkdown"
	llmsdochttp "github.com/jeongil-dev/llmsdoc/http"
	"github.com/jeongil-dev/llmsdoc/llmstxt"
	llmsdocslog "github.com/jeongil-dev/llmsdoc/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv looks up environment variables. Set before calling Run().
	Getenv func(string) string

	// Content overrides the content service for end-to-end testing.
	Content llmsdoc.ContentService

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Getenv: os.Getenv,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var first error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	m.closers = nil
	return first
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("llmsdoc"),
		kong.Description("Serve a blog's llms.txt to AI assistants over MCP."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'llmsdoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, warnings, err := LoadConfig(cli.Config, m.Getenv)
	if err != nil {
		return err
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}

	logger, closer := NewLogger(cfg.LogLevel, cli.LogFile, stderr)
	if closer != nil {
		m.closers = append(m.closers, closer)
	}
	defer m.Close()

	for _, w := range warnings {
		logger.Warn("invalid numeric config, using default",
			slog.String("key", w.Key),
			slog.String("value", w.Value),
			slog.Any("default", w.Default),
		)
	}

	deps.Config = cfg
	deps.Logger = logger
	deps.Content = m.Content
	if deps.Content == nil {
		deps.Content = m.newContentService(cfg, logger)
	}

	return kongCtx.Run(deps)
}

// newContentService wires the fetcher, parser, and converter behind the
// content cache.
func (m *Main) newContentService(cfg *Config, logger *slog.Logger) llmsdoc.ContentService {
	fetcherOpts := []llmsdochttp.Option{
		llmsdochttp.WithTimeout(cfg.HTTPTimeout()),
		llmsdochttp.WithMaxAttempts(cfg.HTTPMaxRetries),
		llmsdochttp.WithRetryDelay(cfg.HTTPRetryDelay()),
		llmsdochttp.WithLogger(logger),
	}
	if cfg.HTTPRateLimit > 0 {
		fetcherOpts = append(fetcherOpts, llmsdochttp.WithRateLimit(cfg.HTTPRateLimit))
	}
	fetcher := llmsdocslog.NewLoggingFetcher(llmsdochttp.NewFetcher(fetcherOpts...), logger)
	m.closers = append(m.closers, fetcher)

	parser := llmsdocslog.NewLoggingParser(llmstxt.NewParser(cfg.BaseURL, cfg.LLMSURL()), logger)
	converter := llmsdocslog.NewLoggingConverter(htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(cfg.BaseURL)), logger)

	return content.NewService(fetcher, parser, cfg.LLMSURL(),
		content.WithCacheTTL(time.Duration(cfg.CacheTTLMinutes)*time.Minute),
		content.WithConverter(converter),
		content.WithLogger(logger),
		content.WithHealthConfig(llmsdoc.HealthConfig{
			HTTPTimeout: cfg.HTTPTimeout(),
			MaxAttempts: cfg.HTTPMaxRetries,
			RetryDelay:  cfg.HTTPRetryDelay(),
		}),
	)
}
