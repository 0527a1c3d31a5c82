package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/jeongil-dev/llmsdoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *Config
	Logger  *slog.Logger
	Content llmsdoc.ContentService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config   string `type:"path" help:"Path to a TOML config file"`
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)"`
	LogFile  string `name:"log-file" type:"path" help:"Write logs to a rotating file instead of stderr"`

	Serve    ServeCmd    `cmd:"" help:"Run the MCP server (stdio by default)"`
	Search   SearchCmd   `cmd:"" help:"Search posts by keyword"`
	Sections SectionsCmd `cmd:"" help:"List posts in a category or subcategory"`
	Recent   RecentCmd   `cmd:"" help:"List recently published posts"`
	Show     ShowCmd     `cmd:"" help:"Show a single post"`
	Health   HealthCmd   `cmd:"" help:"Show cache and configuration status"`
	Raw      RawCmd      `cmd:"" help:"Print the llms.txt document as fetched"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	HTTP string `name:"http" placeholder:"ADDR" help:"Serve streamable HTTP on ADDR instead of stdio"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query    string `arg:"" help:"Search query"`
	TopK     int    `short:"k" name:"top-k" default:"10" help:"Maximum number of results"`
	Category string `short:"c" help:"Restrict to a category (documentation, tech_blog, reflections, trends)"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct {
	Name string `arg:"" help:"Category or subcategory name"`
}

// RecentCmd is the "recent" subcommand.
type RecentCmd struct {
	Days     int    `default:"30" help:"Number of days to look back"`
	Category string `short:"c" help:"Restrict to a category"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Title string `arg:"" help:"Post title or part of it"`
	Full  bool   `help:"Fetch the complete post instead of its summary"`
}

// HealthCmd is the "health" subcommand.
type HealthCmd struct{}

// RawCmd is the "raw" subcommand.
type RawCmd struct{}
